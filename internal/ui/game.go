package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/birect/core/engine"
	"github.com/ingyamilmolinar/birect/internal/config"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

// Game hosts the engine in an ebiten window. The screen is only repainted
// when the engine asks for it, so main must disable per-frame clearing.
type Game struct {
	eng    *engine.Engine
	logger *game_log.Logger

	dirty      bool
	debug      bool
	winW, winH int
}

func New(cfg config.Config, logger *game_log.Logger) *Game {
	g := &Game{
		dirty:  true,
		debug:  logger.Level() == game_log.LevelDebug,
		logger: logger.Tagged("UI"),
	}
	g.eng = engine.New(cfg, g, logger)
	return g
}

/* ───────────────────── redraw contract ───────────────────── */

func (g *Game) RequestRedraw() { g.dirty = true }

// RequestImmediateRedraw is the same as RequestRedraw: ebiten draws right
// after the update that asked for it.
func (g *Game) RequestImmediateRedraw() { g.dirty = true }

/* ───────────────────── ebiten.Game ───────────────────── */

func (g *Game) Update() error {
	if primaryPointerDown() {
		g.logger.Debugf("Tap")
		g.eng.HandleTap()
	}
	g.eng.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false
	g.eng.Draw(newCanvas(screen))
	if g.debug {
		s := g.eng.Snapshot()
		debugPrint(screen, fmt.Sprintf("node %d  dir %+d  scale %.3f  running %v", s.Node, s.Direction, s.Scale, s.Running))
	}
}

func (g *Game) Layout(w, h int) (int, int) {
	if w != g.winW || h != g.winH {
		g.winW, g.winH = w, h
		g.dirty = true
		g.logger.Infof("Layout: %dx%d", w, h)
	}
	return w, h
}

func (g *Game) Engine() *engine.Engine { return g.eng }
