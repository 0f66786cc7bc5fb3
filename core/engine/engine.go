package engine

import (
	"time"

	"github.com/ingyamilmolinar/birect/core/anim"
	"github.com/ingyamilmolinar/birect/core/draw"
	"github.com/ingyamilmolinar/birect/core/model"
	"github.com/ingyamilmolinar/birect/internal/config"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

// Snapshot is a read-only view of the engine for overlays and logs.
type Snapshot struct {
	Node      int
	Direction int
	Scale     float64
	Running   bool
}

type Option func(*options)

type options struct {
	animOpts []anim.Option
}

// WithClock drives the animation delay from now instead of the wall clock.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.animOpts = append(o.animOpts, anim.WithClock(now)) }
}

// Engine ties the node sequence to the animation driver and the painter. All
// methods must be called from the host's update goroutine.
type Engine struct {
	cfg     config.Config
	seq     *model.Sequence
	driver  *anim.Driver
	painter *draw.Painter
	logger  *game_log.Logger
}

// New panics if cfg is not valid.
func New(cfg config.Config, redraw anim.Redrawer, logger *game_log.Logger, opts ...Option) *Engine {
	cfg.Validate()
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	seq := model.NewSequence(cfg.Nodes(), cfg.Step, logger)
	e := &Engine{
		cfg:     cfg,
		seq:     seq,
		driver:  anim.New(seq, redraw, cfg.Delay, logger, o.animOpts...),
		painter: draw.NewPainter(cfg),
		logger:  logger.Tagged("ENGINE"),
	}
	e.logger.Infof("Ready: %d nodes, step %v, delay %v", cfg.Nodes(), cfg.Step, cfg.Delay)
	return e
}

// Draw paints the background and the current node.
func (e *Engine) Draw(c draw.Canvas) {
	e.painter.Background(c)
	e.seq.Draw(c, e.painter)
}

// Update runs at most one animation step; hosts call it once per frame.
func (e *Engine) Update() bool {
	return e.driver.Tick()
}

// HandleTap starts the current node if it is resting, and the driver with it.
func (e *Engine) HandleTap() bool {
	if !e.seq.StartUpdating() {
		e.logger.Debugf("Tap ignored, node %d still moving", e.seq.Current().Index)
		return false
	}
	e.logger.Debugf("Tap started node %d", e.seq.Current().Index)
	e.driver.Start()
	return true
}

func (e *Engine) Running() bool { return e.driver.Active() }

func (e *Engine) Snapshot() Snapshot {
	n := e.seq.Current()
	return Snapshot{
		Node:      n.Index,
		Direction: e.seq.Direction(),
		Scale:     n.State.Scale,
		Running:   e.driver.Active(),
	}
}

func (e *Engine) Config() config.Config { return e.cfg }
