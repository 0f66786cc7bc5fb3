// Command birect shows the bouncing rect-line animation. Click or touch the
// window to move the pattern to the next color; with -headless it renders
// PNG frames instead.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/birect/internal/config"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
	"github.com/ingyamilmolinar/birect/internal/raster"
	"github.com/ingyamilmolinar/birect/internal/ui"
)

func main() {
	var (
		width    = flag.Int("width", 640, "window or frame width")
		height   = flag.Int("height", 480, "window or frame height")
		headless = flag.Bool("headless", false, "render PNG frames instead of opening a window")
		frames   = flag.Int("frames", 600, "frames to simulate in headless mode")
		taps     = flag.String("taps", "0", "comma separated frames that receive a tap in headless mode")
		out      = flag.String("out", "frames", "output directory for headless frames")
		level    = flag.String("log-level", "info", "debug, info, warn, error or none")
	)
	flag.Parse()

	lvl, err := game_log.ParseLevel(*level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger := game_log.New(os.Stderr, lvl)
	if lvl != game_log.LevelNone {
		gg.SetLogger(slog.New(slog.NewTextHandler(logger.Writer(), &slog.HandlerOptions{Level: lvl.Slog()})))
	}

	cfg := config.Default()

	if *headless {
		tapFrames, err := parseFrames(*taps)
		if err != nil {
			logger.Errorf("Bad -taps: %v", err)
			os.Exit(2)
		}
		if err := runHeadless(cfg, raster.Options{
			Width: *width, Height: *height, Frames: *frames, Taps: tapFrames, OutDir: *out,
		}, logger); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		return
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("birect")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetScreenClearedEveryFrame(false)
	if err := ebiten.RunGame(ui.New(cfg, logger)); err != nil {
		logger.Errorf("Game exited: %v", err)
		os.Exit(1)
	}
}

func runHeadless(cfg config.Config, opts raster.Options, logger *game_log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	r, err := raster.NewRecorder(cfg, opts, logger)
	if err != nil {
		return err
	}
	return r.Run(ctx)
}

func parseFrames(s string) ([]int, error) {
	var frames []int
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("frame %q: %w", f, err)
		}
		if n < 0 {
			return nil, fmt.Errorf("frame %d is negative", n)
		}
		frames = append(frames, n)
	}
	return frames, nil
}
