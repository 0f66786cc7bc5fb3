package raster

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gogpu/gg"

	"github.com/ingyamilmolinar/birect/core/engine"
	"github.com/ingyamilmolinar/birect/internal/config"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

type Options struct {
	Width, Height int
	// Frames is the number of host frames to simulate.
	Frames int
	// Taps lists the frames on which a tap is delivered.
	Taps []int
	// OutDir receives one PNG per redrawn frame.
	OutDir string
}

// Recorder plays the host for the engine without a window. Time is virtual:
// every simulated frame moves the clock one animation delay ahead, so output
// does not depend on machine speed.
type Recorder struct {
	opts    Options
	eng     *engine.Engine
	dc      *gg.Context
	canvas  *Canvas
	clock   time.Time
	delay   time.Duration
	pending bool
	written []string
	logger  *game_log.Logger
}

func NewRecorder(cfg config.Config, opts Options, logger *game_log.Logger) (*Recorder, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	if opts.Frames <= 0 {
		return nil, fmt.Errorf("frame count must be positive, got %d", opts.Frames)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	r := &Recorder{
		opts:   opts,
		dc:     dc,
		canvas: NewCanvas(dc),
		clock:  time.Unix(0, 0),
		delay:  cfg.Delay,
		logger: logger.Tagged("RASTER"),
	}
	r.eng = engine.New(cfg, r, logger, engine.WithClock(r.now))
	return r, nil
}

func (r *Recorder) now() time.Time { return r.clock }

func (r *Recorder) RequestRedraw() { r.pending = true }

func (r *Recorder) RequestImmediateRedraw() { r.pending = true }

// Written returns the paths of the PNG files produced so far.
func (r *Recorder) Written() []string { return r.written }

func (r *Recorder) Engine() *engine.Engine { return r.eng }

// Run simulates the configured frames. Cancelling ctx stops early and is not
// an error.
func (r *Recorder) Run(ctx context.Context) error {
	if err := os.MkdirAll(r.opts.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}
	taps := make(map[int]bool, len(r.opts.Taps))
	for _, f := range r.opts.Taps {
		taps[f] = true
	}

	// the host always paints its first frame
	r.pending = true
	for frame := 0; frame < r.opts.Frames; frame++ {
		if ctx.Err() != nil {
			r.logger.Infof("Interrupted at frame %d, %d files written", frame, len(r.written))
			return nil
		}
		if taps[frame] {
			r.logger.Debugf("Tap at frame %d", frame)
			r.eng.HandleTap()
		}
		r.eng.Update()
		if r.pending {
			r.pending = false
			if err := r.render(); err != nil {
				return err
			}
		}
		r.clock = r.clock.Add(r.delay)
	}
	r.logger.Infof("Done: %d frames simulated, %d files written to %s", r.opts.Frames, len(r.written), r.opts.OutDir)
	return nil
}

func (r *Recorder) render() error {
	r.eng.Draw(r.canvas)
	if err := r.canvas.Err(); err != nil {
		return fmt.Errorf("drawing frame %d: %w", len(r.written), err)
	}
	path := filepath.Join(r.opts.OutDir, fmt.Sprintf("frame_%04d.png", len(r.written)))
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	r.written = append(r.written, path)
	return nil
}
