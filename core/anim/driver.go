// Package anim gates animation steps behind a start/stop flag and a minimum
// delay between steps, without ever blocking the caller.
package anim

import (
	"time"

	"github.com/ingyamilmolinar/birect/core/model"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

// Stepper performs one animation step.
type Stepper interface {
	Update() model.UpdateResult
}

// Redrawer is implemented by the host surface.
type Redrawer interface {
	// RequestRedraw asks for a frame; hosts may coalesce requests.
	RequestRedraw()
	// RequestImmediateRedraw asks for a frame as soon as possible.
	RequestImmediateRedraw()
}

type Option func(*Driver)

// WithClock replaces time.Now, mainly for tests and offline rendering.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

type Driver struct {
	step   Stepper
	redraw Redrawer
	delay  time.Duration
	now    func() time.Time
	due    time.Time
	active bool
	ticks  int
	logger *game_log.Logger
}

func New(step Stepper, redraw Redrawer, delay time.Duration, logger *game_log.Logger, opts ...Option) *Driver {
	d := &Driver{
		step:   step,
		redraw: redraw,
		delay:  delay,
		now:    time.Now,
		logger: logger.Tagged("ANIM"),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

func (d *Driver) Active() bool { return d.active }

// Ticks counts the steps run since the last Start.
func (d *Driver) Ticks() int { return d.ticks }

// Start switches to running and asks for an immediate frame. It is a no-op
// while already running.
func (d *Driver) Start() bool {
	if d.active {
		return false
	}
	d.active = true
	d.ticks = 0
	d.due = d.now()
	d.logger.Debugf("Started")
	d.redraw.RequestImmediateRedraw()
	return true
}

// Stop switches to idle. A pending step is dropped.
func (d *Driver) Stop() bool {
	if !d.active {
		return false
	}
	d.active = false
	d.logger.Debugf("Stopped after %d ticks", d.ticks)
	return true
}

// Tick runs one step if the driver is running and the delay since the
// previous step has passed. It reports whether a step ran.
func (d *Driver) Tick() bool {
	if !d.active {
		return false
	}
	now := d.now()
	if now.Before(d.due) {
		return false
	}
	d.ticks++
	res := d.step.Update()
	if res.Boundary {
		d.logger.Debugf("Boundary reached at checkpoint %v", res.Checkpoint)
		d.Stop()
		return true
	}
	d.due = now.Add(d.delay)
	d.redraw.RequestRedraw()
	return true
}
