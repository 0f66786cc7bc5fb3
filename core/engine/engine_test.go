package engine

import (
	"io"
	"testing"
	"time"

	"github.com/ingyamilmolinar/birect/core/draw/drawtest"
	"github.com/ingyamilmolinar/birect/internal/config"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

var testLogger = game_log.New(io.Discard, game_log.LevelError)

type redrawCounter struct{ redraws, immediate int }

func (r *redrawCounter) RequestRedraw()          { r.redraws++ }
func (r *redrawCounter) RequestImmediateRedraw() { r.immediate++ }

func newTestEngine() (*Engine, *redrawCounter, *time.Time) {
	clk := time.Unix(0, 0)
	r := &redrawCounter{}
	e := New(config.Default(), r, testLogger, WithClock(func() time.Time { return clk }))
	return e, r, &clk
}

// runFrames calls Update once per frame, moving the clock one delay ahead
// each time, and returns the number of frames until the driver stopped.
func runFrames(t *testing.T, e *Engine, clk *time.Time, limit int) int {
	t.Helper()
	for f := 1; f <= limit; f++ {
		e.Update()
		*clk = clk.Add(e.Config().Delay)
		if !e.Running() {
			return f
		}
	}
	t.Fatalf("engine still running after %d frames", limit)
	return 0
}

func TestTapRunsOneExcursionThenStops(t *testing.T) {
	e, r, clk := newTestEngine()
	if e.Running() {
		t.Fatalf("engine running before any tap")
	}
	if !e.HandleTap() {
		t.Fatalf("tap on idle engine ignored")
	}
	if !e.Running() || r.immediate != 1 {
		t.Fatalf("running=%v immediate=%d", e.Running(), r.immediate)
	}

	frames := runFrames(t, e, clk, 2000)
	if frames < 500 || frames > 501 {
		t.Fatalf("excursion took %d frames, want ~500", frames)
	}
	s := e.Snapshot()
	if s.Node != 1 || s.Direction != 1 || s.Running {
		t.Fatalf("snapshot after excursion = %+v", s)
	}
	if r.redraws != frames-1 {
		t.Fatalf("redraws = %d, want %d", r.redraws, frames-1)
	}
}

func TestTapWhileRunningIsIgnored(t *testing.T) {
	e, r, clk := newTestEngine()
	e.HandleTap()
	e.Update()
	*clk = clk.Add(time.Second)
	if e.HandleTap() {
		t.Fatalf("second tap accepted while node moving")
	}
	if r.immediate != 1 {
		t.Fatalf("immediate redraws = %d", r.immediate)
	}
}

func TestUpdateWithoutTapIsIdle(t *testing.T) {
	e, r, _ := newTestEngine()
	for i := 0; i < 50; i++ {
		if e.Update() {
			t.Fatalf("update ran without a tap")
		}
	}
	if r.redraws != 0 {
		t.Fatalf("redraws requested while idle: %d", r.redraws)
	}
}

func TestFullRoundTrip(t *testing.T) {
	e, _, clk := newTestEngine()
	want := []struct{ node, dir int }{
		{1, 1}, {2, 1}, {3, 1}, {4, 1}, {4, -1},
		{3, -1}, {2, -1}, {1, -1}, {0, -1}, {0, 1},
	}
	for i, w := range want {
		if !e.HandleTap() {
			t.Fatalf("tap %d ignored", i)
		}
		runFrames(t, e, clk, 2000)
		s := e.Snapshot()
		if s.Node != w.node || s.Direction != w.dir {
			t.Fatalf("after tap %d: node=%d dir=%d, want %d/%d", i, s.Node, s.Direction, w.node, w.dir)
		}
	}
}

func TestDrawPaintsBackgroundThenNode(t *testing.T) {
	e, _, _ := newTestEngine()
	c := drawtest.New(300, 200)
	e.Draw(c)
	cfg := e.Config()
	if len(c.Fills) != 1 || c.Fills[0] != cfg.Background {
		t.Fatalf("fills = %v", c.Fills)
	}
	if len(c.Lines) != cfg.Parts*(cfg.Lines+1) {
		t.Fatalf("lines = %d", len(c.Lines))
	}
}

func TestNewPanicsOnBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Parts = 0
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New(cfg, &redrawCounter{}, testLogger)
}
