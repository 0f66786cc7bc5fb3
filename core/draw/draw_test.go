package draw_test

import (
	"math"
	"testing"

	"github.com/ingyamilmolinar/birect/core/draw"
	"github.com/ingyamilmolinar/birect/core/draw/drawtest"
	"github.com/ingyamilmolinar/birect/internal/config"
)

const eps = 1e-6

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestNodeDrawsAllSegmentsBalanced(t *testing.T) {
	cfg := config.Default()
	p := draw.NewPainter(cfg)
	c := drawtest.New(500, 400)
	p.Node(c, 0, 0.3)

	want := cfg.Parts * (cfg.Lines + 1)
	if len(c.Lines) != want {
		t.Fatalf("got %d lines, want %d", len(c.Lines), want)
	}
	if c.Depth != 0 {
		t.Fatalf("save/restore unbalanced, depth %d", c.Depth)
	}
	if c.MaxDepth != 3 {
		t.Fatalf("max save depth %d, want 3", c.MaxDepth)
	}
}

func TestNodePaint(t *testing.T) {
	cfg := config.Default()
	p := draw.NewPainter(cfg)
	c := drawtest.New(500, 400)
	p.Node(c, 3, 0.5)
	for _, l := range c.Lines {
		if l.Paint.Color != cfg.Palette[3] {
			t.Fatalf("line color %v, want %v", l.Paint.Color, cfg.Palette[3])
		}
		if l.Paint.Cap != draw.CapRound {
			t.Fatalf("expected round cap")
		}
		if !near(l.Paint.StrokeWidth, 400.0/90) {
			t.Fatalf("stroke width %v, want %v", l.Paint.StrokeWidth, 400.0/90)
		}
	}
}

func TestNodeAtRestDrawsNothingVisible(t *testing.T) {
	p := draw.NewPainter(config.Default())
	for _, s := range []float64{0, 1} {
		c := drawtest.New(500, 400)
		p.Node(c, 0, s)
		for _, l := range c.Lines {
			if l.Length() > eps {
				t.Fatalf("scale %v: segment of length %v", s, l.Length())
			}
		}
	}
}

func TestNodeGeometryAtPeak(t *testing.T) {
	p := draw.NewPainter(config.Default())
	c := drawtest.New(500, 400)
	p.Node(c, 0, 0.5) // sinify(0.5) == 1, every slot fully grown

	gap := 100.0
	for i := 0; i < 5; i++ {
		flat := c.Lines[i*3]
		if !near(flat.X0, gap*float64(i)) || !near(flat.Y0, 200) || !near(flat.X1, gap*float64(i+1)) || !near(flat.Y1, 200) {
			t.Fatalf("slot %d flat segment = %+v", i, flat)
		}
		up := c.Lines[i*3+1]
		if !near(up.X0, gap*float64(i+1)) || !near(up.Y0, 200) || !near(up.X1, gap*float64(i+1)) || !near(up.Y1, 100) {
			t.Fatalf("slot %d rotated segment = %+v", i, up)
		}
		if l := c.Lines[i*3+2].Length(); l > eps {
			t.Fatalf("slot %d third segment length %v, want 0", i, l)
		}
	}
}

func TestSlotsAreStaggered(t *testing.T) {
	p := draw.NewPainter(config.Default())
	c := drawtest.New(500, 400)
	// sinify(1/6) ~ 0.5: slots 0 and 1 done, slot 2 half way, 3 and 4 idle.
	p.Node(c, 0, 1.0/6)

	for i := 0; i < 5; i++ {
		got := c.Lines[i*3].Length()
		switch {
		case i < 2 && !near(got, 100):
			t.Fatalf("slot %d length %v, want full", i, got)
		case i == 2 && !near(got, 100):
			// half way through slot 2 is enough to finish its first segment
			t.Fatalf("slot %d length %v, want 100", i, got)
		case i > 2 && got > eps:
			t.Fatalf("slot %d length %v, want 0", i, got)
		}
	}
}

func TestBackgroundFill(t *testing.T) {
	cfg := config.Default()
	c := drawtest.New(10, 10)
	draw.NewPainter(cfg).Background(c)
	if len(c.Fills) != 1 || c.Fills[0] != cfg.Background {
		t.Fatalf("fills = %v", c.Fills)
	}
}
