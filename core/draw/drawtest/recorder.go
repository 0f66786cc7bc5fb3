// Package drawtest provides a Canvas that records calls, for tests.
package drawtest

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/ingyamilmolinar/birect/core/draw"
)

// Line is a recorded DrawLine call with its endpoints mapped to surface
// coordinates.
type Line struct {
	X0, Y0, X1, Y1 float64
	Paint          draw.Paint
}

func (l Line) Length() float64 { return math.Hypot(l.X1-l.X0, l.Y1-l.Y0) }

// Canvas records fills and lines. MaxDepth tracks the deepest Save nesting.
type Canvas struct {
	W, H     float64
	Fills    []color.Color
	Lines    []Line
	Depth    int
	MaxDepth int

	m     gg.Matrix
	stack []gg.Matrix
}

func New(w, h float64) *Canvas {
	return &Canvas{W: w, H: h, m: gg.Identity()}
}

func (c *Canvas) Width() float64  { return c.W }
func (c *Canvas) Height() float64 { return c.H }

func (c *Canvas) Fill(col color.Color) { c.Fills = append(c.Fills, col) }

func (c *Canvas) Save() {
	c.stack = append(c.stack, c.m)
	c.Depth++
	if c.Depth > c.MaxDepth {
		c.MaxDepth = c.Depth
	}
}

func (c *Canvas) Restore() {
	c.Depth--
	if len(c.stack) == 0 {
		return
	}
	c.m = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(x, y float64) {
	c.m = c.m.Multiply(gg.Translate(x, y))
}

func (c *Canvas) Rotate(degrees float64) {
	c.m = c.m.Multiply(gg.Rotate(degrees * math.Pi / 180))
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p draw.Paint) {
	a := c.m.TransformPoint(gg.Point{X: x0, Y: y0})
	b := c.m.TransformPoint(gg.Point{X: x1, Y: y1})
	c.Lines = append(c.Lines, Line{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y, Paint: p})
}

// Reset clears recorded calls but keeps the surface size.
func (c *Canvas) Reset() {
	*c = *New(c.W, c.H)
}
