// Package raster renders the animation off-screen with gogpu/gg.
package raster

import (
	"image/color"
	"math"

	"github.com/gogpu/gg"

	"github.com/ingyamilmolinar/birect/core/draw"
)

// Canvas adapts a gg.Context to draw.Canvas. The first stroke error is kept
// and reported by Err.
type Canvas struct {
	dc  *gg.Context
	err error
}

// dotLength is the length below which a segment is drawn as its cap alone.
const dotLength = 1e-9

func NewCanvas(dc *gg.Context) *Canvas { return &Canvas{dc: dc} }

func (c *Canvas) Width() float64  { return float64(c.dc.Width()) }
func (c *Canvas) Height() float64 { return float64(c.dc.Height()) }

func (c *Canvas) Fill(col color.Color) { c.dc.ClearWithColor(gg.FromColor(col)) }

func (c *Canvas) Save()    { c.dc.Push() }
func (c *Canvas) Restore() { c.dc.Pop() }

func (c *Canvas) Translate(x, y float64) { c.dc.Translate(x, y) }

func (c *Canvas) Rotate(degrees float64) { c.dc.Rotate(degrees * math.Pi / 180) }

func (c *Canvas) DrawLine(x0, y0, x1, y1 float64, p draw.Paint) {
	c.dc.SetColor(p.Color)
	c.dc.SetLineWidth(p.StrokeWidth)
	if p.Cap == draw.CapRound {
		c.dc.SetLineCap(gg.LineCapRound)
	} else {
		c.dc.SetLineCap(gg.LineCapButt)
	}
	// A round-capped segment of no length still shows as a dot; gg strokes
	// nothing for an empty path, so fill the cap disc instead.
	if p.Cap == draw.CapRound && math.Hypot(x1-x0, y1-y0) < dotLength {
		c.dc.DrawCircle(x0, y0, p.StrokeWidth/2)
		c.keep(c.dc.Fill())
		return
	}
	c.dc.DrawLine(x0, y0, x1, y1)
	c.keep(c.dc.Stroke())
}

func (c *Canvas) keep(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

func (c *Canvas) Err() error { return c.err }
