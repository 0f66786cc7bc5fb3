package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/birect/core/draw"
)

// strokeLine and fillCircle are variables so tests can capture draw calls.
var strokeLine = func(dst *ebiten.Image, x0, y0, x1, y1, width float32, c color.Color) {
	vector.StrokeLine(dst, x0, y0, x1, y1, width, c, true)
}

var fillCircle = func(dst *ebiten.Image, cx, cy, r float32, c color.Color) {
	vector.DrawFilledCircle(dst, cx, cy, r, c, true)
}

var debugPrint = ebitenutil.DebugPrint

// newCanvas wraps the screen for the engine. Overridden in tests.
var newCanvas = func(dst *ebiten.Image) draw.Canvas {
	return &screenCanvas{dst: dst}
}

// screenCanvas keeps its own transform stack because vector draws in screen
// coordinates.
type screenCanvas struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
}

func (c *screenCanvas) Width() float64  { return float64(c.dst.Bounds().Dx()) }
func (c *screenCanvas) Height() float64 { return float64(c.dst.Bounds().Dy()) }

func (c *screenCanvas) Fill(col color.Color) { c.dst.Fill(col) }

func (c *screenCanvas) Save() { c.stack = append(c.stack, c.geo) }

func (c *screenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.geo = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// local applies m before the current transform.
func (c *screenCanvas) local(m ebiten.GeoM) {
	m.Concat(c.geo)
	c.geo = m
}

func (c *screenCanvas) Translate(x, y float64) {
	var m ebiten.GeoM
	m.Translate(x, y)
	c.local(m)
}

func (c *screenCanvas) Rotate(degrees float64) {
	var m ebiten.GeoM
	m.Rotate(degrees * math.Pi / 180)
	c.local(m)
}

// DrawLine strokes the segment; round caps are drawn as discs on both ends.
// Zero-length segments, such as the resting pattern, still get their discs so
// they show as dots.
func (c *screenCanvas) DrawLine(x0, y0, x1, y1 float64, p draw.Paint) {
	ax, ay := c.geo.Apply(x0, y0)
	bx, by := c.geo.Apply(x1, y1)
	w := float32(p.StrokeWidth)
	strokeLine(c.dst, float32(ax), float32(ay), float32(bx), float32(by), w, p.Color)
	if p.Cap == draw.CapRound {
		fillCircle(c.dst, float32(ax), float32(ay), w/2, p.Color)
		fillCircle(c.dst, float32(bx), float32(by), w/2, p.Color)
	}
}
