// Package draw renders a node of the animation onto any 2D surface that
// satisfies Canvas.
package draw

import "image/color"

type Cap int

const (
	CapButt Cap = iota
	CapRound
)

type Paint struct {
	Color       color.Color
	StrokeWidth float64
	Cap         Cap
}

// Canvas is the drawing surface a host provides. Transforms apply in the
// local frame, like a 2D graphics context: Translate then Rotate rotates
// around the translated origin. Rotate takes degrees; positive values turn
// clockwise on a y-down surface.
type Canvas interface {
	Width() float64
	Height() float64
	Fill(c color.Color)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(degrees float64)
	DrawLine(x0, y0, x1, y1 float64, p Paint)
}
