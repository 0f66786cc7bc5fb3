// Package config holds the fixed constants of the animation.
package config

import (
	"fmt"
	"image/color"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	paletteHex    = []string{"#3F51B5", "#f44336", "#4CAF50", "#01579B", "#009688"}
	backgroundHex = "#BDBDBD"
)

const (
	defaultLines        = 2
	defaultParts        = 5
	defaultStrokeFactor = 90
	defaultDelay        = 10 * time.Millisecond
)

// Config is passed by value; nothing mutates it after Default returns.
type Config struct {
	Palette    []color.RGBA
	Background color.RGBA

	// Lines is the number of rotated sub-segments after the first one, so
	// every slot draws Lines+1 segments.
	Lines int
	// Parts is the number of horizontal slots per node.
	Parts int
	// StrokeFactor divides min(width, height) to get the stroke width.
	StrokeFactor float64
	// Delay is the minimum time between two animation steps.
	Delay time.Duration
	// Step is how much a node's scale moves per animation step.
	Step float64
}

func Default() Config {
	palette := make([]color.RGBA, len(paletteHex))
	for i, h := range paletteHex {
		palette[i] = MustParseHex(h)
	}
	return Config{
		Palette:      palette,
		Background:   MustParseHex(backgroundHex),
		Lines:        defaultLines,
		Parts:        defaultParts,
		StrokeFactor: defaultStrokeFactor,
		Delay:        defaultDelay,
		Step:         0.02 / float64(defaultLines*defaultParts),
	}
}

// Nodes is the length of the node chain, one node per palette color.
func (c Config) Nodes() int { return len(c.Palette) }

// Validate panics when a constant would make the drawing math divide by zero
// or the animation never advance.
func (c Config) Validate() {
	switch {
	case len(c.Palette) == 0:
		panic("config: empty palette")
	case c.Parts <= 0:
		panic(fmt.Sprintf("config: parts must be positive, got %d", c.Parts))
	case c.Lines <= 0:
		panic(fmt.Sprintf("config: lines must be positive, got %d", c.Lines))
	case c.StrokeFactor <= 0:
		panic(fmt.Sprintf("config: stroke factor must be positive, got %v", c.StrokeFactor))
	case c.Step <= 0 || c.Step >= 1:
		panic(fmt.Sprintf("config: step must be in (0,1), got %v", c.Step))
	case c.Delay < 0:
		panic(fmt.Sprintf("config: negative delay %v", c.Delay))
	}
}

// MustParseHex parses "#RRGGBB" into an opaque color and panics on malformed
// input; it is only used on compiled-in constants.
func MustParseHex(s string) color.RGBA {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("config: bad color %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
