package draw

import (
	"math"

	"github.com/ingyamilmolinar/birect/core/scale"
	"github.com/ingyamilmolinar/birect/internal/config"
)

// Painter draws nodes using a fixed configuration.
type Painter struct {
	cfg config.Config
}

func NewPainter(cfg config.Config) *Painter {
	cfg.Validate()
	return &Painter{cfg: cfg}
}

func (p *Painter) Background(c Canvas) {
	c.Fill(p.cfg.Background)
}

// Node draws the pattern of node i at progress s. The node is centred
// vertically and its slots run left to right.
func (p *Painter) Node(c Canvas, i int, s float64) {
	w, h := c.Width(), c.Height()
	paint := Paint{
		Color:       p.cfg.Palette[i%len(p.cfg.Palette)],
		StrokeWidth: math.Min(w, h) / p.cfg.StrokeFactor,
		Cap:         CapRound,
	}
	c.Save()
	c.Translate(0, h/2)
	p.lines(c, scale.Sinify(s), w, paint)
	c.Restore()
}

func (p *Painter) lines(c Canvas, sf, w float64, paint Paint) {
	for i := 0; i < p.cfg.Parts; i++ {
		p.slot(c, i, sf, w, paint)
	}
}

// slot draws the i-th group: one horizontal segment followed by segments
// turned a further -90 degrees each. Segment j only grows once segment j-1
// is complete.
func (p *Painter) slot(c Canvas, i int, sf, w float64, paint Paint) {
	gap := w / float64(len(p.cfg.Palette))
	sfi := scale.DivideScale(sf, i, p.cfg.Parts)
	c.Save()
	c.Translate(gap*float64(i), 0)
	for j := 0; j <= p.cfg.Lines; j++ {
		sfij := scale.DivideScale(sfi, j, p.cfg.Lines)
		c.Save()
		c.Translate(gap*float64(j), 0)
		c.Rotate(-90 * float64(j))
		c.DrawLine(0, 0, gap*sfij, 0, paint)
		c.Restore()
	}
	c.Restore()
}
