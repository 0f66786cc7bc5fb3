package model

import (
	"github.com/ingyamilmolinar/birect/core/draw"
	game_log "github.com/ingyamilmolinar/birect/internal/log"
)

// Sequence tracks the single active node and walks the chain back and forth,
// bouncing at both ends.
type Sequence struct {
	chain  *Chain
	cur    int
	dir    int
	step   float64
	logger *game_log.Logger
}

func NewSequence(size int, step float64, logger *game_log.Logger) *Sequence {
	return &Sequence{
		chain:  NewChain(size),
		dir:    1,
		step:   step,
		logger: logger.Tagged("SEQ"),
	}
}

func (s *Sequence) Current() *Node { return s.chain.Node(s.cur) }

func (s *Sequence) Direction() int { return s.dir }

func (s *Sequence) Chain() *Chain { return s.chain }

func (s *Sequence) Draw(c draw.Canvas, p *draw.Painter) {
	s.Current().Draw(c, p)
}

// Update advances the current node. When the node finishes its excursion the
// sequence moves on to the neighbor, or turns around at a chain end.
func (s *Sequence) Update() UpdateResult {
	res := s.Current().Update(s.step)
	if !res.Boundary {
		return res
	}
	next, ok := s.chain.Neighbor(s.cur, s.dir)
	if !ok {
		s.dir *= -1
		s.logger.Debugf("Node %d reached chain end, direction now %d", s.cur, s.dir)
	} else {
		s.logger.Debugf("Node %d done at %v, moving to %d", s.cur, res.Checkpoint, next)
	}
	s.cur = next
	return res
}

func (s *Sequence) StartUpdating() bool {
	return s.Current().StartUpdating()
}
