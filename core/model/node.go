package model

import "github.com/ingyamilmolinar/birect/core/draw"

type Node struct {
	Index int
	State State
}

func (n *Node) Draw(c draw.Canvas, p *draw.Painter) {
	p.Node(c, n.Index, n.State.Scale)
}

func (n *Node) Update(step float64) UpdateResult { return n.State.Update(step) }

func (n *Node) StartUpdating() bool { return n.State.StartUpdating() }

// Chain holds the nodes in index order. Node 0 exists from the start; node
// i+1 is created the first time it is asked for as a neighbor.
type Chain struct {
	size  int
	nodes []*Node
}

func NewChain(size int) *Chain {
	if size <= 0 {
		panic("model: chain needs at least one node")
	}
	return &Chain{size: size, nodes: []*Node{{Index: 0}}}
}

// Created returns how many nodes exist so far.
func (c *Chain) Created() int { return len(c.nodes) }

func (c *Chain) Node(i int) *Node { return c.nodes[i] }

// Neighbor returns the index next to i in direction dir (+1 or -1). It
// returns i and false at either end of the chain.
func (c *Chain) Neighbor(i, dir int) (int, bool) {
	switch {
	case dir == 1 && i < c.size-1:
		if i+1 == len(c.nodes) {
			c.nodes = append(c.nodes, &Node{Index: i + 1})
		}
		return i + 1, true
	case dir == -1 && i > 0:
		return i - 1, true
	}
	return i, false
}
