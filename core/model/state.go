package model

import "math"

// UpdateResult reports whether an update finished an excursion.
type UpdateResult struct {
	Boundary   bool
	Checkpoint float64
}

// Continue is returned while an excursion is still in progress.
var Continue = UpdateResult{}

// State is the progress of one node. Scale travels one unit away from
// Checkpoint per activation; Dir is 0 while the node rests.
type State struct {
	Scale      float64
	Dir        float64
	Checkpoint float64
}

// Update advances Scale by step in the current direction. Once the excursion
// passes one unit, Scale snaps to the far end which becomes the new
// checkpoint.
func (s *State) Update(step float64) UpdateResult {
	s.Scale += step * s.Dir
	if math.Abs(s.Scale-s.Checkpoint) > 1 {
		s.Scale = s.Checkpoint + s.Dir
		s.Dir = 0
		s.Checkpoint = s.Scale
		return UpdateResult{Boundary: true, Checkpoint: s.Checkpoint}
	}
	return Continue
}

// StartUpdating sets the direction away from the current checkpoint. It
// reports false if the node is already moving.
func (s *State) StartUpdating() bool {
	if s.Dir != 0 {
		return false
	}
	s.Dir = 1 - 2*s.Checkpoint
	return true
}

// Resting reports whether the state is waiting for a trigger.
func (s State) Resting() bool { return s.Dir == 0 }
