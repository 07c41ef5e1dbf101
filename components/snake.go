package components

import "github.com/lixenwraith/vi-snake/core"

// Snake is the controlled entity, segments ordered head first
type Snake struct {
	Segments []core.Point
	Heading  core.Direction
	Queue    *DirectionQueue
}

// NewSnake lays out length segments with the body trailing opposite to heading
func NewSnake(grid core.Grid, head core.Point, heading core.Direction, length, queueCapacity int) *Snake {
	segments := make([]core.Point, 0, length)
	p := head
	back := heading.Opposite()
	for i := 0; i < length; i++ {
		segments = append(segments, p)
		p = grid.Step(p, back)
	}
	return &Snake{
		Segments: segments,
		Heading:  heading,
		Queue:    NewDirectionQueue(queueCapacity),
	}
}

// Head returns the first segment
func (s *Snake) Head() core.Point {
	return s.Segments[0]
}

// Tail returns the last segment
func (s *Snake) Tail() core.Point {
	return s.Segments[len(s.Segments)-1]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.Segments)
}

// Occupies reports whether any segment covers p
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.Segments {
		if seg == p {
			return true
		}
	}
	return false
}

// Prepend pushes a new head
func (s *Snake) Prepend(head core.Point) {
	s.Segments = append(s.Segments, core.Point{})
	copy(s.Segments[1:], s.Segments)
	s.Segments[0] = head
}

// DropTail removes the last segment, a single-segment snake is left intact
func (s *Snake) DropTail() {
	if len(s.Segments) > 1 {
		s.Segments = s.Segments[:len(s.Segments)-1]
	}
}

// HeadCollides reports whether the head shares a cell with any later segment
func (s *Snake) HeadCollides() bool {
	head := s.Segments[0]
	for _, seg := range s.Segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Cells returns a copy of the segments
func (s *Snake) Cells() []core.Point {
	out := make([]core.Point, len(s.Segments))
	copy(out, s.Segments)
	return out
}
