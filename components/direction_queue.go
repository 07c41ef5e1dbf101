package components

import "github.com/lixenwraith/vi-snake/core"

// DirectionQueue holds pending heading changes in arrival order
// Resolution applies at most one entry per tick and never a reversal of the current heading
type DirectionQueue struct {
	pending  []core.Direction
	capacity int
}

// NewDirectionQueue creates an empty queue, capacity <= 0 means unbounded
func NewDirectionQueue(capacity int) *DirectionQueue {
	q := &DirectionQueue{capacity: capacity}
	if capacity > 0 {
		q.pending = make([]core.Direction, 0, capacity)
	}
	return q
}

// Enqueue appends d unless it repeats the last queued entry or the queue is full
// Returns false when the direction was dropped
func (q *DirectionQueue) Enqueue(d core.Direction) bool {
	if d == core.DirNone {
		return false
	}
	if last, ok := q.Last(); ok && last == d {
		return false
	}
	if q.capacity > 0 && len(q.pending) >= q.capacity {
		return false
	}
	q.pending = append(q.pending, d)
	return true
}

// Resolve pops at most one entry and returns the heading in effect for this tick
// A popped reversal is discarded and current is kept
func (q *DirectionQueue) Resolve(current core.Direction) core.Direction {
	if len(q.pending) == 0 {
		return current
	}

	next := q.pop()
	if !next.IsReverseOf(current) {
		current = next
	}

	// The following entry can never be legal right after this turn, drop it now
	if len(q.pending) > 0 && q.pending[0].IsReverseOf(current) {
		q.pop()
	}

	return current
}

func (q *DirectionQueue) pop() core.Direction {
	d := q.pending[0]
	copy(q.pending, q.pending[1:])
	q.pending = q.pending[:len(q.pending)-1]
	return d
}

// Last returns the most recently queued direction
func (q *DirectionQueue) Last() (core.Direction, bool) {
	if len(q.pending) == 0 {
		return core.DirNone, false
	}
	return q.pending[len(q.pending)-1], true
}

// Clear drops every pending entry
func (q *DirectionQueue) Clear() {
	q.pending = q.pending[:0]
}

// Len returns the number of pending entries
func (q *DirectionQueue) Len() int {
	return len(q.pending)
}

// Pending returns a copy of the queued directions, head of queue first
func (q *DirectionQueue) Pending() []core.Direction {
	out := make([]core.Direction, len(q.pending))
	copy(out, q.pending)
	return out
}
