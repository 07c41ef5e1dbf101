package navigation

import "github.com/lixenwraith/vi-snake/core"

const noParent = -1

type pathNode struct {
	pos    core.Point
	g      int
	parent int
}

// FindPath runs A* on the torus from start to goal around obstacles
// Returns the cells from the first step through goal, nil when unreachable or start == goal
// Neighbors expand in core.SearchDirections order and equal-f nodes pop in discovery order, so the
// result is fully deterministic. The goal cell is never treated as blocked
func FindPath(obstacles *Obstacles, start, goal core.Point) []core.Point {
	grid := obstacles.Grid()
	if start == goal || !grid.Contains(start) || !grid.Contains(goal) {
		return nil
	}

	cells := grid.Cells()
	closed := make([]bool, cells)
	// Lowest f among pushed entries per cell, 0 means none pushed
	openF := make([]int, cells)

	nodes := make([]pathNode, 0, cells)
	open := make(minHeap, 0, cells)
	seq := 0

	push := func(p core.Point, g, parent int) {
		f := g + grid.Distance(p, goal)
		nodes = append(nodes, pathNode{pos: p, g: g, parent: parent})
		open.push(heapEntry{node: len(nodes) - 1, f: f, seq: seq})
		openF[grid.Index(p)] = f + 1
		seq++
	}

	push(start, 0, noParent)

	for len(open) > 0 {
		entry := open.pop()
		cur := nodes[entry.node]
		curIdx := grid.Index(cur.pos)
		if closed[curIdx] {
			continue
		}

		if cur.pos == goal {
			return reconstruct(nodes, entry.node)
		}
		closed[curIdx] = true

		for _, next := range grid.NeighborsIn(cur.pos, core.SearchDirections) {
			idx := grid.Index(next)
			if closed[idx] {
				continue
			}
			if next != goal && obstacles.Blocked(next) {
				continue
			}

			g := cur.g + 1
			f := g + grid.Distance(next, goal)
			if best := openF[idx]; best != 0 && best-1 <= f {
				continue
			}
			push(next, g, entry.node)
		}
	}

	return nil
}

func reconstruct(nodes []pathNode, last int) []core.Point {
	n := 0
	for i := last; nodes[i].parent != noParent; i = nodes[i].parent {
		n++
	}

	path := make([]core.Point, n)
	for i := last; nodes[i].parent != noParent; i = nodes[i].parent {
		n--
		path[n] = nodes[i].pos
	}
	return path
}
