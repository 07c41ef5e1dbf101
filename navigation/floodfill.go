package navigation

import "github.com/lixenwraith/vi-snake/core"

// FloodFill counts the free cells reachable from start on the torus, start included
// Returns 0 when start itself is blocked
func FloodFill(obstacles *Obstacles, start core.Point) int {
	grid := obstacles.Grid()
	if !grid.Contains(start) || obstacles.Blocked(start) {
		return 0
	}

	visited := make([]bool, grid.Cells())
	visited[grid.Index(start)] = true
	queue := make([]core.Point, 0, grid.Cells())
	queue = append(queue, start)

	count := 0
	for head := 0; head < len(queue); head++ {
		count++
		for _, next := range grid.Neighbors(queue[head]) {
			idx := grid.Index(next)
			if visited[idx] || obstacles.Blocked(next) {
				continue
			}
			visited[idx] = true
			queue = append(queue, next)
		}
	}
	return count
}
