package core

import "fmt"

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Unset marks an absent position (food not placed, special food inactive)
var Unset = Point{X: -1, Y: -1}

// IsUnset reports whether p is the absent-position sentinel
func (p Point) IsUnset() bool {
	return p == Unset
}

// Add returns p translated by d without wrapping
func (p Point) Add(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}
