package core

// Direction is one of the four unit headings, or DirNone
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Directions lists the movable headings in tie-break order
var Directions = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// SearchDirections is the clockwise expansion order used by path search and the survival
// fallback, equal-cost choices resolve in this order
var SearchDirections = [4]Direction{DirUp, DirRight, DirDown, DirLeft}

// Delta returns the (dx, dy) unit offset, Up decreases Y
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading, DirNone stays DirNone
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// IsReverseOf reports whether d is the exact negation of other
func (d Direction) IsReverseOf(other Direction) bool {
	return d != DirNone && d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "None"
	}
}

// DirectionFromDelta maps a unit offset back to a heading, DirNone if not a unit step
func DirectionFromDelta(dx, dy int) Direction {
	switch {
	case dx == 0 && dy == -1:
		return DirUp
	case dx == 0 && dy == 1:
		return DirDown
	case dx == -1 && dy == 0:
		return DirLeft
	case dx == 1 && dy == 0:
		return DirRight
	default:
		return DirNone
	}
}
