package board

import "fmt"

// Stone is a (coord, color) pair, color never Empty.
type Stone struct {
	Coord Coord
	Color Color
}

func (s Stone) String() string {
	return fmt.Sprintf("%v@%v", s.Color, s.Coord)
}

// Point is a (coord, optional color) pair, as returned by GetPoint.
type Point struct {
	Coord Coord
	Color Color
	Empty bool
}

func (p Point) String() string {
	if p.Empty {
		return fmt.Sprintf("_@%v", p.Coord)
	}
	return fmt.Sprintf("%v@%v", p.Color, p.Coord)
}

// CellColor is an optional stone color suitable for flat array serialization
// (FromArray/ToVec/Matrix): CellEmpty, CellBlack, or CellWhite.
type CellColor int8

const (
	CellEmpty CellColor = -1
	CellBlack CellColor = CellColor(Black)
	CellWhite CellColor = CellColor(White)
)

func (c CellColor) String() string {
	switch c {
	case CellEmpty:
		return "_"
	case CellBlack:
		return "B"
	case CellWhite:
		return "W"
	default:
		return "?"
	}
}
