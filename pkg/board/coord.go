package board

import "fmt"

// MaxBoardLength is the largest supported board dimension (19x19 Go board).
const MaxBoardLength = 19

// MaxCells is the maximum number of intersections on a board: 19*19.
const MaxCells = MaxBoardLength * MaxBoardLength

// Size represents the (height, width) dimensions of a goban. Both dimensions must be
// in [1;19].
type Size struct {
	Height, Width int
}

// IsValid returns true iff both dimensions are in range.
func (s Size) IsValid() bool {
	return s.Height >= 1 && s.Height <= MaxBoardLength && s.Width >= 1 && s.Width <= MaxBoardLength
}

// NumCells returns the total number of intersections.
func (s Size) NumCells() int {
	return s.Height * s.Width
}

func (s Size) String() string {
	return fmt.Sprintf("%vx%v", s.Height, s.Width)
}

// Coord represents a board intersection, (row, col), 0-indexed. (0,0) is the top-left.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%v,%v)", c.Row, c.Col)
}

// Linear returns the row-major linear index of the coordinate: row*width+col.
func (s Size) Linear(c Coord) int {
	return c.Row*s.Width + c.Col
}

// FromLinear returns the coordinate for a row-major linear index.
func (s Size) FromLinear(i int) Coord {
	return Coord{Row: i / s.Width, Col: i % s.Width}
}

// InBounds returns true iff the coordinate lies within the board.
func (s Size) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < s.Height && c.Col >= 0 && c.Col < s.Width
}

// orthogonalOffsets are the four orthogonal neighbor deltas: North, South, West, East.
var orthogonalOffsets = [4]Coord{
	{Row: -1, Col: 0},
	{Row: 1, Col: 0},
	{Row: 0, Col: -1},
	{Row: 0, Col: 1},
}

// diagonalOffsets are the four diagonal corner deltas: NW, NE, SW, SE.
var diagonalOffsets = [4]Coord{
	{Row: -1, Col: -1},
	{Row: -1, Col: 1},
	{Row: 1, Col: -1},
	{Row: 1, Col: 1},
}

// Neighbors returns the in-bounds orthogonal neighbors of coord. At most 4: interior
// points have 4, edges 3, corners 2.
func (s Size) Neighbors(c Coord) []Coord {
	ret := make([]Coord, 0, 4)
	for _, d := range orthogonalOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		if s.InBounds(n) {
			ret = append(ret, n)
		}
	}
	return ret
}

// NeighborIndexes is like Neighbors, but returns linear indexes directly.
func (s Size) NeighborIndexes(c Coord) []int {
	neighbors := s.Neighbors(c)
	ret := make([]int, len(neighbors))
	for i, n := range neighbors {
		ret[i] = s.Linear(n)
	}
	return ret
}

// Corner represents one diagonal corner of a point, along with whether it is on the board.
type Corner struct {
	Coord   Coord
	OnBoard bool
}

// Corners returns all four diagonal corners of coord, each tagged with whether it lies
// on the board. Off-board corners count towards the eye-shape heuristic's "surrounded"
// tally, the same way an edge or corner point needs fewer controlled diagonals to count
// as an eye.
func (s Size) Corners(c Coord) [4]Corner {
	var ret [4]Corner
	for i, d := range diagonalOffsets {
		n := Coord{Row: c.Row + d.Row, Col: c.Col + d.Col}
		ret[i] = Corner{Coord: n, OnBoard: s.InBounds(n)}
	}
	return ret
}
