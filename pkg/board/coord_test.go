package board_test

import (
	"testing"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	assert.True(t, board.Size{Height: 19, Width: 19}.IsValid())
	assert.True(t, board.Size{Height: 1, Width: 1}.IsValid())
	assert.False(t, board.Size{Height: 20, Width: 19}.IsValid())
	assert.False(t, board.Size{Height: 0, Width: 9}.IsValid())

	assert.Equal(t, 361, board.Size{Height: 19, Width: 19}.NumCells())
	assert.Equal(t, "19x19", board.Size{Height: 19, Width: 19}.String())
}

func TestLinear(t *testing.T) {
	size := board.Size{Height: 9, Width: 9}

	tests := []struct {
		coord  board.Coord
		linear int
	}{
		{board.Coord{Row: 0, Col: 0}, 0},
		{board.Coord{Row: 0, Col: 8}, 8},
		{board.Coord{Row: 1, Col: 0}, 9},
		{board.Coord{Row: 8, Col: 8}, 80},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.linear, size.Linear(tt.coord))
		assert.Equal(t, tt.coord, size.FromLinear(tt.linear))
	}
}

func TestNeighbors(t *testing.T) {
	size := board.Size{Height: 9, Width: 9}

	t.Run("corner", func(t *testing.T) {
		assert.Len(t, size.Neighbors(board.Coord{Row: 0, Col: 0}), 2)
	})
	t.Run("edge", func(t *testing.T) {
		assert.Len(t, size.Neighbors(board.Coord{Row: 0, Col: 4}), 3)
	})
	t.Run("interior", func(t *testing.T) {
		assert.Len(t, size.Neighbors(board.Coord{Row: 4, Col: 4}), 4)
	})
}

func TestCorners(t *testing.T) {
	size := board.Size{Height: 9, Width: 9}

	corners := size.Corners(board.Coord{Row: 0, Col: 0})
	onBoard := 0
	for _, c := range corners {
		if c.OnBoard {
			onBoard++
		}
	}
	assert.Equal(t, 1, onBoard)

	corners = size.Corners(board.Coord{Row: 4, Col: 4})
	for _, c := range corners {
		assert.True(t, c.OnBoard)
	}
}
