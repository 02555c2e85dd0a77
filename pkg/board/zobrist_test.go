package board_test

import (
	"testing"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/stretchr/testify/assert"
)

func TestZobristTable(t *testing.T) {
	a := board.NewZobristTable(1)
	b := board.NewZobristTable(1)
	c := board.NewZobristTable(2)

	assert.Equal(t, a.Index(0, board.Black), b.Index(0, board.Black))
	assert.NotEqual(t, a.Index(0, board.Black), c.Index(0, board.Black))
	assert.NotEqual(t, a.Index(0, board.Black), a.Index(0, board.White))
	assert.NotEqual(t, a.Index(0, board.Black), a.Index(1, board.Black))
}
