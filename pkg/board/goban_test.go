package board_test

import (
	"testing"

	"github.com/herohde/gogoban/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGoban5x5() *board.Goban {
	return board.NewGoban(board.Size{Height: 5, Width: 5})
}

func TestPlaceRemoveSymmetry(t *testing.T) {
	g := newGoban5x5()
	_, added := g.PlaceWithFeedback(board.Coord{Row: 2, Col: 2}, board.Black)
	assert.NotZero(t, g.ZobristHash())

	g.RemoveChain(added)
	assert.Equal(t, board.ZobristHash(0), g.ZobristHash())
	for _, c := range g.GetEmptyCoords() {
		_ = c
	}
	assert.Len(t, g.GetStones(), 0)
}

func TestFromArrayToVecRoundTrip(t *testing.T) {
	g := newGoban5x5()
	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 1}, board.White)

	g2 := board.FromArray(g.ToVec())
	assert.Equal(t, g.ZobristHash(), g2.ZobristHash())
	assert.Equal(t, g.GetStones(), g2.GetStones())
}

func TestCloneIndependence(t *testing.T) {
	g := newGoban5x5()
	g.Push(board.Coord{Row: 0, Col: 0}, board.Black)

	clone := g.Clone()
	clone.Push(board.Coord{Row: 1, Col: 1}, board.White)

	assert.NotEqual(t, g.ZobristHash(), clone.ZobristHash())
	assert.Len(t, g.GetStones(), 1)
	assert.Len(t, clone.GetStones(), 2)
}

// Scenario 1: single capture, ko point set.
func TestSingleCaptureSetsKoPoint(t *testing.T) {
	g := newGoban5x5()
	size := g.Size()

	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	_, whiteID := g.PlaceWithFeedback(board.Coord{Row: 1, Col: 1}, board.White)
	assert.Equal(t, 3, g.Chain(whiteID).NumberOfLiberties())

	dead, _ := g.PlaceWithFeedback(board.Coord{Row: 1, Col: 2}, board.Black)
	assert.Empty(t, dead)
	assert.Equal(t, 2, g.Chain(whiteID).NumberOfLiberties())

	dead, _ = g.PlaceWithFeedback(board.Coord{Row: 2, Col: 1}, board.Black)
	assert.Empty(t, dead)
	assert.Equal(t, 1, g.Chain(whiteID).NumberOfLiberties())

	dead, added := g.PlaceWithFeedback(board.Coord{Row: 1, Col: 0}, board.Black)
	require.Len(t, dead, 1)
	assert.Equal(t, 1, g.Chain(dead[0]).NumStones)

	prisoners, koPoint, hasKo := g.RemoveCaptured(board.Black, false, board.Prisoners{}, dead, added)
	assert.Equal(t, board.Prisoners{Black: 1}, prisoners)
	require.True(t, hasKo)
	assert.Equal(t, size.Linear(board.Coord{Row: 1, Col: 1}), koPoint)
}

// Scenario 2: multi-stone capture clears ko.
func TestMultiStoneCaptureClearsKo(t *testing.T) {
	g := newGoban5x5()

	g.Push(board.Coord{Row: 1, Col: 1}, board.White)
	g.Push(board.Coord{Row: 1, Col: 2}, board.White)

	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 0, Col: 2}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 0}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 3}, board.Black)
	g.Push(board.Coord{Row: 2, Col: 1}, board.Black)

	dead, added := g.PlaceWithFeedback(board.Coord{Row: 2, Col: 2}, board.Black)
	require.Len(t, dead, 1)
	assert.Equal(t, 2, g.Chain(dead[0]).NumStones)

	_, _, hasKo := g.RemoveCaptured(board.Black, false, board.Prisoners{}, dead, added)
	assert.False(t, hasKo)
}

// Scenario 3: multi-chain capture.
func TestMultiChainCapture(t *testing.T) {
	g := newGoban5x5()

	g.Push(board.Coord{Row: 1, Col: 1}, board.White)
	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 0}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 2}, board.Black)

	g.Push(board.Coord{Row: 3, Col: 1}, board.White)
	g.Push(board.Coord{Row: 4, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 3, Col: 0}, board.Black)
	g.Push(board.Coord{Row: 3, Col: 2}, board.Black)

	dead, added := g.PlaceWithFeedback(board.Coord{Row: 2, Col: 1}, board.Black)
	require.Len(t, dead, 2)

	_, _, hasKo := g.RemoveCaptured(board.Black, false, board.Prisoners{}, dead, added)
	assert.False(t, hasKo)
}

// Scenario 4: merge of three chains.
func TestMergeOfThreeChains(t *testing.T) {
	g := newGoban5x5()
	size := g.Size()

	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 0}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 2}, board.Black)

	_, added := g.PlaceWithFeedback(board.Coord{Row: 1, Col: 1}, board.Black)

	chain := g.Chain(added)
	assert.Equal(t, 4, chain.NumStones)
	assert.Equal(t, size.Linear(board.Coord{Row: 0, Col: 1}), chain.Origin)
	assert.Equal(t, 6, chain.NumberOfLiberties())
}

// Scenario 6: suicide forbidden unless opted in.
func TestSuicideOnlyWhenAllowed(t *testing.T) {
	g := newGoban5x5()

	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 0}, board.Black)

	stone := board.Stone{Coord: board.Coord{Row: 0, Col: 0}, Color: board.White}
	assert.True(t, board.Suicide(g, stone))

	dead, added := g.PlaceWithFeedback(stone.Coord, stone.Color)
	assert.Empty(t, dead)

	prisoners, _, hasKo := g.RemoveCaptured(board.White, true, board.Prisoners{}, dead, added)
	assert.False(t, hasKo)
	assert.Equal(t, board.Prisoners{Black: 1}, prisoners)
	assert.Len(t, g.GetStones(), 2)
}

func TestChainStonesTraversal(t *testing.T) {
	g := newGoban5x5()
	g.Push(board.Coord{Row: 0, Col: 0}, board.Black)
	g.Push(board.Coord{Row: 0, Col: 1}, board.Black)
	g.Push(board.Coord{Row: 1, Col: 0}, board.Black)

	id, ok := g.GetChainByPoint(board.Coord{Row: 0, Col: 0})
	require.True(t, ok)
	assert.Len(t, g.ChainStones(id), 3)
}
