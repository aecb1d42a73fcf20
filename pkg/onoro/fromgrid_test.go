package onoro_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/onoro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func grid3x3(occupied map[[2]int32]onoro.TileState) []onoro.TileState {
	tiles := make([]onoro.TileState, 9)
	for pos, s := range occupied {
		tiles[pos[1]*3+pos[0]] = s
	}
	return tiles
}

func TestNewFromGridAcceptsConnectedCluster(t *testing.T) {
	tiles := grid3x3(map[[2]int32]onoro.TileState{
		{0, 0}: onoro.TileBlack,
		{1, 1}: onoro.TileWhite,
		{1, 0}: onoro.TileBlack,
	})
	b, err := onoro.NewFromGrid(4, 2, false, tiles)
	require.NoError(t, err)
	assert.Equal(t, 3, b.NPawnsInPlay())
}

func TestNewFromGridRejectsDisconnectedCluster(t *testing.T) {
	tiles := grid3x3(map[[2]int32]onoro.TileState{
		{0, 0}: onoro.TileBlack,
		{2, 0}: onoro.TileBlack,
		{2, 2}: onoro.TileWhite,
	})
	_, err := onoro.NewFromGrid(4, 2, false, tiles)
	assert.Error(t, err)
}

func TestNewFromGridRejectsTileCountNotMatchingTurn(t *testing.T) {
	tiles := grid3x3(map[[2]int32]onoro.TileState{
		{0, 0}: onoro.TileBlack,
		{1, 1}: onoro.TileWhite,
	})
	_, err := onoro.NewFromGrid(4, 2, false, tiles)
	assert.Error(t, err)
}

func TestNewFromGridRejectsConflictingTurnBit(t *testing.T) {
	tiles := grid3x3(map[[2]int32]onoro.TileState{
		{0, 0}: onoro.TileBlack,
		{1, 1}: onoro.TileWhite,
		{1, 0}: onoro.TileBlack,
	})
	// turn=2 implies blackTurn=false (black has placed 2 pawns and white
	// 1, so white moves next); asserting true should fail.
	_, err := onoro.NewFromGrid(4, 2, true, tiles)
	assert.Error(t, err)
}

func TestNewFromGridRejectsWrongColorCounts(t *testing.T) {
	tiles := grid3x3(map[[2]int32]onoro.TileState{
		{0, 0}: onoro.TileWhite,
		{1, 1}: onoro.TileWhite,
		{1, 0}: onoro.TileBlack,
	})
	_, err := onoro.NewFromGrid(4, 2, false, tiles)
	assert.Error(t, err)
}
