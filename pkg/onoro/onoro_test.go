package onoro_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/onoro"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStartingPositionHasThreePawns(t *testing.T) {
	b := onoro.New(8)
	assert.Equal(t, 3, b.NPawnsInPlay())
	assert.False(t, b.InPhase2())
	assert.False(t, b.IsFinished())

	count := 0
	b.ForEachPawn(func(onoro.Tile) bool {
		count++
		return true
	})
	assert.Equal(t, 3, count)
}

func TestNewPanicsOutsideCapacityRange(t *testing.T) {
	assert.Panics(t, func() { onoro.New(2) })
	assert.Panics(t, func() { onoro.New(17) })
}

func TestForEachMoveOnlyVisitsEmptyNeighborsOfPawns(t *testing.T) {
	b := onoro.New(8)

	var moves []onoro.Tile
	b.ForEachMove(func(t onoro.Tile) bool {
		moves = append(moves, t)
		return true
	})
	require.NotEmpty(t, moves)

	for _, m := range moves {
		assert.Equal(t, onoro.TileEmpty, b.GetTile(m))

		hasPawnNeighbor := false
		b.ForEachNeighbor(m, func(nb onoro.Tile) bool {
			if b.GetTile(nb) != onoro.TileEmpty {
				hasPawnNeighbor = true
			}
			return true
		})
		assert.True(t, hasPawnNeighbor, "move %v has no occupied neighbor", m)
	}
}

func TestApplyPhase1AdvancesTurnAndPlacesPawn(t *testing.T) {
	b := onoro.New(8)

	var move onoro.Tile
	b.ForEachMove(func(t onoro.Tile) bool {
		move = t
		return false
	})

	next := b.ApplyPhase1(move)
	assert.Equal(t, b.NPawnsInPlay()+1, next.NPawnsInPlay())
	assert.Equal(t, !b.BlackToMove(), next.BlackToMove())
}

func TestApplyPhase1UntilPhase2Reached(t *testing.T) {
	b := onoro.New(4)
	for !b.InPhase2() {
		var move onoro.Tile
		found := false
		b.ForEachMove(func(t onoro.Tile) bool {
			move = t
			found = true
			return false
		})
		require.True(t, found, "no phase-1 move available before phase 2")
		b = b.ApplyPhase1(move)
	}
	assert.Equal(t, 4, b.NPawnsInPlay())
}

func TestForEachMoveP2PreservesPawnCount(t *testing.T) {
	b := onoro.New(4)
	for !b.InPhase2() {
		var move onoro.Tile
		b.ForEachMove(func(t onoro.Tile) bool {
			move = t
			return false
		})
		b = b.ApplyPhase1(move)
	}

	b.ForEachMoveP2(func(to, from onoro.Tile) bool {
		next := b.ApplyPhase2(to, from)
		assert.Equal(t, b.NPawnsInPlay(), next.NPawnsInPlay())
		assert.Equal(t, onoro.TileEmpty, next.GetTile(from))
		assert.NotEqual(t, onoro.TileEmpty, next.GetTile(to))
		return false
	})
}

func TestOriginTileFloorsTowardNegativeInfinity(t *testing.T) {
	b := onoro.New(8)
	origin := b.OriginTile()
	// Sum of mass divided by 3 pawns should floor, not truncate.
	sum := b.SumOfMass()
	assert.LessOrEqual(t, origin.X*3, sum.X)
	assert.LessOrEqual(t, origin.Y*3, sum.Y)
}
