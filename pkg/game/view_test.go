package game_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/game"
	"github.com/onoro-engine/onoro/pkg/onoro"
	"github.com/onoro-engine/onoro/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func TestHashIsDeterministic(t *testing.T) {
	tables := zobrist.NewTables(7, 8)
	b := onoro.New(8)

	v1 := game.NewView(b, tables)
	v2 := game.NewView(b, tables)

	assert.Equal(t, v1.Hash(), v2.Hash())
}

func TestHashIsMemoized(t *testing.T) {
	tables := zobrist.NewTables(7, 8)
	b := onoro.New(8)
	v := game.NewView(b, tables)

	h1 := v.Hash()
	h2 := v.Hash()
	assert.Equal(t, h1, h2)
}

func TestDifferentBoardsLikelyHashDifferently(t *testing.T) {
	tables := zobrist.NewTables(7, 8)
	b := onoro.New(8)

	var move onoro.Tile
	b.ForEachMove(func(t onoro.Tile) bool {
		move = t
		return false
	})
	next := b.ApplyPhase1(move)

	v1 := game.NewView(b, tables)
	v2 := game.NewView(next, tables)
	assert.NotEqual(t, v1.Hash(), v2.Hash())
}
