package tt_test

import (
	"context"
	"testing"

	"github.com/onoro-engine/onoro/pkg/game"
	"github.com/onoro-engine/onoro/pkg/onoro"
	"github.com/onoro-engine/onoro/pkg/tt"
	"github.com/onoro-engine/onoro/pkg/zobrist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFind(t *testing.T) {
	table := tt.New(context.Background(), 1<<20)
	tables := zobrist.NewTables(3, 8)

	b := onoro.New(8)
	v := game.NewView(b, tables)

	_, ok := table.Find(v).V()
	assert.False(t, ok)

	table.InsertOrAssign(v, tt.Score{Depth: 4, Value: 17})

	got, ok := table.Find(v).V()
	require.True(t, ok)
	assert.Equal(t, int32(17), got.Value)
}

func TestClearEmptiesTable(t *testing.T) {
	table := tt.New(context.Background(), 1<<20)
	tables := zobrist.NewTables(3, 8)
	b := onoro.New(8)
	v := game.NewView(b, tables)

	table.InsertOrAssign(v, tt.Score{Value: 1})
	table.Clear()

	_, ok := table.Find(v).V()
	assert.False(t, ok)
}

func TestEqualSameBoardIsEqual(t *testing.T) {
	b := onoro.New(8)
	assert.True(t, tt.Equal(b, b))
}

func TestEqualDifferentPawnCountsAreNotEqual(t *testing.T) {
	a := onoro.New(8)
	b := onoro.New(10)
	assert.False(t, tt.Equal(a, b))
}
