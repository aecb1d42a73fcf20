package unionfind_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/unionfind"
	"github.com/stretchr/testify/assert"
)

func TestNewAllSingletons(t *testing.T) {
	u := unionfind.New(5)
	assert.Equal(t, 5, u.Groups())
	for i := uint32(0); i < 5; i++ {
		assert.Equal(t, i, u.Find(i))
	}
}

func TestUnionMergesGroups(t *testing.T) {
	u := unionfind.New(4)
	u.Union(0, 1)
	assert.Equal(t, 3, u.Groups())
	assert.Equal(t, u.Find(0), u.Find(1))
}

func TestUnionIsIdempotent(t *testing.T) {
	u := unionfind.New(4)
	u.Union(0, 1)
	u.Union(1, 0)
	assert.Equal(t, 3, u.Groups())
}

func TestUnionChain(t *testing.T) {
	u := unionfind.New(6)
	u.Union(0, 1)
	u.Union(1, 2)
	u.Union(4, 5)
	assert.Equal(t, 3, u.Groups())
	assert.Equal(t, u.Find(0), u.Find(2))
	assert.NotEqual(t, u.Find(0), u.Find(4))
}
