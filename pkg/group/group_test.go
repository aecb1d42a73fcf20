package group_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/group"
	"github.com/stretchr/testify/assert"
)

func TestD6OrdinalRoundTrips(t *testing.T) {
	for ord := 0; ord < 12; ord++ {
		e := group.D6FromOrdinal(ord)
		assert.Equal(t, ord, e.Ordinal())
	}
}

func TestD6MulIdentity(t *testing.T) {
	id := group.D6{Action: group.Rot, Degree: 0}
	for ord := 0; ord < 12; ord++ {
		e := group.D6FromOrdinal(ord)
		assert.Equal(t, e, id.Mul(e))
		assert.Equal(t, e, e.Mul(id))
	}
}

func TestD6MulInverse(t *testing.T) {
	id := group.D6{Action: group.Rot, Degree: 0}
	for ord := 0; ord < 12; ord++ {
		e := group.D6FromOrdinal(ord)
		assert.Equal(t, id, e.Mul(e.Inverse()))
	}
}

func TestD3MulInverse(t *testing.T) {
	id := group.D3{Action: group.Rot, Degree: 0}
	for ord := 0; ord < 6; ord++ {
		e := group.D3FromOrdinal(ord)
		assert.Equal(t, id, e.Mul(e.Inverse()))
	}
}

func TestC2SelfInverse(t *testing.T) {
	a := group.C2{Bit: 1}
	assert.Equal(t, group.C2{Bit: 0}, a.Mul(a))
}

func TestK4Commutes(t *testing.T) {
	a := group.K4{A: group.C2{Bit: 1}, B: group.C2{Bit: 0}}
	b := group.K4{A: group.C2{Bit: 0}, B: group.C2{Bit: 1}}
	assert.Equal(t, a.Mul(b), b.Mul(a))
}

func TestK4OrdinalRoundTrips(t *testing.T) {
	for ord := 0; ord < 4; ord++ {
		e := group.K4FromOrdinal(ord)
		assert.Equal(t, ord, e.Ordinal())
	}
}

func TestK4AllNonIdentitySelfInverse(t *testing.T) {
	id := group.K4{}
	for ord := 1; ord < 4; ord++ {
		e := group.K4FromOrdinal(ord)
		assert.Equal(t, id, e.Mul(e))
	}
}
