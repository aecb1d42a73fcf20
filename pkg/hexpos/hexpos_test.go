package hexpos_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/hexpos"
	"github.com/stretchr/testify/assert"
)

func TestCR1SixTimesIsIdentity(t *testing.T) {
	tests := []hexpos.HexPos{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 3, Y: -2},
		{X: -4, Y: 5},
	}
	for _, p := range tests {
		got := p
		for i := 0; i < 6; i++ {
			got = got.CR1()
		}
		assert.Equal(t, p, got, "CR1^6 should be identity for %v", p)
	}
}

func TestVR2ThreeTimesIsIdentity(t *testing.T) {
	p := hexpos.HexPos{X: 2, Y: -1}
	got := p
	for i := 0; i < 3; i++ {
		got = got.VR2()
	}
	assert.Equal(t, p, got)
}

func TestER3TwiceIsIdentity(t *testing.T) {
	p := hexpos.HexPos{X: 5, Y: -3}
	assert.Equal(t, p, p.ER3().ER3())
}

func TestCS0IsInvolution(t *testing.T) {
	p := hexpos.HexPos{X: 4, Y: 1}
	assert.Equal(t, p, p.CS0().CS0())
}

func TestSectorOrigin(t *testing.T) {
	assert.Equal(t, uint32(0), hexpos.Origin().Sector())
}

func TestSectorPartitionsPlane(t *testing.T) {
	seen := map[uint32]bool{}
	for x := int32(-5); x <= 5; x++ {
		for y := int32(-5); y <= 5; y++ {
			p := hexpos.HexPos{X: x, Y: y}
			seen[p.Sector()] = true
		}
	}
	for s := uint32(0); s <= 6; s++ {
		assert.True(t, seen[s], "sector %v never observed", s)
	}
}

func TestAddSubInverse(t *testing.T) {
	p := hexpos.HexPos{X: 3, Y: -7}
	q := hexpos.HexPos{X: -2, Y: 5}
	assert.Equal(t, p, p.Add(q).Sub(q))
}
