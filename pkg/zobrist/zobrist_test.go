package zobrist_test

import (
	"testing"

	"github.com/onoro-engine/onoro/pkg/group"
	"github.com/onoro-engine/onoro/pkg/hexpos"
	"github.com/onoro-engine/onoro/pkg/zobrist"
	"github.com/stretchr/testify/assert"
)

func TestNewTablesDeterministicForSameSeed(t *testing.T) {
	a := zobrist.NewTables(42, 8)
	b := zobrist.NewTables(42, 8)
	assert.Equal(t, a.Lane(zobrist.ClassTrivial, 0, hexpos.HexPos{}), b.Lane(zobrist.ClassTrivial, 0, hexpos.HexPos{}))
	assert.Equal(t, a.Lane(zobrist.ClassTrivial, 1, hexpos.HexPos{X: 3, Y: -2}), b.Lane(zobrist.ClassTrivial, 1, hexpos.HexPos{X: 3, Y: -2}))
}

func TestNewTablesDiffersAcrossSeeds(t *testing.T) {
	a := zobrist.NewTables(1, 8)
	b := zobrist.NewTables(2, 8)
	assert.NotEqual(t, a.Lane(zobrist.ClassTrivial, 0, hexpos.HexPos{}), b.Lane(zobrist.ClassTrivial, 0, hexpos.HexPos{}))
}

func TestApplyD6SixRotationsIsIdentity(t *testing.T) {
	var h uint64 = 0x0123456789abcdef
	got := h
	for i := 0; i < 6; i++ {
		got = zobrist.ApplyD6(group.D6{Action: group.Rot, Degree: 1}, got)
	}
	assert.Equal(t, h&0x0fffffffffffffff, got)
}

func TestApplyD3ThreeRotationsIsIdentity(t *testing.T) {
	var h uint64 = 0x0123456789abcdef
	got := h
	for i := 0; i < 3; i++ {
		got = zobrist.ApplyD3(group.D3{Action: group.Rot, Degree: 1}, got)
	}
	assert.Equal(t, h&0x7fffffffffffffff, got)
}

func TestApplyColorSwapIsInvolution(t *testing.T) {
	var h uint64 = 0xdeadbeefcafef00d
	assert.Equal(t, h, zobrist.ApplyColorSwap(zobrist.ApplyColorSwap(h)))
}

func TestApplyK4AIsInvolution(t *testing.T) {
	var h uint64 = 0x1122334455667788
	assert.Equal(t, h, zobrist.ApplyK4(group.K4{A: group.C2{Bit: 1}}, zobrist.ApplyK4(group.K4{A: group.C2{Bit: 1}}, h)))
}

// TestD6TableInvariantUnderRotation checks that, at a position whose
// full D6 orbit lies within the table, every rotation of the
// generation origin (0,0) -- which is fixed by all of D6 by
// construction -- reproduces the same lane value.
func TestD6TableInvariantUnderRotation(t *testing.T) {
	tb := zobrist.NewTables(7, 5)
	origin := hexpos.HexPos{}
	want := tb.Lane(zobrist.ClassC, 0, origin)
	for deg := uint32(0); deg < 6; deg++ {
		got := zobrist.ApplyD6(group.D6{Action: group.Rot, Degree: deg}, want)
		assert.Equal(t, want, got, "rotation degree %d", deg)
	}
}

// TestD3TableInvariantAtVertex checks that the V-class hash of the three
// tiles around the vertex VR2 rotates about -- (0,0), (1,0) and (1,1),
// a single D3 orbit -- is unchanged by every D3 rotation and
// reflection. No single tile is fixed by the D3 rotations, so the
// combined hash of the whole orbit is what is invariant.
func TestD3TableInvariantAtVertex(t *testing.T) {
	tb := zobrist.NewTables(11, 5)
	want := tb.Lane(zobrist.ClassV, 0, hexpos.HexPos{}) ^
		tb.Lane(zobrist.ClassV, 0, hexpos.HexPos{X: 1, Y: 0}) ^
		tb.Lane(zobrist.ClassV, 0, hexpos.HexPos{X: 1, Y: 1})
	for ord := 0; ord < 6; ord++ {
		got := zobrist.ApplyD3(group.D3FromOrdinal(ord), want)
		assert.Equal(t, want, got, "ordinal %d", ord)
	}
}

// TestCombineMatchesManualLaneXOR exercises Combine against a manual
// XOR of the same lanes, on offsets away from any fixed point so the
// test isn't vacuously true.
func TestCombineMatchesManualLaneXOR(t *testing.T) {
	tb := zobrist.NewTables(99, 6)
	offsets := []struct {
		color  int
		offset hexpos.HexPos
	}{
		{0, hexpos.HexPos{X: 1, Y: 2}},
		{1, hexpos.HexPos{X: -3, Y: 1}},
	}
	var manual uint64
	for _, o := range offsets {
		manual ^= tb.Lane(zobrist.ClassTrivial, o.color, o.offset)
	}

	i := 0
	got := tb.Combine(zobrist.ClassTrivial, func(yield func(color int, offset hexpos.HexPos) bool) {
		for i < len(offsets) {
			o := offsets[i]
			i++
			if !yield(o.color, o.offset) {
				return
			}
		}
	})
	assert.Equal(t, manual, got)
}
