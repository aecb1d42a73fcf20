package zobrist

import (
	"math/rand"

	"github.com/onoro-engine/onoro/pkg/group"
	"github.com/onoro-engine/onoro/pkg/hexpos"
)

// Symmetry class indices, matching onoro.SymmetryClass's ordering.
const (
	ClassC = iota
	ClassV
	ClassE
	ClassCV
	ClassCE
	ClassEV
	ClassTrivial
)

// Tables holds, for each of the seven symmetry classes, a black and a
// white lane of per-position hash values. Each lane is a flat
// (2*nPawns+1) square indexed by a tile's hex offset from the board's
// origin tile, so that re-centring the board never perturbs the hash
// contribution of a tile that didn't move relative to the centre of
// mass.
type Tables struct {
	nPawns int
	side   int32
	base   int32
	class  [7][2][]uint64
}

// NewTables builds the seven symmetry-class hash tables for a game with
// the given pawn capacity, seeding the random draws from seed.
//
// Each table is generated one position at a time in increasing (y,x)
// row-major order. For a given position p, generation first looks for
// an already-built lower-indexed position s related to p by one of the
// class's symmetry generators; if found, p's entry is derived from s's
// by applying the corresponding bit permutation, so the table is
// invariant under its class's stabilizer subgroup by construction.
// Failing that, if p is itself a fixed point of some generator, its
// entry is drawn fresh and then forced into that generator's invariant
// subspace. Otherwise p gets a fresh, unconstrained draw.
func NewTables(seed int64, nPawns int) *Tables {
	n := int32(nPawns)
	side := 2*n + 1
	sz := int(side) * int(side)

	t := &Tables{nPawns: nPawns, side: side, base: n}
	for class := 0; class < 7; class++ {
		t.class[class] = [2][]uint64{make([]uint64, sz), make([]uint64, sz)}
	}

	rng := rand.New(rand.NewSource(seed))
	t.genD6(rng, n)
	t.genD3(rng, n)
	t.genK4(rng, n)
	t.genC2(rng, n, ClassCV, hexpos.HexPos.CS1)
	t.genC2(rng, n, ClassCE, hexpos.HexPos.CS0)
	t.genC2(rng, n, ClassEV, hexpos.HexPos.ES3)
	t.genTrivial(rng, n)
	return t
}

func (t *Tables) idx(p hexpos.HexPos) int {
	return int(p.Y+t.base)*int(t.side) + int(p.X+t.base)
}

func (t *Tables) inBounds(p hexpos.HexPos) bool {
	return p.X >= -t.base && p.X <= t.base && p.Y >= -t.base && p.Y <= t.base
}

func (t *Tables) forEachPos(n int32, cb func(p hexpos.HexPos, i int)) {
	for y := -n; y <= n; y++ {
		for x := -n; x <= n; x++ {
			p := hexpos.HexPos{X: x, Y: y}
			cb(p, t.idx(p))
		}
	}
}

func (t *Tables) genD6(rng *rand.Rand, n int32) {
	black, white := t.class[ClassC][0], t.class[ClassC][1]
	t.forEachPos(n, func(p hexpos.HexPos, i int) {
		if p.X == 0 && p.Y == 0 {
			black[i] = makeD6R1(rng.Uint64() & cMask)
			white[i] = makeD6R1(rng.Uint64() & cMask)
			return
		}

		s := p
		op := group.D6{Action: group.Rot, Degree: 0}
		for k := 0; k < 5; k++ {
			s = s.CR1()
			op = op.Mul(group.D6{Action: group.Rot, Degree: 5})
			if si := t.idx(s); t.inBounds(s) && si < i {
				black[i] = ApplyD6(op, black[si])
				white[i] = ApplyD6(op, white[si])
				return
			}
		}

		s = p.CS0()
		op = group.D6{Action: group.Refl, Degree: 0}
		for k := 0; k < 6; k++ {
			if s.Equals(p) {
				black[i] = MakeD6Invariant(op, rng.Uint64()&cMask)
				white[i] = MakeD6Invariant(op, rng.Uint64()&cMask)
				return
			}
			if si := t.idx(s); t.inBounds(s) && si < i {
				black[i] = ApplyD6(op, black[si])
				white[i] = ApplyD6(op, white[si])
				return
			}
			s = s.CR1()
			op = op.Mul(group.D6{Action: group.Rot, Degree: 5})
		}

		black[i] = rng.Uint64() & cMask
		white[i] = rng.Uint64() & cMask
	})
}

func (t *Tables) genD3(rng *rand.Rand, n int32) {
	black, white := t.class[ClassV][0], t.class[ClassV][1]
	t.forEachPos(n, func(p hexpos.HexPos, i int) {
		s := p
		op := group.D3{Action: group.Rot, Degree: 0}
		for k := 0; k < 2; k++ {
			s = s.VR2()
			op = op.Mul(group.D3{Action: group.Rot, Degree: 2})
			if si := t.idx(s); t.inBounds(s) && si < i {
				black[i] = ApplyD3(op, black[si])
				white[i] = ApplyD3(op, white[si])
				return
			}
		}

		s = p.VS1()
		op = group.D3{Action: group.Refl, Degree: 0}
		for k := 0; k < 3; k++ {
			if s.Equals(p) {
				black[i] = MakeD3Invariant(op, rng.Uint64()&vMask)
				white[i] = MakeD3Invariant(op, rng.Uint64()&vMask)
				return
			}
			if si := t.idx(s); t.inBounds(s) && si < i {
				black[i] = ApplyD3(op, black[si])
				white[i] = ApplyD3(op, white[si])
				return
			}
			s = s.VR2()
			op = op.Mul(group.D3{Action: group.Rot, Degree: 2})
		}

		black[i] = rng.Uint64() & vMask
		white[i] = rng.Uint64() & vMask
	})
}

// k4op pairs a K4 element with the position transform it corresponds
// to (ER3, ES0, ES3 -- the three non-identity symmetries of an edge
// midpoint).
type k4op struct {
	op  group.K4
	pos func(hexpos.HexPos) hexpos.HexPos
}

func (t *Tables) genK4(rng *rand.Rand, n int32) {
	black, white := t.class[ClassE][0], t.class[ClassE][1]

	reuse := []k4op{
		{group.K4{A: group.C2{Bit: 1}, B: group.C2{Bit: 0}}, hexpos.HexPos.ER3},
		{group.K4{A: group.C2{Bit: 0}, B: group.C2{Bit: 1}}, hexpos.HexPos.ES0},
		{group.K4{A: group.C2{Bit: 1}, B: group.C2{Bit: 1}}, hexpos.HexPos.ES3},
	}
	// No position is fixed by more than one of these (ER3 fixes none,
	// ES0 fixes the row y=0, ES3 fixes the line 2x=1+y), so a fixed
	// position gets the invariant construction of the one operation
	// that fixes it.
	fixed := []k4op{
		{group.K4{A: group.C2{Bit: 1}, B: group.C2{Bit: 1}}, hexpos.HexPos.ES3},
		{group.K4{A: group.C2{Bit: 1}, B: group.C2{Bit: 0}}, hexpos.HexPos.ER3},
		{group.K4{A: group.C2{Bit: 0}, B: group.C2{Bit: 1}}, hexpos.HexPos.ES0},
	}

	t.forEachPos(n, func(p hexpos.HexPos, i int) {
		for _, ro := range reuse {
			s := ro.pos(p)
			if si := t.idx(s); t.inBounds(s) && si < i {
				black[i] = ApplyK4(ro.op, black[si])
				white[i] = ApplyK4(ro.op, white[si])
				return
			}
		}
		for _, fo := range fixed {
			if fo.pos(p).Equals(p) {
				black[i] = MakeK4Invariant(fo.op, rng.Uint64())
				white[i] = MakeK4Invariant(fo.op, rng.Uint64())
				return
			}
		}
		black[i] = rng.Uint64()
		white[i] = rng.Uint64()
	})
}

func (t *Tables) genC2(rng *rand.Rand, n int32, class int, posOp func(hexpos.HexPos) hexpos.HexPos) {
	black, white := t.class[class][0], t.class[class][1]
	t.forEachPos(n, func(p hexpos.HexPos, i int) {
		s := posOp(p)
		if s.Equals(p) {
			black[i] = MakeC2Invariant(rng.Uint64())
			white[i] = MakeC2Invariant(rng.Uint64())
			return
		}
		if si := t.idx(s); t.inBounds(s) && si < i {
			black[i] = ApplyC2(group.C2{Bit: 1}, black[si])
			white[i] = ApplyC2(group.C2{Bit: 1}, white[si])
			return
		}
		black[i] = rng.Uint64()
		white[i] = rng.Uint64()
	})
}

func (t *Tables) genTrivial(rng *rand.Rand, n int32) {
	black, white := t.class[ClassTrivial][0], t.class[ClassTrivial][1]
	t.forEachPos(n, func(_ hexpos.HexPos, i int) {
		black[i] = rng.Uint64()
		white[i] = rng.Uint64()
	})
}

// Lane returns the per-position hash value for the given symmetry
// class, colour (0=black, 1=white), and hex offset from the board's
// origin tile.
func (t *Tables) Lane(class, color int, offset hexpos.HexPos) uint64 {
	return t.class[class][color][t.idx(offset)]
}

// Combine XORs together the Lane values yielded by occupied, producing
// the class's base hash for a board.
func (t *Tables) Combine(class int, occupied func(yield func(color int, offset hexpos.HexPos) bool)) uint64 {
	var h uint64
	occupied(func(color int, offset hexpos.HexPos) bool {
		h ^= t.Lane(class, color, offset)
		return true
	})
	return h
}

// ApplyForClass dispatches to the correct bit-permutation applier for
// the stabilizer subgroup of the given symmetry class, given an
// ordinal into that subgroup (as produced by group.D6/D3/K4/C2
// Ordinal/FromOrdinal).
func ApplyForClass(class, ordinal int, h uint64) uint64 {
	switch class {
	case ClassC:
		return ApplyD6(group.D6FromOrdinal(ordinal), h)
	case ClassV:
		return ApplyD3(group.D3FromOrdinal(ordinal), h)
	case ClassE:
		return ApplyK4(group.K4FromOrdinal(ordinal), h)
	case ClassTrivial:
		return h
	default:
		return ApplyC2(group.C2FromOrdinal(ordinal), h)
	}
}
