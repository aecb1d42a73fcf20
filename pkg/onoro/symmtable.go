package onoro

import (
	"sync"

	"github.com/onoro-engine/onoro/pkg/group"
)

// SymmetryClass identifies where a board's folded, truncated centre of
// mass falls within one repeating unit cell of the hex lattice, and
// therefore which subgroup of D6 stabilizes the board as a whole.
type SymmetryClass uint8

const (
	// ClassC is centred exactly on a tile: stabilizer is all of D6.
	ClassC SymmetryClass = iota
	// ClassV is centred on a lattice vertex: stabilizer is D3.
	ClassV
	// ClassE is centred on an edge midpoint: stabilizer is K4.
	ClassE
	// ClassCV, ClassCE, ClassEV sit on a mirror line through a tile
	// centre and a vertex, a tile centre and an edge midpoint, or an
	// edge midpoint and a vertex, respectively: stabilizer is C2.
	ClassCV
	ClassCE
	ClassEV
	// ClassTrivial has no symmetry: stabilizer is the trivial group.
	ClassTrivial
)

// StabilizerOrder returns the order of the subgroup of D6 that fixes a
// board in this symmetry class.
func (c SymmetryClass) StabilizerOrder() int {
	switch c {
	case ClassC:
		return 12
	case ClassV:
		return 6
	case ClassE:
		return 4
	case ClassCV, ClassCE, ClassEV:
		return 2
	default:
		return 1
	}
}

// BoardSymmetryState is the precomputed classification of a single
// (x,y) offset within one repeating NPawns x NPawns unit cell: the D6
// operation that canonicalizes it (so the centre of mass lands in the
// fixed reference triangle) and the symmetry class it belongs to.
type BoardSymmetryState struct {
	Op    group.D6
	Class SymmetryClass
}

var (
	symmTableMu sync.Mutex
	symmTables  = map[int][]BoardSymmetryState{}
)

// symmStateTable returns (building and caching it on first use) the
// nPawns x nPawns table of BoardSymmetryState, indexed by
// [y*nPawns+x] for (x,y) in [0,nPawns)^2.
func symmStateTable(nPawns int) []BoardSymmetryState {
	symmTableMu.Lock()
	defer symmTableMu.Unlock()
	if t, ok := symmTables[nPawns]; ok {
		return t
	}

	n := uint32(nPawns)
	t := make([]BoardSymmetryState, nPawns*nPawns)
	for y := uint32(0); y < n; y++ {
		for x := uint32(0); x < n; x++ {
			t[y*n+x] = BoardSymmetryState{
				Op:    symmStateOp(x, y, n),
				Class: symmStateClass(x, y, n),
			}
		}
	}
	symmTables[nPawns] = t
	return t
}

// symmStateOp determines the D6 element that canonicalizes the unit
// cell offset (x,y) into the fixed reference triangle x+y>=n, y>=2x
// (corners (0,n), (n/3,2n/3), (n/2,n)), the region for which the
// identity is returned. Ported literally from the twelve-way case split on
// (c1,c2,c3a,c3b) below -- this is not a rotation search, it is a
// direct classification of which of the 12 triangular regions (x,y)
// falls in.
func symmStateOp(x, y, n uint32) group.D6 {
	x2 := maxU32(x, y)
	y2 := minU32(x, y)

	x3 := minU32(x2, n-y2)
	y3 := minU32(y2, n-x2)

	c1 := y < x
	c2 := x2+y2 < n
	c3a := y3+n <= 2*x3
	c3b := 2*y3 <= x3

	if c1 {
		if c2 {
			switch {
			case c3a:
				return group.D6{Action: group.Rot, Degree: 3}
			case c3b:
				return group.D6{Action: group.Refl, Degree: 1}
			default:
				return group.D6{Action: group.Rot, Degree: 5}
			}
		}
		switch {
		case c3a:
			return group.D6{Action: group.Refl, Degree: 3}
		case c3b:
			return group.D6{Action: group.Rot, Degree: 1}
		default:
			return group.D6{Action: group.Refl, Degree: 5}
		}
	}
	if c2 {
		switch {
		case c3a:
			return group.D6{Action: group.Refl, Degree: 0}
		case c3b:
			return group.D6{Action: group.Rot, Degree: 4}
		default:
			return group.D6{Action: group.Refl, Degree: 2}
		}
	}
	switch {
	case c3a:
		return group.D6{Action: group.Rot, Degree: 0}
	case c3b:
		return group.D6{Action: group.Refl, Degree: 4}
	default:
		return group.D6{Action: group.Rot, Degree: 2}
	}
}

// symmStateClass classifies the unit cell offset (x,y) into one of the
// seven symmetry classes, per the fold-twice-and-test-the-six-loci
// scheme: (x2,y2) folds (x,y) across y=x, and (x3,y3) further folds
// (x2,y2) across y=n-x.
func symmStateClass(x, y, n uint32) SymmetryClass {
	x2 := maxU32(x, y)
	y2 := minU32(x, y)

	x3 := minU32(x2, n-y2)
	y3 := minU32(y2, n-x2)

	switch {
	case x == 0 && y == 0:
		return ClassC
	case 3*x2 == 2*n && 3*y2 == n:
		return ClassV
	case 2*x2 == n && (y2 == 0 || 2*y2 == n):
		return ClassE
	case 2*y3 == x3 || (x2+y2 == n && 3*y2 < n):
		return ClassCV
	case x2 == y2 || y2 == 0:
		return ClassCE
	case y3+n == 2*x3 || (x2+y2 == n && 3*y2 > n):
		return ClassEV
	default:
		return ClassTrivial
	}
}

func maxU32(a, b uint32) uint32 {
	if a > b {
		return a
	}
	return b
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

// SymmetryState returns the BoardSymmetryState for the board's current
// (folded) centre-of-mass offset.
func (b *Board) SymmetryState() BoardSymmetryState {
	table := symmStateTable(b.nPawns)
	origin := b.OriginTile()
	n := uint32(b.nPawns)
	x := uint32((origin.X%int32(n) + int32(n))) % n
	y := uint32((origin.Y%int32(n) + int32(n))) % n
	return table[y*n+x]
}
