// Package tt is the Onoro transposition table: a lock-free hash-keyed
// cache of previously-searched positions, with a symmetry-aware
// equality predicate so that two boards related by a rotation,
// reflection, or color swap collide in the table instead of each
// consuming a separate slot.
package tt

import (
	"context"
	"fmt"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/lang"

	"github.com/onoro-engine/onoro/pkg/game"
	"github.com/onoro-engine/onoro/pkg/group"
	"github.com/onoro-engine/onoro/pkg/hexpos"
	"github.com/onoro-engine/onoro/pkg/onoro"
)

// Score is the cached evaluation stored for a position.
type Score struct {
	Depth int
	Value int32
}

// entry is one cached position: full hash plus the canonical view used
// to break collisions, plus the cached score. 32 bytes.
type entry struct {
	hash  uint64
	board *onoro.Board
	score Score
}

// Table is a lock-free, fixed-size transposition table.
type Table struct {
	slots []*entry
	mask  uint64
	used  uint64
}

// New allocates a table sized to the largest power of two not
// exceeding size bytes / 32 bytes-per-entry, logging the resulting
// capacity the way the teacher's chess engine does.
func New(ctx context.Context, size uint64) *Table {
	n := uint64(1 << (63 - 5 - bits.LeadingZeros64(size)))
	if n == 0 {
		n = 1
	}
	logw.Infof(ctx, "Allocating %vMB onoro TT with %v entries", size>>20, n)
	return &Table{
		slots: make([]*entry, n),
		mask:  n - 1,
	}
}

// Size returns the table's capacity in bytes.
func (t *Table) Size() uint64 {
	return uint64(len(t.slots)) * 32
}

// Used returns the fraction of slots ever written.
func (t *Table) Used() float64 {
	return float64(t.used) / float64(len(t.slots))
}

// Find looks up board's canonical hash and, on a hash hit, confirms the
// match with the symmetry-aware equality predicate before returning the
// cached score. The empty Optional means "not found", not "zero score".
func (t *Table) Find(v *game.View) lang.Optional[Score] {
	h := v.Hash()
	addr := t.addr(h)
	ptr := (*entry)(atomic.LoadPointer(addr))
	if ptr != nil && ptr.hash == h && Equal(ptr.board, v.Board) {
		return lang.Some(ptr.score)
	}
	return lang.Optional[Score]{}
}

// InsertOrAssign stores score for board's canonical hash, replacing
// whatever was in the slot regardless of the existing entry's value --
// Onoro positions are cheap to recompute, so the policy favors
// freshness over retaining deep results.
func (t *Table) InsertOrAssign(v *game.View, score Score) {
	h := v.Hash()
	addr := t.addr(h)
	fresh := &entry{hash: h, board: v.Board, score: score}

	for {
		ptr := (*entry)(atomic.LoadPointer(addr))
		if atomic.CompareAndSwapPointer(addr, unsafe.Pointer(ptr), unsafe.Pointer(fresh)) {
			if ptr == nil {
				t.used++
			}
			return
		}
	}
}

// Clear empties every slot.
func (t *Table) Clear() {
	for i := range t.slots {
		t.slots[i] = nil
	}
	t.used = 0
}

func (t *Table) addr(hash uint64) *unsafe.Pointer {
	key := hash & t.mask
	return (*unsafe.Pointer)(unsafe.Pointer(&t.slots[key]))
}

func (t *Table) String() string {
	return fmt.Sprintf("onoro.TT[%v @ %v%%]", t.Size(), int(100*t.Used()))
}

// Equal reports whether a and b are the same Onoro position up to
// board symmetry and color swap: translating both to their own origin
// tile and trying every operation in a's symmetry-class stabilizer
// (plus its color-swapped counterpart) against b, until one matches
// tile-for-tile.
func Equal(a, b *onoro.Board) bool {
	if a.NPawns() != b.NPawns() || a.NPawnsInPlay() != b.NPawnsInPlay() {
		return false
	}

	stateA := a.SymmetryState()
	order := stateA.Class.StabilizerOrder()

	originA := a.OriginTile()
	originB := b.OriginTile()

	for ord := 0; ord < order; ord++ {
		op := stabilizerElement(stateA.Class, ord)
		for _, invert := range []bool{false, true} {
			if boardsMatch(a, originA, b, originB, op, invert) {
				return true
			}
		}
	}
	return false
}

func stabilizerElement(class onoro.SymmetryClass, ord int) group.D6 {
	switch class {
	case onoro.ClassC:
		return group.D6FromOrdinal(ord)
	case onoro.ClassV:
		d3 := group.D3FromOrdinal(ord)
		return group.D6{Action: d3.Action, Degree: d3.Degree * 2}
	case onoro.ClassE:
		k4 := group.K4FromOrdinal(ord)
		deg := uint32(0)
		if k4.A.Bit == 1 {
			deg += 3
		}
		if k4.B.Bit == 1 {
			deg += 6
		}
		return group.D6{Action: group.Rot, Degree: deg % 6}
	default:
		if ord == 0 {
			return group.D6{}
		}
		return group.D6{Action: group.Refl, Degree: 0}
	}
}

func boardsMatch(a *onoro.Board, originA hexpos.HexPos, b *onoro.Board, originB hexpos.HexPos, op group.D6, invert bool) bool {
	match := true
	a.ForEachPawn(func(t onoro.Tile) bool {
		pos := aPos(a, t).Sub(originA)
		pos = applyD6(op, pos).Add(originB)
		bt := bTileFromHex(b, pos)
		want := a.GetTile(t)
		got := b.GetTile(bt)
		if invert {
			got = invertColor(got)
		}
		if want != got {
			match = false
			return false
		}
		return true
	})
	return match
}

func aPos(b *onoro.Board, t onoro.Tile) hexpos.HexPos {
	return hexpos.HexPos{X: t.X + (t.Y >> 1), Y: t.Y}
}

func bTileFromHex(b *onoro.Board, p hexpos.HexPos) onoro.Tile {
	return onoro.Tile{X: p.X - (p.Y >> 1), Y: p.Y}
}

func applyD6(op group.D6, p hexpos.HexPos) hexpos.HexPos {
	if op.Action == group.Rot {
		for i := uint32(0); i < op.Degree; i++ {
			p = p.CR1()
		}
		return p
	}
	p = p.CS0()
	for i := uint32(0); i < op.Degree; i++ {
		p = p.CR1()
	}
	return p
}

func invertColor(s onoro.TileState) onoro.TileState {
	switch s {
	case onoro.TileBlack:
		return onoro.TileWhite
	case onoro.TileWhite:
		return onoro.TileBlack
	default:
		return onoro.TileEmpty
	}
}
