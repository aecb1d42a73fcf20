// Package game provides View, a lazy wrapper that pairs a board
// with a pending canonicalizing symmetry operation and an optional
// colour inversion, so that transposition lookups can compare boards up
// to symmetry without materializing a transformed copy of the board.
package game

import (
	"github.com/onoro-engine/onoro/pkg/group"
	"github.com/onoro-engine/onoro/pkg/hexpos"
	"github.com/onoro-engine/onoro/pkg/onoro"
	"github.com/onoro-engine/onoro/pkg/zobrist"
)

// View is a board reference plus a pending D6 operation and a
// color-invert flag, both applied lazily when Hash is called rather
// than up front.
type View struct {
	Board       *onoro.Board
	Op          group.D6
	InvertColor bool

	tables *zobrist.Tables
	hash   uint64
	cached bool
}

// NewView wraps board with the identity operation and no color
// inversion.
func NewView(board *onoro.Board, tables *zobrist.Tables) *View {
	return &View{Board: board, Op: group.D6{}, tables: tables}
}

// WithOp returns a view of the same board composed with an additional
// operation: applying op to v's current view.
func (v *View) WithOp(op group.D6) *View {
	return &View{
		Board:       v.Board,
		Op:          v.Op.Mul(op),
		InvertColor: v.InvertColor,
		tables:      v.tables,
	}
}

// WithColorInverted returns a view of the same board with color
// inversion toggled.
func (v *View) WithColorInverted() *View {
	return &View{
		Board:       v.Board,
		Op:          v.Op,
		InvertColor: !v.InvertColor,
		tables:      v.tables,
	}
}

// Hash computes (and memoizes) the view's symmetry- and color-aware
// hash: the board's base hash for its symmetry class, with the pending
// operation applied via the class's bit-permutation applier, xored with
// a color swap if InvertColor is set.
func (v *View) Hash() uint64 {
	if v.cached {
		return v.hash
	}

	state := v.Board.SymmetryState()
	class := int(state.Class)
	origin := v.Board.OriginTile()

	base := v.tables.Combine(class, func(yield func(color int, offset hexpos.HexPos) bool) {
		v.Board.ForEachPawn(func(t onoro.Tile) bool {
			tile := v.Board.GetTile(t)
			color := 0
			if tile == onoro.TileWhite {
				color = 1
			}
			return yield(color, v.Board.HexPos(t).Sub(origin))
		})
	})

	combinedOp := state.Op.Mul(v.Op)
	h := zobrist.ApplyForClass(class, combinedOp.Ordinal()%subgroupOrder(class), base)

	if v.InvertColor {
		h = zobrist.ApplyColorSwap(h)
	}

	v.hash = h
	v.cached = true
	return h
}

func subgroupOrder(class int) int {
	switch class {
	case 0:
		return 12
	case 1:
		return 6
	case 2:
		return 4
	default:
		return 2
	}
}
