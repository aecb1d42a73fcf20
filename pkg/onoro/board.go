// Package onoro implements the Onoro board: a bit-packed hex-grid tile
// array with move application, neighbour iteration, win detection, and
// the precomputed symmetry-class table used to canonicalize a board's
// centre of mass.
package onoro

import (
	"fmt"
	"strings"

	"github.com/onoro-engine/onoro/pkg/hexpos"
)

// TileState is the content of a single board tile.
type TileState uint8

const (
	TileEmpty TileState = 0
	TileBlack TileState = 1
	TileWhite TileState = 2
)

func (s TileState) String() string {
	switch s {
	case TileBlack:
		return "B"
	case TileWhite:
		return "W"
	default:
		return "."
	}
}

const (
	bitsPerTile         = 2
	bitsPerWord         = 64
	tilesPerWord        = bitsPerWord / bitsPerTile
	tileMask     uint64 = (1 << bitsPerTile) - 1
	minNeighbors        = 2
	winLength           = 4
	maxPawns            = 16
)

// Tile is a cartesian index into the board's tile array: x is the
// column, y is the row. It is distinct from hexpos.HexPos, which is a
// position on the underlying hex lattice.
type Tile struct {
	X, Y int32
}

func (t Tile) String() string {
	return fmt.Sprintf("{%v,%v}", t.X, t.Y)
}

// Board is an immutable Onoro position: a fixed-capacity, bit-packed
// hex-tile grid together with whose-turn and phase metadata. Applying a
// move never mutates a Board; it produces a new one.
type Board struct {
	nPawns    int
	boardLen  int32
	tiles     []uint64
	turn      uint8
	blackTurn bool
	finished  bool
	sumOfMass hexpos.HexPos
}

// New creates the canonical Onoro starting position for a game with the
// given pawn capacity: two black pawns and one white pawn clustered
// near the board centre, with white to move next (black placed twice to
// start, so white is effectively first to choose a move).
func New(nPawns int) *Board {
	if nPawns < 3 || nPawns > maxPawns {
		panic(fmt.Sprintf("onoro: nPawns must be in [3,%v], got %v", maxPawns, nPawns))
	}

	b := &Board{
		nPawns:   nPawns,
		boardLen: int32(nPawns - 1),
		turn:     2,
	}
	b.tiles = make([]uint64, b.numWords())

	mid := (b.boardLen - 1) / 2
	wOff := int32(0)
	if mid&1 == 0 {
		wOff = 1
	}

	bStart := Tile{mid, mid}
	wStart := Tile{mid + wOff, mid + 1}
	bNext := Tile{mid + 1, mid}

	b.setTile(bStart, TileBlack)
	b.setTile(wStart, TileWhite)
	b.setTile(bNext, TileBlack)

	b.sumOfMass = b.idxToPos(bStart).Add(b.idxToPos(wStart)).Add(b.idxToPos(bNext))
	return b
}

func (b *Board) numWords() int {
	bits := int(b.boardLen) * int(b.boardLen) * bitsPerTile
	return (bits + bitsPerWord - 1) / bitsPerWord
}

// NPawns returns the game's pawn capacity.
func (b *Board) NPawns() int { return b.nPawns }

// BoardLen returns the side length of the tile array.
func (b *Board) BoardLen() int32 { return b.boardLen }

// NPawnsInPlay returns how many pawns have been placed so far.
func (b *Board) NPawnsInPlay() int { return int(b.turn) + 1 }

// InPhase2 reports whether every pawn has been placed and movement has
// begun.
func (b *Board) InPhase2() bool { return int(b.turn) == b.nPawns-1 }

// Turn returns the raw turn counter (saturates once Phase 2 begins).
func (b *Board) Turn() uint8 { return b.turn }

// BlackToMove reports whether it's black's turn to move.
func (b *Board) BlackToMove() bool { return b.blackTurn }

// IsFinished reports whether the game has ended.
func (b *Board) IsFinished() bool { return b.finished }

// BlackWins reports whether black won, valid only if IsFinished().
func (b *Board) BlackWins() bool { return !b.blackTurn }

// SumOfMass returns the running sum of hex positions of every occupied
// tile.
func (b *Board) SumOfMass() hexpos.HexPos { return b.sumOfMass }

func (b *Board) fromIdx(t Tile) int {
	return int(t.X + t.Y*b.boardLen)
}

func (b *Board) toIdx(i int) Tile {
	return Tile{int32(i) % b.boardLen, int32(i) / b.boardLen}
}

func (b *Board) idxToPos(t Tile) hexpos.HexPos {
	return hexpos.HexPos{X: t.X + (t.Y >> 1), Y: t.Y}
}

func (b *Board) posToIdx(p hexpos.HexPos) Tile {
	return Tile{p.X - (p.Y >> 1), p.Y}
}

// HexPos returns the hex-lattice position of the cartesian tile index
// t, irrespective of whether t is currently occupied.
func (b *Board) HexPos(t Tile) hexpos.HexPos {
	return b.idxToPos(t)
}

func (b *Board) inBounds(t Tile) bool {
	return t.X >= 0 && t.X < b.boardLen && t.Y >= 0 && t.Y < b.boardLen
}

// GetTile returns the state of the tile at the given cartesian index.
// Out-of-bounds indices are treated as empty.
func (b *Board) GetTile(t Tile) TileState {
	if !b.inBounds(t) {
		return TileEmpty
	}
	return b.getTileIdx(b.fromIdx(t))
}

func (b *Board) getTileIdx(i int) TileState {
	word := b.tiles[i/tilesPerWord]
	shift := uint(i%tilesPerWord) * bitsPerTile
	return TileState((word >> shift) & tileMask)
}

func (b *Board) setTile(t Tile, s TileState) {
	i := b.fromIdx(t)
	shift := uint(i%tilesPerWord) * bitsPerTile
	b.tiles[i/tilesPerWord] |= uint64(s) << shift
}

func (b *Board) clearTile(t Tile) {
	i := b.fromIdx(t)
	shift := uint(i%tilesPerWord) * bitsPerTile
	b.tiles[i/tilesPerWord] &^= tileMask << shift
}

// Print renders the board as ASCII text, one row per line. Odd rows are
// indented by a half-cell (one space) to reflect the hex offset.
func (b *Board) Print() string {
	var sb strings.Builder
	for y := int32(0); y < b.boardLen; y++ {
		if y%2 == 1 {
			sb.WriteByte(' ')
		}
		for x := int32(0); x < b.boardLen; x++ {
			sb.WriteString(b.GetTile(Tile{x, y}).String())
			if x < b.boardLen-1 {
				sb.WriteByte(' ')
			}
		}
		if y < b.boardLen-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// calcMoveShiftAndOffset determines how far the tile array and hex
// positions must be translated so that move stays within [0,boardLen)
// on both axes after it is applied.
func calcMoveShiftAndOffset(boardLen int32, move Tile) (shift int32, offset hexpos.HexPos) {
	if move.Y < 0 {
		shift = boardLen * 2
		offset.X = 1
		offset.Y = 2
	} else if move.Y > boardLen-1 {
		shift = -(boardLen * 2)
		offset.X = -1
		offset.Y = -2
	}
	if move.X < 0 {
		shift++
		offset.X++
	} else if move.X > boardLen-1 {
		shift--
		offset.X--
	}
	return shift, offset
}

// copyAndShift copies src into dst, shifting every bit left by
// bitOffset (propagating overflow between words). bitOffset may be
// negative (right shift), zero, or any magnitude less than 64*len(src).
func copyAndShift(dst, src []uint64, bitOffset int32) {
	n := len(src)
	offset := int(bitOffset >> 6)
	shift := uint(bitOffset) & 0x3f
	var rshift uint
	if shift != 0 {
		rshift = 64 - shift
	}

	if shift == 0 {
		if offset >= 0 {
			for i := 0; i < offset; i++ {
				dst[i] = 0
			}
			copy(dst[offset:n], src[:n-offset])
		} else {
			copy(dst[:n+offset], src[-offset:n])
			for i := n + offset; i < n; i++ {
				dst[i] = 0
			}
		}
		return
	}

	if offset >= 0 {
		for i := 0; i < offset; i++ {
			dst[i] = 0
		}
		var r uint64
		for i := 0; i < n-offset; i++ {
			bits := src[i]
			dst[i+offset] = r | (bits << shift)
			r = bits >> rshift
		}
		return
	}

	r := src[-(offset+1)] >> rshift
	for i := 0; i < n+offset; i++ {
		bits := src[i-offset]
		dst[i] = r | (bits << shift)
		r = bits >> rshift
	}
	dst[n+offset] = r
	for i := n + offset + 1; i < n; i++ {
		dst[i] = 0
	}
}

// ApplyPhase1 places a pawn of the current colour at move, producing the
// board that results. Panics if called in Phase 2; move itself is not
// checked for legality (ForEachMove yields the legal destinations).
func (b *Board) ApplyPhase1(move Tile) *Board {
	if b.InPhase2() {
		panic("onoro: ApplyPhase1 called in phase 2")
	}

	shift, offset := calcMoveShiftAndOffset(b.boardLen, move)

	nb := &Board{
		nPawns:    b.nPawns,
		boardLen:  b.boardLen,
		tiles:     make([]uint64, len(b.tiles)),
		turn:      b.turn + 1,
		blackTurn: !b.blackTurn,
	}
	copyAndShift(nb.tiles, b.tiles, shift*bitsPerTile)

	newCount := hexpos.HexPos{X: int32(nb.NPawnsInPlay()), Y: int32(nb.NPawnsInPlay())}
	nb.sumOfMass = b.sumOfMass.Add(b.idxToPos(move)).Add(offset.Scale(newCount.X))

	color := TileWhite
	if b.blackTurn {
		color = TileBlack
	}
	placedAt := nb.posToIdx(b.idxToPos(move).Add(offset))
	nb.setTile(placedAt, color)

	nb.finished = nb.checkWin(placedAt)
	return nb
}

// ApplyPhase2 moves the current player's pawn from "from" to "to",
// producing the board that results. Panics if called in Phase 1; the
// move itself is not checked for legality (ForEachMoveP2 yields the
// legal moves).
func (b *Board) ApplyPhase2(to, from Tile) *Board {
	if !b.InPhase2() {
		panic("onoro: ApplyPhase2 called in phase 1")
	}

	shift, offset := calcMoveShiftAndOffset(b.boardLen, to)

	nb := &Board{
		nPawns:    b.nPawns,
		boardLen:  b.boardLen,
		tiles:     make([]uint64, len(b.tiles)),
		turn:      b.turn,
		blackTurn: !b.blackTurn,
	}
	copyAndShift(nb.tiles, b.tiles, shift*bitsPerTile)

	n := int32(b.nPawns)
	nb.sumOfMass = b.sumOfMass.Add(b.idxToPos(to)).Sub(b.idxToPos(from)).Add(offset.Scale(n))

	color := TileWhite
	if b.blackTurn {
		color = TileBlack
	}
	placedAt := nb.posToIdx(b.idxToPos(to).Add(offset))
	removedAt := nb.posToIdx(b.idxToPos(from).Add(offset))
	nb.setTile(placedAt, color)
	nb.clearTile(removedAt)

	nb.finished = nb.checkWin(placedAt)
	return nb
}

// checkWin reports whether the pawn just placed at idx completes a
// four-in-a-row along any of the three hex axes. Out-of-bounds tiles
// reset the run counter.
func (b *Board) checkWin(idx Tile) bool {
	moveColor := b.GetTile(idx)
	movePos := b.idxToPos(idx)

	dirs := []hexpos.HexPos{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
	for _, dir := range dirs {
		run := 0
		start := movePos.Sub(dir.Scale(winLength))
		for step := int32(0); step <= 2*winLength; step++ {
			p := start.Add(dir.Scale(step))
			t := b.posToIdx(p)
			if !b.inBounds(t) {
				run = 0
				continue
			}
			if b.getTileIdx(b.fromIdx(t)) == moveColor {
				run++
			} else {
				run = 0
			}
			if run == winLength {
				return true
			}
		}
	}
	return false
}

// ForEachNeighbor visits every in-bounds hex-adjacent tile to idx. Visit
// order matches the teacher's bit-sweep order: up, upper-diagonal, left,
// right, down, lower-diagonal. Iteration halts early if cb returns
// false, and ForEachNeighbor returns false in that case.
func (b *Board) ForEachNeighbor(idx Tile, cb func(Tile) bool) bool {
	x, y := idx.X, idx.Y
	if y > 0 {
		if !cb(Tile{x, y - 1}) {
			return false
		}
		if y&1 == 0 {
			if x < b.boardLen-1 {
				if !cb(Tile{x + 1, y - 1}) {
					return false
				}
			}
		} else if x > 0 {
			if !cb(Tile{x - 1, y - 1}) {
				return false
			}
		}
	}
	if x > 0 {
		if !cb(Tile{x - 1, y}) {
			return false
		}
	}
	if x < b.boardLen-1 {
		if !cb(Tile{x + 1, y}) {
			return false
		}
	}
	if y < b.boardLen-1 {
		if !cb(Tile{x, y + 1}) {
			return false
		}
		if y&1 == 0 {
			if x < b.boardLen-1 {
				if !cb(Tile{x + 1, y + 1}) {
					return false
				}
			}
		} else if x > 0 {
			if !cb(Tile{x - 1, y + 1}) {
				return false
			}
		}
	}
	return true
}

// ForEachTopLeftNeighbor visits only the neighbours with smaller
// lexicographic (y,x) than idx -- used to build connectivity without
// double-counting edges.
func (b *Board) ForEachTopLeftNeighbor(idx Tile, cb func(Tile) bool) bool {
	x, y := idx.X, idx.Y
	if y > 0 {
		if !cb(Tile{x, y - 1}) {
			return false
		}
		if y&1 == 0 {
			if x < b.boardLen-1 {
				if !cb(Tile{x + 1, y - 1}) {
					return false
				}
			}
		} else if x > 0 {
			if !cb(Tile{x - 1, y - 1}) {
				return false
			}
		}
	}
	if x > 0 {
		if !cb(Tile{x - 1, y}) {
			return false
		}
	}
	return true
}

// ForEachPawn visits every occupied tile, in ascending row-major order.
func (b *Board) ForEachPawn(cb func(Tile) bool) bool {
	n := int(b.boardLen) * int(b.boardLen)
	for i := 0; i < n; i++ {
		if b.getTileIdx(i) != TileEmpty {
			if !cb(b.toIdx(i)) {
				return false
			}
		}
	}
	return true
}

// ForEachPlayablePawn visits every pawn belonging to the player whose
// turn it currently is.
func (b *Board) ForEachPlayablePawn(cb func(Tile) bool) bool {
	turnColor := TileWhite
	if b.blackTurn {
		turnColor = TileBlack
	}
	n := int(b.boardLen) * int(b.boardLen)
	for i := 0; i < n; i++ {
		if b.getTileIdx(i) == turnColor {
			if !cb(b.toIdx(i)) {
				return false
			}
		}
	}
	return true
}

// OriginTile returns the floored centre of mass: the sum of mass
// divided by the pawn count, rounded toward negative infinity on both
// axes.
func (b *Board) OriginTile() hexpos.HexPos {
	n := int32(b.NPawnsInPlay())
	return hexpos.HexPos{X: floorDiv(b.sumOfMass.X, n), Y: floorDiv(b.sumOfMass.Y, n)}
}

func floorDiv(a, n int32) int32 {
	q := a / n
	if (a%n != 0) && ((a < 0) != (n < 0)) {
		q--
	}
	return q
}
