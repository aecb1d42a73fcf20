package onoro

import (
	"fmt"

	"github.com/onoro-engine/onoro/pkg/unionfind"
)

// NewFromGrid builds a Board directly from a row-major grid of tile
// states -- the representation a byte-exact wire codec decodes into --
// rather than by replaying moves through ApplyPhase1/ApplyPhase2. tiles
// must have length boardLen*boardLen (boardLen = nPawns-1), indexed
// [y*boardLen+x].
//
// Returns an error, never panics, if: nPawns or turn is out of range,
// the grid is the wrong length, a tile holds neither TileEmpty,
// TileBlack nor TileWhite, the occupied tile count doesn't match what
// turn implies, the occupied tiles don't form a single connected
// cluster, or the black/white counts and turn-to-move bit are
// inconsistent with how a board actually reaches this turn (see
// checkTurnParity).
func NewFromGrid(nPawns int, turn uint8, blackTurn bool, tiles []TileState) (*Board, error) {
	if nPawns < 3 || nPawns > maxPawns {
		return nil, fmt.Errorf("onoro: nPawns must be in [3,%v], got %v", maxPawns, nPawns)
	}
	if int(turn) < 2 || int(turn) > nPawns-1 {
		return nil, fmt.Errorf("onoro: turn %v out of range [2,%v]", turn, nPawns-1)
	}

	boardLen := int32(nPawns - 1)
	if len(tiles) != int(boardLen)*int(boardLen) {
		return nil, fmt.Errorf("onoro: grid has %v tiles, want %v", len(tiles), boardLen*boardLen)
	}

	b := &Board{nPawns: nPawns, boardLen: boardLen, turn: turn, blackTurn: blackTurn}
	b.tiles = make([]uint64, b.numWords())

	var black, white int
	occupied := make([]Tile, 0, int(turn)+1)
	for y := int32(0); y < boardLen; y++ {
		for x := int32(0); x < boardLen; x++ {
			s := tiles[y*boardLen+x]
			switch s {
			case TileEmpty:
				continue
			case TileBlack:
				black++
			case TileWhite:
				white++
			default:
				return nil, fmt.Errorf("onoro: tile {%v,%v} has invalid state %v", x, y, s)
			}
			t := Tile{X: x, Y: y}
			b.setTile(t, s)
			b.sumOfMass = b.sumOfMass.Add(b.idxToPos(t))
			occupied = append(occupied, t)
		}
	}

	if len(occupied) != int(turn)+1 {
		return nil, fmt.Errorf("onoro: grid has %v occupied tiles, turn %v implies %v", len(occupied), turn, turn+1)
	}

	if !b.occupiedConnected(occupied, boardLen) {
		return nil, fmt.Errorf("onoro: occupied tiles are not connected")
	}

	if err := checkTurnParity(nPawns, turn, blackTurn, black, white); err != nil {
		return nil, err
	}

	if len(occupied) > 0 {
		last := occupied[len(occupied)-1]
		b.finished = b.checkWin(last)
	}
	return b, nil
}

// occupiedConnected reports whether every tile in occupied lies in a
// single connected component of the adjacency graph, using union-find
// over the board's full row-major index space (empty tiles stay
// singleton groups and are never compared against).
func (b *Board) occupiedConnected(occupied []Tile, boardLen int32) bool {
	if len(occupied) <= 1 {
		return true
	}
	uf := unionfind.New(int(boardLen) * int(boardLen))
	for _, t := range occupied {
		i := uint32(b.fromIdx(t))
		b.ForEachTopLeftNeighbor(t, func(nb Tile) bool {
			if b.GetTile(nb) != TileEmpty {
				uf.Union(i, uint32(b.fromIdx(nb)))
			}
			return true
		})
	}
	root := uf.Find(uint32(b.fromIdx(occupied[0])))
	for _, t := range occupied[1:] {
		if uf.Find(uint32(b.fromIdx(t))) != root {
			return false
		}
	}
	return true
}

// checkTurnParity validates that black/white pawn counts and the
// turn-to-move bit are reachable for the given turn, grounded on the
// exact placement sequence New/ApplyPhase1 produce: black placed
// twice, then white and black alternate starting with white, one
// placement per turn increment, until Phase 2 begins at turn =
// nPawns-1, after which Phase-2 moves leave turn and the pawn counts
// fixed (only the mover alternates).
func checkTurnParity(nPawns int, turn uint8, blackTurn bool, black, white int) error {
	lastPlacementTurn := int32(nPawns - 1)
	t := int32(turn)

	m := lastPlacementTurn - 2
	if t < lastPlacementTurn {
		m = t - 2
	}
	wantBlack := 2 + m/2
	wantWhite := 1 + (m+1)/2
	if int32(black) != wantBlack || int32(white) != wantWhite {
		return fmt.Errorf("onoro: pawn counts (black=%v,white=%v) inconsistent with turn %v", black, white, turn)
	}

	if t < lastPlacementTurn {
		wantBlackTurn := t%2 == 1
		if blackTurn != wantBlackTurn {
			return fmt.Errorf("onoro: turn-to-move bit inconsistent with turn %v", turn)
		}
	}
	return nil
}
