package onoro

import "github.com/onoro-engine/onoro/pkg/unionfind"

// ForEachMove visits every legal Phase-1 destination: every empty tile
// adjacent to at least one existing pawn. Iteration halts early if cb
// returns false, and ForEachMove returns false in that case.
func (b *Board) ForEachMove(cb func(Tile) bool) bool {
	n := int(b.boardLen) * int(b.boardLen)
	counts := make([]uint8, n)

	ok := b.ForEachPawn(func(pawn Tile) bool {
		return b.ForEachNeighbor(pawn, func(nb Tile) bool {
			i := b.fromIdx(nb)
			if b.getTileIdx(i) != TileEmpty {
				return true
			}
			if counts[i] < 2 {
				counts[i]++
				if counts[i] == 1 {
					return cb(nb)
				}
			}
			return true
		})
	})
	return ok
}

// ForEachMoveP2 visits every legal Phase-2 move: relocating one of the
// current player's pawns to an empty tile such that every pawn still
// has at least minNeighbors neighbours and the occupied tiles remain a
// single connected cluster. Iteration halts early if cb returns false.
func (b *Board) ForEachMoveP2(cb func(to, from Tile) bool) bool {
	n := int(b.boardLen) * int(b.boardLen)

	neighborCounts := make([]uint8, n)
	b.ForEachPawn(func(pawn Tile) bool {
		b.ForEachNeighbor(pawn, func(nb Tile) bool {
			i := b.fromIdx(nb)
			if neighborCounts[i] < minNeighbors+1 {
				neighborCounts[i]++
			}
			return true
		})
		return true
	})

	return b.ForEachPlayablePawn(func(from Tile) bool {
		return b.forEachMoveFrom(from, neighborCounts, cb)
	})
}

func (b *Board) forEachMoveFrom(from Tile, neighborCounts []uint8, cb func(to, from Tile) bool) bool {
	n := int(b.boardLen) * int(b.boardLen)
	fromIdx := b.fromIdx(from)

	uf := unionfind.New(n)
	b.ForEachPawn(func(pawn Tile) bool {
		pi := b.fromIdx(pawn)
		if pi == fromIdx {
			return true
		}
		b.ForEachTopLeftNeighbor(pawn, func(nb Tile) bool {
			ni := b.fromIdx(nb)
			if ni != fromIdx && b.getTileIdx(ni) != TileEmpty {
				uf.Union(uint32(pi), uint32(ni))
			}
			return true
		})
		return true
	})

	nEmpty := n - b.NPawnsInPlay()
	nPawnGroups := uf.Groups() - nEmpty - 1

	// Temporarily remove "from": every neighbour whose count drops to 1
	// becomes a tile that must regain a neighbour for the move to be
	// legal.
	nToSatisfy := 0
	b.ForEachNeighbor(from, func(nb Tile) bool {
		i := b.fromIdx(nb)
		neighborCounts[i]--
		if neighborCounts[i] == 1 && b.getTileIdx(i) != TileEmpty {
			nToSatisfy++
		}
		return true
	})

	result := true
	n32 := int(b.boardLen)
	for i := 0; i < n32*n32 && result; i++ {
		if neighborCounts[i] <= 1 {
			continue
		}
		if b.getTileIdx(i) != TileEmpty {
			continue
		}
		to := b.toIdx(i)

		nSatisfied := 0
		seenRoots := map[uint32]bool{}
		b.ForEachNeighbor(to, func(nb Tile) bool {
			ni := b.fromIdx(nb)
			if ni == fromIdx {
				return true
			}
			if neighborCounts[ni] == 1 && b.getTileIdx(ni) != TileEmpty {
				nSatisfied++
			}
			if b.getTileIdx(ni) != TileEmpty {
				seenRoots[uf.Find(uint32(ni))] = true
			}
			return true
		})

		if nSatisfied == nToSatisfy && len(seenRoots) == nPawnGroups {
			if !cb(to, from) {
				result = false
			}
		}
	}

	// Restore neighbourCounts for the next candidate "from" pawn.
	b.ForEachNeighbor(from, func(nb Tile) bool {
		i := b.fromIdx(nb)
		if neighborCounts[i] < minNeighbors+1 {
			neighborCounts[i]++
		}
		return true
	})

	return result
}
