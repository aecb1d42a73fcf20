// Package wire encodes and decodes Onoro boards to a bit-exact byte
// format: a small header (pawn capacity, turn counter, turn-to-move
// bit) followed by the board's tile grid in row-major order, two bits
// per tile.
package wire

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/onoro-engine/onoro/pkg/onoro"
)

const magic uint16 = 0x4f4e // "ON"

// Encode serializes board into its wire representation: magic, pawn
// capacity, turn counter, turn-to-move bit, then the board's
// boardLen x boardLen tile grid packed two bits per tile, row-major.
func Encode(board *onoro.Board) ([]byte, error) {
	boardLen := int(board.BoardLen())
	n := boardLen * boardLen

	var buf []byte
	buf = binary.BigEndian.AppendUint16(buf, magic)
	buf = append(buf, byte(board.NPawns()), board.Turn())
	if board.BlackToMove() {
		buf = append(buf, 1)
	} else {
		buf = append(buf, 0)
	}

	packed := make([]byte, (n*2+7)/8)
	for i := 0; i < n; i++ {
		x, y := int32(i%boardLen), int32(i/boardLen)
		s := board.GetTile(onoro.Tile{X: x, Y: y})
		bitOff := uint(i * 2)
		packed[bitOff/8] |= byte(s) << (bitOff % 8)
	}
	return append(buf, packed...), nil
}

// Decode reads a wire-format board for a game with the given pawn
// capacity. Returns an error for a bad magic number, a capacity
// mismatch, a malformed stream, or (via onoro.NewFromGrid) a tile count
// that doesn't match the turn counter, a disconnected cluster, or a
// turn-to-move bit inconsistent with the turn counter.
func Decode(r io.Reader, nPawns int) (*onoro.Board, error) {
	br := bufio.NewReader(io.LimitReader(r, 1<<20))

	var header [4]byte
	if _, err := io.ReadFull(br, header[:]); err != nil {
		return nil, fmt.Errorf("wire: reading header: %w", err)
	}
	if binary.BigEndian.Uint16(header[0:2]) != magic {
		return nil, fmt.Errorf("wire: bad magic number")
	}
	wireNPawns := int(header[2])
	turn := header[3]
	if wireNPawns != nPawns {
		return nil, fmt.Errorf("wire: encoded nPawns %v does not match requested %v", wireNPawns, nPawns)
	}

	turnBit, err := br.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("wire: reading turn-to-move bit: %w", err)
	}
	if turnBit > 1 {
		return nil, fmt.Errorf("wire: invalid turn-to-move bit %v", turnBit)
	}
	blackTurn := turnBit == 1

	boardLen := nPawns - 1
	n := boardLen * boardLen
	packed := make([]byte, (n*2+7)/8)
	if _, err := io.ReadFull(br, packed); err != nil {
		return nil, fmt.Errorf("wire: reading tile grid: %w", err)
	}

	tiles := make([]onoro.TileState, n)
	for i := 0; i < n; i++ {
		bitOff := uint(i * 2)
		tiles[i] = onoro.TileState((packed[bitOff/8] >> (bitOff % 8)) & 0x3)
	}

	board, err := onoro.NewFromGrid(nPawns, turn, blackTurn, tiles)
	if err != nil {
		return nil, fmt.Errorf("wire: %w", err)
	}
	return board, nil
}
