// Package zobrist builds and applies the symmetry-invariant hash tables
// used to fingerprint an Onoro board: per-tile random bitstrings
// combined with bit-permutation "appliers" that implement each group
// operation directly on the combined 64-bit hash, without rehashing
// every tile.
package zobrist

import "github.com/onoro-engine/onoro/pkg/group"

const (
	cMask uint64 = 0x0fffffffffffffff // D6: six contiguous 10-bit lanes.
	vMask uint64 = 0x7fffffffffffffff // D3: three contiguous 21-bit lanes.
	eMask uint64 = 0xffffffffffffffff // K4/C2/trivial: lanes fill all 64 bits.
)

// ApplyD6 permutes h as though the board were transformed by op, for a
// hash built from the full D6-symmetric (class C) table.
func ApplyD6(op group.D6, h uint64) uint64 {
	if op.Action == group.Rot {
		switch op.Degree {
		case 0:
			return h
		case 1:
			return d6R1(h)
		case 2:
			return d6R1(d6R1(h))
		case 3:
			return d6R1(d6R1(d6R1(h)))
		case 4:
			return d6R1(d6R1(d6R1(d6R1(h))))
		default:
			return d6R1(d6R1(d6R1(d6R1(d6R1(h)))))
		}
	}
	switch op.Degree {
	case 0:
		return d6S0(h)
	case 1:
		return d6S1(h)
	case 2:
		return d6S2(h)
	case 3:
		return d6S3(h)
	case 4:
		return d6S4(h)
	default:
		return d6S5(h)
	}
}

// ApplyD3 is ApplyD6's analogue for the D3-symmetric (class V) table.
func ApplyD3(op group.D3, h uint64) uint64 {
	if op.Action == group.Rot {
		switch op.Degree {
		case 0:
			return h
		case 1:
			return d3R1(h)
		default:
			return d3R1(d3R1(h))
		}
	}
	switch op.Degree {
	case 0:
		return d3S0(h)
	case 1:
		return d3S1(h)
	default:
		return d3S2(h)
	}
}

// ApplyK4 is ApplyD6's analogue for the K4-symmetric (class E) table.
func ApplyK4(op group.K4, h uint64) uint64 {
	switch {
	case op.A.Bit == 1 && op.B.Bit == 0:
		return k4A(h)
	case op.A.Bit == 0 && op.B.Bit == 1:
		return k4B(h)
	case op.A.Bit == 1 && op.B.Bit == 1:
		return k4C(h)
	default:
		return h
	}
}

// ApplyC2 is ApplyD6's analogue for the C2-symmetric (classes CV, CE,
// EV) tables.
func ApplyC2(op group.C2, h uint64) uint64 {
	if op.Bit == 1 {
		return c2A(h)
	}
	return h
}

// ApplyColorSwap flips the hash bit of every tile between black and
// white, used when the side to move's colour is inverted.
func ApplyColorSwap(h uint64) uint64 {
	hl := h & 0x5555555555555555
	hr := h & 0xaaaaaaaaaaaaaaaa
	return ((hl << 1) | (hr >> 1)) & eMask
}

// d6R1 rotates the hash by one sixth-turn: a 10-bit barrel rotate of
// the packed per-tile hash lanes.
func d6R1(h uint64) uint64 {
	return ((h << 10) | (h >> 50)) & cMask
}

func d6S0(h uint64) uint64 {
	b14 := h & 0x000000ffc00003ff
	b26 := h & 0x0ffc0000000ffc00
	b35 := h & 0x0003ff003ff00000

	b26 = (b26 << 40) | (b26 >> 40)
	b35 = ((b35 << 20) | (b35 >> 20)) & 0x0003ff003ff00000
	return b14 | b26 | b35
}

func d6S1(h uint64) uint64 {
	b12 := h & 0x00000000000fffff
	b36 := h & 0x0ffc00003ff00000
	b45 := h & 0x0003ffffc0000000

	b12 = ((b12 << 10) | (b12 >> 10)) & 0x00000000000fffff
	b36 = (b36 << 30) | (b36 >> 30)
	b45 = ((b45 << 10) | (b45 >> 10)) & 0x0003ffffc0000000
	return b12 | b36 | b45
}

func d6S2(h uint64) uint64 {
	b13 := h & 0x000000003ff003ff
	b25 := h & 0x0003ff00000ffc00
	b46 := h & 0x0ffc00ffc0000000

	b13 = ((b13 << 20) | (b13 >> 20)) & 0x000000003ff003ff
	b46 = ((b46 << 20) | (b46 >> 20)) & 0x0ffc00ffc0000000
	return b13 | b25 | b46
}

func d6S3(h uint64) uint64 {
	b14 := h & 0x000000ffc00003ff
	b23 := h & 0x000000003ffffc00
	b56 := h & 0x0fffff0000000000

	b14 = ((b14 << 30) | (b14 >> 30)) & 0x000000ffc00003ff
	b23 = ((b23 << 10) | (b23 >> 10)) & 0x000000003ffffc00
	b56 = ((b56 << 10) | (b56 >> 10)) & 0x0fffff0000000000
	return b14 | b23 | b56
}

func d6S4(h uint64) uint64 {
	b15 := h & 0x0003ff00000003ff
	b24 := h & 0x000000ffc00ffc00
	b36 := h & 0x0ffc00003ff00000

	b15 = (b15 << 40) | (b15 >> 40)
	b24 = ((b24 << 20) | (b24 >> 20)) & 0x000000ffc00ffc00
	return b15 | b24 | b36
}

func d6S5(h uint64) uint64 {
	b16 := h & 0x0ffc0000000003ff
	b25 := h & 0x0003ff00000ffc00
	b34 := h & 0x000000fffff00000

	b16 = (b16 << 50) | (b16 >> 50)
	b25 = (b25 << 30) | (b25 >> 30)
	b34 = ((b34 << 10) | (b34 >> 10)) & 0x000000fffff00000
	return b16 | b25 | b34
}

func d3R1(h uint64) uint64 {
	return ((h << 21) | (h >> 42)) & vMask
}

func d3S0(h uint64) uint64 {
	b1 := h & 0x00000000001fffff
	b2 := h & 0x000003ffffe00000
	b3 := h & 0x7ffffc0000000000

	b2 = b2 << 21
	b3 = b3 >> 21
	return b1 | b2 | b3
}

func d3S1(h uint64) uint64 {
	b1 := h & 0x00000000001fffff
	b2 := h & 0x000003ffffe00000
	b3 := h & 0x7ffffc0000000000

	b1 = b1 << 21
	b2 = b2 >> 21
	return b1 | b2 | b3
}

func d3S2(h uint64) uint64 {
	b13 := h & 0x7ffffc00001fffff
	b2 := h & 0x000003ffffe00000

	b13 = (b13 << 42) | (b13 >> 42)
	return b13 | b2
}

func k4A(h uint64) uint64 {
	return (h << 32) | (h >> 32)
}

func k4B(h uint64) uint64 {
	b13 := h & 0x0000ffff0000ffff
	b24 := h & 0xffff0000ffff0000

	return (b13 << 16) | (b24 >> 16)
}

func k4C(h uint64) uint64 {
	b := (h << 32) | (h >> 32)
	b = ((b & 0x0000ffff0000ffff) << 16) | ((b & 0xffff0000ffff0000) >> 16)
	return b
}

func c2A(h uint64) uint64 {
	return (h << 32) | (h >> 32)
}

// MakeD6Invariant forces h to be a fixed point of op, by replicating its
// canonical bits across every lane op would otherwise permute.
func MakeD6Invariant(op group.D6, h uint64) uint64 {
	if op.Action == group.Rot {
		return makeD6R1(h)
	}
	switch op.Degree {
	case 0:
		return makeD6S0(h)
	case 1:
		return makeD6S1(h)
	case 2:
		return makeD6S2(h)
	case 3:
		return makeD6S3(h)
	case 4:
		return makeD6S4(h)
	default:
		return makeD6S5(h)
	}
}

func makeD6R1(h uint64) uint64 {
	b := h & 0x3ff
	b = b | (b << 10)
	return b | (b << 20) | (b << 40)
}

func makeD6S0(h uint64) uint64 {
	b14 := h & 0x000000ffc00003ff
	b26 := h & 0x00000000000ffc00
	b35 := h & 0x000000003ff00000

	b26 = b26 | (b26 << 40)
	b35 = b35 | (b35 << 20)
	return b14 | b26 | b35
}

func makeD6S1(h uint64) uint64 {
	b12 := h & 0x00000000000003ff
	b36 := h & 0x000000003ff00000
	b45 := h & 0x000000ffc0000000

	b12 = b12 | (b12 << 10)
	b36 = b36 | (b36 << 30)
	b45 = b45 | (b45 << 10)
	return b12 | b36 | b45
}

func makeD6S2(h uint64) uint64 {
	b13 := h & 0x00000000000003ff
	b25 := h & 0x0003ff00000ffc00
	b46 := h & 0x000000ffc0000000

	b13 = b13 | (b13 << 20)
	b46 = b46 | (b46 << 20)
	return b13 | b25 | b46
}

func makeD6S3(h uint64) uint64 {
	b14 := h & 0x00000000000003ff
	b23 := h & 0x00000000000ffc00
	b56 := h & 0x0003ff0000000000

	b14 = b14 | (b14 << 30)
	b23 = b23 | (b23 << 10)
	b56 = b56 | (b56 << 10)
	return b14 | b23 | b56
}

func makeD6S4(h uint64) uint64 {
	b15 := h & 0x00000000000003ff
	b24 := h & 0x00000000000ffc00
	b36 := h & 0x0ffc00003ff00000

	b15 = b15 | (b15 << 40)
	b24 = b24 | (b24 << 20)
	return b15 | b24 | b36
}

func makeD6S5(h uint64) uint64 {
	b16 := h & 0x00000000000003ff
	b25 := h & 0x00000000000ffc00
	b34 := h & 0x000000003ff00000

	b16 = b16 | (b16 << 50)
	b25 = b25 | (b25 << 30)
	b34 = b34 | (b34 << 10)
	return b16 | b25 | b34
}

// MakeD3Invariant is MakeD6Invariant's analogue for D3.
func MakeD3Invariant(op group.D3, h uint64) uint64 {
	if op.Action == group.Rot {
		return makeD3R1(h)
	}
	switch op.Degree {
	case 0:
		return makeD3S0(h)
	case 1:
		return makeD3S1(h)
	default:
		return makeD3S2(h)
	}
}

func makeD3R1(h uint64) uint64 {
	b := h & 0x1fffff
	return b | (b << 21) | (b << 42)
}

func makeD3S0(h uint64) uint64 {
	b1 := h & 0x00000000001fffff
	b23 := h & 0x000003ffffe00000

	b23 = b23 | (b23 << 21)
	return b1 | b23
}

func makeD3S1(h uint64) uint64 {
	b12 := h & 0x00000000001fffff
	b3 := h & 0x7ffffc0000000000

	b12 = b12 | (b12 << 21)
	return b12 | b3
}

func makeD3S2(h uint64) uint64 {
	b13 := h & 0x00000000001fffff
	b2 := h & 0x000003ffffe00000

	b13 = b13 | (b13 << 42)
	return b13 | b2
}

// MakeK4Invariant is MakeD6Invariant's analogue for K4.
func MakeK4Invariant(op group.K4, h uint64) uint64 {
	switch {
	case op.A.Bit == 1 && op.B.Bit == 0:
		return makeK4A(h)
	case op.A.Bit == 0 && op.B.Bit == 1:
		return makeK4B(h)
	default:
		return makeK4C(h)
	}
}

func makeK4A(h uint64) uint64 {
	b12 := h & 0x00000000ffffffff
	return b12 | (b12 << 32)
}

func makeK4B(h uint64) uint64 {
	b13 := h & 0x0000ffff0000ffff
	return b13 | (b13 << 16)
}

func makeK4C(h uint64) uint64 {
	b1 := h & 0xffff
	b2 := h & 0xffff0000
	return b1 | b2 | (b2 << 16) | (b1 << 48)
}

// MakeC2Invariant is MakeD6Invariant's analogue for C2: the only
// non-identity element swaps the two 32-bit lanes, so the sole fixed
// point construction replicates the low lane into the high one.
func MakeC2Invariant(h uint64) uint64 {
	b12 := h & 0x00000000ffffffff
	return b12 | (b12 << 32)
}
