// Package group implements the four closed symmetry kernels used by the
// Onoro hash and board algebra: the dihedral groups D6 and D3, the Klein
// four-group K4 (= C2 x C2), and C2 itself. Each kernel is a distinct
// value type of the same shape -- order, ordinal, inverse, and
// multiplication -- rather than a single open hierarchy, so dispatch on
// symmetry class can pick the right kernel statically.
package group

import "strconv"

// Action distinguishes a dihedral rotation from a reflection.
type Action uint8

const (
	Rot Action = iota
	Refl
)

// D6 is the dihedral group of order 12: rotations and reflections of a
// regular hexagon, indexed mod 6.
type D6 struct {
	Action Action
	Degree uint32
}

func (e D6) Ordinal() int {
	if e.Action == Rot {
		return int(e.Degree)
	}
	return int(e.Degree) + 6
}

func D6FromOrdinal(ord int) D6 {
	if ord < 6 {
		return D6{Rot, uint32(ord)}
	}
	return D6{Refl, uint32(ord - 6)}
}

func (D6) Order() int { return 12 }

func (e D6) Inverse() D6 {
	if e.Action == Rot {
		return D6{Rot, (6 - e.Degree) % 6}
	}
	return e
}

// Mul computes e*f, the dihedral composition rule: rot*rot and
// rot*refl add degrees mod N; refl*rot and refl*refl subtract.
func (e D6) Mul(f D6) D6 {
	const n = 6
	switch e.Action {
	case Rot:
		switch f.Action {
		case Rot:
			return D6{Rot, (e.Degree + f.Degree) % n}
		default:
			return D6{Refl, (e.Degree + f.Degree) % n}
		}
	default:
		switch f.Action {
		case Rot:
			return D6{Refl, (n + e.Degree - f.Degree) % n}
		default:
			return D6{Rot, (n + e.Degree - f.Degree) % n}
		}
	}
}

func (e D6) String() string {
	if e.Action == Rot {
		return "r" + strconv.Itoa(int(e.Degree))
	}
	return "s" + strconv.Itoa(int(e.Degree))
}

// D3 is the dihedral group of order 6, indexed mod 3.
type D3 struct {
	Action Action
	Degree uint32
}

func (e D3) Ordinal() int {
	if e.Action == Rot {
		return int(e.Degree)
	}
	return int(e.Degree) + 3
}

func D3FromOrdinal(ord int) D3 {
	if ord < 3 {
		return D3{Rot, uint32(ord)}
	}
	return D3{Refl, uint32(ord - 3)}
}

func (D3) Order() int { return 6 }

func (e D3) Inverse() D3 {
	if e.Action == Rot {
		return D3{Rot, (3 - e.Degree) % 3}
	}
	return e
}

func (e D3) Mul(f D3) D3 {
	const n = 3
	switch e.Action {
	case Rot:
		switch f.Action {
		case Rot:
			return D3{Rot, (e.Degree + f.Degree) % n}
		default:
			return D3{Refl, (e.Degree + f.Degree) % n}
		}
	default:
		switch f.Action {
		case Rot:
			return D3{Refl, (n + e.Degree - f.Degree) % n}
		default:
			return D3{Rot, (n + e.Degree - f.Degree) % n}
		}
	}
}

func (e D3) String() string {
	if e.Action == Rot {
		return "r" + strconv.Itoa(int(e.Degree))
	}
	return "s" + strconv.Itoa(int(e.Degree))
}

// C2 is the group of order 2: identity and a single involution.
type C2 struct {
	Bit uint32 // 0 or 1
}

func (e C2) Ordinal() int      { return int(e.Bit) }
func C2FromOrdinal(ord int) C2 { return C2{uint32(ord & 1)} }
func (C2) Order() int          { return 2 }
func (e C2) Inverse() C2       { return e }
func (e C2) Mul(f C2) C2       { return C2{e.Bit ^ f.Bit} }
func (e C2) String() string {
	if e.Bit == 0 {
		return "e"
	}
	return "a"
}

// K4 is the Klein four-group C2 x C2: identity plus three commuting,
// self-inverse involutions a, b, c = a*b.
type K4 struct {
	A, B C2
}

func (e K4) Ordinal() int { return e.A.Ordinal() + 2*e.B.Ordinal() }

func K4FromOrdinal(ord int) K4 {
	return K4{C2{uint32(ord & 1)}, C2{uint32((ord >> 1) & 1)}}
}

func (K4) Order() int    { return 4 }
func (e K4) Inverse() K4 { return e }
func (e K4) Mul(f K4) K4 {
	return K4{e.A.Mul(f.A), e.B.Mul(f.B)}
}

func (e K4) String() string {
	switch e.Ordinal() {
	case 0:
		return "e"
	case 1:
		return "a"
	case 2:
		return "b"
	default:
		return "c"
	}
}

