// Package hexpos implements axial coordinates on a hexagonal grid, with
// the six rotation and six reflection operators needed to express the
// symmetries of a hex tile, a hex vertex, and a hex edge midpoint.
package hexpos

import "fmt"

// HexPos is a point on the hex lattice: a pair of signed integers where
// +x sits at a 120 degree angle to +y.
type HexPos struct {
	X, Y int32
}

// Origin is the zero point of the lattice.
func Origin() HexPos {
	return HexPos{}
}

func (p HexPos) String() string {
	return fmt.Sprintf("(%v,%v)", p.X, p.Y)
}

// Add returns p+q.
func (p HexPos) Add(q HexPos) HexPos {
	return HexPos{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p HexPos) Sub(q HexPos) HexPos {
	return HexPos{p.X - q.X, p.Y - q.Y}
}

// Scale returns a*p.
func (p HexPos) Scale(a int32) HexPos {
	return HexPos{a * p.X, a * p.Y}
}

// Equals reports whether p and q are the same point.
func (p HexPos) Equals(q HexPos) bool {
	return p.X == q.X && p.Y == q.Y
}

// Sector returns the sectant p lies in, treating the origin as sector 0.
// Sector 1 is every point (x>=0, y>=0, y<x); sector 2 is sector 1 rotated
// by CR1, and so on up to sector 6.
func (p HexPos) Sector() uint32 {
	x, y := p.X, p.Y
	if x == 0 && y == 0 {
		return 0
	}
	if y < 0 || (x < 0 && y == 0) {
		switch {
		case x < y:
			return 4
		case x < 0:
			return 5
		default:
			return 6
		}
	}
	switch {
	case y < x:
		return 1
	case x > 0:
		return 2
	default:
		return 3
	}
}

// CR1 rotates 60 degrees about the center of the origin tile. It is the
// generator for all the tile-centered rotations CR1..CR5.
func (p HexPos) CR1() HexPos {
	return HexPos{p.X - p.Y, p.X}
}

func (p HexPos) CR2() HexPos { return p.CR1().CR1() }
func (p HexPos) CR3() HexPos { return p.CR2().CR1() }
func (p HexPos) CR4() HexPos { return p.CR3().CR1() }
func (p HexPos) CR5() HexPos { return p.CR4().CR1() }

// VR2 rotates 120 degrees about the top-right vertex of the origin tile.
// Note VR2 and CR1 are incompatible operators: p.CR1().CR1() != p.VR2().
func (p HexPos) VR2() HexPos {
	return HexPos{1 - p.Y, p.X - p.Y}
}

func (p HexPos) VR4() HexPos { return p.VR2().VR2() }

// ER3 rotates 180 degrees about the center of the right edge of the
// origin tile.
func (p HexPos) ER3() HexPos {
	return HexPos{1 - p.X, -p.Y}
}

// CS0 reflects p across the line through the center of the origin hex at
// angle 0 degrees. CS1..CS5 reflect across lines at n*30 degrees.
func (p HexPos) CS0() HexPos {
	return HexPos{p.X - p.Y, -p.Y}
}

func (p HexPos) CS1() HexPos { return p.CS0().CR1() }
func (p HexPos) CS2() HexPos { return p.CS0().CR2() }
func (p HexPos) CS3() HexPos { return p.CS0().CR3() }
func (p HexPos) CS4() HexPos { return p.CS0().CR4() }
func (p HexPos) CS5() HexPos { return p.CS0().CR5() }

// VS1 reflects across a line through the top-right vertex of the origin
// hex. VS3 and VS5 reflect across the other two lines through that
// vertex.
func (p HexPos) VS1() HexPos { return p.CS1() }
func (p HexPos) VS3() HexPos { return p.VS1().VR2() }
func (p HexPos) VS5() HexPos { return p.VS1().VR4() }

// ES0 reflects across a line through the center of the right edge of the
// origin hex. ES3 reflects across the perpendicular line through the
// same edge midpoint.
func (p HexPos) ES0() HexPos {
	return HexPos{p.X - p.Y, -p.Y}
}

func (p HexPos) ES3() HexPos { return p.ES0().ER3() }
