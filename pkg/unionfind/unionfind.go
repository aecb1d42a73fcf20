// Package unionfind implements a path-compressing disjoint-set union
// over small dense uint32 index spaces, used by the Onoro Phase-2 move
// generator to check whether removing a candidate pawn would disconnect
// the remaining cluster.
package unionfind

// UnionFind is an array-backed disjoint-set union. The zero value is not
// usable; construct with New.
type UnionFind struct {
	parent []uint32
	groups int
}

// New creates a UnionFind over n singleton groups {0}, {1}, ..., {n-1}.
func New(n int) *UnionFind {
	parent := make([]uint32, n)
	for i := range parent {
		parent[i] = uint32(i)
	}
	return &UnionFind{parent: parent, groups: n}
}

// Find returns the root of x's group, compressing the path traversed.
func (u *UnionFind) Find(x uint32) uint32 {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Union merges the groups containing a and b and returns the resulting
// root. A no-op, returning the shared root, if a and b are already in
// the same group.
func (u *UnionFind) Union(a, b uint32) uint32 {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return ra
	}
	u.parent[rb] = ra
	u.groups--
	return ra
}

// Groups returns the number of disjoint groups remaining.
func (u *UnionFind) Groups() int {
	return u.groups
}
