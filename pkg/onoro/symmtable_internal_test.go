package onoro

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSymmStateClassMatchesNamedExamples checks the classifier against
// the named loci its formula is built from directly: the origin (class
// C), a vertex point (class V, satisfying 3x=2n and 3y=n), and an edge
// midpoint (class E, satisfying 2x=n and y=0).
func TestSymmStateClassMatchesNamedExamples(t *testing.T) {
	const n = 12
	assert.Equal(t, ClassC, symmStateClass(0, 0, n))
	assert.Equal(t, ClassV, symmStateClass(8, 4, n)) // 3*8=24=2*12, 3*4=12=n
	assert.Equal(t, ClassE, symmStateClass(6, 0, n)) // 2*6=12=n, y2=0
}
