package piece

import (
	"fmt"

	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
)

// Bitmap is a square boolean image of one piece, row-major.
type Bitmap struct {
	Edge int
	bits []bool
}

// NewBitmap returns an all-zero edge×edge bitmap.
func NewBitmap(edge int) Bitmap {
	return Bitmap{Edge: edge, bits: make([]bool, edge*edge)}
}

// At returns the bit at bitmap coordinates (ik, jk).
func (b Bitmap) At(ik, jk int) bool {
	return b.bits[ik+jk*b.Edge]
}

// SetBit sets the bit at bitmap coordinates (ik, jk).
func (b Bitmap) SetBit(ik, jk int, v bool) {
	b.bits[ik+jk*b.Edge] = v
}

// Ones returns the number of set bits.
func (b Bitmap) Ones() int {
	n := 0
	for _, v := range b.bits {
		if v {
			n++
		}
	}
	return n
}

// Serialize reads piece n out of a resolved grid under rotation rot.  A bit
// is set iff the corresponding sample is owned by n.
func Serialize(g *grid.Grid, n int, rot Rotation) Bitmap {
	edge := g.Edge()
	is, js := g.PieceOrigin(n)
	bm := NewBitmap(edge)
	for jk := 0; jk < edge; jk++ {
		for ik := 0; ik < edge; ik++ {
			di, dj := rot.Map(ik, jk, edge)
			bm.SetBit(ik, jk, g.At(is+di, js+dj) == n)
		}
	}
	return bm
}

// Place claims the cells of bitmap bm for piece n on g, applying the same
// rotation mapping Serialize used.  It fails with grid.ErrCollision if
// another piece already owns one of the cells, and with ErrMalformed if the
// bitmap size does not match the grid's edge.
func Place(g *grid.Grid, bm Bitmap, n int, rot Rotation) error {
	edge := g.Edge()
	if bm.Edge != edge {
		return fmt.Errorf("%w: bitmap is %dx%d, expected %dx%d", ErrMalformed, bm.Edge, bm.Edge, edge, edge)
	}
	is, js := g.PieceOrigin(n)
	for jk := 0; jk < edge; jk++ {
		for ik := 0; ik < edge; ik++ {
			if !bm.At(ik, jk) {
				continue
			}
			di, dj := rot.Map(ik, jk, edge)
			if err := g.Claim(is+di, js+dj, n); err != nil {
				return err
			}
		}
	}
	return nil
}
