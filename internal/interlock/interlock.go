// Package interlock implements randomized resolution of the shared seams and
// corners between adjacent jigsaw pieces.  It fills a grid with the known
// piece-body ownership first, then resolves every contested cell with a
// random choice among its already-resolved neighbors.
package interlock

import (
	"math/rand"

	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
)

// Resolve fills g completely: after it returns, every cell owns a definite
// piece index and no Unclaimed sentinel survives.
//
// The passes run in a strict order because later passes read values written
// by earlier ones:
//
//  1. body ownership for every cell not on a shared seam,
//  2. vertical seam columns, each cell copying its left or right neighbor,
//  3. horizontal seam rows, each cell copying its top or bottom neighbor,
//  4. seam intersections, each cell copying one of its four neighbors.
//
// The algorithm is total: every contested cell has all the neighbors it may
// copy resolved by a prior pass, so no failure mode exists.
func Resolve(g *grid.Grid, rng *rand.Rand) {
	initBodies(g)
	resolveVerticalSeams(g, rng)
	resolveHorizontalSeams(g, rng)
	resolveCorners(g, rng)
}

// initBodies assigns every cell that exactly one piece can own: the piece
// interiors and the outer borders of the whole puzzle.  Cells on a seam
// shared with a neighboring piece are skipped and stay Unclaimed.
func initBodies(g *grid.Grid) {
	width, height, edge := g.Width(), g.Height(), g.Edge()

	for j := 0; j < height; j++ {
		js := j * (edge - 1)
		for i := 0; i < width; i++ {
			is := i * (edge - 1)
			for jk := 0; jk < edge; jk++ {
				for ik := 0; ik < edge; ik++ {
					// Skip samples contested with a neighboring piece.
					if ik == 0 && i != 0 {
						continue
					}
					if jk == 0 && j != 0 {
						continue
					}
					if ik == edge-1 && i != width-1 {
						continue
					}
					if jk == edge-1 && j != height-1 {
						continue
					}
					g.Set(is+ik, js+jk, i+j*width)
				}
			}
		}
	}
}

// resolveVerticalSeams walks every interior seam column and flips a coin per
// cell: copy the left neighbor or the right neighbor.
func resolveVerticalSeams(g *grid.Grid, rng *rand.Rand) {
	step := g.Edge() - 1
	for ik := step; ik < g.SampleCols()-1; ik += step {
		for jk := 0; jk < g.SampleRows(); jk++ {
			if rng.Intn(2) == 0 {
				g.Set(ik, jk, g.At(ik-1, jk))
			} else {
				g.Set(ik, jk, g.At(ik+1, jk))
			}
		}
	}
}

// resolveHorizontalSeams is the symmetric pass over interior seam rows,
// copying the top or bottom neighbor.
func resolveHorizontalSeams(g *grid.Grid, rng *rand.Rand) {
	step := g.Edge() - 1
	for jk := step; jk < g.SampleRows()-1; jk += step {
		for ik := 0; ik < g.SampleCols(); ik++ {
			if rng.Intn(2) == 0 {
				g.Set(ik, jk, g.At(ik, jk-1))
			} else {
				g.Set(ik, jk, g.At(ik, jk+1))
			}
		}
	}
}

// resolveCorners picks one of the four orthogonal neighbors for every cell at
// the intersection of an interior seam column and row.  The seam passes have
// already resolved all four neighbors, so the copied value is always final.
func resolveCorners(g *grid.Grid, rng *rand.Rand) {
	step := g.Edge() - 1
	for jk := step; jk < g.SampleRows()-1; jk += step {
		for ik := step; ik < g.SampleCols()-1; ik += step {
			switch rng.Intn(4) {
			case 0:
				g.Set(ik, jk, g.At(ik-1, jk))
			case 1:
				g.Set(ik, jk, g.At(ik+1, jk))
			case 2:
				g.Set(ik, jk, g.At(ik, jk+1))
			default:
				g.Set(ik, jk, g.At(ik, jk-1))
			}
		}
	}
}
