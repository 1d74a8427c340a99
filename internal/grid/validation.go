package grid

import (
	"errors"
	"fmt"
)

// Geometry bounds.  The limits keep grid and bitmap sizes sane; correctness
// does not depend on them.
const (
	MinWidth  = 2
	MaxWidth  = 500
	MinHeight = 2
	MaxHeight = 500
	MinEdge   = 2
	MaxEdge   = 8
)

var (
	ErrInvalidGeometry = errors.New("invalid puzzle geometry")
	ErrCollision       = errors.New("collision")
	ErrIncomplete      = errors.New("missing bit")
)

// ValidateGeometry checks puzzle dimensions before any grid work begins.
func ValidateGeometry(width, height, edge int) error {
	if width < MinWidth || width > MaxWidth {
		return fmt.Errorf("%w: width %d must be in range [%d, %d]", ErrInvalidGeometry, width, MinWidth, MaxWidth)
	}
	if height < MinHeight || height > MaxHeight {
		return fmt.Errorf("%w: height %d must be in range [%d, %d]", ErrInvalidGeometry, height, MinHeight, MaxHeight)
	}
	if edge < MinEdge || edge > MaxEdge {
		return fmt.Errorf("%w: edge %d must be in range [%d, %d]", ErrInvalidGeometry, edge, MinEdge, MaxEdge)
	}
	return nil
}

// Complete reports whether every cell has a resolved owner.  It returns nil
// for a fully covered grid, or an ErrIncomplete naming the first uncovered
// cell in row-major scan order.
func (g *Grid) Complete() error {
	for j := 0; j < g.gh; j++ {
		for i := 0; i < g.gw; i++ {
			if g.At(i, j) == Unclaimed {
				return fmt.Errorf("%w at grid location j=%d i=%d", ErrIncomplete, j, i)
			}
		}
	}
	return nil
}
