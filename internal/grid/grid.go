// Package grid implements the expanded sample grid that backs jigsaw
// generation and validation.  Pieces interlock, so an edge×edge piece next to
// an interlocking edge×edge piece spans a shared seam; the grid stores piece
// ownership at that sub-piece resolution.
package grid

import (
	"fmt"
	"strings"
)

// Unclaimed marks a cell that no piece owns yet.
const Unclaimed = -1

// Cols returns the sample-grid width for a puzzle of the given width in
// pieces: adjacent pieces overlap by one sample column per seam.
func Cols(width, edge int) int {
	return width*(edge-1) + 1
}

// Rows returns the sample-grid height for a puzzle of the given height in
// pieces.
func Rows(height, edge int) int {
	return height*(edge-1) + 1
}

// Grid is a dense two-dimensional array of piece indices.  Each cell holds
// either Unclaimed or the row-major index of the piece that owns the sample.
//
// The full gw×gh array wastes memory compared to storing only the seam and
// border cells, but it keeps the interlock computation and the collision
// checks straightforward.
type Grid struct {
	width  int // puzzle width in pieces
	height int // puzzle height in pieces
	edge   int // piece bitmap side length
	gw     int // sample columns
	gh     int // sample rows
	cells  []int
}

// New allocates a Grid with every cell Unclaimed.
// Geometry must already have been checked with ValidateGeometry; New panics
// on nonsensical dimensions because that is a programming error, not a
// runtime condition.
func New(width, height, edge int) *Grid {
	if width < 2 || height < 2 || edge < 2 {
		panic(fmt.Sprintf("grid: invalid geometry %dx%d edge %d", width, height, edge))
	}
	g := &Grid{
		width:  width,
		height: height,
		edge:   edge,
		gw:     Cols(width, edge),
		gh:     Rows(height, edge),
	}
	g.cells = make([]int, g.gw*g.gh)
	for x := range g.cells {
		g.cells[x] = Unclaimed
	}
	return g
}

// Width returns the puzzle width in pieces.
func (g *Grid) Width() int { return g.width }

// Height returns the puzzle height in pieces.
func (g *Grid) Height() int { return g.height }

// Edge returns the piece bitmap side length.
func (g *Grid) Edge() int { return g.edge }

// SampleCols returns the grid width in samples.
func (g *Grid) SampleCols() int { return g.gw }

// SampleRows returns the grid height in samples.
func (g *Grid) SampleRows() int { return g.gh }

// PieceCount returns the number of pieces in the puzzle.
func (g *Grid) PieceCount() int { return g.width * g.height }

// IsValidPiece reports whether n is a piece index for this puzzle.
func (g *Grid) IsValidPiece(n int) bool {
	return n >= 0 && n < g.PieceCount()
}

// PieceOrigin returns the sample coordinates of piece n's top-left corner.
// Piece indices are row-major: n = i + j*width.
func (g *Grid) PieceOrigin(n int) (is, js int) {
	i := n % g.width
	j := n / g.width
	return i * (g.edge - 1), j * (g.edge - 1)
}

// Offset maps sample coordinates to the linear cell index.
func (g *Grid) Offset(i, j int) int {
	return i + j*g.gw
}

// At returns the owner of the cell at sample coordinates (i, j).
func (g *Grid) At(i, j int) int {
	return g.cells[g.Offset(i, j)]
}

// Set assigns a cell unconditionally.  Interlock resolution uses this to
// overwrite seam and corner sentinels.
func (g *Grid) Set(i, j, piece int) {
	g.cells[g.Offset(i, j)] = piece
}

// Claim assigns a cell to piece, failing if another piece already owns it.
// This is the primary integrity check during ledger replay.
func (g *Grid) Claim(i, j, piece int) error {
	x := g.Offset(i, j)
	if g.cells[x] != Unclaimed {
		return fmt.Errorf("%w: pieces %d and %d at j=%d i=%d", ErrCollision, g.cells[x], piece, j, i)
	}
	g.cells[x] = piece
	return nil
}

// Format returns a human-readable dump of the grid, one row of space-padded
// piece indices per line.  Unclaimed cells print as a question mark.
func (g *Grid) Format() string {
	var sb strings.Builder
	for j := 0; j < g.gh; j++ {
		for i := 0; i < g.gw; i++ {
			v := g.At(i, j)
			if v == Unclaimed {
				sb.WriteString(" ? ")
			} else {
				fmt.Fprintf(&sb, "%2d ", v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
