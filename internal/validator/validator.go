// Package validator replays a solution ledger onto a fresh grid and checks
// that the pieces tile the puzzle exactly once per cell.
package validator

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
	"github.com/ClusterFights/jigsaw-challenge/internal/piece"
	"github.com/ClusterFights/jigsaw-challenge/internal/solution"
)

var (
	ErrMissingPiece = errors.New("no piece file")
	ErrExtraEntries = errors.New("ledger names more pieces than the puzzle has")
)

// Validator checks solver-produced ledgers against a puzzle geometry.
// Piece files are resolved through fsys, keyed by the file names the ledger
// uses.
type Validator struct {
	width  int
	height int
	edge   int
	fsys   fs.FS
}

// New creates a validator for the given geometry.
func New(width, height, edge int, fsys fs.FS) (*Validator, error) {
	if err := grid.ValidateGeometry(width, height, edge); err != nil {
		return nil, err
	}
	return &Validator{width: width, height: height, edge: edge, fsys: fsys}, nil
}

// Validate replays the ledger onto a fresh grid.  Entry k places the named
// piece file at canonical position k under the entry's rotation; the line
// order is the only coordinate the ledger carries.
//
// A nil return means the solution is valid: every piece placed without a
// collision and every grid cell is covered.  Any other outcome (a missing
// or malformed piece file, two pieces contesting a cell, an uncovered cell,
// too many entries) is returned as the first error encountered.
func (v *Validator) Validate(ledger solution.Ledger) error {
	g := grid.New(v.width, v.height, v.edge)

	for n, entry := range ledger {
		if !g.IsValidPiece(n) {
			return fmt.Errorf("%w: got %d entries for %d pieces", ErrExtraEntries, len(ledger), g.PieceCount())
		}
		bm, err := v.readPiece(entry.File)
		if err != nil {
			return err
		}
		if err := piece.Place(g, bm, n, entry.Rotation); err != nil {
			return fmt.Errorf("piece %s: %w", entry.File, err)
		}
	}

	return g.Complete()
}

// ValidateFile reads a ledger from fsys and replays it.
func (v *Validator) ValidateFile(name string) error {
	f, err := v.fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open ledger %s: %w", name, err)
	}
	defer f.Close()

	ledger, err := solution.Read(f)
	if err != nil {
		return err
	}
	return v.Validate(ledger)
}

func (v *Validator) readPiece(name string) (piece.Bitmap, error) {
	f, err := v.fsys.Open(name)
	if err != nil {
		return piece.Bitmap{}, fmt.Errorf("%w: %s", ErrMissingPiece, name)
	}
	defer f.Close()

	bm, err := piece.DecodePBM(f)
	if err != nil {
		return piece.Bitmap{}, fmt.Errorf("piece %s: %w", name, err)
	}
	return bm, nil
}
