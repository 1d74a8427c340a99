// Package generator orchestrates jigsaw puzzle creation: it resolves the
// interlocked grid, assigns each piece a random file identifier and rotation,
// and serializes the pieces together with their answer-key ledger.
package generator

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
	"github.com/ClusterFights/jigsaw-challenge/internal/interlock"
	"github.com/ClusterFights/jigsaw-challenge/internal/piece"
	"github.com/ClusterFights/jigsaw-challenge/internal/solution"
)

// Generator creates jigsaw puzzles.
type Generator struct {
	options *Options
	rng     *rand.Rand
}

// New creates a puzzle generator with the given options.
// Every random decision (seam coins, the file-identifier permutation, the
// per-piece rotations) is drawn from one source seeded here, so the same
// seed reproduces the puzzle exactly.
func New(options *Options) *Generator {
	seed := options.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		options: options,
		rng:     rand.New(rand.NewSource(seed)),
	}
}

// Piece is one serialized puzzle piece.
type Piece struct {
	Index    int // canonical row-major position
	File     string
	Rotation piece.Rotation
	Bitmap   piece.Bitmap
}

// Puzzle is a fully generated jigsaw: the resolved ownership grid plus the
// serialized pieces in canonical position order.
type Puzzle struct {
	Grid   *grid.Grid
	Pieces []Piece
}

// Generate creates a new jigsaw puzzle.
func (g *Generator) Generate() (*Puzzle, error) {
	o := g.options
	if err := grid.ValidateGeometry(o.Width, o.Height, o.Edge); err != nil {
		return nil, err
	}

	gr := grid.New(o.Width, o.Height, o.Edge)
	interlock.Resolve(gr, g.rng)

	npiece := gr.PieceCount()
	ids := g.shuffleIdentifiers(npiece)

	pieces := make([]Piece, npiece)
	for n := 0; n < npiece; n++ {
		rot := piece.RandomRotation(g.rng)
		pieces[n] = Piece{
			Index:    n,
			File:     PieceFileName(ids[n]),
			Rotation: rot,
			Bitmap:   piece.Serialize(gr, n, rot),
		}
	}

	return &Puzzle{Grid: gr, Pieces: pieces}, nil
}

// shuffleIdentifiers assigns file identifiers to canonical positions with a
// repeated-swap shuffle.  Not a uniform permutation, but always a bijection,
// which is the property the validator depends on.
func (g *Generator) shuffleIdentifiers(npiece int) []int {
	ids := make([]int, npiece)
	for n := range ids {
		ids[n] = n
	}
	for n := range ids {
		m := g.rng.Intn(npiece)
		ids[n], ids[m] = ids[m], ids[n]
	}
	return ids
}

// PieceFileName returns the bitmap file name for a file identifier.
func PieceFileName(id int) string {
	return fmt.Sprintf("p%04d.pbm", id)
}

// Ledger returns the answer key: one entry per canonical position, in order.
func (p *Puzzle) Ledger() solution.Ledger {
	l := make(solution.Ledger, len(p.Pieces))
	for n, pc := range p.Pieces {
		l[n] = solution.Entry{File: pc.File, Rotation: pc.Rotation}
	}
	return l
}

// WriteFiles saves the puzzle under dir: one PBM file per piece and the
// solution ledger.
func (p *Puzzle) WriteFiles(dir string) error {
	for _, pc := range p.Pieces {
		if err := writePBM(filepath.Join(dir, pc.File), pc.File, pc.Bitmap); err != nil {
			return err
		}
	}

	f, err := os.Create(filepath.Join(dir, solution.LedgerFile))
	if err != nil {
		return fmt.Errorf("failed to create ledger file: %w", err)
	}
	defer f.Close()
	if err := p.Ledger().Write(f); err != nil {
		return fmt.Errorf("failed to write ledger: %w", err)
	}
	return nil
}

func writePBM(path, name string, bm piece.Bitmap) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create piece file: %w", err)
	}
	defer f.Close()
	if err := piece.EncodePBM(f, name, bm); err != nil {
		return fmt.Errorf("failed to write piece %s: %w", name, err)
	}
	return nil
}
