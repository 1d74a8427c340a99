package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/ClusterFights/jigsaw-challenge/internal/generator"
	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
)

var (
	seed      int64
	outputDir string
	printGrid bool
	skipSVG   bool
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a jigsaw puzzle",
		Long: `Generate a jigsaw puzzle: one .pbm bitmap file per piece, a solution
ledger, and an SVG outline of the solved puzzle.

Examples:
  jigsaw gen -w 3 -H 3 -e 5
  jigsaw gen -w 10 -H 8 -e 7 --seed 42 -o puzzle/
  jigsaw gen --config puzzle.yaml --print-grid`,
		RunE: runGen,
	}

	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible puzzles (0 = time-based)")
	genCmd.Flags().StringVarP(&outputDir, "dir", "o", "", "Output directory (default current directory)")
	genCmd.Flags().BoolVar(&printGrid, "print-grid", false, "Print the resolved ownership grid to stdout")
	genCmd.Flags().BoolVar(&skipSVG, "no-svg", false, "Skip the solution.svg outline")

	rootCmd.AddCommand(genCmd)
}

func runGen(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	opts := generator.DefaultOptions(cfg.Width, cfg.Height, cfg.Edge)
	opts.Seed = seed
	if opts.Seed == 0 {
		opts.Seed = cfg.Seed
	}

	dir := outputDir
	if dir == "" {
		dir = cfg.Dir
	}
	if dir == "" {
		dir = "."
	}

	start := time.Now()
	puzzle, err := generator.New(opts).Generate()
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := puzzle.WriteFiles(dir); err != nil {
		return err
	}
	if !skipSVG {
		if err := writeSVG(filepath.Join(dir, "solution.svg"), puzzle.Grid); err != nil {
			return err
		}
	}

	if printGrid {
		fmt.Print(puzzle.Grid.Format())
	}

	logger.Info("generated puzzle",
		"width", cfg.Width, "height", cfg.Height, "edge", cfg.Edge,
		"pieces", len(puzzle.Pieces), "dir", dir,
		"elapsed", time.Since(start))
	return nil
}

// SVG rendering constants: 10mm per grid sample, 20mm border around the
// whole puzzle.
const (
	mmPerSample = 10
	svgBorder   = 20
)

// writeSVG saves the solved puzzle outline as an SVG file: the outer border
// plus a line segment wherever ownership changes between adjacent samples.
func writeSVG(path string, g *grid.Grid) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create SVG file: %w", err)
	}
	defer f.Close()

	gw, gh := g.SampleCols(), g.SampleRows()
	w := gw*mmPerSample + 2*svgBorder
	h := gh*mmPerSample + 2*svgBorder

	fmt.Fprintf(f, "<svg width='%dmm' height='%dmm'\n", w, h)
	fmt.Fprintf(f, "viewBox='0 0 %d %d'\n", w, h)
	fmt.Fprintf(f, "stroke-width='1' stroke='rgb(0,0,0)'>\n\n")

	line := func(x1, y1, x2, y2 int) {
		fmt.Fprintf(f, "<line x1='%d' y1='%d' x2='%d' y2='%d'/>\n", x1, y1, x2, y2)
	}

	// Puzzle outline.
	line(svgBorder, svgBorder, svgBorder+gw*mmPerSample, svgBorder)
	line(svgBorder, svgBorder+gh*mmPerSample, svgBorder+gw*mmPerSample, svgBorder+gh*mmPerSample)
	line(svgBorder, svgBorder, svgBorder, svgBorder+gh*mmPerSample)
	line(svgBorder+gw*mmPerSample, svgBorder, svgBorder+gw*mmPerSample, svgBorder+gh*mmPerSample)
	fmt.Fprintln(f)

	// Vertical segments at horizontal ownership transitions.
	for j := 0; j < gh; j++ {
		for i := 0; i < gw-1; i++ {
			if g.At(i, j) != g.At(i+1, j) {
				x := svgBorder + (i+1)*mmPerSample
				y := svgBorder + j*mmPerSample
				line(x, y, x, y+mmPerSample)
			}
		}
	}

	// Horizontal segments at vertical ownership transitions.
	for i := 0; i < gw; i++ {
		for j := 0; j < gh-1; j++ {
			if g.At(i, j) != g.At(i, j+1) {
				x := svgBorder + i*mmPerSample
				y := svgBorder + (j+1)*mmPerSample
				line(x, y, x+mmPerSample, y)
			}
		}
	}

	fmt.Fprintln(f, "</svg>")
	return nil
}
