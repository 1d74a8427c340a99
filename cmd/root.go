package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClusterFights/jigsaw-challenge/internal/config"
	"github.com/ClusterFights/jigsaw-challenge/internal/grid"
)

var (
	cfgFile string
	width   int
	height  int
	edge    int
)

// logger writes structured diagnostics to stderr; stdout is reserved for
// puzzle artifacts and the validation verdict.
var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

var rootCmd = &cobra.Command{
	Use:   "jigsaw",
	Short: "Generate and validate interlocking jigsaw puzzles",
	Long: `jigsaw creates digital jigsaw puzzles as sets of portable bitmap
(.pbm) files, one per piece, together with a solution ledger, and validates
solver-produced ledgers against the same geometry.`,
	SilenceUsage: true,
}

// Execute runs the CLI and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file with puzzle parameters")
	rootCmd.PersistentFlags().IntVarP(&width, "width", "w", 0, "Puzzle width in pieces")
	rootCmd.PersistentFlags().IntVarP(&height, "height", "H", 0, "Puzzle height in pieces")
	rootCmd.PersistentFlags().IntVarP(&edge, "edge", "e", 0, "Piece bitmap side length (finger resolution)")
}

// resolveConfig merges the optional config file with the geometry flags.
// Flags that were set explicitly win over file values.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if cfgFile != "" {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("width") || cfg.Width == 0 {
		cfg.Width = width
	}
	if cmd.Flags().Changed("height") || cfg.Height == 0 {
		cfg.Height = height
	}
	if cmd.Flags().Changed("edge") || cfg.Edge == 0 {
		cfg.Edge = edge
	}

	if cfg.Width == 0 || cfg.Height == 0 || cfg.Edge == 0 {
		return nil, fmt.Errorf("width, height, and edge are required (flags or --config)")
	}
	if err := grid.ValidateGeometry(cfg.Width, cfg.Height, cfg.Edge); err != nil {
		return nil, err
	}
	return cfg, nil
}
