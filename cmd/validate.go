package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ClusterFights/jigsaw-challenge/internal/solution"
	"github.com/ClusterFights/jigsaw-challenge/internal/validator"
)

var (
	solutionFile string
	piecesDir    string
)

func init() {
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a jigsaw solution ledger",
		Long: `Validate a solver-produced solution ledger against a puzzle geometry.

The ledger lists one piece per line in row-major order, as "<file> <degrees>".
Every referenced .pbm file is placed on a fresh grid at its line's canonical
position; the solution is valid when no two pieces collide and every grid
cell is covered.

Prints "valid" and exits 0, or "invalid -- <detail>" and exits 1.

Examples:
  jigsaw validate -w 3 -H 3 -e 5
  jigsaw validate -w 10 -H 8 -e 7 -d puzzle/ -s attempt.txt`,
		RunE: runValidate,
	}

	validateCmd.Flags().StringVarP(&solutionFile, "solution", "s", solution.LedgerFile, "Solution ledger file to validate")
	validateCmd.Flags().StringVarP(&piecesDir, "dir", "d", ".", "Directory holding the piece .pbm files")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	f, err := os.Open(solutionFile)
	if err != nil {
		return fmt.Errorf("failed to open solution file: %w", err)
	}
	defer f.Close()

	ledger, err := solution.Read(f)
	if err != nil {
		return err
	}

	v, err := validator.New(cfg.Width, cfg.Height, cfg.Edge, os.DirFS(piecesDir))
	if err != nil {
		return err
	}

	// The verdict goes to stdout and doubles as the exit status, matching
	// the ledger exchange protocol solvers script against.
	if err := v.Validate(ledger); err != nil {
		fmt.Printf("invalid -- %v\n", err)
		os.Exit(1)
	}
	fmt.Println("valid")
	return nil
}
