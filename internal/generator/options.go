package generator

// Options configures puzzle generation.
type Options struct {
	Width  int   // puzzle width in pieces
	Height int   // puzzle height in pieces
	Edge   int   // piece bitmap side length ("finger resolution")
	Seed   int64 // Seed for reproducible puzzles (0 = time-based)
}

// DefaultOptions returns generation options for the given geometry.
func DefaultOptions(width, height, edge int) *Options {
	return &Options{
		Width:  width,
		Height: height,
		Edge:   edge,
		Seed:   0,
	}
}
