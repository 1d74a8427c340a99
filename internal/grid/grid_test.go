package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSampleDimensions verifies the seam-overlap size formula, including
// the documented 3x3 edge-5 scenario.
func TestSampleDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		edge          int
		gw, gh        int
	}{
		{"3x3 edge 5", 3, 3, 5, 13, 13},
		{"10x8 edge 7", 10, 8, 7, 61, 49},
		{"2x2 edge 2", 2, 2, 2, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.gw, Cols(tt.width, tt.edge))
			assert.Equal(t, tt.gh, Rows(tt.height, tt.edge))

			g := New(tt.width, tt.height, tt.edge)
			assert.Equal(t, tt.gw, g.SampleCols())
			assert.Equal(t, tt.gh, g.SampleRows())
			assert.Equal(t, tt.width*tt.height, g.PieceCount())
		})
	}
}

// TestNewStartsUnclaimed verifies a fresh grid holds only the sentinel.
func TestNewStartsUnclaimed(t *testing.T) {
	g := New(3, 2, 4)
	for j := 0; j < g.SampleRows(); j++ {
		for i := 0; i < g.SampleCols(); i++ {
			require.Equal(t, Unclaimed, g.At(i, j))
		}
	}
}

// TestPieceOrigin verifies row-major piece indexing on a non-square puzzle.
// Width and height must not be interchangeable in the derivation.
func TestPieceOrigin(t *testing.T) {
	g := New(4, 2, 5) // 8 pieces, indices 0..7

	tests := []struct {
		n      int
		is, js int
	}{
		{0, 0, 0},
		{3, 12, 0}, // last piece of the first row
		{4, 0, 4},  // first piece of the second row
		{7, 12, 4},
	}
	for _, tt := range tests {
		is, js := g.PieceOrigin(tt.n)
		assert.Equal(t, tt.is, is, "piece %d column origin", tt.n)
		assert.Equal(t, tt.js, js, "piece %d row origin", tt.n)
	}
}

// TestIsValidPiece verifies the piece index range check.
func TestIsValidPiece(t *testing.T) {
	g := New(3, 3, 5)
	assert.True(t, g.IsValidPiece(0))
	assert.True(t, g.IsValidPiece(8))
	assert.False(t, g.IsValidPiece(-1))
	assert.False(t, g.IsValidPiece(9))
}

// TestClaimCollision verifies that claiming an occupied cell fails and
// reports both contesting piece indices.
func TestClaimCollision(t *testing.T) {
	g := New(2, 2, 3)

	require.NoError(t, g.Claim(1, 1, 0))
	assert.Equal(t, 0, g.At(1, 1))

	err := g.Claim(1, 1, 3)
	require.ErrorIs(t, err, ErrCollision)
	assert.Contains(t, err.Error(), "pieces 0 and 3")

	// The original owner keeps the cell.
	assert.Equal(t, 0, g.At(1, 1))
}

// TestComplete verifies the coverage scan names the first uncovered cell.
func TestComplete(t *testing.T) {
	g := New(2, 2, 2)
	for j := 0; j < g.SampleRows(); j++ {
		for i := 0; i < g.SampleCols(); i++ {
			g.Set(i, j, 0)
		}
	}
	require.NoError(t, g.Complete())

	g.Set(2, 1, Unclaimed)
	err := g.Complete()
	require.ErrorIs(t, err, ErrIncomplete)
	assert.Contains(t, err.Error(), "j=1 i=2")
}

// TestValidateGeometry verifies the configuration bounds.
func TestValidateGeometry(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		edge          int
		ok            bool
	}{
		{"minimum", 2, 2, 2, true},
		{"maximum", 500, 500, 8, true},
		{"typical", 10, 8, 7, true},
		{"width too small", 1, 2, 5, false},
		{"width too large", 501, 2, 5, false},
		{"height too small", 2, 1, 5, false},
		{"height too large", 2, 501, 5, false},
		{"edge too small", 3, 3, 1, false},
		{"edge too large", 3, 3, 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGeometry(tt.width, tt.height, tt.edge)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidGeometry)
			}
		})
	}
}
