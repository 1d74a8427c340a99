package piece

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRotationMapTable pins the coordinate table for every quarter turn on
// an edge-5 piece.
func TestRotationMapTable(t *testing.T) {
	const edge = 5
	tests := []struct {
		rot    Rotation
		ik, jk int
		di, dj int
	}{
		{Rot0, 0, 0, 0, 0},
		{Rot0, 3, 1, 3, 1},
		{Rot90, 0, 0, 0, 4},
		{Rot90, 3, 1, 1, 1},
		{Rot180, 0, 0, 4, 4},
		{Rot180, 3, 1, 1, 3},
		{Rot270, 0, 0, 4, 0},
		{Rot270, 3, 1, 3, 3},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s deg (%d,%d)", tt.rot, tt.ik, tt.jk), func(t *testing.T) {
			di, dj := tt.rot.Map(tt.ik, tt.jk, edge)
			assert.Equal(t, tt.di, di)
			assert.Equal(t, tt.dj, dj)
		})
	}
}

// TestRotationMapBijective verifies each rotation permutes the edge×edge
// coordinate space with no two local coordinates landing on the same sample.
func TestRotationMapBijective(t *testing.T) {
	const edge = 4
	for rot := Rot0; rot <= Rot270; rot++ {
		seen := make(map[[2]int]bool)
		for jk := 0; jk < edge; jk++ {
			for ik := 0; ik < edge; ik++ {
				di, dj := rot.Map(ik, jk, edge)
				require.True(t, di >= 0 && di < edge && dj >= 0 && dj < edge,
					"rotation %s maps (%d,%d) out of range", rot, ik, jk)
				key := [2]int{di, dj}
				require.False(t, seen[key], "rotation %s maps two coordinates onto (%d,%d)", rot, di, dj)
				seen[key] = true
			}
		}
	}
}

// TestRotationComposition verifies that composing quarter turns agrees with
// angle arithmetic: applying 90 degrees twice reaches the same sample as a
// single 180-degree application.
func TestRotationComposition(t *testing.T) {
	const edge = 6
	for a := Rot0; a <= Rot270; a++ {
		for b := Rot0; b <= Rot270; b++ {
			sum := Rotation((int(a) + int(b)) % 4)
			for jk := 0; jk < edge; jk++ {
				for ik := 0; ik < edge; ik++ {
					mi, mj := b.Map(ik, jk, edge)
					ci, cj := a.Map(mi, mj, edge)
					si, sj := sum.Map(ik, jk, edge)
					require.Equal(t, si, ci, "%s after %s at (%d,%d)", a, b, ik, jk)
					require.Equal(t, sj, cj, "%s after %s at (%d,%d)", a, b, ik, jk)
				}
			}
		}
	}
}

// TestRotationDegrees verifies the wire encoding in both directions.
func TestRotationDegrees(t *testing.T) {
	for rot := Rot0; rot <= Rot270; rot++ {
		parsed, err := RotationFromDegrees(rot.Degrees())
		require.NoError(t, err)
		assert.Equal(t, rot, parsed)
	}

	for _, deg := range []int{-90, 45, 91, 360} {
		_, err := RotationFromDegrees(deg)
		assert.ErrorIs(t, err, ErrMalformed, "degrees %d", deg)
	}
}
