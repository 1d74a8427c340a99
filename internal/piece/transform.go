// Package piece implements the rotation-aware codec between a piece's local
// bitmap space and the grid's sample space, plus the PBM text format the
// pieces are exchanged in.
package piece

import (
	"fmt"
	"math/rand"
)

// Rotation is a placement rotation in quarter turns.  On the wire it travels
// as counterclockwise degrees: the amount a solver must rotate the piece
// before placing it.
type Rotation int

const (
	Rot0 Rotation = iota
	Rot90
	Rot180
	Rot270
)

// Degrees returns the wire representation of r.
func (r Rotation) Degrees() int { return int(r) * 90 }

func (r Rotation) String() string { return fmt.Sprintf("%d", r.Degrees()) }

// RotationFromDegrees parses a wire rotation.  Only the four quarter-turn
// values are legal.
func RotationFromDegrees(deg int) (Rotation, error) {
	switch deg {
	case 0, 90, 180, 270:
		return Rotation(deg / 90), nil
	}
	return 0, fmt.Errorf("%w: rotation %d is not one of 0, 90, 180, 270", ErrMalformed, deg)
}

// RandomRotation draws a rotation uniformly from the four quarter turns.
func RandomRotation(rng *rand.Rand) Rotation {
	return Rotation(rng.Intn(4))
}

// Map transforms the local bitmap coordinate (ik, jk) of an edge×edge piece
// into its offset from the piece origin under rotation r.
//
// Serialization and deserialization both apply this exact mapping in the
// same direction: under a given rotation a bitmap coordinate always names
// the same physical sample, no matter which side touches it.  Do not invert
// the table when reading pieces back.
func (r Rotation) Map(ik, jk, edge int) (di, dj int) {
	switch r {
	case Rot90:
		return jk, edge - 1 - ik
	case Rot180:
		return edge - 1 - ik, edge - 1 - jk
	case Rot270:
		return edge - 1 - jk, ik
	default:
		return ik, jk
	}
}
