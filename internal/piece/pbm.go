package piece

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformed reports a piece bitmap or rotation that does not conform to
// the exchange format.
var ErrMalformed = errors.New("malformed piece")

// pbmMagic is the plain-text portable bitmap format tag.
const pbmMagic = "P1"

// EncodePBM writes bm as a plain PBM file:
//
//	P1
//	# p0044.pbm
//	5 5
//	11001
//	...
//
// One space-free row of 0/1 characters per bitmap row, set bits written as 1.
func EncodePBM(w io.Writer, name string, bm Bitmap) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n# %s\n%d %d\n", pbmMagic, name, bm.Edge, bm.Edge)
	for jk := 0; jk < bm.Edge; jk++ {
		for ik := 0; ik < bm.Edge; ik++ {
			if bm.At(ik, jk) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// DecodePBM parses a piece file written by EncodePBM.  Any deviation from
// the format (wrong tag, bad dimension line, non-square size, short or long
// rows, characters other than 0 and 1) fails with ErrMalformed.
func DecodePBM(r io.Reader) (Bitmap, error) {
	sc := bufio.NewScanner(r)

	tag, err := scanLine(sc)
	if err != nil {
		return Bitmap{}, err
	}
	if tag != pbmMagic {
		return Bitmap{}, fmt.Errorf("%w: format tag %q, expected %q", ErrMalformed, tag, pbmMagic)
	}

	// Comment line naming the file; content is informational only.
	if _, err := scanLine(sc); err != nil {
		return Bitmap{}, err
	}

	dims, err := scanLine(sc)
	if err != nil {
		return Bitmap{}, err
	}
	var w, h int
	if _, err := fmt.Sscanf(dims, "%d %d", &w, &h); err != nil {
		return Bitmap{}, fmt.Errorf("%w: bad dimension line %q", ErrMalformed, dims)
	}
	if w != h || w < 1 {
		return Bitmap{}, fmt.Errorf("%w: dimensions %dx%d are not a square bitmap", ErrMalformed, w, h)
	}

	bm := NewBitmap(w)
	for jk := 0; jk < h; jk++ {
		row, err := scanLine(sc)
		if err != nil {
			return Bitmap{}, err
		}
		if len(row) != w {
			return Bitmap{}, fmt.Errorf("%w: row %d has %d samples, expected %d", ErrMalformed, jk, len(row), w)
		}
		for ik := 0; ik < w; ik++ {
			switch row[ik] {
			case '0':
			case '1':
				bm.SetBit(ik, jk, true)
			default:
				return Bitmap{}, fmt.Errorf("%w: row %d contains %q, expected 0 or 1", ErrMalformed, jk, row[ik])
			}
		}
	}
	return bm, nil
}

func scanLine(sc *bufio.Scanner) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return "", fmt.Errorf("%w: unexpected end of file", ErrMalformed)
	}
	return strings.TrimRight(sc.Text(), "\r"), nil
}
