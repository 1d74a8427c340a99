// Package solution implements the answer-key ledger that pairs a generated
// puzzle with its canonical solution.
package solution

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ClusterFights/jigsaw-challenge/internal/piece"
)

// ErrMalformedLedger reports a solution file that does not conform to the
// line format.
var ErrMalformedLedger = errors.New("malformed ledger")

// LedgerFile is the conventional answer-key file name.
const LedgerFile = "solution.txt"

// Entry pairs one piece file with the counterclockwise rotation to apply
// before placement.
type Entry struct {
	File     string
	Rotation piece.Rotation
}

// Ledger is the ordered answer key.  Entry k corresponds to canonical
// row-major position k; the line order itself carries the coordinate, so a
// reordered ledger describes a different solution.
type Ledger []Entry

// Write emits one "<file> <degrees>" line per entry.
func (l Ledger) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, e := range l {
		fmt.Fprintf(bw, "%s %d\n", e.File, e.Rotation.Degrees())
	}
	return bw.Flush()
}

// Read parses a ledger, one "<file> <degrees>" line per piece.  Blank lines
// are ignored; anything else that does not parse fails with
// ErrMalformedLedger.
func Read(r io.Reader) (Ledger, error) {
	var l Ledger
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: expected \"<file> <degrees>\", got %q", ErrMalformedLedger, lineno, line)
		}
		deg, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad rotation %q", ErrMalformedLedger, lineno, fields[1])
		}
		rot, err := piece.RotationFromDegrees(deg)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLedger, lineno, err)
		}
		l = append(l, Entry{File: fields[0], Rotation: rot})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLedger, err)
	}
	return l, nil
}
