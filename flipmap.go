package parseaug

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// FlipPair is one involutive pairing of part labels that swap identities
// under horizontal mirroring, eg. left arm and right arm
type FlipPair struct {
	A, B int
}

// FlipMap is the ordered set of label pairings for a dataset.  It is loaded
// once per dataset, validated at registration time, and shared read-only by
// all transform calls
type FlipMap []FlipPair

// Flip returns the partner of the given category under the map, or the
// category unchanged when it appears in no pair
func (fm FlipMap) Flip(category int) int {

	for _, p := range fm {

		if category == p.A {
			return p.B
		}

		if category == p.B {
			return p.A
		}
	}

	return category
}

// Validate checks the map is a well formed involution: no self pairs, no
// label appearing in more than one pair, and no label colliding with the
// ignore sentinel.  It should be run when a dataset is registered, before
// the map is handed to any transform
func (fm FlipMap) Validate() error {

	seen := make(map[int]bool)

	for i, p := range fm {

		if p.A == p.B {
			return fmt.Errorf("flip map pair %d is self referential (%d, %d)",
				i, p.A, p.B)
		}

		for _, label := range []int{p.A, p.B} {

			if label < 0 || label >= IgnoreLabel {
				return fmt.Errorf("flip map pair %d label %d outside valid "+
					"range [0, %d)", i, label, IgnoreLabel)
			}

			if seen[label] {
				return fmt.Errorf("flip map label %d appears in more than "+
					"one pair", label)
			}

			seen[label] = true
		}
	}

	return nil
}

// SwapTable builds a 256 entry lookup table realizing the map over uint8
// label values.  Remapping a mask through the table is a single consistent
// pass, so a pixel can never be remapped twice by successive pairs
func (fm FlipMap) SwapTable() [256]uint8 {

	var table [256]uint8

	for i := range table {
		table[i] = uint8(i)
	}

	for _, p := range fm {
		table[uint8(p.A)] = uint8(p.B)
		table[uint8(p.B)] = uint8(p.A)
	}

	return table
}

// LoadFlipMap reads a flip map from the given text file.  It should contain
// one pair of whitespace separated label IDs per line.  Blank lines and
// lines starting with # are skipped
func LoadFlipMap(file string) (FlipMap, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var fm FlipMap

	// read and parse each line
	for scanner.Scan() {

		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)

		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed flip map line %q", line)
		}

		a, err := strconv.Atoi(fields[0])

		if err != nil {
			return nil, fmt.Errorf("malformed flip map label %q: %w",
				fields[0], err)
		}

		b, err := strconv.Atoi(fields[1])

		if err != nil {
			return nil, fmt.Errorf("malformed flip map label %q: %w",
				fields[1], err)
		}

		fm = append(fm, FlipPair{A: a, B: b})
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	if err := fm.Validate(); err != nil {
		return nil, err
	}

	return fm, nil
}
