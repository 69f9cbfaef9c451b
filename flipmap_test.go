package parseaug

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFlipMapFlip(t *testing.T) {

	fm := FlipMap{{A: 14, B: 15}, {A: 16, B: 17}}

	tests := []struct {
		category int
		expected int
	}{
		{14, 15},
		{15, 14},
		{16, 17},
		{17, 16},
		{0, 0},
		{13, 13},
	}

	for _, tc := range tests {
		if got := fm.Flip(tc.category); got != tc.expected {
			t.Errorf("flip of %d: expected %d, got %d", tc.category,
				tc.expected, got)
		}
	}
}

func TestFlipMapValidate(t *testing.T) {

	tests := []struct {
		name    string
		fm      FlipMap
		wantErr bool
	}{
		{"valid", FlipMap{{A: 2, B: 3}, {A: 4, B: 5}}, false},
		{"empty", FlipMap{}, false},
		{"self referential", FlipMap{{A: 2, B: 2}}, true},
		{"duplicate label", FlipMap{{A: 2, B: 3}, {A: 3, B: 4}}, true},
		{"negative label", FlipMap{{A: -1, B: 3}}, true},
		{"ignore sentinel", FlipMap{{A: 2, B: 255}}, true},
	}

	for _, tc := range tests {
		err := tc.fm.Validate()

		if tc.wantErr && err == nil {
			t.Errorf("%s: expected validation error, got nil", tc.name)
		}

		if !tc.wantErr && err != nil {
			t.Errorf("%s: unexpected validation error: %v", tc.name, err)
		}
	}
}

func TestSwapTableInvolution(t *testing.T) {

	fm := FlipMap{{A: 2, B: 3}, {A: 14, B: 15}}
	table := fm.SwapTable()

	gt := &Mask{
		Width:  3,
		Height: 2,
		Pix:    []uint8{0, 2, 3, 14, 15, 255},
	}

	// remapping twice must return the original labels bit for bit
	twice := gt.RemapLabels(table).RemapLabels(table)

	for i, v := range gt.Pix {
		if twice.Pix[i] != v {
			t.Errorf("pixel %d: expected %d after double remap, got %d",
				i, v, twice.Pix[i])
		}
	}
}

func TestLoadFlipMap(t *testing.T) {

	dir := t.TempDir()
	file := filepath.Join(dir, "flipmap.txt")

	content := "# left/right pairs\n14 15\n16 17\n\n18 19\n"

	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatalf("error writing test file: %v", err)
	}

	fm, err := LoadFlipMap(file)

	if err != nil {
		t.Fatalf("unexpected error loading flip map: %v", err)
	}

	expected := FlipMap{{A: 14, B: 15}, {A: 16, B: 17}, {A: 18, B: 19}}

	if len(fm) != len(expected) {
		t.Fatalf("expected %d pairs, got %d", len(expected), len(fm))
	}

	for i, p := range expected {
		if fm[i] != p {
			t.Errorf("pair %d: expected %v, got %v", i, p, fm[i])
		}
	}
}

func TestLoadFlipMapMalformed(t *testing.T) {

	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"wrong field count", "14 15 16\n"},
		{"non numeric", "14 abc\n"},
		{"self referential", "14 14\n"},
	}

	for _, tc := range tests {

		file := filepath.Join(dir, tc.name+".txt")

		if err := os.WriteFile(file, []byte(tc.content), 0644); err != nil {
			t.Fatalf("error writing test file: %v", err)
		}

		if _, err := LoadFlipMap(file); err == nil {
			t.Errorf("%s: expected error, got nil", tc.name)
		}
	}
}
