package dataset

import (
	"testing"

	"github.com/swdee/go-parseaug"
)

func TestBuiltInFlipMapsValidate(t *testing.T) {

	maps := map[string]parseaug.FlipMap{
		"cihp":  CIHPFlipMap,
		"lip":   LIPFlipMap,
		"mhpv2": MHPv2FlipMap,
	}

	for name, fm := range maps {
		if err := fm.Validate(); err != nil {
			t.Errorf("%s flip map failed validation: %v", name, err)
		}
	}
}

func TestPartTables(t *testing.T) {

	if len(CIHPParts) != 20 {
		t.Errorf("expected 20 CIHP parts, got %d", len(CIHPParts))
	}

	if len(LIPParts) != 20 {
		t.Errorf("expected 20 LIP parts, got %d", len(LIPParts))
	}

	// every flip map label must index into its part table
	for _, p := range CIHPFlipMap {
		if p.A >= len(CIHPParts) || p.B >= len(CIHPParts) {
			t.Errorf("CIHP flip pair %v outside part table", p)
		}
	}

	for _, p := range LIPFlipMap {
		if p.A >= len(LIPParts) || p.B >= len(LIPParts) {
			t.Errorf("LIP flip pair %v outside part table", p)
		}
	}
}

func TestFlipMapFor(t *testing.T) {

	fm, err := FlipMapFor("cihp")

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fm) != len(CIHPFlipMap) {
		t.Errorf("expected CIHP flip map, got %v", fm)
	}

	if _, err := FlipMapFor("unknown"); err == nil {
		t.Errorf("expected error for unknown dataset")
	}
}
