package parseaug

import (
	"math"
	"testing"
)

func TestHFlipTransformCoords(t *testing.T) {

	flip := &HFlipTransform{Width: 100}

	got := flip.ApplyCoords([]Point{{10, 20}, {100, 0}, {0, 5}})

	expected := []Point{{90, 20}, {0, 0}, {100, 5}}

	for i, p := range expected {
		if got[i] != p {
			t.Errorf("point %d: expected %v, got %v", i, p, got[i])
		}
	}
}

func TestTransformListApplyBox(t *testing.T) {

	tests := []struct {
		name     string
		tl       *TransformList
		box      [4]float32
		expected [4]float32
	}{
		{
			"single flip",
			NewTransformList(&HFlipTransform{Width: 100}),
			[4]float32{10, 20, 30, 40},
			[4]float32{70, 20, 90, 40},
		},
		{
			"double flip restores",
			NewTransformList(&HFlipTransform{Width: 100},
				&HFlipTransform{Width: 100}),
			[4]float32{10, 20, 30, 40},
			[4]float32{10, 20, 30, 40},
		},
		{
			"scale",
			NewTransformList(&ScaleTransform{ScaleX: 2, ScaleY: 0.5}),
			[4]float32{10, 20, 30, 40},
			[4]float32{20, 10, 60, 20},
		},
	}

	for _, tc := range tests {
		if got := tc.tl.ApplyBox(tc.box); got != tc.expected {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.expected, got)
		}
	}
}

func TestHFlipCount(t *testing.T) {

	tl := NewTransformList(
		&HFlipTransform{Width: 100},
		&NoOpTransform{},
		&ScaleTransform{ScaleX: 1, ScaleY: 1},
		&HFlipTransform{Width: 200},
	)

	if got := tl.HFlipCount(); got != 2 {
		t.Errorf("expected 2 flips, got %d", got)
	}
}

func TestScaleTransformSegmentation(t *testing.T) {

	m := &Mask{
		Width:  2,
		Height: 2,
		Pix:    []uint8{1, 2, 3, 4},
	}

	scale := &ScaleTransform{ScaleX: 2, ScaleY: 2}
	got := scale.ApplySegmentation(m)

	if got.Width != 4 || got.Height != 4 {
		t.Fatalf("expected 4x4 mask, got %dx%d", got.Width, got.Height)
	}

	expected := []uint8{
		1, 1, 2, 2,
		1, 1, 2, 2,
		3, 3, 4, 4,
		3, 3, 4, 4,
	}

	for i, v := range expected {
		if got.Pix[i] != v {
			t.Errorf("pixel %d: expected %d, got %d", i, v, got.Pix[i])
		}
	}
}

func TestCropTransformPolygons(t *testing.T) {

	crop := &CropTransform{X0: 10, Y0: 10, Width: 20, Height: 20}

	// square straddling the left crop boundary
	poly := []Point{{0, 12}, {16, 12}, {16, 18}, {0, 18}}

	out := crop.ApplyPolygons([][]Point{poly})

	if len(out) != 1 {
		t.Fatalf("expected 1 clipped polygon, got %d", len(out))
	}

	// the clipped polygon must cover x in [0, 6] and y in [2, 8] relative
	// to the crop origin
	minX, minY := float32(math.Inf(1)), float32(math.Inf(1))
	maxX, maxY := float32(math.Inf(-1)), float32(math.Inf(-1))

	for _, p := range out[0] {

		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	const eps = 0.01

	if math.Abs(float64(minX-0)) > eps || math.Abs(float64(maxX-6)) > eps ||
		math.Abs(float64(minY-2)) > eps || math.Abs(float64(maxY-8)) > eps {
		t.Errorf("clipped polygon extent (%f,%f)-(%f,%f), expected "+
			"(0,2)-(6,8)", minX, minY, maxX, maxY)
	}
}

func TestCropTransformSegmentation(t *testing.T) {

	m := NewMask(4, 4)
	m.Set(2, 2, 7)

	crop := &CropTransform{X0: 1, Y0: 1, Width: 2, Height: 2}
	got := crop.ApplySegmentation(m)

	if got.Width != 2 || got.Height != 2 {
		t.Fatalf("expected 2x2 mask, got %dx%d", got.Width, got.Height)
	}

	if got.At(1, 1) != 7 {
		t.Errorf("expected label 7 at (1,1), got %d", got.At(1, 1))
	}
}
