package preprocess

import (
	"math/rand"
	"testing"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
)

var testFlipMap = parseaug.FlipMap{{A: 2, B: 3}}

func TestFlipMapperNeverFlips(t *testing.T) {

	img := gocv.NewMatWithSize(2, 4, gocv.MatTypeCV8UC3)
	defer img.Close()

	gt := &parseaug.Mask{
		Width:  4,
		Height: 2,
		Pix: []uint8{
			0, 2, 3, 255,
			2, 2, 3, 3,
		},
	}

	flipper := NewFlipMapper(testFlipMap, 0, rand.New(rand.NewSource(1)))

	newImg, newGt, flipped := flipper.Apply(img, gt)
	defer newImg.Close()

	if flipped {
		t.Fatalf("flip probability 0 must never flip")
	}

	for i, v := range gt.Pix {
		if newGt.Pix[i] != v {
			t.Errorf("pixel %d: expected unchanged %d, got %d", i, v,
				newGt.Pix[i])
		}
	}

	// returned mask is a copy, not the caller's array
	newGt.Pix[0] = 99

	if gt.Pix[0] == 99 {
		t.Errorf("returned mask aliases the input")
	}
}

func TestFlipMapperAlwaysFlips(t *testing.T) {

	img := gocv.NewMatWithSize(2, 4, gocv.MatTypeCV8UC3)
	defer img.Close()

	gt := &parseaug.Mask{
		Width:  4,
		Height: 2,
		Pix: []uint8{
			0, 2, 3, 255,
			2, 2, 3, 3,
		},
	}

	flipper := NewFlipMapper(testFlipMap, 1, rand.New(rand.NewSource(1)))

	newImg, newGt, flipped := flipper.Apply(img, gt)
	defer newImg.Close()

	if !flipped {
		t.Fatalf("flip probability 1 must always flip")
	}

	if newImg.Cols() != 4 || newImg.Rows() != 2 {
		t.Errorf("expected flipped image size 4x2, got %dx%d",
			newImg.Cols(), newImg.Rows())
	}

	// mirrored with 2s and 3s swapped, 0 and 255 unchanged
	expected := []uint8{
		255, 2, 3, 0,
		2, 2, 3, 3,
	}

	for i, v := range expected {
		if newGt.Pix[i] != v {
			t.Errorf("pixel %d: expected %d, got %d", i, v, newGt.Pix[i])
		}
	}

	// input mask untouched
	if gt.Pix[1] != 2 || gt.Pix[2] != 3 {
		t.Errorf("input mask was modified")
	}
}
