package preprocess

import (
	"math/rand"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
)

// FlipMapper randomly mirrors an image and its dense part label map along
// the horizontal axis and swaps left/right paired part labels through the
// dataset flip map
type FlipMapper struct {
	// prob is the probability in [0, 1] a sample gets flipped
	prob float64
	// rng is the random source, per data loading worker
	rng *rand.Rand
	// table is the precomputed label swap lookup table
	table [256]uint8
}

// NewFlipMapper returns a flip mapper for the given dataset flip map and
// flip probability.  A nil random source falls back to the global one, pass
// a per worker source for reproducible loading pipelines
func NewFlipMapper(flipMap parseaug.FlipMap, prob float64,
	rng *rand.Rand) *FlipMapper {

	return &FlipMapper{
		prob:  prob,
		rng:   rng,
		table: flipMap.SwapTable(),
	}
}

// Apply draws one uniform sample and, when it falls below the flip
// probability, returns the mirrored image and label map with paired labels
// swapped.  Otherwise copies of the inputs are returned unchanged.  The
// returned bool reports whether the sample was flipped.  Inputs are never
// modified
func (f *FlipMapper) Apply(img gocv.Mat, gt *parseaug.Mask) (gocv.Mat,
	*parseaug.Mask, bool) {

	var draw float64

	if f.rng != nil {
		draw = f.rng.Float64()
	} else {
		draw = rand.Float64()
	}

	if draw >= f.prob {
		return img.Clone(), gt.Clone(), false
	}

	newImg := gocv.NewMat()
	gocv.Flip(img, &newImg, 1)

	// mirror then remap part labels in one pass over the pixels
	newGt := gt.FlipHorizontal().RemapLabels(f.table)

	return newImg, newGt, true
}
