package rle

import (
	"errors"
)

// ErrZeroPartArea indicates an IoP computation against a part mask with no
// set pixels, for which the ratio is undefined
var ErrZeroPartArea = errors.New("part mask has zero area")

// IoP computes Intersection over Part area between a full person mask and a
// part mask of the same dimensions, both given as flat row-major byte
// slices of 0/1 values.  The result is the fraction of the part's pixels
// also covered by the person, in [0, 1].
//
// An empty part mask returns ErrZeroPartArea rather than a non finite
// ratio, callers working with potentially empty parts must handle it
func IoP(personPix, partPix []uint8, width, height int) (float64, error) {

	person := Encode(personPix, width, height)
	part := Encode(partPix, width, height)

	partArea := part.Area()

	if partArea == 0 {
		return 0, ErrZeroPartArea
	}

	inter, err := Merge([]*RLE{person, part}, true)

	if err != nil {
		return 0, err
	}

	return float64(inter.Area()) / float64(partArea), nil
}
