// Package rle implements COCO style run length encoding arithmetic for
// binary segmentation masks.  Masks are encoded column-major (Fortran
// order) with alternating run lengths of 0 and 1 pixels, starting with the
// zero run, matching the layout used by COCO annotation files.
package rle

import (
	"fmt"
)

// RLE is a run length encoded binary mask
type RLE struct {
	// Width is the mask width in pixels
	Width int
	// Height is the mask height in pixels
	Height int
	// Counts holds alternating run lengths of 0s and 1s in column-major
	// scan order, beginning with the run of 0s
	Counts []uint32
}

// Encode run length encodes a binary mask given as a flat row-major byte
// slice of 0/1 values.  The encoded runs follow column-major scan order
func Encode(pix []uint8, width, height int) *RLE {

	r := &RLE{Width: width, Height: height}

	var run uint32
	cur := uint8(0)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {

			v := pix[y*width+x]

			if v != cur {
				r.Counts = append(r.Counts, run)
				run = 0
				cur = v
			}

			run++
		}
	}

	r.Counts = append(r.Counts, run)

	return r
}

// Decode expands the encoded mask back into a flat row-major byte slice of
// 0/1 values
func (r *RLE) Decode() []uint8 {

	pix := make([]uint8, r.Width*r.Height)

	v := uint8(0)
	x, y := 0, 0

	for _, count := range r.Counts {

		for i := uint32(0); i < count; i++ {

			pix[y*r.Width+x] = v

			y++
			if y == r.Height {
				y = 0
				x++
			}
		}

		v = 1 - v
	}

	return pix
}

// Area returns the number of 1 pixels in the encoded mask
func (r *RLE) Area() uint64 {

	var area uint64

	for i := 1; i < len(r.Counts); i += 2 {
		area += uint64(r.Counts[i])
	}

	return area
}

// Merge combines the encoded masks into one, either by intersection or by
// union, without decoding them.  All masks must share the same dimensions
func Merge(rles []*RLE, intersect bool) (*RLE, error) {

	if len(rles) == 0 {
		return nil, fmt.Errorf("merge of empty mask list")
	}

	out := &RLE{
		Width:  rles[0].Width,
		Height: rles[0].Height,
		Counts: append([]uint32(nil), rles[0].Counts...),
	}

	for _, r := range rles[1:] {

		if r.Width != out.Width || r.Height != out.Height {
			return nil, fmt.Errorf("merge of masks with differing "+
				"dimensions %dx%d and %dx%d", out.Width, out.Height,
				r.Width, r.Height)
		}

		out.Counts = mergeCounts(out.Counts, r.Counts, intersect)
	}

	return out, nil
}

// mergeCounts merges two run sequences by walking both in lockstep and
// emitting a run each time the combined value changes
func mergeCounts(a, b []uint32, intersect bool) []uint32 {

	var out []uint32

	ca, cb := a[0], b[0]
	va, vb, v := false, false, false
	ia, ib := 1, 1

	var acc uint32
	remaining := uint32(1)

	for remaining > 0 {

		// consume the shorter of the two current runs
		step := ca
		if cb < step {
			step = cb
		}

		acc += step
		remaining = 0

		ca -= step
		if ca == 0 && ia < len(a) {
			ca = a[ia]
			ia++
			va = !va
		}
		remaining += ca

		cb -= step
		if cb == 0 && ib < len(b) {
			cb = b[ib]
			ib++
			vb = !vb
		}
		remaining += cb

		prev := v

		if intersect {
			v = va && vb
		} else {
			v = va || vb
		}

		if v != prev || remaining == 0 {
			out = append(out, acc)
			acc = 0
		}
	}

	return out
}
