package rle

import (
	"fmt"
)

// String serializes the run counts into the compressed printable form used
// by COCO annotation files.  Runs past the second are delta encoded against
// the run two positions back, then packed 5 bits at a time into ASCII
// characters offset from '0'
func (r *RLE) String() string {

	s := make([]byte, 0, len(r.Counts))

	for i, count := range r.Counts {

		x := int64(count)

		if i > 2 {
			x -= int64(r.Counts[i-2])
		}

		for more := true; more; {

			c := x & 0x1f
			x >>= 5

			if c&0x10 != 0 {
				more = x != -1
			} else {
				more = x != 0
			}

			if more {
				c |= 0x20
			}

			s = append(s, byte(c+48))
		}
	}

	return string(s)
}

// ParseCounts decodes the compressed printable counts form back into an RLE
// of the given dimensions
func ParseCounts(s string, width, height int) (*RLE, error) {

	r := &RLE{Width: width, Height: height}

	for p := 0; p < len(s); {

		var x int64
		k := uint(0)
		more := true

		for more {

			if p >= len(s) {
				return nil, fmt.Errorf("truncated counts string %q", s)
			}

			c := int64(s[p]) - 48

			if c < 0 || c > 0x3f {
				return nil, fmt.Errorf("invalid counts character %q",
					s[p])
			}

			x |= (c & 0x1f) << (5 * k)
			more = c&0x20 != 0
			p++
			k++

			if !more && c&0x10 != 0 {
				x |= -1 << (5 * k)
			}
		}

		if len(r.Counts) > 2 {
			x += int64(r.Counts[len(r.Counts)-2])
		}

		if x < 0 {
			return nil, fmt.Errorf("negative run length in counts "+
				"string %q", s)
		}

		r.Counts = append(r.Counts, uint32(x))
	}

	return r, nil
}
