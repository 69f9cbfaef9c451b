package parseaug

import "sort"

// IgnoreLabel is the reserved sentinel value marking pixels excluded from
// loss and metric computation in dense part label maps
const IgnoreLabel = 255

// Mask is a dense 2D label map stored as a flat row-major byte slice.  It is
// used both for part label maps (one part label per pixel, IgnoreLabel for
// ignored pixels) and for binary instance masks (values 0 and 1)
type Mask struct {
	// Width is the number of columns in the mask
	Width int
	// Height is the number of rows in the mask
	Height int
	// Pix holds the per pixel labels in row-major order, Width*Height long
	Pix []uint8
}

// NewMask creates a zero filled mask of the given dimensions
func NewMask(width, height int) *Mask {
	return &Mask{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height),
	}
}

// NewMaskFilled creates a mask of the given dimensions with every pixel set
// to the fill value
func NewMaskFilled(width, height int, fill uint8) *Mask {

	m := NewMask(width, height)

	for i := range m.Pix {
		m.Pix[i] = fill
	}

	return m
}

// At returns the label at pixel (x, y)
func (m *Mask) At(x, y int) uint8 {
	return m.Pix[y*m.Width+x]
}

// Set writes the label at pixel (x, y)
func (m *Mask) Set(x, y int, v uint8) {
	m.Pix[y*m.Width+x] = v
}

// Clone returns a deep copy of the mask
func (m *Mask) Clone() *Mask {

	c := &Mask{
		Width:  m.Width,
		Height: m.Height,
		Pix:    make([]uint8, len(m.Pix)),
	}

	copy(c.Pix, m.Pix)
	return c
}

// FlipHorizontal returns a new mask mirrored along the vertical axis, ie.
// pixel (x, y) moves to (Width-1-x, y)
func (m *Mask) FlipHorizontal() *Mask {

	f := NewMask(m.Width, m.Height)

	for y := 0; y < m.Height; y++ {
		row := y * m.Width

		for x := 0; x < m.Width; x++ {
			f.Pix[row+m.Width-1-x] = m.Pix[row+x]
		}
	}

	return f
}

// RemapLabels returns a new mask with every pixel value substituted through
// the 256 entry lookup table.  A single pass over the pixels guarantees each
// pixel is remapped exactly once
func (m *Mask) RemapLabels(table [256]uint8) *Mask {

	r := NewMask(m.Width, m.Height)

	for i, v := range m.Pix {
		r.Pix[i] = table[v]
	}

	return r
}

// SubMask returns a new mask containing the rectangular region starting at
// (x0, y0) of the given dimensions.  Pixels sampled outside the source
// bounds are set to the fill value
func (m *Mask) SubMask(x0, y0, width, height int, fill uint8) *Mask {

	s := NewMaskFilled(width, height, fill)

	for y := 0; y < height; y++ {
		sy := y0 + y

		if sy < 0 || sy >= m.Height {
			continue
		}

		for x := 0; x < width; x++ {
			sx := x0 + x

			if sx < 0 || sx >= m.Width {
				continue
			}

			s.Pix[y*width+x] = m.Pix[sy*m.Width+sx]
		}
	}

	return s
}

// Paste copies the source mask into the receiver with its top left corner at
// (x0, y0), clipping against the receiver bounds
func (m *Mask) Paste(src *Mask, x0, y0 int) {

	for y := 0; y < src.Height; y++ {
		dy := y0 + y

		if dy < 0 || dy >= m.Height {
			continue
		}

		for x := 0; x < src.Width; x++ {
			dx := x0 + x

			if dx < 0 || dx >= m.Width {
				continue
			}

			m.Pix[dy*m.Width+dx] = src.Pix[y*src.Width+x]
		}
	}
}

// PolygonsToMask rasterizes the polygons into a binary mask of the given
// dimensions using even-odd scanline filling.  Pixels covered by a polygon
// are set to 1
func PolygonsToMask(polygons [][]Point, width, height int) *Mask {

	m := NewMask(width, height)

	for _, poly := range polygons {

		if len(poly) < 3 {
			continue
		}

		for y := 0; y < height; y++ {

			// pixel center scanline
			py := float32(y) + 0.5

			// collect crossing x positions for this scanline
			var xs []float32

			j := len(poly) - 1

			for i := 0; i < len(poly); i++ {

				yi := poly[i].Y
				yj := poly[j].Y

				if (yi <= py && yj > py) || (yj <= py && yi > py) {
					t := (py - yi) / (yj - yi)
					xs = append(xs, poly[i].X+t*(poly[j].X-poly[i].X))
				}

				j = i
			}

			sort.Slice(xs, func(a, b int) bool { return xs[a] < xs[b] })

			// fill between crossing pairs
			for i := 0; i+1 < len(xs); i += 2 {

				x0, x1 := xs[i], xs[i+1]

				if x0 > x1 {
					x0, x1 = x1, x0
				}

				for x := 0; x < width; x++ {
					px := float32(x) + 0.5

					if px >= x0 && px < x1 {
						m.Pix[y*width+x] = 1
					}
				}
			}
		}
	}

	return m
}
