package parseaug

import (
	"github.com/swdee/go-parseaug/rle"
)

// BoxMode identifies the coordinate convention a bounding box is stored in
type BoxMode int

const (
	// XYXYAbs is (x0, y0, x1, y1) in absolute pixel coordinates
	XYXYAbs BoxMode = iota
	// XYWHAbs is (x0, y0, width, height) in absolute pixel coordinates
	XYWHAbs
)

// Point is a single 2D coordinate
type Point struct {
	X, Y float32
}

// Annotation holds the ground truth record for a single part instance
type Annotation struct {
	// Bbox is the instance bounding box in the convention given by BboxMode
	Bbox [4]float32
	// BboxMode is the coordinate convention of Bbox
	BboxMode BoxMode
	// Segmentation is the instance pixel footprint, absent when the record
	// is box only
	Segmentation Segmentation
	// CategoryID is the part category label of the instance
	CategoryID int
}

// ConvertBox converts a bounding box between coordinate conventions
func ConvertBox(box [4]float32, from, to BoxMode) [4]float32 {

	if from == to {
		return box
	}

	switch {
	case from == XYWHAbs && to == XYXYAbs:
		return [4]float32{box[0], box[1], box[0] + box[2], box[1] + box[3]}

	case from == XYXYAbs && to == XYWHAbs:
		return [4]float32{box[0], box[1], box[2] - box[0], box[3] - box[1]}
	}

	return box
}

// ClipBox clips a XYXYAbs box to lie within [0, width] x [0, height]
func ClipBox(box [4]float32, width, height int) [4]float32 {

	w := float32(width)
	h := float32(height)

	return [4]float32{
		clipCoord(box[0], w),
		clipCoord(box[1], h),
		clipCoord(box[2], w),
		clipCoord(box[3], h),
	}
}

// clipCoord restricts a coordinate to the range [0, max]
func clipCoord(v, max float32) float32 {

	if v < 0 {
		return 0
	}

	if v > max {
		return max
	}

	return v
}

// Clone returns a deep copy of the annotation
func (a Annotation) Clone() Annotation {

	c := a

	switch a.Segmentation.Kind() {
	case SegPolygons:
		polys := a.Segmentation.Polygons()
		cp := make([][]Point, len(polys))

		for i, p := range polys {
			cp[i] = append([]Point(nil), p...)
		}

		c.Segmentation = PolygonSegmentation(cp)

	case SegRLE:
		r := a.Segmentation.RLE()
		c.Segmentation = RLESegmentation(&rle.RLE{
			Width:  r.Width,
			Height: r.Height,
			Counts: append([]uint32(nil), r.Counts...),
		})

	case SegBitMask:
		c.Segmentation = BitMaskSegmentation(a.Segmentation.BitMask().Clone())
	}

	return c
}
