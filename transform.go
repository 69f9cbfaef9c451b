package parseaug

import (
	clipper "github.com/ctessum/go.clipper"
)

// Transform is a single geometric transform applied to a sample.  It must
// transform point coordinates and dense masks consistently
type Transform interface {
	// ApplyCoords transforms a list of points and returns a new list
	ApplyCoords(coords []Point) []Point
	// ApplySegmentation transforms a dense label or bit mask and returns a
	// new mask
	ApplySegmentation(m *Mask) *Mask
}

// PolygonTransformer is implemented by transforms needing polygon handling
// beyond a plain per point coordinate mapping, such as crops which must clip
// polygons against the crop window
type PolygonTransformer interface {
	ApplyPolygons(polygons [][]Point) [][]Point
}

// TransformList is an ordered, immutable sequence of transforms applied
// first to last
type TransformList struct {
	// Transforms are the member transforms in application order
	Transforms []Transform
}

// NewTransformList returns a transform list over the given transforms
func NewTransformList(transforms ...Transform) *TransformList {
	return &TransformList{Transforms: transforms}
}

// ApplyCoords runs the point coordinate transform of every member in order
func (tl *TransformList) ApplyCoords(coords []Point) []Point {

	out := append([]Point(nil), coords...)

	for _, t := range tl.Transforms {
		out = t.ApplyCoords(out)
	}

	return out
}

// ApplyBox transforms a XYXYAbs box by mapping its four corner points and
// taking their axis aligned envelope.  This is exact for flips and
// axis aligned scales and a tight bound for rotations
func (tl *TransformList) ApplyBox(box [4]float32) [4]float32 {

	corners := []Point{
		{box[0], box[1]},
		{box[2], box[1]},
		{box[0], box[3]},
		{box[2], box[3]},
	}

	corners = tl.ApplyCoords(corners)

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY

	for _, p := range corners[1:] {

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

	return [4]float32{minX, minY, maxX, maxY}
}

// ApplyPolygons transforms all polygons of an instance at once.  Members
// implementing PolygonTransformer handle the polygons themselves, all other
// members map each vertex through ApplyCoords
func (tl *TransformList) ApplyPolygons(polygons [][]Point) [][]Point {

	out := make([][]Point, len(polygons))

	for i, p := range polygons {
		out[i] = append([]Point(nil), p...)
	}

	for _, t := range tl.Transforms {

		if pt, ok := t.(PolygonTransformer); ok {
			out = pt.ApplyPolygons(out)
			continue
		}

		for i, p := range out {
			out[i] = t.ApplyCoords(p)
		}
	}

	return out
}

// ApplySegmentation runs the dense mask transform of every member in order
func (tl *TransformList) ApplySegmentation(m *Mask) *Mask {

	out := m.Clone()

	for _, t := range tl.Transforms {
		out = t.ApplySegmentation(out)
	}

	return out
}

// HFlipCount returns the number of horizontal flip members in the list
func (tl *TransformList) HFlipCount() int {

	n := 0

	for _, t := range tl.Transforms {
		if _, ok := t.(*HFlipTransform); ok {
			n++
		}
	}

	return n
}

// HFlipTransform mirrors a sample along the vertical axis of an image of the
// given width
type HFlipTransform struct {
	// Width is the image width in pixels the flip is relative to
	Width int
}

// ApplyCoords mirrors each x coordinate about the image center
func (t *HFlipTransform) ApplyCoords(coords []Point) []Point {

	out := make([]Point, len(coords))

	for i, p := range coords {
		out[i] = Point{float32(t.Width) - p.X, p.Y}
	}

	return out
}

// ApplySegmentation mirrors the mask horizontally
func (t *HFlipTransform) ApplySegmentation(m *Mask) *Mask {
	return m.FlipHorizontal()
}

// NoOpTransform leaves the sample unchanged
type NoOpTransform struct{}

// ApplyCoords returns a copy of the input points
func (t *NoOpTransform) ApplyCoords(coords []Point) []Point {
	return append([]Point(nil), coords...)
}

// ApplySegmentation returns a copy of the input mask
func (t *NoOpTransform) ApplySegmentation(m *Mask) *Mask {
	return m.Clone()
}

// ScaleTransform resizes a sample by independent x and y factors
type ScaleTransform struct {
	// ScaleX is the horizontal scale factor
	ScaleX float32
	// ScaleY is the vertical scale factor
	ScaleY float32
}

// ApplyCoords scales each point
func (t *ScaleTransform) ApplyCoords(coords []Point) []Point {

	out := make([]Point, len(coords))

	for i, p := range coords {
		out[i] = Point{p.X * t.ScaleX, p.Y * t.ScaleY}
	}

	return out
}

// ApplySegmentation resizes the mask with nearest neighbour sampling so
// label values are never blended
func (t *ScaleTransform) ApplySegmentation(m *Mask) *Mask {

	newW := int(float32(m.Width)*t.ScaleX + 0.5)
	newH := int(float32(m.Height)*t.ScaleY + 0.5)

	out := NewMask(newW, newH)

	for y := 0; y < newH; y++ {

		sy := int(float32(y) / t.ScaleY)

		if sy >= m.Height {
			sy = m.Height - 1
		}

		for x := 0; x < newW; x++ {

			sx := int(float32(x) / t.ScaleX)

			if sx >= m.Width {
				sx = m.Width - 1
			}

			out.Pix[y*newW+x] = m.Pix[sy*m.Width+sx]
		}
	}

	return out
}

// clipperScale is the fixed point factor used when converting float
// coordinates to clipper integer space
const clipperScale = 100

// CropTransform extracts the window starting at (X0, Y0) of the given
// dimensions and re-expresses coordinates relative to the window origin
type CropTransform struct {
	X0, Y0        int
	Width, Height int
}

// ApplyCoords translates each point into the crop window coordinate space
func (t *CropTransform) ApplyCoords(coords []Point) []Point {

	out := make([]Point, len(coords))

	for i, p := range coords {
		out[i] = Point{p.X - float32(t.X0), p.Y - float32(t.Y0)}
	}

	return out
}

// ApplySegmentation extracts the crop window from the mask, zero filling
// any region outside the source bounds
func (t *CropTransform) ApplySegmentation(m *Mask) *Mask {
	return m.SubMask(t.X0, t.Y0, t.Width, t.Height, 0)
}

// ApplyPolygons clips each polygon against the crop window before
// translating it into window coordinates.  Plain vertex mapping is not
// enough here since vertices outside the window must be cut away
func (t *CropTransform) ApplyPolygons(polygons [][]Point) [][]Point {

	window := clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(t.X0 * clipperScale), Y: clipper.CInt(t.Y0 * clipperScale)},
		&clipper.IntPoint{X: clipper.CInt((t.X0 + t.Width) * clipperScale), Y: clipper.CInt(t.Y0 * clipperScale)},
		&clipper.IntPoint{X: clipper.CInt((t.X0 + t.Width) * clipperScale), Y: clipper.CInt((t.Y0 + t.Height) * clipperScale)},
		&clipper.IntPoint{X: clipper.CInt(t.X0 * clipperScale), Y: clipper.CInt((t.Y0 + t.Height) * clipperScale)},
	}

	var out [][]Point

	for _, poly := range polygons {

		var path clipper.Path

		for _, p := range poly {
			path = append(path, &clipper.IntPoint{
				X: clipper.CInt(p.X * clipperScale),
				Y: clipper.CInt(p.Y * clipperScale),
			})
		}

		c := clipper.NewClipper(clipper.IoNone)
		c.AddPath(path, clipper.PtSubject, true)
		c.AddPath(window, clipper.PtClip, true)

		solution, ok := c.Execute1(clipper.CtIntersection,
			clipper.PftNonZero, clipper.PftNonZero)

		if !ok {
			continue
		}

		for _, sol := range solution {

			clipped := make([]Point, len(sol))

			for i, ip := range sol {
				clipped[i] = Point{
					X: float32(ip.X)/clipperScale - float32(t.X0),
					Y: float32(ip.Y)/clipperScale - float32(t.Y0),
				}
			}

			out = append(out, clipped)
		}
	}

	return out
}
