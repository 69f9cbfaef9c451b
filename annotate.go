package parseaug

import (
	"fmt"
)

// FlipInstanceCategory remaps a part category under the transform list.  An
// odd number of horizontal flip members means the sample ends up mirrored,
// so left/right paired categories swap through the flip map.  An even count
// leaves the category unchanged.  Deterministic, the randomness already
// happened when the transform list was built
func FlipInstanceCategory(category int, transforms *TransformList,
	flipMap FlipMap) int {

	if transforms.HFlipCount()%2 == 0 {
		return category
	}

	return flipMap.Flip(category)
}

// TransformInstanceAnnotations applies the transform list to the box and
// segmentation of a single part instance and returns the transformed record.
// The input annotation is not modified.
//
// The box is converted to absolute XYXY form, transformed, and clipped to
// [0, imageWidth] x [0, imageHeight].  Polygon segmentations have every
// vertex mapped, RLE segmentations are decoded, transformed densely, and
// stored back as a dense bit mask.  In both cases the part category is
// remapped through the given flip map when the transform list mirrors the
// sample.
//
// imageWidth and imageHeight are the dimensions of the image after the
// transform list has been applied
func TransformInstanceAnnotations(anno Annotation, transforms *TransformList,
	imageWidth, imageHeight int, flipMap FlipMap) (Annotation, error) {

	out := anno.Clone()

	// transform the bounding box and clip it to the image bounds
	box := ConvertBox(out.Bbox, out.BboxMode, XYXYAbs)
	box = transforms.ApplyBox(box)
	out.Bbox = ClipBox(box, imageWidth, imageHeight)
	out.BboxMode = XYXYAbs

	switch out.Segmentation.Kind() {

	case SegNone:
		// box only annotation, nothing more to do

	case SegPolygons:
		polys := transforms.ApplyPolygons(out.Segmentation.Polygons())
		out.Segmentation = PolygonSegmentation(polys)
		out.CategoryID = FlipInstanceCategory(out.CategoryID, transforms,
			flipMap)

	case SegRLE:
		enc := out.Segmentation.RLE()
		pix := enc.Decode()

		mask := &Mask{Width: enc.Width, Height: enc.Height, Pix: pix}
		mask = transforms.ApplySegmentation(mask)

		if mask.Width != imageWidth || mask.Height != imageHeight {
			return Annotation{}, fmt.Errorf(
				"%w: got %dx%d, declared %dx%d", ErrShapeMismatch,
				mask.Width, mask.Height, imageWidth, imageHeight)
		}

		out.Segmentation = BitMaskSegmentation(mask)
		out.CategoryID = FlipInstanceCategory(out.CategoryID, transforms,
			flipMap)

	default:
		return Annotation{}, fmt.Errorf("%w: kind %d",
			ErrUnsupportedSegmentation, out.Segmentation.Kind())
	}

	return out, nil
}

// TransformInstanceAnnotationsInPlace is a convenience wrapper around
// TransformInstanceAnnotations for callers that want the record mutated at
// the orchestration boundary
func TransformInstanceAnnotationsInPlace(anno *Annotation,
	transforms *TransformList, imageWidth, imageHeight int,
	flipMap FlipMap) error {

	out, err := TransformInstanceAnnotations(*anno, transforms, imageWidth,
		imageHeight, flipMap)

	if err != nil {
		return err
	}

	*anno = out
	return nil
}
