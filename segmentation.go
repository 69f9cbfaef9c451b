package parseaug

import (
	"errors"

	"github.com/swdee/go-parseaug/rle"
)

var (
	// ErrUnsupportedSegmentation indicates a segmentation representation
	// that is neither a polygon list, an RLE mask, nor a dense bit mask
	ErrUnsupportedSegmentation = errors.New(
		"unsupported segmentation type, supported types are polygons, " +
			"COCO style RLE, and dense bit masks")

	// ErrShapeMismatch indicates a transformed mask whose dimensions
	// disagree with the declared image size, which points at a bug in an
	// upstream transform
	ErrShapeMismatch = errors.New(
		"transformed mask shape does not match declared image size")
)

// SegKind enumerates the segmentation representations an annotation can
// carry
type SegKind int

const (
	// SegNone marks a box only annotation with no pixel footprint
	SegNone SegKind = iota
	// SegPolygons is one or more closed polygons
	SegPolygons
	// SegRLE is a COCO style run length encoded binary mask
	SegRLE
	// SegBitMask is a dense binary mask
	SegBitMask
)

// Segmentation is a tagged union over the supported instance segmentation
// representations.  The variant is fixed at construction time and every
// consumer switches exhaustively on Kind
type Segmentation struct {
	kind     SegKind
	polygons [][]Point
	rleMask  *rle.RLE
	bitMask  *Mask
}

// PolygonSegmentation wraps a list of polygons, each an ordered list of
// points tracing a closed contour
func PolygonSegmentation(polygons [][]Point) Segmentation {
	return Segmentation{kind: SegPolygons, polygons: polygons}
}

// RLESegmentation wraps a run length encoded binary mask
func RLESegmentation(r *rle.RLE) Segmentation {
	return Segmentation{kind: SegRLE, rleMask: r}
}

// BitMaskSegmentation wraps a dense binary mask
func BitMaskSegmentation(m *Mask) Segmentation {
	return Segmentation{kind: SegBitMask, bitMask: m}
}

// Kind returns the representation variant held by the union
func (s Segmentation) Kind() SegKind {
	return s.kind
}

// Polygons returns the polygon list, valid only when Kind is SegPolygons
func (s Segmentation) Polygons() [][]Point {
	return s.polygons
}

// RLE returns the encoded mask, valid only when Kind is SegRLE
func (s Segmentation) RLE() *rle.RLE {
	return s.rleMask
}

// BitMask returns the dense mask, valid only when Kind is SegBitMask
func (s Segmentation) BitMask() *Mask {
	return s.bitMask
}
