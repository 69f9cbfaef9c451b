package preprocess

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
	"gonum.org/v1/gonum/mat"
)

const (
	// padGray is the fill value used for image pixels created by warping
	// or padding
	padGray = 128
)

// AffineResizer computes a center preserving similarity transform that maps
// a source image of arbitrary aspect ratio onto a fixed target canvas and
// applies it to an image and its part label map with different
// interpolation and fill policies
type AffineResizer struct {
	// srcWidth is the width of the source image
	srcWidth int
	// srcHeight is the height of the source image
	srcHeight int
	// destWidth is the width of the target canvas
	destWidth int
	// destHeight is the height of the target canvas
	destHeight int
	// rotation of the source box in degrees, zero in the standard
	// augmentation pipeline
	rotation float64
	// boxW and boxH are the source box dimensions after enlarging the
	// shorter side to match the target aspect ratio
	boxW float64
	boxH float64
	// transMat is the precalculated 2x3 affine transform
	transMat gocv.Mat
}

// NewAffineResizer returns a resizer mapping a source image of the given
// dimensions onto the target canvas with no rotation
func NewAffineResizer(srcWidth, srcHeight, destWidth, destHeight int) (*AffineResizer, error) {
	return NewAffineResizerWithRotation(srcWidth, srcHeight, destWidth,
		destHeight, 0)
}

// NewAffineResizerWithRotation returns a resizer that additionally rotates
// the source box by the given angle in degrees
func NewAffineResizerWithRotation(srcWidth, srcHeight, destWidth,
	destHeight int, rotation float64) (*AffineResizer, error) {

	if srcWidth <= 0 || srcHeight <= 0 || destWidth <= 0 || destHeight <= 0 {
		return nil, fmt.Errorf("invalid resize dimensions %dx%d -> %dx%d",
			srcWidth, srcHeight, destWidth, destHeight)
	}

	r := &AffineResizer{
		srcWidth:   srcWidth,
		srcHeight:  srcHeight,
		destWidth:  destWidth,
		destHeight: destHeight,
		rotation:   rotation,
	}

	// precalculate the affine transform
	if err := r.preCalc(); err != nil {
		return nil, err
	}

	return r, nil
}

// Close frees memory allocated for the affine transform
func (r *AffineResizer) Close() error {
	return r.transMat.Close()
}

// preCalc derives the source box and the 2x3 affine transform mapping it
// onto the target canvas
func (r *AffineResizer) preCalc() error {

	// center and scale box over the full source extent
	centerX := float64(r.srcWidth) * 0.5
	centerY := float64(r.srcHeight) * 0.5

	// enlarge the shorter side so the box aspect ratio matches the target,
	// the source content is never cropped
	aspect := float64(r.destWidth) / float64(r.destHeight)
	r.boxW = float64(r.srcWidth)
	r.boxH = float64(r.srcHeight)

	if r.boxW > aspect*r.boxH {
		r.boxH = r.boxW / aspect
	} else if r.boxW < aspect*r.boxH {
		r.boxW = r.boxH * aspect
	}

	// three point correspondence: box center, center plus a rotated
	// direction of half box width, and a third point at a 90 degree
	// rotation from the first two.  This keeps the transform a pure
	// similarity with no shear
	rotRad := math.Pi * r.rotation / 180
	srcDirX, srcDirY := rotateDir(0, r.boxW*-0.5, rotRad)

	dstW := float64(r.destWidth)
	dstH := float64(r.destHeight)

	src := [3][2]float64{
		{centerX, centerY},
		{centerX + srcDirX, centerY + srcDirY},
	}
	src[2] = thirdPoint(src[0], src[1])

	dst := [3][2]float64{
		{dstW * 0.5, dstH * 0.5},
		{dstW * 0.5, dstH*0.5 - dstW*0.5},
	}
	dst[2] = thirdPoint(dst[0], dst[1])

	trans, err := solveAffine(src, dst)

	if err != nil {
		return err
	}

	r.transMat = gocv.NewMatWithSize(2, 3, gocv.MatTypeCV64F)

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			r.transMat.SetDoubleAt(row, col, trans[row][col])
		}
	}

	return nil
}

// rotateDir rotates the point (x, y) about the origin by the angle in
// radians
func rotateDir(x, y, rotRad float64) (float64, float64) {

	sn, cs := math.Sin(rotRad), math.Cos(rotRad)

	return x*cs - y*sn, x*sn + y*cs
}

// thirdPoint derives the point completing a right angle with the segment
// from a to b, by rotating the direction b->a by 90 degrees about b
func thirdPoint(a, b [2]float64) [2]float64 {

	dx := a[0] - b[0]
	dy := a[1] - b[1]

	return [2]float64{b[0] - dy, b[1] + dx}
}

// solveAffine solves the 2x3 affine transform mapping the three source
// points onto the three destination points
func solveAffine(src, dst [3][2]float64) ([2][3]float64, error) {

	var trans [2][3]float64

	a := mat.NewDense(3, 3, []float64{
		src[0][0], src[0][1], 1,
		src[1][0], src[1][1], 1,
		src[2][0], src[2][1], 1,
	})

	for row := 0; row < 2; row++ {

		b := mat.NewVecDense(3, []float64{
			dst[0][row], dst[1][row], dst[2][row],
		})

		var x mat.VecDense

		if err := x.SolveVec(a, b); err != nil {
			return trans, fmt.Errorf("degenerate affine correspondence: %w",
				err)
		}

		trans[row][0] = x.AtVec(0)
		trans[row][1] = x.AtVec(1)
		trans[row][2] = x.AtVec(2)
	}

	return trans, nil
}

// Apply warps the image and its label map onto the target canvas.  The
// image is sampled bilinearly with mid gray fill, the label map with
// nearest neighbour sampling and ignore sentinel fill so labels are never
// blended.  Inputs are not modified
func (r *AffineResizer) Apply(img gocv.Mat, gt *parseaug.Mask) (gocv.Mat,
	*parseaug.Mask, error) {

	if img.Cols() != r.srcWidth || img.Rows() != r.srcHeight {
		return gocv.NewMat(), nil, fmt.Errorf(
			"image size %dx%d does not match resizer source size %dx%d",
			img.Cols(), img.Rows(), r.srcWidth, r.srcHeight)
	}

	if gt.Width != r.srcWidth || gt.Height != r.srcHeight {
		return gocv.NewMat(), nil, fmt.Errorf(
			"label map size %dx%d does not match resizer source size %dx%d",
			gt.Width, gt.Height, r.srcWidth, r.srcHeight)
	}

	dstSize := image.Pt(r.destWidth, r.destHeight)

	newImg := gocv.NewMat()
	gocv.WarpAffineWithParams(img, &newImg, r.transMat, dstSize,
		gocv.InterpolationLinear, gocv.BorderConstant,
		color.RGBA{R: padGray, G: padGray, B: padGray, A: padGray})

	gtMat, err := MaskToMat(gt)

	if err != nil {
		newImg.Close()
		return gocv.NewMat(), nil, err
	}

	defer gtMat.Close()

	newGtMat := gocv.NewMat()
	defer newGtMat.Close()

	ignore := uint8(parseaug.IgnoreLabel)
	gocv.WarpAffineWithParams(gtMat, &newGtMat, r.transMat, dstSize,
		gocv.InterpolationNearestNeighbor, gocv.BorderConstant,
		color.RGBA{R: ignore, G: ignore, B: ignore, A: ignore})

	return newImg, MatToMask(newGtMat), nil
}

// BoxSize returns the aspect adjusted source box dimensions
func (r *AffineResizer) BoxSize() (float64, float64) {
	return r.boxW, r.boxH
}

// Transform returns the precalculated 2x3 affine transform values
func (r *AffineResizer) Transform() [2][3]float64 {

	var t [2][3]float64

	for row := 0; row < 2; row++ {
		for col := 0; col < 3; col++ {
			t[row][col] = r.transMat.GetDoubleAt(row, col)
		}
	}

	return t
}

// SrcWidth returns the width of the source image
func (r *AffineResizer) SrcWidth() int {
	return r.srcWidth
}

// SrcHeight returns the height of the source image
func (r *AffineResizer) SrcHeight() int {
	return r.srcHeight
}
