package preprocess

import (
	"image"
	"image/color"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
)

// CenterPadCropper deterministically centers an image and its label map
// inside (or crops it down to) a fixed target canvas.  Oversized dimensions
// are center cropped, undersized dimensions are padded on both sides, with
// mid gray fill for the image and the ignore sentinel for the label map.
// All centering offsets use floor division of the size difference by two,
// which must be preserved exactly for bit reproducibility
type CenterPadCropper struct {
	// destWidth is the width of the target canvas
	destWidth int
	// destHeight is the height of the target canvas
	destHeight int
}

// NewCenterPadCropper returns a cropper producing the given target canvas
// size
func NewCenterPadCropper(destWidth, destHeight int) *CenterPadCropper {
	return &CenterPadCropper{
		destWidth:  destWidth,
		destHeight: destHeight,
	}
}

// Apply centers the image and label map on the target canvas.  Output
// dimensions are always exactly the target size.  Inputs are not modified
func (c *CenterPadCropper) Apply(img gocv.Mat, gt *parseaug.Mask) (gocv.Mat,
	*parseaug.Mask) {

	srcW := img.Cols()
	srcH := img.Rows()

	// crop oversized dimensions down to the target first
	cropW := srcW
	cropH := srcH
	cropX := 0
	cropY := 0

	if srcW > c.destWidth {
		cropX = (srcW - c.destWidth) / 2
		cropW = c.destWidth
	}

	if srcH > c.destHeight {
		cropY = (srcH - c.destHeight) / 2
		cropH = c.destHeight
	}

	region := img.Region(image.Rect(cropX, cropY, cropX+cropW, cropY+cropH))
	defer region.Close()

	// pad any remaining undersized dimension on both sides to center
	padLeft := (c.destWidth - cropW) / 2
	padRight := c.destWidth - cropW - padLeft
	padTop := (c.destHeight - cropH) / 2
	padBottom := c.destHeight - cropH - padTop

	newImg := gocv.NewMat()
	gocv.CopyMakeBorder(region, &newImg, padTop, padBottom, padLeft,
		padRight, gocv.BorderConstant,
		color.RGBA{R: padGray, G: padGray, B: padGray, A: padGray})

	// same geometry for the label map with ignore sentinel fill
	newGt := parseaug.NewMaskFilled(c.destWidth, c.destHeight,
		parseaug.IgnoreLabel)
	newGt.Paste(gt.SubMask(cropX, cropY, cropW, cropH, parseaug.IgnoreLabel),
		padLeft, padTop)

	return newImg, newGt
}
