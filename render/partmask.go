package render

import (
	"fmt"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
)

// PartMask renders a dense part label map as a transparent overlay on top
// of the whole image.  Background (0) and ignore sentinel pixels are left
// untouched
func PartMask(img *gocv.Mat, gt *parseaug.Mask, alpha float32) error {

	// get dimensions
	width := img.Cols()
	height := img.Rows()

	if gt.Width != width || gt.Height != height {
		return fmt.Errorf("label map size %dx%d does not match image "+
			"size %dx%d", gt.Width, gt.Height, width, height)
	}

	// it is too slow to manipulate pixel by pixel using GoCV due to slowness
	// over CGO.  So we copy the bytes from the source image and manipulate
	// the bytes directly before copying back to a Mat
	imgData := img.ToBytes()

	// iterate over each pixel in the label map
	for j := 0; j < height; j++ {
		for k := 0; k < width; k++ {

			label := gt.Pix[j*width+k]

			if label == 0 || label == parseaug.IgnoreLabel {
				continue
			}

			color := PartColor(label)

			// calculate position in the byte slice
			pixelPos := j*width*3 + k*3

			// get original pixel colors directly from the byte slice
			b, g, r := imgData[pixelPos+0], imgData[pixelPos+1], imgData[pixelPos+2]

			// calculate blended colors based on alpha transparency
			imgData[pixelPos+0] = uint8(float32(b)*(1-alpha) + float32(color.B)*alpha)
			imgData[pixelPos+1] = uint8(float32(g)*(1-alpha) + float32(color.G)*alpha)
			imgData[pixelPos+2] = uint8(float32(r)*(1-alpha) + float32(color.R)*alpha)
		}
	}

	// copy back to the original mat
	newImg, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3,
		imgData)

	if err != nil {
		return fmt.Errorf("error creating overlay mat: %w", err)
	}

	defer newImg.Close()
	newImg.CopyTo(img)

	return nil
}

// InstanceMask renders a single instance bit mask over the image in the
// palette color of the given part category
func InstanceMask(img *gocv.Mat, mask *parseaug.Mask, category int,
	alpha float32) error {

	labelled := parseaug.NewMask(mask.Width, mask.Height)

	for i, v := range mask.Pix {
		if v != 0 {
			labelled.Pix[i] = uint8(category)
		}
	}

	return PartMask(img, labelled, alpha)
}
