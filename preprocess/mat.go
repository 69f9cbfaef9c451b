package preprocess

import (
	"fmt"

	"github.com/swdee/go-parseaug"
	"gocv.io/x/gocv"
)

// MaskToMat converts a dense label mask into a single channel 8 bit Mat.
// The caller owns the returned Mat and must Close it
func MaskToMat(m *parseaug.Mask) (gocv.Mat, error) {

	mat, err := gocv.NewMatFromBytes(m.Height, m.Width, gocv.MatTypeCV8UC1,
		m.Pix)

	if err != nil {
		return gocv.NewMat(), fmt.Errorf("error converting mask to mat: %w",
			err)
	}

	return mat, nil
}

// MatToMask converts a single channel 8 bit Mat into a dense label mask
func MatToMask(mat gocv.Mat) *parseaug.Mask {

	return &parseaug.Mask{
		Width:  mat.Cols(),
		Height: mat.Rows(),
		Pix:    mat.ToBytes(),
	}
}
