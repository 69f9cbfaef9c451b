package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering part names on an image
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
	}
}

// PartLabel draws the part name at the given position with a filled
// backing rectangle in the part's palette color
func PartLabel(img *gocv.Mat, name string, label uint8, at image.Point,
	font Font) {

	size := gocv.GetTextSize(name, font.Face, font.Scale, font.Thickness)

	rect := image.Rect(at.X, at.Y-size.Y-4, at.X+size.X+8, at.Y)
	gocv.RectangleWithParams(img, rect, PartColor(label), -1,
		font.LineType, 0)

	gocv.PutTextWithParams(img, name, image.Pt(at.X+4, at.Y-2),
		font.Face, font.Scale, font.Color, font.Thickness,
		font.LineType, false)
}
