package render

import "image/color"

var (
	// partColors is the palette used to paint dense part label maps, one
	// entry per part label modulo the palette size.  The first entries
	// follow the color scheme commonly used to visualise the CIHP and LIP
	// human parsing benchmarks
	partColors = []color.RGBA{
		{R: 0, G: 0, B: 0, A: 255},       // background
		{R: 128, G: 0, B: 0, A: 255},     // hat
		{R: 255, G: 0, B: 0, A: 255},     // hair
		{R: 0, G: 85, B: 0, A: 255},      // glove
		{R: 170, G: 0, B: 51, A: 255},    // sunglasses
		{R: 255, G: 85, B: 0, A: 255},    // upper clothes
		{R: 0, G: 0, B: 85, A: 255},      // dress
		{R: 0, G: 119, B: 221, A: 255},   // coat
		{R: 85, G: 85, B: 0, A: 255},     // socks
		{R: 0, G: 85, B: 85, A: 255},     // pants
		{R: 85, G: 51, B: 0, A: 255},     // torso skin
		{R: 52, G: 86, B: 128, A: 255},   // scarf
		{R: 0, G: 128, B: 0, A: 255},     // skirt
		{R: 0, G: 0, B: 255, A: 255},     // face
		{R: 51, G: 170, B: 221, A: 255},  // left arm
		{R: 0, G: 255, B: 255, A: 255},   // right arm
		{R: 85, G: 255, B: 170, A: 255},  // left leg
		{R: 170, G: 255, B: 85, A: 255},  // right leg
		{R: 255, G: 255, B: 0, A: 255},   // left shoe
		{R: 255, G: 170, B: 0, A: 255},   // right shoe
		{R: 128, G: 128, B: 128, A: 255}, // overflow
		{R: 192, G: 128, B: 64, A: 255},
		{R: 64, G: 192, B: 128, A: 255},
		{R: 128, G: 64, B: 192, A: 255},
	}

	// White color
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// PartColor returns the palette color for the given part label
func PartColor(label uint8) color.RGBA {
	return partColors[int(label)%len(partColors)]
}
