/*
Example code showing how to run a human parsing dataset sample through the
augmentation pipeline: random horizontal flip with left/right label
swapping, affine resize to the training canvas, center pad/crop, and an
overlay render of the resulting part label map
*/
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"math/rand"
	"os"

	"github.com/swdee/go-parseaug"
	"github.com/swdee/go-parseaug/dataset"
	"github.com/swdee/go-parseaug/preprocess"
	"github.com/swdee/go-parseaug/render"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	// Size of TTF font used for part labels
	TTFFontSize = 16
	// Training canvas size
	CanvasWidth  = 512
	CanvasHeight = 512
)

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	// read in cli flags
	imgFile := flag.String("i", "../data/cihp-sample.jpg", "Image file of the dataset sample")
	gtFile := flag.String("g", "../data/cihp-sample-gt.png", "Part label map PNG of the dataset sample")
	saveFile := flag.String("o", "../data/cihp-sample-out.jpg", "The output JPG file with part overlay")
	ttfFont := flag.String("f", "", "Optional TTF font used to draw part names")
	flipProb := flag.Float64("p", 1.0, "Horizontal flip probability")
	seed := flag.Int64("s", 1, "Random seed for the flip draw")

	flag.Parse()

	err := run(*imgFile, *gtFile, *saveFile, *ttfFont, *flipProb, *seed)

	if err != nil {
		log.Fatal("Error: ", err)
	}
}

func run(imgFile, gtFile, saveFile, ttfFont string, flipProb float64,
	seed int64) error {

	// load image and part label map
	img := gocv.IMRead(imgFile, gocv.IMReadColor)

	if img.Empty() {
		return fmt.Errorf("error reading image from: %s", imgFile)
	}

	defer img.Close()

	gtImg := gocv.IMRead(gtFile, gocv.IMReadGrayScale)

	if gtImg.Empty() {
		return fmt.Errorf("error reading label map from: %s", gtFile)
	}

	defer gtImg.Close()

	gt := preprocess.MatToMask(gtImg)

	// random flip with left/right label swap
	flipper := preprocess.NewFlipMapper(dataset.CIHPFlipMap, flipProb,
		rand.New(rand.NewSource(seed)))

	flipImg, flipGt, flipped := flipper.Apply(img, gt)
	defer flipImg.Close()

	log.Printf("sample flipped=%v", flipped)

	// affine resize onto the training canvas
	resizer, err := preprocess.NewAffineResizer(flipImg.Cols(),
		flipImg.Rows(), CanvasWidth, CanvasHeight)

	if err != nil {
		return fmt.Errorf("error creating affine resizer: %w", err)
	}

	defer resizer.Close()

	resImg, resGt, err := resizer.Apply(flipImg, flipGt)

	if err != nil {
		return fmt.Errorf("error applying affine resize: %w", err)
	}

	defer resImg.Close()

	// center pad/crop to the exact canvas, a no-op here since the affine
	// resize already produced the canvas size, shown for pipeline
	// completeness
	cropper := preprocess.NewCenterPadCropper(CanvasWidth, CanvasHeight)
	outImg, outGt := cropper.Apply(resImg, resGt)
	defer outImg.Close()

	// overlay the part label map
	err = render.PartMask(&outImg, outGt, 0.5)

	if err != nil {
		return fmt.Errorf("error rendering overlay: %w", err)
	}

	// label each part present in the map
	err = labelParts(&outImg, outGt, ttfFont)

	if err != nil {
		return fmt.Errorf("error labelling parts: %w", err)
	}

	if ok := gocv.IMWrite(saveFile, outImg); !ok {
		return fmt.Errorf("error writing output to: %s", saveFile)
	}

	log.Printf("saved result to %s", saveFile)

	return nil
}

// labelParts draws the name of every part present in the label map at the
// top left corner of the part's pixel extent
func labelParts(img *gocv.Mat, gt *parseaug.Mask, ttfFont string) error {

	var face font.Face

	if ttfFont != "" {

		var err error
		face, err = loadFontFace(ttfFont)

		if err != nil {
			return err
		}
	}

	gocvFont := render.DefaultFont()

	for label, name := range dataset.CIHPParts {

		if label == 0 {
			continue
		}

		at, ok := firstPixel(gt, uint8(label))

		if !ok {
			continue
		}

		if face == nil {
			render.PartLabel(img, name, uint8(label), at, gocvFont)
			continue
		}

		err := putTTFText(img, name, face, at.X, at.Y)

		if err != nil {
			return err
		}
	}

	return nil
}

// firstPixel returns the top left most pixel carrying the given label
func firstPixel(gt *parseaug.Mask, label uint8) (image.Point, bool) {

	for y := 0; y < gt.Height; y++ {
		for x := 0; x < gt.Width; x++ {
			if gt.At(x, y) == label {
				return image.Pt(x, y), true
			}
		}
	}

	return image.Point{}, false
}

// loadFontFace loads the TTF font and sets up a new font face
func loadFontFace(fontPath string) (font.Face, error) {

	// load font data
	fontBytes, err := os.ReadFile(fontPath)

	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}

	// parse the font
	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	// create new font face with options
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size: TTFFontSize,
		DPI:  72,
	})

	if err != nil {
		return nil, fmt.Errorf("error initializing font face: %w", err)
	}

	return face, nil
}

// putTTFText creates an image and writes text on it with the loaded TTF
// font face before blending it over the output image
func putTTFText(img *gocv.Mat, text string, face font.Face, x, y int) error {

	// create image with text writing
	rgba := image.NewRGBA(image.Rect(0, 0, img.Cols(), img.Rows()))
	draw.Draw(rgba, rgba.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0}), image.Point{}, draw.Src)

	dr := &font.Drawer{
		Dst:  rgba,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.Int26_6(x * 64),
			Y: fixed.Int26_6(y * 64),
		},
	}
	dr.DrawString(text)

	// Convert image.RGBA to gocv.Mat
	imgRGBA, err := gocv.NewMatFromBytes(rgba.Bounds().Dy(), rgba.Bounds().Dx(), gocv.MatTypeCV8UC4, rgba.Pix)

	if imgRGBA.Empty() || err != nil {
		return fmt.Errorf("error creating Mat from RGBA")
	}

	defer imgRGBA.Close()

	gocv.CvtColor(imgRGBA, &imgRGBA, gocv.ColorRGBAToBGR)
	gocv.AddWeighted(*img, 1.0, imgRGBA, 1.0, 0, img)

	return nil
}
