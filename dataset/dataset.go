// Package dataset provides the static part category tables and left/right
// flip maps for the common human parsing benchmarks.  Callers thread these
// through the transform routines explicitly, there is no ambient registry
package dataset

import (
	"fmt"

	"github.com/swdee/go-parseaug"
)

// CIHPParts are the 20 part categories of the Crowd Instance-level Human
// Parsing dataset, indexed by label ID
var CIHPParts = []string{
	"background",
	"hat",
	"hair",
	"glove",
	"sunglasses",
	"upper clothes",
	"dress",
	"coat",
	"socks",
	"pants",
	"torso skin",
	"scarf",
	"skirt",
	"face",
	"left arm",
	"right arm",
	"left leg",
	"right leg",
	"left shoe",
	"right shoe",
}

// CIHPFlipMap pairs the left/right CIHP part labels that swap identities
// under horizontal mirroring
var CIHPFlipMap = parseaug.FlipMap{
	{A: 14, B: 15}, // left arm <-> right arm
	{A: 16, B: 17}, // left leg <-> right leg
	{A: 18, B: 19}, // left shoe <-> right shoe
}

// LIPParts are the 20 part categories of the Look Into Person dataset,
// indexed by label ID
var LIPParts = []string{
	"background",
	"hat",
	"hair",
	"glove",
	"sunglasses",
	"upper clothes",
	"dress",
	"coat",
	"socks",
	"pants",
	"jumpsuits",
	"scarf",
	"skirt",
	"face",
	"left arm",
	"right arm",
	"left leg",
	"right leg",
	"left shoe",
	"right shoe",
}

// LIPFlipMap pairs the left/right LIP part labels
var LIPFlipMap = parseaug.FlipMap{
	{A: 14, B: 15}, // left arm <-> right arm
	{A: 16, B: 17}, // left leg <-> right leg
	{A: 18, B: 19}, // left shoe <-> right shoe
}

// MHPv2FlipMap pairs the left/right part labels of the Multi-Human Parsing
// v2 dataset (59 categories)
var MHPv2FlipMap = parseaug.FlipMap{
	{A: 5, B: 6},   // left ear <-> right ear
	{A: 7, B: 8},   // left eye <-> right eye
	{A: 22, B: 23}, // left arm <-> right arm
	{A: 24, B: 25}, // left hand <-> right hand
	{A: 26, B: 27}, // left leg <-> right leg
	{A: 28, B: 29}, // left foot <-> right foot
	{A: 30, B: 31}, // left boot <-> right boot
	{A: 32, B: 33}, // left shoe <-> right shoe
}

// flipMaps indexes the built in flip maps by dataset name
var flipMaps = map[string]parseaug.FlipMap{
	"cihp":  CIHPFlipMap,
	"lip":   LIPFlipMap,
	"mhpv2": MHPv2FlipMap,
}

// FlipMapFor returns the flip map of a built in dataset by name
func FlipMapFor(name string) (parseaug.FlipMap, error) {

	fm, ok := flipMaps[name]

	if !ok {
		return nil, fmt.Errorf("no flip map for dataset %q", name)
	}

	return fm, nil
}
