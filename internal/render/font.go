package render

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// fontSize is the fixed point size used for all overlay text.
const fontSize = 16

var overlayFont *truetype.Font

// init parses the bundled bold font once.
func init() {
	var err error
	overlayFont, err = truetype.Parse(gobold.TTF)
	if err != nil {
		panic(err)
	}
}

// fontFace returns a fresh bold face for overlay text. Faces are not safe
// for concurrent use, so each drawing context gets its own.
func fontFace() font.Face {
	return truetype.NewFace(overlayFont, &truetype.Options{Size: fontSize})
}
