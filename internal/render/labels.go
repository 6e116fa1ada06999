package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/ironsheep/vision-annotate/internal/detection"
)

const (
	// classLineSpacing is the line-spacing multiplier for the stacked block.
	classLineSpacing = 1.5

	// classOffset is the fixed top-left position of the label block.
	classOffset = 10
)

var (
	classBackground = color.NRGBA{A: 60} // black, mostly transparent
	classForeground = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// ClassificationLabels draws one stacked multi-line block onto img at a
// fixed top-left position, one line per classification, each optionally
// suffixed with its rounded confidence percentage. The whole block gets a
// single solid background rectangle and is drawn once in the foreground
// color; unlike detection labels there is no per-line background or shadow.
// The image is mutated in place.
func ClassificationLabels(img *image.RGBA, classes []detection.Classification, drawConfidence bool) error {
	if len(classes) == 0 {
		return nil
	}

	lines := make([]string, len(classes))
	for i, c := range classes {
		lines[i] = labelText(c.Label.Name, c.Confidence, drawConfidence)
	}
	block := strings.Join(lines, "\n")

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(fontFace())
	blockW, blockH := dc.MeasureMultilineString(block, classLineSpacing)

	dc.SetColor(classBackground)
	dc.DrawRectangle(classOffset, classOffset, blockW+fontSize, blockH+fontSize)
	dc.Fill()

	dc.SetColor(classForeground)
	dc.DrawStringWrapped(block, classOffset+fontSize/2, classOffset+fontSize/2,
		0, 0, blockW+1, classLineSpacing, gg.AlignLeft)

	return nil
}
