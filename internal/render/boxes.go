package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/ironsheep/vision-annotate/internal/detection"
	"github.com/ironsheep/vision-annotate/internal/imaging"
)

const (
	// borderWidth is the stroke width of box outlines.
	borderWidth = 2

	// labelAlpha is applied to the label color for both the outline stroke
	// and the text background fill.
	labelAlpha = 128

	// shadowOffset is the pixel offset of the text drop shadow.
	shadowOffset = 1
)

var (
	shadowColor = color.NRGBA{R: 44, G: 44, B: 44, A: 180}
	textColor   = color.NRGBA{R: 248, G: 240, B: 227, A: 224}
)

// labelText builds the display string for a result, appending the rounded
// confidence percentage when requested.
func labelText(name string, confidence float64, withConfidence bool) string {
	if !withConfidence {
		return name
	}
	return fmt.Sprintf("%s (%d%%)", name, int(math.Round(confidence*100)))
}

// BoundingBoxes draws an outline and a labeled text block for each detection
// onto img, in order. Boxes must be in img's pixel space with positive
// dimensions. The image is mutated in place; a failure at detection k leaves
// detections before it already drawn.
func BoundingBoxes(img *image.RGBA, dets []detection.Object, drawConfidence bool) error {
	if len(dets) == 0 {
		return nil
	}

	dc := gg.NewContextForRGBA(img)
	dc.SetFontFace(fontFace())

	for _, det := range dets {
		if err := drawObject(dc, det, drawConfidence); err != nil {
			return err
		}
	}
	return nil
}

func drawObject(dc *gg.Context, det detection.Object, drawConfidence bool) error {
	if det.Box.Width <= 0 || det.Box.Height <= 0 {
		return fmt.Errorf("%w: box %dx%d for %q",
			imaging.ErrInvalidGeometry, det.Box.Width, det.Box.Height, det.Label.Name)
	}
	fill, err := ParseHexColor(det.Label.Color, labelAlpha)
	if err != nil {
		return err
	}

	text := labelText(det.Label.Name, det.Confidence, drawConfidence)
	textW, textH := dc.MeasureString(text)

	dc.SetColor(fill)
	dc.SetLineWidth(borderWidth)
	dc.DrawRectangle(float64(det.Box.X), float64(det.Box.Y),
		float64(det.Box.Width), float64(det.Box.Height))
	dc.Stroke()

	// The label block sits above the box top edge, lifted by twice the text
	// height so it never overlaps the outline.
	bgX := float64(det.Box.X)
	bgY := float64(det.Box.Y) - 2*textH
	bgW := textW + fontSize
	bgH := textH + fontSize
	dc.DrawRectangle(bgX, bgY, bgW, bgH)
	dc.Fill()

	cx := bgX + bgW/2
	cy := bgY + bgH/2
	dc.SetColor(shadowColor)
	dc.DrawStringAnchored(text, cx+shadowOffset, cy+shadowOffset, 0.5, 0.5)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(text, cx, cy, 0.5, 0.5)

	return nil
}
