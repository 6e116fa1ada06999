package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Letterbox scales src to fit within (w, h) while preserving its aspect
// ratio, centers the result on a black canvas of exactly (w, h), and
// returns the canvas. The border left uncovered by the scaled source is
// solid black; when the source already matches the target aspect ratio no
// border is introduced.
//
// The output is always opaque: any alpha channel in the source is dropped.
// The source image is never modified.
func Letterbox(src image.Image, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: letterbox target %dx%d", ErrInvalidGeometry, w, h)
	}
	srcW := src.Bounds().Dx()
	srcH := src.Bounds().Dy()
	if srcW <= 0 || srcH <= 0 {
		return nil, fmt.Errorf("%w: letterbox source %dx%d", ErrInvalidGeometry, srcW, srcH)
	}

	gain := math.Min(float64(w)/float64(srcW), float64(h)/float64(srcH))
	scaledW := int(math.Round(float64(srcW) * gain))
	scaledH := int(math.Round(float64(srcH) * gain))

	scaled := imaging.Resize(src, scaledW, scaledH, imaging.Lanczos)
	canvas := imaging.New(w, h, color.NRGBA{A: 255})
	out := imaging.Paste(canvas, scaled, image.Pt((w-scaledW)/2, (h-scaledH)/2))

	// The model input is strictly 3-channel; force full opacity.
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}

	return out, nil
}
