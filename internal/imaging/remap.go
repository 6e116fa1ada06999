package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// RestoreMask reverses a prior letterbox resize. Given a mask sized to the
// model's padded input and the original image's true dimensions, it strips
// the letterbox padding, resizes the remainder to exactly (origW, origH),
// and crops the result to box (expressed in original-image coordinates).
//
// The three steps run in exactly that order; resizing before removing the
// padding would stretch the pad into the image. All intermediates are
// temporaries released after the call.
func RestoreMask(mask image.Image, origW, origH int, box image.Rectangle) (*image.NRGBA, error) {
	if origW <= 0 || origH <= 0 {
		return nil, fmt.Errorf("%w: original size %dx%d", ErrInvalidGeometry, origW, origH)
	}
	if box.Dx() <= 0 || box.Dy() <= 0 {
		return nil, fmt.Errorf("%w: crop box %v", ErrInvalidGeometry, box)
	}
	maskW := mask.Bounds().Dx()
	maskH := mask.Bounds().Dy()
	if maskW <= 0 || maskH <= 0 {
		return nil, fmt.Errorf("%w: mask %dx%d", ErrInvalidGeometry, maskW, maskH)
	}

	_, padX, padY := letterboxParams(maskW, maskH, origW, origH)

	unpadded := imaging.Crop(mask, image.Rect(padX, padY, maskW-padX, maskH-padY))
	restored := imaging.Resize(unpadded, origW, origH, imaging.Lanczos)
	return imaging.Crop(restored, box), nil
}

// ModelToOriginal maps a rectangle from letterboxed model space back to
// original-image space.
func ModelToOriginal(r image.Rectangle, modelW, modelH, origW, origH int) image.Rectangle {
	gain, padX, padY := letterboxParamsFloat(modelW, modelH, origW, origH)
	return image.Rect(
		int(math.Round((float64(r.Min.X)-padX)/gain)),
		int(math.Round((float64(r.Min.Y)-padY)/gain)),
		int(math.Round((float64(r.Max.X)-padX)/gain)),
		int(math.Round((float64(r.Max.Y)-padY)/gain)),
	)
}

// OriginalToModel maps a rectangle from original-image space into
// letterboxed model space. It is the inverse of ModelToOriginal up to
// rounding.
func OriginalToModel(r image.Rectangle, modelW, modelH, origW, origH int) image.Rectangle {
	gain, padX, padY := letterboxParamsFloat(modelW, modelH, origW, origH)
	return image.Rect(
		int(math.Round(float64(r.Min.X)*gain+padX)),
		int(math.Round(float64(r.Min.Y)*gain+padY)),
		int(math.Round(float64(r.Max.X)*gain+padX)),
		int(math.Round(float64(r.Max.Y)*gain+padY)),
	)
}

// letterboxParams returns the uniform scale factor applied by a letterbox
// from (origW, origH) to (modelW, modelH) and the integer pad on each side.
func letterboxParams(modelW, modelH, origW, origH int) (gain float64, padX, padY int) {
	g, px, py := letterboxParamsFloat(modelW, modelH, origW, origH)
	return g, int(math.Round(px)), int(math.Round(py))
}

func letterboxParamsFloat(modelW, modelH, origW, origH int) (gain, padX, padY float64) {
	gain = math.Min(float64(modelW)/float64(origW), float64(modelH)/float64(origH))
	padX = (float64(modelW) - float64(origW)*gain) / 2
	padY = (float64(modelH) - float64(origH)*gain) / 2
	return gain, padX, padY
}
