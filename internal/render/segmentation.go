package render

import (
	"fmt"
	"image"
	"image/draw"
	"runtime"

	"github.com/anthonynsimon/bild/blend"
	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/vision-annotate/internal/detection"
	"github.com/ironsheep/vision-annotate/internal/imaging"
)

// maskOpacity is the fixed blend factor for instance mask overlays.
const maskOpacity = 0.28

// Segmentation composites each instance's pixel mask onto img as a
// translucent overlay, then draws boxes and labels for the same instances.
//
// Overlay surfaces are private per instance and built on a worker pool sized
// to the available parallelism; compositing into the shared image happens
// afterwards, one instance at a time, so overlapping instances never lose
// updates. The image is mutated in place.
func Segmentation(img *image.RGBA, segs []detection.Segmentation, drawConfidence bool) error {
	if len(segs) == 0 {
		return nil
	}

	overlays := make([]*image.NRGBA, len(segs))
	g := new(errgroup.Group)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i := range segs {
		i := i
		g.Go(func() error {
			overlay, err := buildOverlay(segs[i])
			overlays[i] = overlay
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, seg := range segs {
		compositeOverlay(img, overlays[i], seg.Box.Rect())
	}

	boxes := make([]detection.Object, len(segs))
	for i, seg := range segs {
		boxes[i] = detection.Object{Base: seg.Base, Box: seg.Box}
	}
	return BoundingBoxes(img, boxes, drawConfidence)
}

// buildOverlay rasterizes the sparse mask into a transparent surface the
// size of the instance box, with mask pixels at the label color and full
// alpha. Mask coordinates are local to the box.
func buildOverlay(seg detection.Segmentation) (*image.NRGBA, error) {
	if seg.Box.Width <= 0 || seg.Box.Height <= 0 {
		return nil, fmt.Errorf("%w: box %dx%d for %q",
			imaging.ErrInvalidGeometry, seg.Box.Width, seg.Box.Height, seg.Label.Name)
	}
	fill, err := ParseHexColor(seg.Label.Color, 255)
	if err != nil {
		return nil, err
	}

	overlay := image.NewNRGBA(image.Rect(0, 0, seg.Box.Width, seg.Box.Height))
	for _, p := range seg.Pixels {
		overlay.SetNRGBA(p.X, p.Y, fill)
	}
	return overlay, nil
}

// compositeOverlay alpha-blends overlay onto the box region of img. The
// transparent parts of the overlay leave the region untouched.
func compositeOverlay(img *image.RGBA, overlay *image.NRGBA, box image.Rectangle) {
	region := image.NewRGBA(image.Rect(0, 0, box.Dx(), box.Dy()))
	draw.Draw(region, region.Bounds(), img, box.Min, draw.Src)

	blended := blend.Opacity(region, overlay, maskOpacity)
	draw.Draw(img, box, blended, image.Point{}, draw.Src)
}
