package detection

import (
	"image"

	"github.com/ironsheep/vision-annotate/internal/imaging"
)

// Label identifies a class together with its display color.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"` // "#RRGGBB"
}

// Box is an axis-aligned rectangle. Which coordinate space it lives in
// (model input or original image) is tracked by the caller, not the box.
type Box struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the box to a standard image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Base carries the fields every result variant shares.
type Base struct {
	Label      Label   `json:"label"`
	Confidence float64 `json:"confidence"` // in [0, 1]
}

// Object is a detected instance with its bounding box.
type Object struct {
	Base
	Box Box `json:"box"`
}

// Segmentation is a detected instance with a sparse per-pixel mask. Pixel
// coordinates are relative to Box's top-left corner and must lie within
// [0, Width) x [0, Height). Box is expressed in original-image space.
type Segmentation struct {
	Base
	Box    Box             `json:"box"`
	Pixels []imaging.Pixel `json:"pixels"`
}

// Classification is a whole-image label with no geometry.
type Classification struct {
	Base
}
