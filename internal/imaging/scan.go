package imaging

import (
	"image"
	"image/color"
	"sync"
)

// ConfidenceCutoff is the fixed threshold applied by ScanThreshold. Only
// pixels whose score is strictly greater than the cutoff are returned.
const ConfidenceCutoff = 0.75

// Pixel is a single harvested coordinate with the confidence that selected
// it. Pixels are immutable once produced.
type Pixel struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Confidence float64 `json:"confidence"`
}

// ScoreFunc derives a confidence in [0, 1] for the pixel at (x, y) with
// color c. It is called concurrently from multiple workers and must not
// retain shared mutable state.
type ScoreFunc func(x, y int, c color.Color) float64

// ScanThreshold scans every pixel of img with score and returns the pixels
// whose confidence strictly exceeds ConfidenceCutoff.
//
// The scan is partitioned by row across a bounded worker set. Each worker
// accumulates matches into a private list; the lists are merged after the
// join, so the result contains every match exactly once but in no
// particular order. Callers needing deterministic order must sort, e.g. by
// (Y, X).
func ScanThreshold(img image.Image, score ScoreFunc) []Pixel {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		merged []Pixel
	)
	partitionRows(height, func(from, to int) {
		var local []Pixel
		for y := from; y < to; y++ {
			py := bounds.Min.Y + y
			for x := 0; x < width; x++ {
				px := bounds.Min.X + x
				if conf := score(px, py, img.At(px, py)); conf > ConfidenceCutoff {
					local = append(local, Pixel{X: px, Y: py, Confidence: conf})
				}
			}
		}
		if len(local) == 0 {
			return
		}
		mu.Lock()
		merged = append(merged, local...)
		mu.Unlock()
	})

	return merged
}
