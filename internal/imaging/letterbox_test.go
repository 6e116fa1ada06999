package imaging

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// fillImage creates a uniformly colored NRGBA image.
func fillImage(width, height int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestLetterbox_OutputDimensions(t *testing.T) {
	tests := []struct {
		name       string
		srcW, srcH int
		dstW, dstH int
	}{
		{"landscape into square", 200, 100, 64, 64},
		{"portrait into square", 100, 200, 64, 64},
		{"square into square", 100, 100, 64, 64},
		{"upscale", 10, 10, 128, 128},
		{"non-square target", 100, 100, 96, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := fillImage(tt.srcW, tt.srcH, color.NRGBA{R: 200, A: 255})
			out, err := Letterbox(src, tt.dstW, tt.dstH)
			if err != nil {
				t.Fatalf("Letterbox failed: %v", err)
			}
			if got, want := out.Bounds().Dx(), tt.dstW; got != want {
				t.Errorf("width: got %d, want %d", got, want)
			}
			if got, want := out.Bounds().Dy(), tt.dstH; got != want {
				t.Errorf("height: got %d, want %d", got, want)
			}
		})
	}
}

func TestLetterbox_PadsWithBlack(t *testing.T) {
	// 100x50 source into 100x100 target: rows 0-24 and 75-99 are padding.
	src := fillImage(100, 50, color.NRGBA{R: 255, A: 255})
	out, err := Letterbox(src, 100, 100)
	if err != nil {
		t.Fatalf("Letterbox failed: %v", err)
	}

	top := out.NRGBAAt(50, 5)
	if top != (color.NRGBA{A: 255}) {
		t.Errorf("pad pixel: got %v, want opaque black", top)
	}
	bottom := out.NRGBAAt(50, 95)
	if bottom != (color.NRGBA{A: 255}) {
		t.Errorf("pad pixel: got %v, want opaque black", bottom)
	}
	center := out.NRGBAAt(50, 50)
	if center != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("content pixel: got %v, want red", center)
	}
}

func TestLetterbox_NoPadWhenAspectMatches(t *testing.T) {
	src := fillImage(50, 50, color.NRGBA{G: 255, A: 255})
	out, err := Letterbox(src, 100, 100)
	if err != nil {
		t.Fatalf("Letterbox failed: %v", err)
	}

	for _, p := range []image.Point{{0, 0}, {99, 0}, {0, 99}, {99, 99}, {50, 50}} {
		got := out.NRGBAAt(p.X, p.Y)
		if got != (color.NRGBA{G: 255, A: 255}) {
			t.Errorf("pixel (%d,%d): got %v, want green (no padding expected)", p.X, p.Y, got)
		}
	}
}

func TestLetterbox_DropsAlpha(t *testing.T) {
	src := fillImage(40, 40, color.NRGBA{B: 255, A: 100})
	out, err := Letterbox(src, 40, 40)
	if err != nil {
		t.Fatalf("Letterbox failed: %v", err)
	}

	for i := 3; i < len(out.Pix); i += 4 {
		if out.Pix[i] != 0xff {
			t.Fatalf("alpha at offset %d: got %d, want 255", i, out.Pix[i])
		}
	}
}

func TestLetterbox_SourceUnmodified(t *testing.T) {
	src := fillImage(30, 20, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	want := src.NRGBAAt(15, 10)

	if _, err := Letterbox(src, 64, 64); err != nil {
		t.Fatalf("Letterbox failed: %v", err)
	}
	if got := src.NRGBAAt(15, 10); got != want {
		t.Errorf("source mutated: got %v, want %v", got, want)
	}
}

func TestLetterbox_InvalidGeometry(t *testing.T) {
	src := fillImage(10, 10, color.NRGBA{A: 255})

	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 64},
		{"zero height", 64, 0},
		{"negative width", -1, 64},
		{"negative height", 64, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Letterbox(src, tt.w, tt.h)
			if !errors.Is(err, ErrInvalidGeometry) {
				t.Errorf("got %v, want ErrInvalidGeometry", err)
			}
		})
	}
}
