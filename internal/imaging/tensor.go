package imaging

import "image"

// Tensor is a dense 4-D float32 buffer shaped (batch, channel, row, column),
// stored row-major and contiguous. Values are normalized to [0, 1].
type Tensor struct {
	Data  []float32
	Shape [4]int
}

// At returns the value at (batch, channel, row, column).
func (t *Tensor) At(b, c, y, x int) float32 {
	ch, h, w := t.Shape[1], t.Shape[2], t.Shape[3]
	return t.Data[((b*ch+c)*h+y)*w+x]
}

// PackTensor reads a fixed-size 3-channel image of size (W, H) and returns a
// fresh (1, 3, H, W) tensor where each value is the corresponding channel
// byte divided by 255. Ownership of the tensor transfers to the caller; the
// image is left untouched.
//
// Rows are packed in parallel. Each worker reads its own rows and writes
// disjoint slices of the output, so no synchronization beyond the final join
// is needed.
func PackTensor(img *image.NRGBA) *Tensor {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	t := &Tensor{
		Data:  make([]float32, 3*w*h),
		Shape: [4]int{1, 3, h, w},
	}
	plane := w * h

	partitionRows(h, func(from, to int) {
		for y := from; y < to; y++ {
			off := img.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			row := img.Pix[off : off+w*4]
			for x := 0; x < w; x++ {
				idx := y*w + x
				t.Data[idx] = float32(row[x*4]) / 255.0
				t.Data[plane+idx] = float32(row[x*4+1]) / 255.0
				t.Data[2*plane+idx] = float32(row[x*4+2]) / 255.0
			}
		}
	})

	return t
}
