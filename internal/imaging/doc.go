// Package imaging provides the pixel-level operations of the annotation
// pipeline: letterbox resizing, tensor packing, threshold scanning, and
// coordinate remapping between model space and original-image space.
//
// All operations work with standard Go image types and use a coordinate
// system where (0,0) is at the top-left corner, X increases rightward, and
// Y increases downward.
//
// # Pipeline
//
// A source image is letterboxed to the model's fixed input size, packed into
// a normalized (1,3,H,W) tensor, and handed to an external inference stage.
// Raw model outputs are mapped back to source coordinates with RestoreMask
// and the rectangle remapping functions before rendering.
//
// # Thread Safety
//
// PackTensor and ScanThreshold fan work out across a bounded set of workers
// internally; both are safe to call concurrently on different images. No
// function in this package mutates its input image.
//
// # Error Handling
//
// Geometry is validated up front: non-positive widths or heights fail with
// an error wrapping ErrInvalidGeometry. Nothing in this package clamps
// silently.
package imaging
