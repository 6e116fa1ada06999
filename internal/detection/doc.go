// Package detection defines the result data model shared by the rendering
// components: labeled bounding boxes, instance pixel masks, and whole-image
// classifications.
//
// The three result kinds share a common payload (a Label and a Confidence)
// through the embedded Base struct and differ only in geometry: Object adds
// a bounding Box, Segmentation adds a Box plus a sparse pixel mask local to
// that box, and Classification carries no geometry at all. Each renderer
// accepts exactly the variant it understands; there is no runtime dispatch.
//
// Labels are shared, read-only values referenced by many results. The hex
// color string is always 7 characters, "#" followed by 6 hex digits.
package detection
