// Package render composites detection results onto a target image: bounding
// box outlines with labeled text, translucent instance mask overlays, and
// stacked classification label blocks.
//
// Every entry point mutates the passed *image.RGBA in place. Preparation
// work (text measuring, per-instance overlay construction) may run in
// parallel, but all writes into the shared target image are sequential. A
// validation failure partway through a batch leaves earlier results already
// drawn; there is no rollback.
//
// Visual constants (font, stroke width, fixed colors, blend factor) are
// deliberately not configurable so that rendered output stays byte-for-byte
// comparable across callers.
package render
