// Package raster scan-converts glyph outlines into coverage bitmaps.
//
// Outlines are accumulated with golang.org/x/image/vector, which sums
// signed area per pixel and saturates the absolute winding at full
// coverage: the non-zero fill rule for glyph contours. Monochrome output
// thresholds coverage at one half. Subpixel output samples three times
// along the layout axis and runs the samples through a five-tap low-pass
// filter so that colour fringes stay faint.
package raster
