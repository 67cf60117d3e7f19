package gglyph

import (
	"github.com/gogpu/gglyph/internal/pool"
	"github.com/gogpu/gglyph/internal/raster"
)

// MaxGlyphDimension is the largest glyph width or height in pixels.
const MaxGlyphDimension = raster.MaxDimension

// Glyph is a rendered glyph image.
//
// Image holds Height rows of Width pixels. A pixel is one byte for
// monochrome (0 or 255) and greyscale coverage, and three bytes for
// subpixel coverage, ordered as the subpixels physically appear (left to
// right, or top to bottom for vertical layouts). Rows run top to bottom,
// or bottom to top when the Rendering has FlagYIncreasesUpwards.
//
// The caller owns a Glyph and should call Release when done with it.
type Glyph struct {
	// Advance is the pen motion in pixels after this glyph, kerning and
	// spacing included. It is horizontal for horizontal text and
	// vertical for vertical text.
	Advance float64

	// X and Y locate the first pixel of Image relative to the pen
	// position. Y is measured downwards to the top row, or upwards to
	// the bottom row with FlagYIncreasesUpwards.
	X, Y int

	// Width and Height are the image dimensions in pixels.
	Width, Height int

	// Size is the length of Image in bytes.
	Size int

	Image []byte

	Smoothing     Smoothing
	SubpixelOrder SubpixelOrder

	// Kerning is the pair adjustment against the preceding codepoint
	// that is already included in Advance.
	Kerning float64

	// Preceding is the number of bytes before the text passed to
	// ClusterGlyph that belong to this glyph. It is non-zero only for
	// ligatures that join the previous cluster.
	Preceding int
}

// Channels returns the number of bytes per pixel.
func (g *Glyph) Channels() int {
	return g.Smoothing.Channels()
}

// Stride returns the number of bytes per image row.
func (g *Glyph) Stride() int {
	return g.Width * g.Channels()
}

// Empty reports whether the glyph has no pixels, as for a space.
func (g *Glyph) Empty() bool {
	return g.Width == 0 || g.Height == 0
}

// Release returns the image buffer for reuse. The glyph keeps its metrics
// but has no image afterwards. Release on a nil Glyph is a no-op.
func (g *Glyph) Release() {
	if g == nil || g.Image == nil {
		return
	}
	pool.Put(g.Image)
	g.Image = nil
	g.Size = 0
}
