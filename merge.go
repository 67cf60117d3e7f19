package gglyph

import (
	"fmt"

	"github.com/gogpu/gglyph/internal/pool"
	"github.com/gogpu/gglyph/internal/raster"
)

// MergeGlyphs composites overlay onto base, for example to stack a
// combining mark that a font has no precomposed glyph for.
//
// Both glyphs are positioned by their own X and Y. The result covers the
// union of the two images and takes the larger coverage of the two at
// every byte. Advance, Kerning and Preceding come from base; the advance
// of overlay is discarded. The inputs are not modified or released.
//
// Glyphs with different smoothing, or subpixel glyphs with different
// subpixel orders, fail with ErrIncompatibleGlyphs.
func (c *Context) MergeGlyphs(base, overlay *Glyph) (*Glyph, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	if base == nil || overlay == nil {
		return nil, fmt.Errorf("%w: nil glyph", ErrInvalidArgument)
	}
	for _, g := range []*Glyph{base, overlay} {
		if g.Width < 0 || g.Height < 0 || len(g.Image) < g.Width*g.Height*g.Channels() {
			return nil, fmt.Errorf("%w: glyph image does not match its size", ErrInvalidArgument)
		}
	}
	if base.Smoothing != overlay.Smoothing {
		return nil, fmt.Errorf("%w: smoothing %v and %v", ErrIncompatibleGlyphs, base.Smoothing, overlay.Smoothing)
	}
	if base.Smoothing == SmoothingSubpixel && base.SubpixelOrder != overlay.SubpixelOrder {
		return nil, fmt.Errorf("%w: subpixel order %v and %v", ErrIncompatibleGlyphs, base.SubpixelOrder, overlay.SubpixelOrder)
	}

	out := &Glyph{
		Advance:       base.Advance,
		X:             base.X,
		Y:             base.Y,
		Smoothing:     base.Smoothing,
		SubpixelOrder: base.SubpixelOrder,
		Kerning:       base.Kerning,
		Preceding:     base.Preceding,
	}

	var parts []*Glyph
	for _, g := range []*Glyph{base, overlay} {
		if !g.Empty() {
			parts = append(parts, g)
		}
	}
	if len(parts) == 0 {
		return out, nil
	}

	// Row i of a glyph is at vertical offset Y+i in either orientation.
	x0, y0 := parts[0].X, parts[0].Y
	x1, y1 := x0+parts[0].Width, y0+parts[0].Height
	for _, g := range parts[1:] {
		x0, y0 = min(x0, g.X), min(y0, g.Y)
		x1, y1 = max(x1, g.X+g.Width), max(y1, g.Y+g.Height)
	}

	out.X, out.Y = x0, y0
	out.Width, out.Height = x1-x0, y1-y0
	out.Size = out.Width * out.Height * out.Channels()
	if out.Width > MaxGlyphDimension || out.Height > MaxGlyphDimension || out.Size > raster.DefaultMaxBytes {
		return nil, fmt.Errorf("%w: merged glyph %dx%d", ErrOutOfMemory, out.Width, out.Height)
	}
	out.Image = pool.Get(out.Size)

	ch := out.Channels()
	stride := out.Stride()
	for _, g := range parts {
		gs := g.Stride()
		off := (g.X - x0) * ch
		for row := 0; row < g.Height; row++ {
			dst := out.Image[(g.Y-y0+row)*stride+off:]
			src := g.Image[row*gs : (row+1)*gs]
			for i, v := range src {
				if v > dst[i] {
					dst[i] = v
				}
			}
		}
	}
	return out, nil
}
