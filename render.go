package gglyph

import (
	"errors"
	"fmt"

	"github.com/gogpu/gglyph/font"
	"github.com/gogpu/gglyph/internal/hint"
	"github.com/gogpu/gglyph/internal/raster"
)

// render runs the glyph pipeline: load and scale the outline, apply native
// hints, transform up to the grid-fitting stage, position, autohint,
// apply the post-stroke rotation and rasterize. kern is the pair
// adjustment in pixels added to the advance.
func (c *Context) render(fg fontGlyph, xf, yf, kern float64) (*Glyph, error) {
	if !(xf >= 0 && xf < 1) || !(yf >= 0 && yf < 1) {
		return nil, fmt.Errorf("%w: subpixel offset (%v, %v) outside [0,1)", ErrInvalidArgument, xf, yf)
	}
	r := &c.rendering
	p := fg.font.Provider()
	upem := p.UnitsPerEm()
	if upem <= 0 {
		return nil, fmt.Errorf("%w: font %q has %d units per em", ErrRasterization, fg.font.Name(), upem)
	}
	sy := c.size / float64(upem)
	sx := sy * r.xStretch()
	comp := r.compose(p.Advance(fg.gid) * sx)

	mode := c.hintMode(p)
	var o *font.Outline
	if mode == hint.ModeNative {
		var err error
		o, err = c.nativeOutline(p.(font.NativeHinter), fg.gid)
		if err != nil {
			mode = hint.ModeAuto
			if r.Flags.Has(FlagNoAutoHinting) {
				mode = hint.ModeNone
			}
			Logger().Warn("gglyph: native hinting failed",
				"font", fg.font.Name(), "glyph", fg.gid, "fallback", mode, "err", err)
		}
	}
	if o == nil {
		base, err := p.LoadOutline(fg.gid)
		if err != nil {
			return nil, fmt.Errorf("%w: glyph %d: %w", ErrRasterization, fg.gid, err)
		}
		o = base.Scale(sx, sy)
	}

	xf, yf = c.snapOffsets(xf, yf)
	if !r.yUp() {
		yf = -yf
	}
	o = o.Map(Translate(xf, yf).Multiply(comp.fit()).TransformPoint)

	if mode == hint.ModeAuto {
		fineness := r.GridFineness
		if c.subpixelGrid() && r.subpixelAxisVertical() {
			fineness *= 3
		}
		o = hint.Autohint(o, fineness, int(r.Hinting))
	}
	o = o.Map(comp.post.TransformPoint)

	bm, err := raster.Rasterize(o, raster.Options{
		Mode:              rasterMode(r.Smoothing),
		VerticalSubpixels: r.subpixelAxisVertical(),
		CorrectGamma:      r.Flags.Has(FlagCorrectGamma),
		RemoveGamma:       r.Flags.Has(FlagRemoveGamma),
		YUp:               r.yUp(),
	})
	switch {
	case errors.Is(err, raster.ErrTooLarge):
		return nil, fmt.Errorf("%w: glyph %d: %w", ErrOutOfMemory, fg.gid, err)
	case err != nil:
		return nil, fmt.Errorf("%w: glyph %d: %w", ErrRasterization, fg.gid, err)
	}

	Logger().Debug("gglyph: rendered glyph",
		"font", fg.font.Name(), "glyph", fg.gid, "hinting", mode,
		"width", bm.Width, "height", bm.Height)

	return &Glyph{
		Advance:       c.advance(comp, p.Advance(fg.gid)*sx, kern),
		X:             bm.X,
		Y:             bm.Y,
		Width:         bm.Width,
		Height:        bm.Height,
		Size:          len(bm.Pix),
		Image:         bm.Pix,
		Smoothing:     r.Smoothing,
		SubpixelOrder: r.SubpixelOrder,
		Kerning:       kern,
	}, nil
}

// hintMode picks the hinting mode for a font.
func (c *Context) hintMode(p font.Provider) hint.Mode {
	r := &c.rendering
	native := false
	if h, ok := p.(font.NativeHinter); ok {
		native = h.HasNativeHints()
	}
	return hint.Policy{
		Strength:   int(r.Hinting),
		ForceAuto:  r.Flags.Has(FlagAutoHinting),
		ForbidAuto: r.Flags.Has(FlagNoAutoHinting),
	}.Select(native)
}

// nativeOutline runs the font's hint programs at the context size and
// blends the result by hinting strength.
func (c *Context) nativeOutline(h font.NativeHinter, gid font.GlyphID) (*font.Outline, error) {
	hinted, unhinted, err := h.HintedOutline(gid, c.size)
	if err != nil {
		return nil, err
	}
	o, err := hint.Blend(unhinted, hinted, int(c.rendering.Hinting))
	if err != nil {
		return nil, err
	}
	return o.Scale(c.rendering.xStretch(), 1), nil
}

// subpixelGrid reports whether snapping along the subpixel axis uses the
// subpixel resolution.
func (c *Context) subpixelGrid() bool {
	return c.rendering.Smoothing == SmoothingSubpixel && c.rendering.Flags.Has(FlagUseSubpixelGrid)
}

// snapOffsets snaps subpixel offsets to the grid when FlagUseSubpixelGrid
// is set.
func (c *Context) snapOffsets(xf, yf float64) (float64, float64) {
	r := &c.rendering
	if !r.Flags.Has(FlagUseSubpixelGrid) {
		return xf, yf
	}
	vsub := r.subpixelAxisVertical()
	xf = hint.SnapNearest(xf, hint.Grid(r.GridFineness, c.subpixelGrid() && !vsub))
	yf = hint.SnapNearest(yf, hint.Grid(r.GridFineness, c.subpixelGrid() && vsub))
	return xf, yf
}

// advance returns the reported pen advance for a glyph whose unkerned
// horizontal advance is adv pixels.
func (c *Context) advance(comp composition, adv, kern float64) float64 {
	r := &c.rendering
	base := font.Point{X: adv}
	if r.Flags.Has(FlagVerticalText) {
		base = font.Point{Y: -c.size}
	}
	v := comp.advanceVector().TransformVector(base)

	a := v.X
	if comp.vertical {
		a = -v.Y
		if r.yUp() {
			a = v.Y
		}
	}
	if delta := kern + r.InterletterSpacing; a < 0 {
		a -= delta
	} else {
		a += delta
	}

	grid := hint.Grid(r.GridFineness, c.subpixelGrid() && r.subpixelAxisVertical() == comp.vertical)
	return hint.SnapAdvance(a, grid, r.Flags.Has(FlagAdvanceToGrid), r.Flags.Has(FlagRegressToGrid))
}

func rasterMode(s Smoothing) raster.Mode {
	switch s {
	case SmoothingMonochrome:
		return raster.ModeMonochrome
	case SmoothingSubpixel:
		return raster.ModeSubpixel
	default:
		return raster.ModeGreyscale
	}
}
