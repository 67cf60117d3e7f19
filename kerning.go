package gglyph

import "github.com/gogpu/gglyph/internal/hint"

// kerning returns the pair adjustment in pixels between two resolved
// glyphs, scaled by Rendering.Kerning.
//
// FlagAutoKerning always uses the autokerner and FlagNoAutoKerning never
// does. Otherwise the font's kerning table is used if it has one, and the
// autokerner if not. Glyphs from different fonts have no table entry.
// Vertical text is not kerned.
func (c *Context) kerning(left, right fontGlyph) float64 {
	r := &c.rendering
	if r.Kerning == 0 || r.Flags.Has(FlagVerticalText) {
		return 0
	}

	var table float64
	hasTable := false
	if left.font == right.font {
		table, hasTable = left.font.Provider().Kerning(left.gid, right.gid)
	}

	var k float64
	switch {
	case r.Flags.Has(FlagAutoKerning):
		k = c.autoKern(left, right)
	case hasTable:
		k = table * c.size / float64(left.font.Provider().UnitsPerEm()) * r.xStretch()
	case r.Flags.Has(FlagNoAutoKerning):
		return 0
	default:
		k = c.autoKern(left, right)
	}
	return k * r.Kerning
}

// autoKern derives a pair adjustment from the facing side bearings.
func (c *Context) autoKern(left, right fontGlyph) float64 {
	lp, rp := left.font.Provider(), right.font.Provider()
	lo, err := lp.LoadOutline(left.gid)
	if err != nil || lo.IsEmpty() {
		return 0
	}
	ro, err := rp.LoadOutline(right.gid)
	if err != nil || ro.IsEmpty() {
		return 0
	}
	if lp.UnitsPerEm() <= 0 || rp.UnitsPerEm() <= 0 {
		return 0
	}

	stretch := c.rendering.xStretch()
	lsx := c.size / float64(lp.UnitsPerEm()) * stretch
	rsx := c.size / float64(rp.UnitsPerEm()) * stretch
	rsb := (lp.Advance(left.gid) - lo.Bounds().MaxX) * lsx
	lsb := ro.Bounds().MinX * rsx
	return hint.AutoKern(rsb, lsb, c.size*stretch)
}
