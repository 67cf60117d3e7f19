package font

// GlyphID is a glyph index within a font. Glyph 0 is the missing glyph.
type GlyphID uint16

// Provider is a parsed font source.
//
// All methods must be safe for concurrent use. Geometry is reported in
// font units with y increasing upwards.
type Provider interface {
	// Name returns the font family name, or "" if unknown.
	Name() string

	// UnitsPerEm returns the size of the em square in font units.
	UnitsPerEm() int

	// GlyphIndex returns the glyph mapped to r.
	// The bool is false if the font does not cover r.
	GlyphIndex(r rune) (GlyphID, bool)

	// LoadOutline returns the outline of a glyph in font units.
	// Glyphs without contours (such as space) return an empty outline.
	LoadOutline(gid GlyphID) (*Outline, error)

	// Advance returns the horizontal advance of a glyph in font units.
	Advance(gid GlyphID) float64

	// Kerning returns the pair adjustment between two glyphs in font units.
	// The bool reports whether the font carries kerning data at all,
	// not whether this particular pair is kerned.
	Kerning(left, right GlyphID) (float64, bool)

	// Ligature returns the single glyph substituted for the rune pair,
	// if the font defines such a ligature.
	Ligature(left, right rune) (GlyphID, bool)
}

// NativeHinter is implemented by providers that carry font-supplied hint
// programs (TrueType bytecode).
type NativeHinter interface {
	// HasNativeHints reports whether the font has hint programs.
	HasNativeHints() bool

	// HintedOutline executes the hint programs at ppem pixels per em and
	// returns the hinted outline and the unhinted outline at the same
	// scale, both in pixels with y up. The two outlines have identical
	// segment topology.
	HintedOutline(gid GlyphID, ppem float64) (hinted, unhinted *Outline, err error)
}
