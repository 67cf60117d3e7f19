package gglyph

import (
	"fmt"
	"slices"

	"github.com/gogpu/gglyph/font"
)

// Context renders glyphs from an ordered list of fonts with one Rendering.
//
// The first font that covers a codepoint serves it. A Context is not safe
// for concurrent use; fonts may be shared between contexts used on
// different goroutines.
type Context struct {
	fonts     []*font.Font
	size      float64
	rendering Rendering
	userData  any
	closed    bool
}

// fontGlyph is a glyph resolved to the font that serves it.
type fontGlyph struct {
	font *font.Font
	gid  font.GlyphID
}

// NewContext creates a Context for fonts in fallback order.
//
// size is the pixel size of the em, measured vertically. r is copied; nil
// selects DefaultRendering. userData is returned by UserData unmodified.
//
// The Context takes its own reference to every font and drops it on
// Close, so the caller may close its fonts at any time. The fonts slice
// itself is not retained.
func NewContext(fonts []*font.Font, size float64, r *Rendering, userData any) (*Context, error) {
	rendering := DefaultRendering()
	if r != nil {
		rendering = *r
	}
	if err := rendering.Validate(); err != nil {
		return nil, err
	}
	if len(fonts) == 0 {
		return nil, fmt.Errorf("%w: no fonts", ErrInvalidArgument)
	}
	if !allFinite(size) || size <= 0 {
		return nil, fmt.Errorf("%w: size %v", ErrInvalidArgument, size)
	}
	for i, f := range fonts {
		if f == nil {
			return nil, fmt.Errorf("%w: font %d is nil", ErrInvalidArgument, i)
		}
	}

	held := make([]*font.Font, 0, len(fonts))
	for i, f := range fonts {
		if !f.Retain() {
			releaseFonts(held)
			return nil, fmt.Errorf("%w: font %d: %w", ErrInvalidArgument, i, font.ErrClosed)
		}
		held = append(held, f)
	}

	return &Context{
		fonts:     held,
		size:      size,
		rendering: rendering,
		userData:  userData,
	}, nil
}

// releaseFonts drops one reference to each font, last first.
func releaseFonts(fonts []*font.Font) {
	for i := len(fonts) - 1; i >= 0; i-- {
		if err := fonts[i].Close(); err != nil {
			Logger().Warn("gglyph: releasing font", "font", fonts[i].Name(), "err", err)
		}
	}
}

// Close releases the fonts in reverse fallback order. It is safe to call
// Close more than once and on a nil Context.
func (c *Context) Close() error {
	if c == nil || c.closed {
		return nil
	}
	c.closed = true
	releaseFonts(c.fonts)
	c.fonts = nil
	return nil
}

// Rendering returns the configuration the Context was created with.
func (c *Context) Rendering() Rendering {
	return c.rendering
}

// UserData returns the value passed to NewContext.
func (c *Context) UserData() any {
	return c.userData
}

// Size returns the em size in pixels.
func (c *Context) Size() float64 {
	return c.size
}

// Fonts returns the fonts in fallback order. The slice is a copy.
func (c *Context) Fonts() []*font.Font {
	return slices.Clone(c.fonts)
}

// check returns an error if the Context cannot be used.
func (c *Context) check() error {
	if c == nil || c.closed {
		return fmt.Errorf("%w: context is closed", ErrInvalidArgument)
	}
	return nil
}

// lookup returns the first font that covers cp.
func (c *Context) lookup(cp rune) (fontGlyph, bool) {
	for _, f := range c.fonts {
		if gid, ok := f.Provider().GlyphIndex(cp); ok {
			return fontGlyph{font: f, gid: gid}, true
		}
	}
	return fontGlyph{}, false
}

// Glyph renders the codepoint cp from the first font that covers it.
//
// xf and yf are subpixel offsets of the pen position in [0,1). A positive
// yf moves the glyph down, or up with FlagYIncreasesUpwards.
func (c *Context) Glyph(cp rune, xf, yf float64) (*Glyph, error) {
	if err := c.check(); err != nil {
		return nil, err
	}
	fg, ok := c.lookup(cp)
	if !ok {
		return nil, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, cp)
	}
	return c.render(fg, xf, yf, 0)
}
