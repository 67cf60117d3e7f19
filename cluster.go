package gglyph

import (
	"fmt"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// SavedGrapheme carries state between ClusterGlyph calls on one text.
// The zero value means the start of the text.
type SavedGrapheme struct {
	// CP is the last codepoint of the previous cluster.
	CP rune

	// Len is the encoded length of CP in bytes, 0 if there is none.
	Len int

	// Ligated is set when CP ended a ligature. Such a codepoint does not
	// start another ligature, since the caller has already replaced its
	// glyph once.
	Ligated bool
}

// ClusterGlyph renders the grapheme cluster at the start of text.
//
// It returns the number of bytes the glyph covers and the glyph. Unless
// FlagNoLigatures is set, the previous codepoint recorded in saved and
// the first codepoint of text may form a ligature; the glyph then covers
// the previous cluster as well, n includes saved.Len and Glyph.Preceding
// reports how many of the n bytes lie before text. Callers advance their
// cursor by n - Glyph.Preceding in either case and replace the previous
// glyph with a ligature. Ligatures do not chain: the codepoint closing
// one is never the start of the next.
//
// For an ordinary cluster, kerning against the previous codepoint is
// included in Glyph.Advance. Combining marks are consumed with their
// base; the glyph is the precomposed character if a font has it and the
// base character otherwise.
//
// On success saved describes the last codepoint consumed. On failure
// saved is reset to the zero value.
func (c *Context) ClusterGlyph(text []byte, saved *SavedGrapheme, xf, yf float64) (int, *Glyph, error) {
	if saved == nil {
		return 0, nil, fmt.Errorf("%w: nil saved grapheme", ErrInvalidArgument)
	}
	prev := *saved
	*saved = SavedGrapheme{}

	if err := c.check(); err != nil {
		return 0, nil, err
	}
	if len(text) == 0 {
		return 0, nil, fmt.Errorf("%w: empty text", ErrInvalidArgument)
	}
	if r, size := utf8.DecodeRune(text); r == utf8.RuneError && size <= 1 {
		return 0, nil, fmt.Errorf("%w: byte %#02x", ErrInvalidEncoding, text[0])
	}

	cluster := validPrefix(firstCluster(text))
	runes := []rune(string(cluster))

	if !c.rendering.Flags.Has(FlagNoLigatures) && prev.Len > 0 && !prev.Ligated {
		if fg, ok := c.ligature(prev.CP, runes[0]); ok {
			g, err := c.render(fg, xf, yf, 0)
			if err != nil {
				return 0, nil, err
			}
			Logger().Debug("gglyph: ligature",
				"font", fg.font.Name(), "left", string(prev.CP), "right", string(runes[0]), "glyph", fg.gid)
			g.Preceding = prev.Len
			*saved = lastRune(cluster)
			saved.Ligated = true
			return prev.Len + len(cluster), g, nil
		}
	}

	fg, ok := c.clusterGlyph(cluster, runes)
	if !ok {
		return 0, nil, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, runes[0])
	}
	var kern float64
	if prev.Len > 0 {
		if pg, ok := c.lookup(prev.CP); ok {
			kern = c.kerning(pg, fg)
		}
	}
	g, err := c.render(fg, xf, yf, kern)
	if err != nil {
		return 0, nil, err
	}
	*saved = lastRune(cluster)
	return len(cluster), g, nil
}

// ligature returns the first font that covers both runes and substitutes
// a single glyph for them.
func (c *Context) ligature(left, right rune) (fontGlyph, bool) {
	for _, f := range c.fonts {
		p := f.Provider()
		if _, ok := p.GlyphIndex(left); !ok {
			continue
		}
		if _, ok := p.GlyphIndex(right); !ok {
			continue
		}
		if gid, ok := p.Ligature(left, right); ok {
			return fontGlyph{font: f, gid: gid}, true
		}
	}
	return fontGlyph{}, false
}

// clusterGlyph resolves the glyph for a cluster: its NFC composition when
// that is a single codepoint some font covers, else its first codepoint.
func (c *Context) clusterGlyph(cluster []byte, runes []rune) (fontGlyph, bool) {
	if len(runes) > 1 {
		composed := norm.NFC.Bytes(cluster)
		if utf8.RuneCount(composed) == 1 {
			r, _ := utf8.DecodeRune(composed)
			if fg, ok := c.lookup(r); ok {
				return fg, true
			}
		}
	}
	return c.lookup(runes[0])
}

// firstCluster returns the leading grapheme cluster of text.
func firstCluster(text []byte) []byte {
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(text, -1)
	if len(cluster) == 0 {
		_, size := utf8.DecodeRune(text)
		return text[:size]
	}
	return cluster
}

// validPrefix cuts b before its first invalid UTF-8 sequence.
func validPrefix(b []byte) []byte {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return b[:i]
		}
		i += size
	}
	return b
}

// lastRune returns the state that follows b.
func lastRune(b []byte) SavedGrapheme {
	r, size := utf8.DecodeLastRune(b)
	return SavedGrapheme{CP: r, Len: size}
}
