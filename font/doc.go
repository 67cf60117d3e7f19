// Package font is the outline provider boundary of gglyph.
//
// A [Font] is a reference-counted handle over a [Provider], the parsed
// font source that answers per-glyph questions: which glyph serves a
// rune, its outline and advance in font units, pair kerning and pair
// ligature substitution. Fonts are opened from a file path, a memory
// buffer, an open file descriptor or a stream:
//
//	f, err := font.OpenFile("DejaVuSans.ttf")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
// The default backend parses TrueType and OpenType (CFF) data with
// golang.org/x/image/font/sfnt. TrueType fonts that ship bytecode hint
// programs additionally implement [NativeHinter] through the
// github.com/golang/freetype interpreter, and GSUB ligatures are looked
// up with the go-text HarfBuzz shaper.
//
// Providers are safe for concurrent use. A Font may be shared by any
// number of rendering contexts on any number of goroutines.
package font
