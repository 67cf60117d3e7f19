package font

import (
	"encoding/binary"
	"fmt"
	"slices"
)

// Tables describes which top-level tables a font file carries.
type Tables struct {
	tags []string
}

// ScanTables reads the table directory of an sfnt font or of the first
// font in a collection.
func ScanTables(data []byte) (Tables, error) {
	if len(data) < 12 {
		return Tables{}, fmt.Errorf("%w: truncated header", ErrFormat)
	}
	offset := 0
	if string(data[:4]) == "ttcf" {
		if len(data) < 16 {
			return Tables{}, fmt.Errorf("%w: truncated collection header", ErrFormat)
		}
		offset = int(binary.BigEndian.Uint32(data[12:16]))
		if offset+12 > len(data) {
			return Tables{}, fmt.Errorf("%w: collection offset out of range", ErrFormat)
		}
	}

	n := int(binary.BigEndian.Uint16(data[offset+4 : offset+6]))
	dir := offset + 12
	if dir+16*n > len(data) {
		return Tables{}, fmt.Errorf("%w: truncated table directory", ErrFormat)
	}

	t := Tables{tags: make([]string, 0, n)}
	for i := 0; i < n; i++ {
		rec := data[dir+16*i:]
		t.tags = append(t.tags, string(rec[:4]))
	}
	slices.Sort(t.tags)
	return t, nil
}

// Has reports whether the font carries the table with the given tag.
func (t Tables) Has(tag string) bool {
	_, ok := slices.BinarySearch(t.tags, tag)
	return ok
}

// Tags returns the sorted table tags.
func (t Tables) Tags() []string {
	return slices.Clone(t.tags)
}

// HasKerning reports whether the font has a table that may hold pair
// kerning. A GPOS table may hold none; the sfnt provider checks its
// lookups when the font is opened.
func (t Tables) HasKerning() bool {
	return t.Has("kern") || t.Has("GPOS")
}

// HasLigatures reports whether the font has glyph substitution data.
func (t Tables) HasLigatures() bool {
	return t.Has("GSUB")
}

// HasNativeHints reports whether the font is TrueType-flavoured and
// carries bytecode hint programs.
func (t Tables) HasNativeHints() bool {
	return t.Has("glyf") && (t.Has("fpgm") || t.Has("prep"))
}
