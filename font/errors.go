package font

import "errors"

// Sentinel errors for the font package.
var (
	// ErrIO is returned when font data cannot be read.
	ErrIO = errors.New("font: i/o error")

	// ErrFormat is returned when font data cannot be parsed.
	ErrFormat = errors.New("font: malformed font data")

	// ErrClosed is returned when a font is used after its last reference was released.
	ErrClosed = errors.New("font: font is closed")

	// ErrNotFound is returned when a glyph index is out of range.
	ErrNotFound = errors.New("font: glyph not found")

	// ErrNoNativeHints is returned by HintedOutline when the font has no hint programs.
	ErrNoNativeHints = errors.New("font: no native hints")

	// ErrUnsupportedFontType is returned when no parser is registered under a name.
	ErrUnsupportedFontType = errors.New("font: unsupported font type")
)
