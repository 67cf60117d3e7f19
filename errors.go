package gglyph

import (
	"errors"
	"fmt"

	"github.com/gogpu/gglyph/font"
)

// Sentinel errors for the gglyph package.
var (
	// ErrInvalidArgument is returned for missing or out-of-range inputs.
	ErrInvalidArgument = errors.New("gglyph: invalid argument")

	// ErrOutOfMemory is returned when a glyph bitmap would exceed the
	// representable size.
	ErrOutOfMemory = errors.New("gglyph: out of memory")

	// ErrGlyphNotFound is returned when no font of a context covers a codepoint.
	ErrGlyphNotFound = errors.New("gglyph: glyph not found")

	// ErrInvalidEncoding is returned for malformed UTF-8 at a cluster cursor.
	ErrInvalidEncoding = errors.New("gglyph: invalid UTF-8")

	// ErrRasterization is returned when an outline cannot be rendered.
	ErrRasterization = errors.New("gglyph: rasterization failed")

	// ErrIncompatibleGlyphs is returned when merging glyphs rendered with
	// different smoothing modes or subpixel orders.
	ErrIncompatibleGlyphs = errors.New("gglyph: incompatible glyphs")

	// ErrUnsupportedVersion is returned for a Rendering with an unknown
	// Version. It wraps ErrInvalidArgument.
	ErrUnsupportedVersion = fmt.Errorf("%w: unsupported rendering version", ErrInvalidArgument)
)

// Errors reported when opening fonts.
var (
	ErrIO     = font.ErrIO
	ErrFormat = font.ErrFormat
)
