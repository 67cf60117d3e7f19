package gglyph

import "fmt"

// RenderingVersion is the Rendering layout understood by this package.
const RenderingVersion = 0

// SubpixelOrder is the physical order of a display's colour subpixels.
type SubpixelOrder int

const (
	// SubpixelOrderNone means the layout is unknown or not striped.
	SubpixelOrderNone SubpixelOrder = iota

	// SubpixelOrderRGB is red, green, blue from left to right.
	SubpixelOrderRGB

	// SubpixelOrderBGR is blue, green, red from left to right.
	SubpixelOrderBGR

	// SubpixelOrderVRGB is red, green, blue from top to bottom.
	SubpixelOrderVRGB

	// SubpixelOrderVBGR is blue, green, red from top to bottom.
	SubpixelOrderVBGR
)

// String returns the string representation of the subpixel order.
func (o SubpixelOrder) String() string {
	switch o {
	case SubpixelOrderNone:
		return "None"
	case SubpixelOrderRGB:
		return "RGB"
	case SubpixelOrderBGR:
		return "BGR"
	case SubpixelOrderVRGB:
		return "VRGB"
	case SubpixelOrderVBGR:
		return "VBGR"
	default:
		return "Unknown"
	}
}

// Vertical reports whether the subpixels are stacked vertically.
func (o SubpixelOrder) Vertical() bool {
	return o == SubpixelOrderVRGB || o == SubpixelOrderVBGR
}

// Smoothing is the anti-aliasing mode.
type Smoothing int

const (
	// SmoothingMonochrome renders pixels fully on or off.
	SmoothingMonochrome Smoothing = iota

	// SmoothingGreyscale renders one coverage byte per pixel.
	SmoothingGreyscale

	// SmoothingSubpixel renders three coverage bytes per pixel, one per
	// colour subpixel in the physical order of the SubpixelOrder.
	SmoothingSubpixel
)

// String returns the string representation of the smoothing mode.
func (s Smoothing) String() string {
	switch s {
	case SmoothingMonochrome:
		return "Monochrome"
	case SmoothingGreyscale:
		return "Greyscale"
	case SmoothingSubpixel:
		return "Subpixel"
	default:
		return "Unknown"
	}
}

// Channels returns the number of bytes per pixel.
func (s Smoothing) Channels() int {
	if s == SmoothingSubpixel {
		return 3
	}
	return 1
}

// Hinting is the hinting strength, from 0 (unhinted) to 100 (full).
// Any value in between is allowed.
type Hinting int

// Common hinting strengths.
const (
	HintingUnhinted Hinting = 0
	HintingSlight   Hinting = 25
	HintingMedium   Hinting = 50
	HintingFull     Hinting = 100
)

// Flags is a set of rendering flags.
type Flags uint32

const (
	// FlagCorrectGamma encodes coverage with the sRGB transfer curve.
	FlagCorrectGamma Flags = 1 << iota

	// FlagRemoveGamma decodes sRGB-encoded coverage. Together with
	// FlagCorrectGamma the two cancel out.
	FlagRemoveGamma

	// FlagYIncreasesUpwards stores bitmaps bottom row first and measures
	// Glyph.Y upwards.
	FlagYIncreasesUpwards

	// FlagFlipText reflects the text run vertically.
	FlagFlipText

	// FlagMirrorText reflects the text run horizontally.
	FlagMirrorText

	// FlagMirrorChars reflects each character within its advance.
	FlagMirrorChars

	// FlagTransposeText swaps the axes of the text run. The swap happens
	// in glyph space, where y grows upwards, so a transposed horizontal
	// run advances up the output and transposed vertical text advances
	// to the left, whatever the output orientation.
	FlagTransposeText

	// FlagTransposeChars swaps the axes of each character.
	FlagTransposeChars

	// FlagNoLigatures disables ligature substitution in ClusterGlyph.
	FlagNoLigatures

	// FlagAdvanceToGrid rounds advances up to the grid.
	FlagAdvanceToGrid

	// FlagRegressToGrid rounds advances down to the grid. Combined with
	// FlagAdvanceToGrid, advances round to the closest grid line.
	FlagRegressToGrid

	// FlagUseSubpixelGrid snaps along the subpixel axis at subpixel
	// rather than pixel resolution.
	FlagUseSubpixelGrid

	// FlagVerticalText lays text out top to bottom.
	FlagVerticalText

	// FlagAutoHinting uses the autohinter even if the font has hints.
	FlagAutoHinting

	// FlagNoAutoHinting never uses the autohinter.
	FlagNoAutoHinting

	// FlagAutoKerning uses the autokerner even if the font has kerning data.
	FlagAutoKerning

	// FlagNoAutoKerning never uses the autokerner.
	FlagNoAutoKerning

	// flagsMask covers every known flag.
	flagsMask = FlagNoAutoKerning<<1 - 1
)

// Has reports whether every flag in f2 is set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Rendering is a versioned rendering configuration.
//
// A Context copies its Rendering at creation; later changes to the
// caller's value have no effect. Zero-valued transforms are treated as
// the identity.
type Rendering struct {
	// Version must be RenderingVersion.
	Version int

	SubpixelOrder SubpixelOrder
	Smoothing     Smoothing
	Hinting       Hinting
	Flags         Flags

	// GridFineness is the number of grid lines per pixel used for
	// snapping. Must be at least 1.
	GridFineness int

	// HorizontalDPI and VerticalDPI describe the output device.
	// Non-square pixels stretch glyphs horizontally by their ratio.
	HorizontalDPI float64
	VerticalDPI   float64

	// Kerning scales pair kerning; 0 disables it.
	Kerning float64

	// InterletterSpacing is added to every advance, in pixels.
	InterletterSpacing float64

	// PrestrokeRotation is applied first, before grid fitting.
	PrestrokeRotation Linear

	// Directional transforms, one of which applies depending on the
	// writing direction and the mirror, flip and transpose flags.
	LeftTransform   Matrix
	RightTransform  Matrix
	TopTransform    Matrix
	BottomTransform Matrix

	// PoststrokeRotation is applied last, after grid fitting.
	PoststrokeRotation Linear

	// CharTransform applies to each character, TextTransform to the run.
	CharTransform Matrix
	TextTransform Matrix
}

// Default DPI of the reference display: 1920x1200 pixels on a
// 518 mm x 324 mm panel.
const (
	DefaultHorizontalDPI = 1920.0 * 254 / 5180
	DefaultVerticalDPI   = 1200.0 * 254 / 3240
)

// DefaultRendering returns the default configuration: greyscale, fully
// hinted, no flags, grid fineness 1, the reference display DPI, unit
// kerning and identity transforms.
func DefaultRendering() Rendering {
	return Rendering{
		Version:            RenderingVersion,
		SubpixelOrder:      SubpixelOrderNone,
		Smoothing:          SmoothingGreyscale,
		Hinting:            HintingFull,
		GridFineness:       1,
		HorizontalDPI:      DefaultHorizontalDPI,
		VerticalDPI:        DefaultVerticalDPI,
		Kerning:            1,
		PrestrokeRotation:  IdentityLinear(),
		LeftTransform:      Identity(),
		RightTransform:     Identity(),
		TopTransform:       Identity(),
		BottomTransform:    Identity(),
		PoststrokeRotation: IdentityLinear(),
		CharTransform:      Identity(),
		TextTransform:      Identity(),
	}
}

// Validate checks the configuration. The version is checked before any
// other field.
func (r *Rendering) Validate() error {
	if r.Version != RenderingVersion {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, r.Version)
	}
	if r.Flags&^flagsMask != 0 {
		return fmt.Errorf("%w: unknown flags %#x", ErrInvalidArgument, uint32(r.Flags&^flagsMask))
	}
	if r.SubpixelOrder < SubpixelOrderNone || r.SubpixelOrder > SubpixelOrderVBGR {
		return fmt.Errorf("%w: subpixel order %d", ErrInvalidArgument, r.SubpixelOrder)
	}
	if r.Smoothing < SmoothingMonochrome || r.Smoothing > SmoothingSubpixel {
		return fmt.Errorf("%w: smoothing %d", ErrInvalidArgument, r.Smoothing)
	}
	if r.Hinting < HintingUnhinted || r.Hinting > HintingFull {
		return fmt.Errorf("%w: hinting %d outside [0,100]", ErrInvalidArgument, r.Hinting)
	}
	if r.GridFineness < 1 {
		return fmt.Errorf("%w: grid fineness %d", ErrInvalidArgument, r.GridFineness)
	}
	if !allFinite(r.HorizontalDPI, r.VerticalDPI) || r.HorizontalDPI <= 0 || r.VerticalDPI <= 0 {
		return fmt.Errorf("%w: dpi %vx%v", ErrInvalidArgument, r.HorizontalDPI, r.VerticalDPI)
	}
	if !allFinite(r.Kerning, r.InterletterSpacing) {
		return fmt.Errorf("%w: non-finite kerning or spacing", ErrInvalidArgument)
	}
	for _, l := range []Linear{r.PrestrokeRotation, r.PoststrokeRotation} {
		if !l.finite() {
			return fmt.Errorf("%w: non-finite rotation", ErrInvalidArgument)
		}
	}
	for _, m := range []Matrix{r.LeftTransform, r.RightTransform, r.TopTransform, r.BottomTransform, r.CharTransform, r.TextTransform} {
		if !m.finite() {
			return fmt.Errorf("%w: non-finite transform", ErrInvalidArgument)
		}
	}
	if r.Smoothing == SmoothingSubpixel && r.SubpixelOrder == SubpixelOrderNone {
		return fmt.Errorf("%w: subpixel smoothing requires a subpixel order", ErrInvalidArgument)
	}
	if r.Flags.Has(FlagAutoHinting | FlagNoAutoHinting) {
		return fmt.Errorf("%w: conflicting autohinting flags", ErrInvalidArgument)
	}
	if r.Flags.Has(FlagAutoKerning | FlagNoAutoKerning) {
		return fmt.Errorf("%w: conflicting autokerning flags", ErrInvalidArgument)
	}
	return nil
}

// yUp reports whether output coordinates increase upwards.
func (r *Rendering) yUp() bool {
	return r.Flags.Has(FlagYIncreasesUpwards)
}

// subpixelAxisVertical reports whether subpixel sampling runs vertically.
func (r *Rendering) subpixelAxisVertical() bool {
	return r.SubpixelOrder.Vertical()
}

// xStretch is the horizontal scale factor for non-square pixels.
func (r *Rendering) xStretch() float64 {
	return r.HorizontalDPI / r.VerticalDPI
}

// CalculateDPI returns the dots per inch of a display dimension of
// pixels spread over millimeters.
func CalculateDPI(pixels, millimeters float64) float64 {
	return pixels * 254 / 10 / millimeters
}

// InchesToPixels converts a vertical length in inches to pixels.
func (r *Rendering) InchesToPixels(inches float64) float64 {
	return inches * r.VerticalDPI
}

// MillimetersToPixels converts a vertical length in millimeters to pixels.
func (r *Rendering) MillimetersToPixels(millimeters float64) float64 {
	return millimeters * 10 / 254 * r.VerticalDPI
}

// PointsToPixels converts a vertical length in typographic points to pixels.
func (r *Rendering) PointsToPixels(points float64) float64 {
	return points / 72 * r.VerticalDPI
}
