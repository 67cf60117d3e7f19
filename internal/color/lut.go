// Package color provides the gamma transfer tables applied to glyph
// coverage.
//
// Rasterized coverage is linear: a pixel half covered by the outline
// has coverage 128. Displays expect gamma-encoded values, so coverage
// may be encoded with the sRGB transfer curve before output, or decoded
// when the source samples are already gamma encoded. Both conversions
// are 256-entry byte tables built once at init.
//
// References:
//   - sRGB specification: https://www.w3.org/Graphics/Color/sRGB
package color

// encodeLUT maps linear coverage to sRGB-encoded coverage.
var encodeLUT [256]uint8

// decodeLUT maps sRGB-encoded coverage back to linear coverage.
var decodeLUT [256]uint8

// identityLUT maps every value to itself.
var identityLUT [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i) / 255.0
		encodeLUT[i] = toByte(LinearToSRGB(v))
		decodeLUT[i] = toByte(SRGBToLinear(v))
		identityLUT[i] = uint8(i)
	}
}

// EncodeCoverage gamma-encodes a linear coverage value.
//
// Example:
//
//	EncodeCoverage(128) // 188
func EncodeCoverage(c uint8) uint8 {
	return encodeLUT[c]
}

// DecodeCoverage removes gamma encoding from a coverage value.
//
// Example:
//
//	DecodeCoverage(188) // 128
func DecodeCoverage(c uint8) uint8 {
	return decodeLUT[c]
}

// Table returns the lookup table for a correct/remove flag combination.
//
// With both flags set, coverage is corrected and then the correction is
// removed again, which is the identity; Table returns the identity table
// in that case rather than composing two lossy byte tables.
// Returns nil when neither flag is set.
func Table(correct, remove bool) *[256]uint8 {
	switch {
	case correct && remove:
		return &identityLUT
	case correct:
		return &encodeLUT
	case remove:
		return &decodeLUT
	}
	return nil
}

// Apply maps buf in place through table t. A nil table leaves buf unchanged.
func Apply(t *[256]uint8, buf []byte) {
	if t == nil {
		return
	}
	for i, v := range buf {
		buf[i] = t[v]
	}
}
