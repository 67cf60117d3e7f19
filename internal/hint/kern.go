package hint

// autoKernRatio is the share of the em that the combined side bearings
// of a pair may span before the autokerner tightens it.
const autoKernRatio = 0.1

// AutoKern returns the pair adjustment for two adjacent glyphs from their
// facing side bearings, all in pixels. A pair whose combined gap exceeds
// a tenth of the em is tightened by half the excess; pairs are never
// loosened.
func AutoKern(leftRSB, rightLSB, em float64) float64 {
	excess := leftRSB + rightLSB - em*autoKernRatio
	if excess <= 0 {
		return 0
	}
	return -excess / 2
}
