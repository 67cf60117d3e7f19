package hint

import "math"

// snapEpsilon absorbs float error in quotients that should be integral.
const snapEpsilon = 1e-9

// quotient returns v/grid, rounded to an integer if within snapEpsilon.
func quotient(v, grid float64) float64 {
	q := v / grid
	if r := math.Round(q); math.Abs(q-r) < snapEpsilon {
		return r
	}
	return q
}

// SnapNearest rounds v to the nearest multiple of grid, ties upwards.
func SnapNearest(v, grid float64) float64 {
	if grid <= 0 {
		return v
	}
	return math.Floor(quotient(v, grid)+0.5) * grid
}

// SnapAdvance snaps the magnitude of an advance to a grid.
//
// up alone rounds the magnitude up to the next grid line, down alone
// rounds it down, and both together round to the nearest line with ties
// going up. With neither set the advance is returned unchanged. The sign
// of the advance is preserved.
func SnapAdvance(advance, grid float64, up, down bool) float64 {
	if grid <= 0 || (!up && !down) {
		return advance
	}
	sign := 1.0
	mag := advance
	if mag < 0 {
		sign, mag = -1, -mag
	}

	q := quotient(mag, grid)
	switch {
	case up && down:
		q = math.Floor(q + 0.5)
	case up:
		q = math.Ceil(q)
	default:
		q = math.Floor(q)
	}
	return sign * q * grid
}

// Grid returns the snapping grid size in pixels for a fineness.
// subpixel selects the finer grid of a subpixel axis, three samples per
// pixel.
func Grid(fineness int, subpixel bool) float64 {
	if fineness < 1 {
		fineness = 1
	}
	n := float64(fineness)
	if subpixel {
		n *= 3
	}
	return 1 / n
}
