package hint

import (
	"errors"

	"github.com/gogpu/gglyph/font"
)

// ErrTopology is returned when a hinted outline does not correspond point
// for point to its unhinted outline.
var ErrTopology = errors.New("hint: hinted outline topology mismatch")

// Blend interpolates between an unhinted and a hinted outline.
// Strength 0 returns the unhinted geometry and 100 the hinted geometry;
// values in between move each point linearly.
func Blend(unhinted, hinted *font.Outline, strength int) (*font.Outline, error) {
	if !unhinted.SameTopology(hinted) {
		return nil, ErrTopology
	}
	if unhinted.IsEmpty() {
		return &font.Outline{}, nil
	}
	t := clampStrength(strength)

	out := &font.Outline{Segments: make([]font.Segment, len(unhinted.Segments))}
	for i, seg := range unhinted.Segments {
		h := hinted.Segments[i]
		out.Segments[i].Op = seg.Op
		for j := 0; j < seg.Op.NumArgs(); j++ {
			out.Segments[i].Args[j] = font.Point{
				X: lerp(seg.Args[j].X, h.Args[j].X, t),
				Y: lerp(seg.Args[j].Y, h.Args[j].Y, t),
			}
		}
	}
	return out, nil
}

// clampStrength maps a strength in [0,100] to an interpolation factor.
func clampStrength(strength int) float64 {
	switch {
	case strength <= 0:
		return 0
	case strength >= 100:
		return 1
	}
	return float64(strength) / 100
}

func lerp(a, b, t float64) float64 {
	if t == 1 {
		return b
	}
	return a + (b-a)*t
}
