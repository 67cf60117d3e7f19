package gglyph

// RenderingOption configures a Rendering built by NewRendering.
//
// Example:
//
//	// Default greyscale rendering
//	r, err := gglyph.NewRendering()
//
//	// LCD rendering on an RGB panel, snapped advances
//	r, err := gglyph.NewRendering(
//		gglyph.WithSmoothing(gglyph.SmoothingSubpixel),
//		gglyph.WithSubpixelOrder(gglyph.SubpixelOrderRGB),
//		gglyph.WithFlags(gglyph.FlagAdvanceToGrid|gglyph.FlagRegressToGrid),
//	)
type RenderingOption func(*Rendering)

// NewRendering returns DefaultRendering with opts applied, validated.
func NewRendering(opts ...RenderingOption) (Rendering, error) {
	r := DefaultRendering()
	for _, opt := range opts {
		opt(&r)
	}
	if err := r.Validate(); err != nil {
		return Rendering{}, err
	}
	return r, nil
}

// WithSmoothing sets the anti-aliasing mode.
func WithSmoothing(s Smoothing) RenderingOption {
	return func(r *Rendering) {
		r.Smoothing = s
	}
}

// WithSubpixelOrder sets the display's subpixel layout.
func WithSubpixelOrder(o SubpixelOrder) RenderingOption {
	return func(r *Rendering) {
		r.SubpixelOrder = o
	}
}

// WithHinting sets the hinting strength.
func WithHinting(h Hinting) RenderingOption {
	return func(r *Rendering) {
		r.Hinting = h
	}
}

// WithFlags adds flags to the rendering.
func WithFlags(f Flags) RenderingOption {
	return func(r *Rendering) {
		r.Flags |= f
	}
}

// WithGridFineness sets the number of snapping grid lines per pixel.
func WithGridFineness(n int) RenderingOption {
	return func(r *Rendering) {
		r.GridFineness = n
	}
}

// WithDPI sets the horizontal and vertical output resolution.
func WithDPI(horizontal, vertical float64) RenderingOption {
	return func(r *Rendering) {
		r.HorizontalDPI = horizontal
		r.VerticalDPI = vertical
	}
}

// WithKerning sets the kerning scale factor.
func WithKerning(k float64) RenderingOption {
	return func(r *Rendering) {
		r.Kerning = k
	}
}

// WithInterletterSpacing sets the pixels added to every advance.
func WithInterletterSpacing(px float64) RenderingOption {
	return func(r *Rendering) {
		r.InterletterSpacing = px
	}
}

// WithPrestrokeRotation sets the transform applied before grid fitting.
func WithPrestrokeRotation(l Linear) RenderingOption {
	return func(r *Rendering) {
		r.PrestrokeRotation = l
	}
}

// WithPoststrokeRotation sets the transform applied after grid fitting.
func WithPoststrokeRotation(l Linear) RenderingOption {
	return func(r *Rendering) {
		r.PoststrokeRotation = l
	}
}

// WithDirectionalTransforms sets the four writing-direction transforms.
func WithDirectionalTransforms(left, right, top, bottom Matrix) RenderingOption {
	return func(r *Rendering) {
		r.LeftTransform = left
		r.RightTransform = right
		r.TopTransform = top
		r.BottomTransform = bottom
	}
}

// WithCharTransform sets the per-character transform.
func WithCharTransform(m Matrix) RenderingOption {
	return func(r *Rendering) {
		r.CharTransform = m
	}
}

// WithTextTransform sets the per-run transform.
func WithTextTransform(m Matrix) RenderingOption {
	return func(r *Rendering) {
		r.TextTransform = m
	}
}
