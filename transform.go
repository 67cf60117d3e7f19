package gglyph

// transposeMatrix swaps the x and y axes.
var transposeMatrix = Matrix{A: 0, B: 1, C: 0, D: 1, E: 0, F: 0}

// composition is the transform chain of one glyph, split around the
// grid-fitting stage: outlines are mapped through fit, hinted, then mapped
// through post.
type composition struct {
	pre   Matrix
	inner Matrix
	post  Matrix

	// motion maps the pen advance. It is inner without the per-character
	// reflections, which move a glyph within its cell but not the pen.
	motion Matrix

	// vertical is true when the pen advances along the output y axis.
	vertical bool
}

// fit returns the transform applied before grid fitting.
func (c composition) fit() Matrix {
	return c.inner.Multiply(c.pre)
}

// full returns the complete glyph transform.
func (c composition) full() Matrix {
	return c.post.Multiply(c.inner).Multiply(c.pre)
}

// advanceVector returns the pen motion transform including both rotations.
func (c composition) advanceVector() Matrix {
	return c.post.Multiply(c.motion).Multiply(c.pre)
}

// compose builds the transform chain for a glyph whose advance is advance
// pixels. The order, first applied to last, is: pre-stroke rotation,
// directional transform, character transform, run transform, post-stroke
// rotation.
func (r *Rendering) compose(advance float64) composition {
	dir := r.directional()
	run := r.runMatrix()
	char := r.CharTransform.orIdentity()
	return composition{
		pre:      r.PrestrokeRotation.orIdentity().Matrix(),
		inner:    run.Multiply(r.charMatrix(advance)).Multiply(dir),
		post:     r.PoststrokeRotation.orIdentity().Matrix(),
		motion:   run.Multiply(char).Multiply(dir),
		vertical: r.vertical(),
	}
}

// vertical reports whether text advances vertically on the output,
// either because it is vertical text or because a horizontal run is
// transposed (but not both).
func (r *Rendering) vertical() bool {
	return r.Flags.Has(FlagVerticalText) != r.Flags.Has(FlagTransposeText)
}

// directional selects the partial transform for the writing direction.
func (r *Rendering) directional() Matrix {
	if r.vertical() {
		if r.Flags.Has(FlagFlipText) {
			return r.BottomTransform.orIdentity()
		}
		return r.TopTransform.orIdentity()
	}
	if r.Flags.Has(FlagMirrorText) {
		return r.RightTransform.orIdentity()
	}
	return r.LeftTransform.orIdentity()
}

// runMatrix is TextTransform with the text-level reflections folded in.
// Mirroring is applied first, then flipping, then transposition.
func (r *Rendering) runMatrix() Matrix {
	m := r.TextTransform.orIdentity()
	if r.Flags.Has(FlagTransposeText) {
		m = m.Multiply(transposeMatrix)
	}
	if r.Flags.Has(FlagFlipText) {
		m = m.Multiply(Scale(1, -1))
	}
	if r.Flags.Has(FlagMirrorText) {
		m = m.Multiply(Scale(-1, 1))
	}
	return m
}

// charMatrix is CharTransform with the character-level reflections folded
// in. Mirroring reflects the glyph within its advance.
func (r *Rendering) charMatrix(advance float64) Matrix {
	m := r.CharTransform.orIdentity()
	if r.Flags.Has(FlagTransposeChars) {
		m = m.Multiply(transposeMatrix)
	}
	if r.Flags.Has(FlagMirrorChars) {
		m = m.Multiply(Matrix{A: -1, C: advance, E: 1})
	}
	return m
}
