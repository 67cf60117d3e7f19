// Package hint implements grid fitting for glyph outlines.
//
// It decides between font-supplied (native) hints and the built-in
// autohinter, blends hinted geometry against the unhinted outline by a
// strength in [0,100], snaps advances and subpixel positions to a grid of
// a given fineness, and computes automatic pair kerning from side
// bearings when a font has no kerning data.
//
// All functions are pure and safe for concurrent use. Outlines passed in
// are never modified.
package hint
