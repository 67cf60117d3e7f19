// Package gglyph renders font glyphs into anti-aliased coverage bitmaps.
//
// # Overview
//
// gglyph turns a codepoint, or the next grapheme cluster of UTF-8 text,
// into a positioned bitmap. It composes the transforms of a
// [Rendering] configuration, grid-fits the outline with native or
// automatic hinting, and scan-converts it in monochrome, greyscale or
// subpixel (LCD) mode with optional gamma correction. Font fallback,
// ligatures and kerning are resolved by a [Context] that owns an ordered
// list of fonts. Text layout is left to the caller.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gglyph"
//	    "github.com/gogpu/gglyph/font"
//	)
//
//	f, err := font.OpenFile("DejaVuSans.ttf")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	r := gglyph.DefaultRendering()
//	ctx, err := gglyph.NewContext([]*font.Font{f}, r.PointsToPixels(12), &r, nil)
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	g, err := ctx.Glyph('A', 0, 0)
//	if err != nil {
//	    return err
//	}
//	defer g.Release()
//
// # Clusters
//
// [Context.ClusterGlyph] walks text one grapheme cluster at a time. A
// [SavedGrapheme] carries the last codepoint between calls so that
// ligatures spanning two calls and pair kerning can be applied:
//
//	var saved gglyph.SavedGrapheme
//	for len(text) > 0 {
//	    n, g, err := ctx.ClusterGlyph(text, &saved, 0, 0)
//	    if err != nil {
//	        return err
//	    }
//	    // g replaces the previous glyph if g.Preceding > 0.
//	    draw(g)
//	    text = text[n-g.Preceding:]
//	    g.Release()
//	}
//
// # Coordinate System
//
// Glyph outlines are processed in pixels with y increasing upwards and
// the origin on the baseline at the pen position. Bitmaps are stored top
// row first and [Glyph.Y] is measured downwards, unless
// [FlagYIncreasesUpwards] is set.
//
// # Concurrency
//
// A [Context] must not be used from multiple goroutines at once. Fonts
// are safe for concurrent use and may be shared by any number of
// contexts.
package gglyph
