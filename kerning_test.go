package gglyph

import (
	"math"
	"testing"

	"github.com/gogpu/gglyph/font"
)

// kernedProvider kerns "AV" by -2 font units.
func kernedProvider() *fakeProvider {
	p := newFakeProvider("Kerned", "AV ")
	p.kern = map[[2]font.GlyphID]float64{{p.gid('A'), p.gid('V')}: -2}
	return p
}

// secondGlyph renders text[0] then text[1:] and returns the second glyph's
// kerning and advance.
func secondGlyph(t *testing.T, c *Context, text string) (kern, advance float64) {
	t.Helper()
	var saved SavedGrapheme
	n, first, err := c.ClusterGlyph([]byte(text), &saved, 0, 0)
	if err != nil {
		t.Fatalf("ClusterGlyph(%q) error = %v", text, err)
	}
	if first.Kerning != 0 {
		t.Errorf("first glyph Kerning = %v, want 0", first.Kerning)
	}
	first.Release()

	_, g, err := c.ClusterGlyph([]byte(text[n:]), &saved, 0, 0)
	if err != nil {
		t.Fatalf("ClusterGlyph(%q) error = %v", text[n:], err)
	}
	defer g.Release()
	return g.Kerning, g.Advance
}

func TestKerningModes(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Rendering)
		table   bool
		text    string
		kern    float64
		advance float64
	}{
		{"table", func(*Rendering) {}, true, "AV", -2, 6},
		{"unkerned pair", func(*Rendering) {}, true, "AA", 0, 8},
		{"scaled", func(r *Rendering) { r.Kerning = 0.5 }, true, "AV", -1, 7},
		{"disabled", func(r *Rendering) { r.Kerning = 0 }, true, "AV", 0, 8},
		{"forced autokerning", func(r *Rendering) { r.Flags = FlagAutoKerning }, true, "AV", -0.5, 7.5},
		{"no autokerning with table", func(r *Rendering) { r.Flags = FlagNoAutoKerning }, true, "AV", -2, 6},
		{"no autokerning without table", func(r *Rendering) { r.Flags = FlagNoAutoKerning }, false, "AV", 0, 8},
		{"autokerning without table", func(*Rendering) {}, false, "AV", -0.5, 7.5},
		{"empty glyph", func(*Rendering) {}, false, "A ", 0, 8},
		{"vertical text", func(r *Rendering) { r.Flags = FlagVerticalText }, true, "AV", 0, 10},
		{"non-square pixels", func(r *Rendering) { r.HorizontalDPI = 192 }, true, "AV", -4, 12},
		{"spacing", func(r *Rendering) { r.InterletterSpacing = 1 }, true, "AV", -2, 7},
		{"snapped", func(r *Rendering) {
			r.Kerning = 0.25
			r.Flags = FlagAdvanceToGrid
		}, true, "AV", -0.5, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRendering()
			tt.modify(&r)
			p := kernedProvider()
			if !tt.table {
				p.kern = nil
			}
			c := newTestContext(t, r, font.New(p))

			kern, advance := secondGlyph(t, c, tt.text)
			if math.Abs(kern-tt.kern) > 1e-9 {
				t.Errorf("Kerning = %v, want %v", kern, tt.kern)
			}
			if math.Abs(advance-tt.advance) > 1e-9 {
				t.Errorf("Advance = %v, want %v", advance, tt.advance)
			}
		})
	}
}

func TestKerningAcrossFonts(t *testing.T) {
	tests := []struct {
		name  string
		flags Flags
		want  float64
	}{
		{"autokerned", 0, -0.5},
		{"no autokerning", FlagNoAutoKerning, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := testRendering()
			r.Flags = tt.flags
			left := kernedProvider()
			delete(left.runes, 'V')
			c := newTestContext(t, r, font.New(left), font.New(kernedProvider()))

			if kern, _ := secondGlyph(t, c, "AV"); math.Abs(kern-tt.want) > 1e-9 {
				t.Errorf("Kerning = %v, want %v", kern, tt.want)
			}
		})
	}
}
