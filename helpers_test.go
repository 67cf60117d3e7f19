package gglyph

import (
	"errors"
	"testing"

	"github.com/gogpu/gglyph/font"
)

// Test fonts have 10 units per em and are rendered at size 10 with
// square pixels, so one font unit is one pixel.
const (
	testUPEM = 10
	testSize = 10
)

// ligatureGID is the glyph fakeProvider substitutes for "fi".
const ligatureGID font.GlyphID = 100

func rect(x0, y0, x1, y1 float64) *font.Outline {
	return &font.Outline{Segments: []font.Segment{
		{Op: font.SegmentOpMoveTo, Args: [3]font.Point{{X: x0, Y: y0}}},
		{Op: font.SegmentOpLineTo, Args: [3]font.Point{{X: x1, Y: y0}}},
		{Op: font.SegmentOpLineTo, Args: [3]font.Point{{X: x1, Y: y1}}},
		{Op: font.SegmentOpLineTo, Args: [3]font.Point{{X: x0, Y: y1}}},
	}}
}

// fakeProvider serves a box glyph for each of its runes.
//
// Every glyph is the box (1,0)-(7,height) with advance 8 unless set
// otherwise; the ligature
// glyph is (1,0)-(15,height) with advance 16. Space has no outline.
type fakeProvider struct {
	name      string
	runes     map[rune]font.GlyphID
	height    float64
	advance   float64
	kern      map[[2]font.GlyphID]float64
	ligatures map[[2]rune]font.GlyphID
}

func newFakeProvider(name, runes string) *fakeProvider {
	p := &fakeProvider{
		name:      name,
		runes:     make(map[rune]font.GlyphID),
		height:    6,
		advance:   8,
		ligatures: map[[2]rune]font.GlyphID{{'f', 'i'}: ligatureGID},
	}
	for i, r := range []rune(runes) {
		p.runes[r] = font.GlyphID(i + 1)
	}
	return p
}

func (p *fakeProvider) gid(r rune) font.GlyphID { return p.runes[r] }

func (p *fakeProvider) Name() string    { return p.name }
func (p *fakeProvider) UnitsPerEm() int { return testUPEM }

func (p *fakeProvider) GlyphIndex(r rune) (font.GlyphID, bool) {
	gid, ok := p.runes[r]
	return gid, ok
}

func (p *fakeProvider) LoadOutline(gid font.GlyphID) (*font.Outline, error) {
	switch {
	case gid == ligatureGID:
		return rect(1, 0, 15, p.height), nil
	case gid == p.runes[' '] && gid != 0:
		return &font.Outline{}, nil
	case gid == 0 || int(gid) > len(p.runes):
		return nil, errors.New("fake: no such glyph")
	}
	return rect(1, 0, 7, p.height), nil
}

func (p *fakeProvider) Advance(gid font.GlyphID) float64 {
	if gid == ligatureGID {
		return 16
	}
	return p.advance
}

func (p *fakeProvider) Kerning(left, right font.GlyphID) (float64, bool) {
	if p.kern == nil {
		return 0, false
	}
	return p.kern[[2]font.GlyphID{left, right}], true
}

func (p *fakeProvider) Ligature(left, right rune) (font.GlyphID, bool) {
	gid, ok := p.ligatures[[2]rune{left, right}]
	return gid, ok
}

// hintedProvider adds native hints that move every glyph up one pixel.
type hintedProvider struct {
	*fakeProvider
	fail bool
}

func (p *hintedProvider) HasNativeHints() bool { return true }

func (p *hintedProvider) HintedOutline(gid font.GlyphID, ppem float64) (*font.Outline, *font.Outline, error) {
	if p.fail {
		return nil, nil, errors.New("fake: hint program failed")
	}
	o, err := p.LoadOutline(gid)
	if err != nil {
		return nil, nil, err
	}
	s := ppem / testUPEM
	unhinted := o.Scale(s, s)
	hinted := unhinted.Map(func(pt font.Point) font.Point {
		return font.Point{X: pt.X, Y: pt.Y + 1}
	})
	return hinted, unhinted, nil
}

func fakeFont(name, runes string) *font.Font {
	return font.New(newFakeProvider(name, runes))
}

// testRendering is the default rendering on a square 96 DPI display.
func testRendering() Rendering {
	r := DefaultRendering()
	r.HorizontalDPI = 96
	r.VerticalDPI = 96
	return r
}

// newTestContext creates a Context of testSize. The caller's references
// to fonts are dropped when the test ends.
func newTestContext(t *testing.T, r Rendering, fonts ...*font.Font) *Context {
	t.Helper()
	c, err := NewContext(fonts, testSize, &r, nil)
	if err != nil {
		t.Fatalf("NewContext() error = %v", err)
	}
	t.Cleanup(func() {
		_ = c.Close()
		for _, f := range fonts {
			_ = f.Close()
		}
	})
	return c
}

func renderGlyph(t *testing.T, c *Context, cp rune, xf, yf float64) *Glyph {
	t.Helper()
	g, err := c.Glyph(cp, xf, yf)
	if err != nil {
		t.Fatalf("Glyph(%q) error = %v", cp, err)
	}
	t.Cleanup(g.Release)
	if got, want := len(g.Image), g.Width*g.Height*g.Channels(); got != want || g.Size != want {
		t.Fatalf("len(Image) = %d, Size = %d, want %d", got, g.Size, want)
	}
	return g
}

func allBytes(b []byte, v byte) bool {
	for _, x := range b {
		if x != v {
			return false
		}
	}
	return true
}
