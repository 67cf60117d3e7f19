package font

import (
	"bytes"
	"errors"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gglyph/internal/cache"
)

// outlineCacheSize bounds the per-font outline cache.
const outlineCacheSize = 1024

// sfntProvider implements Provider using golang.org/x/image/font/sfnt.
type sfntProvider struct {
	font   *sfnt.Font
	name   string
	upem   int
	ppem   fixed.Int26_6 // one em in 26.6, so loaded points are font units
	tables Tables

	// bufPool pools sfnt.Buffer values; a Buffer is not safe for concurrent use.
	bufPool sync.Pool

	outlines *cache.Cache[GlyphID, *Outline]

	hinter   *nativeHinter   // nil without hint programs
	ligature *ligatureLookup // nil without GSUB

	// pairKerning is set when the font has a kern table or GPOS pair
	// adjustments.
	pairKerning bool
}

// parseSFNT is the default Parser.
func parseSFNT(data []byte) (Provider, error) {
	tables, err := ScanTables(data)
	if err != nil {
		return nil, err
	}

	f, err := opentype.Parse(data)
	if err != nil {
		c, cerr := opentype.ParseCollection(data)
		if cerr != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
		if f, err = c.Font(0); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrFormat, err)
		}
	}

	upem := int(f.UnitsPerEm())
	if upem <= 0 {
		return nil, fmt.Errorf("%w: invalid units per em %d", ErrFormat, upem)
	}

	p := &sfntProvider{
		font:     f,
		upem:     upem,
		ppem:     fixed.I(upem),
		tables:   tables,
		outlines: cache.New[GlyphID, *Outline](outlineCacheSize),
	}
	p.bufPool.New = func() any { return new(sfnt.Buffer) }
	p.name = p.readName()

	if tables.HasNativeHints() {
		h, err := newNativeHinter(data)
		if err != nil {
			Logger().Warn("font: hint programs unusable", "name", p.name, "err", err)
		} else {
			p.hinter = h
		}
	}
	p.pairKerning = tables.Has("kern")

	// GSUB ligatures and GPOS pair lookups are read through go-text.
	if tables.HasLigatures() || (tables.Has("GPOS") && !p.pairKerning) {
		face, err := gtfont.ParseTTF(bytes.NewReader(data))
		if err != nil {
			Logger().Warn("font: layout tables unusable", "name", p.name, "err", err)
			return p, nil
		}
		if tables.HasLigatures() {
			p.ligature = newLigatureLookup(face.Font, upem)
		}
		if !p.pairKerning {
			p.pairKerning = hasPairPositioning(face.GPOS)
		}
	}
	return p, nil
}

func (p *sfntProvider) readName() string {
	buf := p.getBuffer()
	defer p.bufPool.Put(buf)
	if name, err := p.font.Name(buf, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}
	if name, err := p.font.Name(buf, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}
	return ""
}

func (p *sfntProvider) getBuffer() *sfnt.Buffer {
	return p.bufPool.Get().(*sfnt.Buffer)
}

// Name implements Provider.
func (p *sfntProvider) Name() string { return p.name }

// UnitsPerEm implements Provider.
func (p *sfntProvider) UnitsPerEm() int { return p.upem }

// Tables returns the table directory of the font.
func (p *sfntProvider) Tables() Tables { return p.tables }

// GlyphIndex implements Provider.
func (p *sfntProvider) GlyphIndex(r rune) (GlyphID, bool) {
	buf := p.getBuffer()
	defer p.bufPool.Put(buf)
	idx, err := p.font.GlyphIndex(buf, r)
	if err != nil || idx == 0 {
		return 0, false
	}
	return GlyphID(idx), true
}

// LoadOutline implements Provider.
func (p *sfntProvider) LoadOutline(gid GlyphID) (*Outline, error) {
	return p.outlines.GetOrLoad(gid, func() (*Outline, error) {
		return p.loadOutline(gid)
	})
}

func (p *sfntProvider) loadOutline(gid GlyphID) (*Outline, error) {
	if int(gid) >= p.font.NumGlyphs() {
		return nil, fmt.Errorf("%w: glyph %d", ErrNotFound, gid)
	}
	buf := p.getBuffer()
	defer p.bufPool.Put(buf)

	segments, err := p.font.LoadGlyph(buf, sfnt.GlyphIndex(gid), p.ppem, nil)
	if err != nil {
		if errors.Is(err, sfnt.ErrNotFound) {
			return nil, fmt.Errorf("%w: glyph %d", ErrNotFound, gid)
		}
		return nil, fmt.Errorf("%w: glyph %d: %w", ErrFormat, gid, err)
	}

	out := &Outline{Segments: make([]Segment, 0, len(segments))}
	for _, seg := range segments {
		s := Segment{}
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = SegmentOpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = SegmentOpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = SegmentOpQuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = SegmentOpCubeTo
		default:
			continue
		}
		for j := 0; j < s.Op.NumArgs(); j++ {
			s.Args[j] = fixedPointToFontUnits(seg.Args[j])
		}
		out.Segments = append(out.Segments, s)
	}
	return out, nil
}

// fixedPointToFontUnits converts an sfnt point loaded at one em per em
// into font units, flipping sfnt's downward y axis.
func fixedPointToFontUnits(pt fixed.Point26_6) Point {
	return Point{
		X: float64(pt.X) / 64.0,
		Y: -float64(pt.Y) / 64.0,
	}
}

// Advance implements Provider.
func (p *sfntProvider) Advance(gid GlyphID) float64 {
	buf := p.getBuffer()
	defer p.bufPool.Put(buf)
	adv, err := p.font.GlyphAdvance(buf, sfnt.GlyphIndex(gid), p.ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return float64(adv) / 64.0
}

// Kerning implements Provider.
func (p *sfntProvider) Kerning(left, right GlyphID) (float64, bool) {
	if !p.pairKerning {
		return 0, false
	}
	buf := p.getBuffer()
	defer p.bufPool.Put(buf)
	k, err := p.font.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), p.ppem, xfont.HintingNone)
	if err != nil {
		return 0, true
	}
	return float64(k) / 64.0, true
}

// Ligature implements Provider.
func (p *sfntProvider) Ligature(left, right rune) (GlyphID, bool) {
	if p.ligature == nil {
		return 0, false
	}
	l, ok := p.GlyphIndex(left)
	if !ok {
		return 0, false
	}
	if _, ok := p.GlyphIndex(right); !ok {
		return 0, false
	}
	return p.ligature.lookup(left, right, l)
}

// HasNativeHints implements NativeHinter.
func (p *sfntProvider) HasNativeHints() bool {
	return p.hinter != nil
}

// HintedOutline implements NativeHinter.
func (p *sfntProvider) HintedOutline(gid GlyphID, ppem float64) (hinted, unhinted *Outline, err error) {
	if p.hinter == nil {
		return nil, nil, ErrNoNativeHints
	}
	return p.hinter.load(gid, ppem)
}
