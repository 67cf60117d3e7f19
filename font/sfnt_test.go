package font

import (
	"encoding/binary"
	"errors"
	"testing"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype/tables"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func int26(v int) fixed.Int26_6 { return fixed.I(v) }

func TestSFNTGlyphIndex(t *testing.T) {
	p := openRegular(t).Provider()

	tests := []struct {
		r    rune
		want bool
	}{
		{'A', true},
		{'z', true},
		{' ', true},
		{0x10FFFD, false},
	}
	for _, tt := range tests {
		gid, ok := p.GlyphIndex(tt.r)
		if ok != tt.want {
			t.Errorf("GlyphIndex(%U) ok = %v, want %v", tt.r, ok, tt.want)
		}
		if ok && gid == 0 {
			t.Errorf("GlyphIndex(%U) = 0 with ok", tt.r)
		}
	}
}

func TestSFNTLoadOutline(t *testing.T) {
	p := openRegular(t).Provider()
	gid, _ := p.GlyphIndex('A')

	o, err := p.LoadOutline(gid)
	if err != nil {
		t.Fatalf("LoadOutline('A') error = %v", err)
	}
	if o.IsEmpty() {
		t.Fatal("LoadOutline('A') is empty")
	}
	if o.Segments[0].Op != SegmentOpMoveTo {
		t.Errorf("first segment = %v, want MoveTo", o.Segments[0].Op)
	}

	// Font units, y up: 'A' sits on the baseline and rises to cap height.
	b := o.Bounds()
	if b.MinY < -1 || b.MinY > 1 {
		t.Errorf("Bounds().MinY = %v, want ~0", b.MinY)
	}
	if b.MaxY < 1000 || b.MaxY > 2048 {
		t.Errorf("Bounds().MaxY = %v, want cap height in font units", b.MaxY)
	}

	// Cached: same pointer on second load.
	o2, _ := p.LoadOutline(gid)
	if o2 != o {
		t.Error("LoadOutline not cached")
	}
}

func TestSFNTSpaceOutline(t *testing.T) {
	p := openRegular(t).Provider()
	gid, _ := p.GlyphIndex(' ')
	o, err := p.LoadOutline(gid)
	if err != nil {
		t.Fatalf("LoadOutline(' ') error = %v", err)
	}
	if !o.IsEmpty() {
		t.Errorf("LoadOutline(' ') has %d segments, want 0", len(o.Segments))
	}
	if adv := p.Advance(gid); adv <= 0 {
		t.Errorf("Advance(' ') = %v, want > 0", adv)
	}
}

func TestSFNTLoadOutlineOutOfRange(t *testing.T) {
	p := openRegular(t).Provider()
	_, err := p.LoadOutline(GlyphID(60000))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("LoadOutline(60000) error = %v, want ErrNotFound", err)
	}
}

func TestSFNTAdvance(t *testing.T) {
	p := openRegular(t).Provider()
	gi, _ := p.GlyphIndex('i')
	gm, _ := p.GlyphIndex('m')
	ai, am := p.Advance(gi), p.Advance(gm)
	if ai <= 0 || am <= ai {
		t.Errorf("Advance(i) = %v, Advance(m) = %v, want 0 < i < m", ai, am)
	}
	if am > 2048 {
		t.Errorf("Advance(m) = %v, want font units below 2048", am)
	}
}

func TestSFNTKerningMatchesTables(t *testing.T) {
	p := openRegular(t).Provider()
	sp := p.(*sfntProvider)
	a, _ := p.GlyphIndex('A')
	v, _ := p.GlyphIndex('V')
	_, has := p.Kerning(a, v)
	if has != sp.pairKerning {
		t.Errorf("Kerning() has = %v, want %v", has, sp.pairKerning)
	}
	if sp.Tables().Has("kern") && !has {
		t.Error("Kerning() has = false for a font with a kern table")
	}
}

func TestHasPairPositioning(t *testing.T) {
	lookup := func(subtables ...tables.GPOSLookup) gtfont.GPOSLookup {
		return gtfont.GPOSLookup{Subtables: subtables}
	}
	tests := []struct {
		name string
		gpos gtfont.GPOS
		want bool
	}{
		{"absent", gtfont.GPOS{}, false},
		{"single adjustments only", gtfont.GPOS{Lookups: []gtfont.GPOSLookup{
			lookup(tables.SinglePos{}),
		}}, false},
		{"marks and pairs", gtfont.GPOS{Lookups: []gtfont.GPOSLookup{
			lookup(tables.MarkBasePos{}),
			lookup(tables.SinglePos{}, tables.PairPos{}),
		}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasPairPositioning(tt.gpos); got != tt.want {
				t.Errorf("hasPairPositioning() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestKerningWithoutPairData(t *testing.T) {
	// A font whose GPOS only positions marks reports no kerning table, so
	// the autokerner can take over.
	p := &sfntProvider{pairKerning: false}
	if k, has := p.Kerning(1, 2); k != 0 || has {
		t.Errorf("Kerning() = %v, %v, want 0, false", k, has)
	}
}

func TestSFNTNativeHints(t *testing.T) {
	p := openRegular(t).Provider()
	nh, ok := p.(NativeHinter)
	if !ok {
		t.Fatal("sfnt provider does not implement NativeHinter")
	}
	if !nh.HasNativeHints() {
		t.Skip("font has no hint programs")
	}
	gid, _ := p.GlyphIndex('H')
	hinted, unhinted, err := nh.HintedOutline(gid, 12)
	if err != nil {
		t.Fatalf("HintedOutline() error = %v", err)
	}
	if hinted.IsEmpty() || !hinted.SameTopology(unhinted) {
		t.Fatal("hinted and unhinted outlines differ in topology")
	}
	// 'H' at 12 ppem is roughly 9 px tall.
	if b := unhinted.Bounds(); b.MaxY < 5 || b.MaxY > 12 {
		t.Errorf("unhinted Bounds().MaxY = %v, want pixel units", b.MaxY)
	}
}

func TestNoNativeHints(t *testing.T) {
	p := &sfntProvider{}
	if _, _, err := p.HintedOutline(1, 12); !errors.Is(err, ErrNoNativeHints) {
		t.Errorf("HintedOutline() error = %v, want ErrNoNativeHints", err)
	}
	if p.HasNativeHints() {
		t.Error("HasNativeHints() = true without hinter")
	}
	if _, ok := p.Ligature('f', 'i'); ok {
		t.Error("Ligature() = ok without GSUB")
	}
}

func tableDirectory(tags ...string) []byte {
	data := make([]byte, 12+16*len(tags))
	binary.BigEndian.PutUint32(data[0:4], 0x00010000)
	binary.BigEndian.PutUint16(data[4:6], uint16(len(tags)))
	for i, tag := range tags {
		copy(data[12+16*i:], tag)
	}
	return data
}

func TestScanTables(t *testing.T) {
	tests := []struct {
		name                     string
		tags                     []string
		kerning, ligatures, hint bool
	}{
		{"empty", nil, false, false, false},
		{"kern", []string{"kern", "glyf"}, true, false, false},
		{"gpos gsub", []string{"GPOS", "GSUB", "CFF "}, true, true, false},
		{"hinted truetype", []string{"glyf", "fpgm", "prep"}, false, false, true},
		{"prep only", []string{"prep", "glyf"}, false, false, true},
		{"cff with prep", []string{"CFF ", "prep"}, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := ScanTables(tableDirectory(tt.tags...))
			if err != nil {
				t.Fatalf("ScanTables() error = %v", err)
			}
			if got := dir.HasKerning(); got != tt.kerning {
				t.Errorf("HasKerning() = %v, want %v", got, tt.kerning)
			}
			if got := dir.HasLigatures(); got != tt.ligatures {
				t.Errorf("HasLigatures() = %v, want %v", got, tt.ligatures)
			}
			if got := dir.HasNativeHints(); got != tt.hint {
				t.Errorf("HasNativeHints() = %v, want %v", got, tt.hint)
			}
			if got := len(dir.Tags()); got != len(tt.tags) {
				t.Errorf("len(Tags()) = %d, want %d", got, len(tt.tags))
			}
		})
	}
}

func TestScanTablesTruncated(t *testing.T) {
	tests := [][]byte{
		nil,
		make([]byte, 8),
		tableDirectory("glyf")[:20],
		append([]byte("ttcf"), make([]byte, 8)...),
	}
	for i, data := range tests {
		if _, err := ScanTables(data); !errors.Is(err, ErrFormat) {
			t.Errorf("case %d: ScanTables() error = %v, want ErrFormat", i, err)
		}
	}
}

func TestScanTablesGoRegular(t *testing.T) {
	dir, err := ScanTables(goregular.TTF)
	if err != nil {
		t.Fatalf("ScanTables(goregular) error = %v", err)
	}
	for _, tag := range []string{"cmap", "glyf", "head", "hmtx"} {
		if !dir.Has(tag) {
			t.Errorf("Has(%q) = false", tag)
		}
	}
}

func TestContoursToOutline(t *testing.T) {
	on := func(x, y int) truetype.Point {
		return truetype.Point{X: int26(x), Y: int26(y), Flags: flagOnCurve}
	}
	off := func(x, y int) truetype.Point {
		return truetype.Point{X: int26(x), Y: int26(y)}
	}

	tests := []struct {
		name   string
		points []truetype.Point
		ends   []int
		ops    []SegmentOp
	}{
		{
			name:   "square",
			points: []truetype.Point{on(0, 0), on(0, 10), on(10, 10), on(10, 0)},
			ends:   []int{4},
			ops:    []SegmentOp{SegmentOpMoveTo, SegmentOpLineTo, SegmentOpLineTo, SegmentOpLineTo, SegmentOpLineTo},
		},
		{
			name:   "implied midpoint",
			points: []truetype.Point{on(0, 0), off(0, 10), off(10, 10), on(10, 0)},
			ends:   []int{4},
			ops:    []SegmentOp{SegmentOpMoveTo, SegmentOpQuadTo, SegmentOpQuadTo, SegmentOpLineTo},
		},
		{
			name:   "all off curve",
			points: []truetype.Point{off(0, 0), off(0, 10), off(10, 10), off(10, 0)},
			ends:   []int{4},
			ops:    []SegmentOp{SegmentOpMoveTo, SegmentOpQuadTo, SegmentOpQuadTo, SegmentOpQuadTo, SegmentOpQuadTo},
		},
		{
			name:   "two contours",
			points: []truetype.Point{on(0, 0), on(0, 1), on(1, 0), on(5, 5), on(5, 6), on(6, 5)},
			ends:   []int{3, 6},
			ops: []SegmentOp{
				SegmentOpMoveTo, SegmentOpLineTo, SegmentOpLineTo, SegmentOpLineTo,
				SegmentOpMoveTo, SegmentOpLineTo, SegmentOpLineTo, SegmentOpLineTo,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := contoursToOutline(tt.points, tt.ends)
			if len(o.Segments) != len(tt.ops) {
				t.Fatalf("got %d segments, want %d", len(o.Segments), len(tt.ops))
			}
			for i, op := range tt.ops {
				if o.Segments[i].Op != op {
					t.Errorf("segment %d = %v, want %v", i, o.Segments[i].Op, op)
				}
			}
		})
	}
}

func TestContoursImpliedMidpoint(t *testing.T) {
	pts := []truetype.Point{
		{X: 0, Y: 0, Flags: flagOnCurve},
		{X: 0, Y: int26(10)},
		{X: int26(10), Y: int26(10)},
		{X: int26(10), Y: 0, Flags: flagOnCurve},
	}
	o := contoursToOutline(pts, []int{4})
	// First quad ends at the midpoint of the two off-curve points.
	got := o.Segments[1].Args[1]
	if got != (Point{X: 5, Y: 10}) {
		t.Errorf("implied point = %v, want {5 10}", got)
	}
}
