package font

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gglyph/internal/cache"
)

// ligatureCacheSize bounds the per-font pair cache.
const ligatureCacheSize = 4096

type runePair struct {
	left, right rune
}

type ligatureResult struct {
	gid GlyphID
	ok  bool
}

// ligatureLookup answers pair ligature queries by shaping the pair with
// the go-text HarfBuzz shaper and checking whether it collapses into a
// single glyph.
type ligatureLookup struct {
	font *gtfont.Font // read-only, safe for concurrent use
	size fixed.Int26_6

	// shaperPool pools HarfbuzzShaper instances; they are not safe for
	// concurrent use.
	shaperPool sync.Pool

	results *cache.Cache[runePair, ligatureResult]
}

func newLigatureLookup(f *gtfont.Font, upem int) *ligatureLookup {
	l := &ligatureLookup{
		font:    f,
		size:    fixed.I(upem),
		results: cache.New[runePair, ligatureResult](ligatureCacheSize),
	}
	l.shaperPool.New = func() any { return &shaping.HarfbuzzShaper{} }
	return l
}

// lookup returns the ligature glyph for (left, right). leftGID is the
// glyph left maps to on its own; a single output glyph equal to it is a
// contextual form, not a ligature.
func (l *ligatureLookup) lookup(left, right rune, leftGID GlyphID) (GlyphID, bool) {
	key := runePair{left: left, right: right}
	if r, ok := l.results.Get(key); ok {
		return r.gid, r.ok
	}
	gid, ok := l.shape(left, right, leftGID)
	l.results.Set(key, ligatureResult{gid: gid, ok: ok})
	if ok {
		Logger().Debug("font: ligature", "left", string(left), "right", string(right), "gid", gid)
	}
	return gid, ok
}

func (l *ligatureLookup) shape(left, right rune, leftGID GlyphID) (GlyphID, bool) {
	runes := []rune{left, right}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      gtfont.NewFace(l.font),
		Size:      l.size,
		Script:    language.LookupScript(left),
		Language:  language.NewLanguage("en"),
	}

	hbShaper := l.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hbShaper.Shape(input)
	l.shaperPool.Put(hbShaper)

	if len(output.Glyphs) != 1 {
		return 0, false
	}
	gid := GlyphID(output.Glyphs[0].GlyphID)
	if gid == 0 || gid == leftGID {
		return 0, false
	}
	return gid, true
}
