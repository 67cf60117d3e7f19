package font

import (
	"fmt"
	"math"
	"sync"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// flagOnCurve marks a TrueType point as on the curve.
const flagOnCurve = 1 << 0

// nativeHinter runs TrueType bytecode through the freetype interpreter.
type nativeHinter struct {
	font *truetype.Font

	// bufPool pools GlyphBufs; a GlyphBuf carries interpreter state and is
	// not safe for concurrent use.
	bufPool sync.Pool
}

func newNativeHinter(data []byte) (*nativeHinter, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	h := &nativeHinter{font: f}
	h.bufPool.New = func() any { return &truetype.GlyphBuf{} }
	return h, nil
}

// load hints glyph gid at ppem pixels per em.
func (h *nativeHinter) load(gid GlyphID, ppem float64) (hinted, unhinted *Outline, err error) {
	if ppem <= 0 || math.IsNaN(ppem) || math.IsInf(ppem, 0) {
		return nil, nil, fmt.Errorf("%w: invalid ppem %v", ErrNotFound, ppem)
	}
	gb := h.bufPool.Get().(*truetype.GlyphBuf)
	defer h.bufPool.Put(gb)

	scale := fixed.Int26_6(math.Round(ppem * 64))
	if err := gb.Load(h.font, scale, truetype.Index(gid), xfont.HintingFull); err != nil {
		return nil, nil, fmt.Errorf("%w: hinting glyph %d: %w", ErrFormat, gid, err)
	}

	hinted = contoursToOutline(gb.Points, gb.Ends)
	unhinted = contoursToOutline(gb.Unhinted, gb.Ends)
	if !hinted.SameTopology(unhinted) {
		return nil, nil, fmt.Errorf("%w: glyph %d: hinted and unhinted outlines differ", ErrFormat, gid)
	}
	return hinted, unhinted, nil
}

// contoursToOutline converts TrueType quadratic contours into segments.
// Consecutive off-curve points imply an on-curve midpoint between them.
func contoursToOutline(points []truetype.Point, ends []int) *Outline {
	out := &Outline{}
	start := 0
	for _, end := range ends {
		if end > len(points) || end <= start {
			start = end
			continue
		}
		out.Segments = appendContour(out.Segments, points[start:end])
		start = end
	}
	return out
}

func appendContour(segs []Segment, pts []truetype.Point) []Segment {
	n := len(pts)
	toPoint := func(p truetype.Point) Point {
		return Point{X: float64(p.X) / 64.0, Y: float64(p.Y) / 64.0}
	}
	onCurve := func(p truetype.Point) bool { return p.Flags&flagOnCurve != 0 }

	// Find an on-curve starting point, or synthesize one between the
	// first two off-curve points.
	first := -1
	for i, p := range pts {
		if onCurve(p) {
			first = i
			break
		}
	}
	var startPt Point
	if first >= 0 {
		startPt = toPoint(pts[first])
	} else {
		a, b := toPoint(pts[0]), toPoint(pts[1%n])
		startPt = Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
		first = 0
	}
	segs = append(segs, Segment{Op: SegmentOpMoveTo, Args: [3]Point{startPt}})

	var ctrl Point
	haveCtrl := false
	for k := 1; k <= n; k++ {
		i := (first + k) % n
		// With a synthesized start, the first off-curve point is visited
		// last as a control point.
		p := pts[i]
		pt := toPoint(p)
		if onCurve(p) {
			if haveCtrl {
				segs = append(segs, Segment{Op: SegmentOpQuadTo, Args: [3]Point{ctrl, pt}})
				haveCtrl = false
			} else {
				segs = append(segs, Segment{Op: SegmentOpLineTo, Args: [3]Point{pt}})
			}
			continue
		}
		if haveCtrl {
			mid := Point{X: (ctrl.X + pt.X) / 2, Y: (ctrl.Y + pt.Y) / 2}
			segs = append(segs, Segment{Op: SegmentOpQuadTo, Args: [3]Point{ctrl, mid}})
		}
		ctrl = pt
		haveCtrl = true
	}
	if haveCtrl {
		segs = append(segs, Segment{Op: SegmentOpQuadTo, Args: [3]Point{ctrl, startPt}})
	}
	return segs
}
