package hint

import (
	"math"
	"slices"

	"github.com/gogpu/gglyph/font"
)

// edgeEpsilon is the distance below which two y values are one edge.
const edgeEpsilon = 1e-6

// Autohint fits an outline in pixel space (y up) to a horizontal grid of
// fineness lines per pixel.
//
// Edges are the y extrema of each contour and the end points of
// horizontal line segments: baselines, x-heights, cap heights and stems of
// horizontal strokes. Each edge is moved to its nearest grid line, and
// every other point is moved by linear interpolation between the edges
// around it, which keeps the vertical order of points intact. The result
// is blended with the input by strength. x coordinates are never changed.
func Autohint(o *font.Outline, fineness, strength int) *font.Outline {
	if o.IsEmpty() || strength <= 0 {
		return o.Clone()
	}
	if fineness < 1 {
		fineness = 1
	}
	edges := findEdges(o)
	if len(edges) == 0 {
		return o.Clone()
	}

	grid := 1 / float64(fineness)
	targets := make([]float64, len(edges))
	for i, e := range edges {
		targets[i] = SnapNearest(e, grid)
	}

	t := clampStrength(strength)
	return o.Map(func(p font.Point) font.Point {
		fitted := fitY(p.Y, edges, targets)
		return font.Point{X: p.X, Y: lerp(p.Y, fitted, t)}
	})
}

// findEdges returns the sorted, de-duplicated edge y values of o.
func findEdges(o *font.Outline) []float64 {
	var edges []float64
	var cur font.Point
	minY, maxY := math.Inf(1), math.Inf(-1)
	flush := func() {
		if !math.IsInf(minY, 0) {
			edges = append(edges, minY, maxY)
		}
		minY, maxY = math.Inf(1), math.Inf(-1)
	}

	for _, seg := range o.Segments {
		end := seg.Args[seg.Op.NumArgs()-1]
		switch seg.Op {
		case font.SegmentOpMoveTo:
			flush()
		case font.SegmentOpLineTo:
			if math.Abs(end.Y-cur.Y) < edgeEpsilon && math.Abs(end.X-cur.X) > edgeEpsilon {
				edges = append(edges, cur.Y, end.Y)
			}
		}
		minY = math.Min(minY, end.Y)
		maxY = math.Max(maxY, end.Y)
		cur = end
	}
	flush()

	slices.Sort(edges)
	return slices.CompactFunc(edges, func(a, b float64) bool {
		return math.Abs(a-b) < edgeEpsilon
	})
}

// fitY maps y through the piecewise-linear function taking each edge to
// its target.
func fitY(y float64, edges, targets []float64) float64 {
	n := len(edges)
	if y <= edges[0] {
		if edges[0]-y < edgeEpsilon {
			return targets[0]
		}
		return y + targets[0] - edges[0]
	}
	if y >= edges[n-1] {
		if y-edges[n-1] < edgeEpsilon {
			return targets[n-1]
		}
		return y + targets[n-1] - edges[n-1]
	}
	i, found := slices.BinarySearch(edges, y)
	if found {
		return targets[i]
	}
	// edges[i-1] < y < edges[i]
	e0, e1 := edges[i-1], edges[i]
	if math.Abs(y-e0) < edgeEpsilon {
		return targets[i-1]
	}
	if math.Abs(e1-y) < edgeEpsilon {
		return targets[i]
	}
	f := (y - e0) / (e1 - e0)
	return targets[i-1] + (targets[i]-targets[i-1])*f
}
