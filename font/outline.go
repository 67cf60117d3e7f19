package font

import "math"

// Point is a point in an outline. Providers report font units with y
// increasing upwards; hinted outlines use pixels with the same orientation.
type Point struct {
	X, Y float64
}

// SegmentOp is the type of path operation.
type SegmentOp uint8

const (
	// SegmentOpMoveTo starts a new contour.
	SegmentOpMoveTo SegmentOp = iota

	// SegmentOpLineTo draws a line to the target point.
	SegmentOpLineTo

	// SegmentOpQuadTo draws a quadratic bezier curve.
	SegmentOpQuadTo

	// SegmentOpCubeTo draws a cubic bezier curve.
	SegmentOpCubeTo
)

// String returns a string representation of the operation.
func (op SegmentOp) String() string {
	switch op {
	case SegmentOpMoveTo:
		return "MoveTo"
	case SegmentOpLineTo:
		return "LineTo"
	case SegmentOpQuadTo:
		return "QuadTo"
	case SegmentOpCubeTo:
		return "CubeTo"
	default:
		return "Unknown"
	}
}

// NumArgs returns how many points of Segment.Args the operation uses.
func (op SegmentOp) NumArgs() int {
	switch op {
	case SegmentOpQuadTo:
		return 2
	case SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}

// Segment is one path operation of an outline.
//
//   - MoveTo, LineTo: Args[0] is the target point
//   - QuadTo: Args[0] is the control point, Args[1] the target
//   - CubeTo: Args[0], Args[1] are control points, Args[2] the target
type Segment struct {
	Op   SegmentOp
	Args [3]Point
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Outline is the vector outline of a glyph: zero or more closed contours,
// each starting with a MoveTo. Contours are implicitly closed.
type Outline struct {
	Segments []Segment
}

// IsEmpty returns true if the outline has no segments.
func (o *Outline) IsEmpty() bool {
	return o == nil || len(o.Segments) == 0
}

// Clone creates a deep copy of the outline.
func (o *Outline) Clone() *Outline {
	if o == nil {
		return nil
	}
	return &Outline{Segments: append([]Segment(nil), o.Segments...)}
}

// Map returns a new outline with f applied to every point.
func (o *Outline) Map(f func(Point) Point) *Outline {
	if o == nil {
		return nil
	}
	out := &Outline{Segments: make([]Segment, len(o.Segments))}
	for i, seg := range o.Segments {
		out.Segments[i].Op = seg.Op
		for j := 0; j < seg.Op.NumArgs(); j++ {
			out.Segments[i].Args[j] = f(seg.Args[j])
		}
	}
	return out
}

// Scale returns a new outline scaled by (sx, sy).
func (o *Outline) Scale(sx, sy float64) *Outline {
	return o.Map(func(p Point) Point {
		return Point{X: p.X * sx, Y: p.Y * sy}
	})
}

// Bounds returns the bounding box of all points, control points included.
// An empty outline has a zero Rect.
func (o *Outline) Bounds() Rect {
	if o.IsEmpty() {
		return Rect{}
	}
	r := Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
	for _, seg := range o.Segments {
		for j := 0; j < seg.Op.NumArgs(); j++ {
			p := seg.Args[j]
			r.MinX = math.Min(r.MinX, p.X)
			r.MinY = math.Min(r.MinY, p.Y)
			r.MaxX = math.Max(r.MaxX, p.X)
			r.MaxY = math.Max(r.MaxY, p.Y)
		}
	}
	return r
}

// SameTopology reports whether o and other have the same sequence of
// segment operations, so that their points correspond one to one.
func (o *Outline) SameTopology(other *Outline) bool {
	if o.IsEmpty() || other.IsEmpty() {
		return o.IsEmpty() && other.IsEmpty()
	}
	if len(o.Segments) != len(other.Segments) {
		return false
	}
	for i := range o.Segments {
		if o.Segments[i].Op != other.Segments[i].Op {
			return false
		}
	}
	return true
}
