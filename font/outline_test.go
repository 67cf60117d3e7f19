package font

import (
	"testing"
)

func square(x0, y0, x1, y1 float64) *Outline {
	return &Outline{Segments: []Segment{
		{Op: SegmentOpMoveTo, Args: [3]Point{{x0, y0}}},
		{Op: SegmentOpLineTo, Args: [3]Point{{x1, y0}}},
		{Op: SegmentOpLineTo, Args: [3]Point{{x1, y1}}},
		{Op: SegmentOpLineTo, Args: [3]Point{{x0, y1}}},
	}}
}

func TestSegmentOpString(t *testing.T) {
	tests := []struct {
		op   SegmentOp
		want string
		args int
	}{
		{SegmentOpMoveTo, "MoveTo", 1},
		{SegmentOpLineTo, "LineTo", 1},
		{SegmentOpQuadTo, "QuadTo", 2},
		{SegmentOpCubeTo, "CubeTo", 3},
		{SegmentOp(99), "Unknown", 1},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.op.NumArgs(); got != tt.args {
			t.Errorf("%v.NumArgs() = %d, want %d", tt.op, got, tt.args)
		}
	}
}

func TestOutlineBounds(t *testing.T) {
	o := square(1, 2, 5, 7)
	o.Segments = append(o.Segments, Segment{Op: SegmentOpQuadTo, Args: [3]Point{{-1, 3}, {1, 2}}})
	want := Rect{MinX: -1, MinY: 2, MaxX: 5, MaxY: 7}
	if got := o.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	var empty *Outline
	if got := empty.Bounds(); got != (Rect{}) {
		t.Errorf("nil Bounds() = %v, want zero", got)
	}
	if !(Rect{}).Empty() {
		t.Error("zero Rect not Empty")
	}
}

func TestOutlineScaleDoesNotMutate(t *testing.T) {
	o := square(0, 0, 10, 10)
	s := o.Scale(2, 0.5)
	if got := s.Bounds(); got != (Rect{MinX: 0, MinY: 0, MaxX: 20, MaxY: 5}) {
		t.Errorf("Scale().Bounds() = %v", got)
	}
	if got := o.Bounds(); got != (Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}) {
		t.Errorf("original mutated: %v", got)
	}
}

func TestOutlineClone(t *testing.T) {
	o := square(0, 0, 1, 1)
	c := o.Clone()
	c.Segments[0].Args[0].X = 42
	if o.Segments[0].Args[0].X != 0 {
		t.Error("Clone() shares segments")
	}
	var nilOutline *Outline
	if nilOutline.Clone() != nil {
		t.Error("nil Clone() != nil")
	}
}

func TestSameTopology(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(3, 3, 9, 9)
	c := &Outline{Segments: append(square(0, 0, 1, 1).Segments[:3:3], Segment{Op: SegmentOpQuadTo})}

	tests := []struct {
		name string
		x, y *Outline
		want bool
	}{
		{"same ops", a, b, true},
		{"different op", a, c, false},
		{"different length", a, &Outline{Segments: a.Segments[:2]}, false},
		{"both empty", &Outline{}, nil, true},
		{"one empty", a, &Outline{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.x.SameTopology(tt.y); got != tt.want {
				t.Errorf("SameTopology() = %v, want %v", got, tt.want)
			}
		})
	}
}
