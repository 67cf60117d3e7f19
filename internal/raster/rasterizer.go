package raster

import (
	"errors"
	"image"
	"image/draw"
	"math"
	"sync"

	"golang.org/x/image/vector"

	"github.com/gogpu/gglyph/font"
	"github.com/gogpu/gglyph/internal/color"
	"github.com/gogpu/gglyph/internal/pool"
)

// MaxDimension is the largest bitmap width or height in pixels.
const MaxDimension = 65535

// DefaultMaxBytes is the default limit on a bitmap's pixel buffer.
const DefaultMaxBytes = 64 << 20

var (
	// ErrTooLarge is returned when a bitmap would exceed MaxDimension or
	// the byte limit.
	ErrTooLarge = errors.New("raster: bitmap too large")

	// ErrGeometry is returned for outlines with non-finite coordinates.
	ErrGeometry = errors.New("raster: invalid outline geometry")
)

// Mode is the anti-aliasing mode.
type Mode int

const (
	// ModeMonochrome produces fully on or off pixels.
	ModeMonochrome Mode = iota

	// ModeGreyscale produces one coverage byte per pixel.
	ModeGreyscale

	// ModeSubpixel produces three coverage bytes per pixel.
	ModeSubpixel
)

// Options configures Rasterize.
type Options struct {
	Mode Mode

	// VerticalSubpixels samples the subpixel axis vertically, for panels
	// whose subpixels are stacked. Only used with ModeSubpixel.
	VerticalSubpixels bool

	// CorrectGamma encodes coverage with the sRGB transfer curve.
	CorrectGamma bool

	// RemoveGamma decodes sRGB-encoded coverage. Both gamma flags together
	// cancel out.
	RemoveGamma bool

	// YUp stores rows bottom to top and reports Bitmap.Y as the offset of
	// the bottom row with y increasing upwards. Otherwise rows run top to
	// bottom and Bitmap.Y is the offset of the top row with y increasing
	// downwards.
	YUp bool

	// MaxBytes limits the pixel buffer size. Zero means DefaultMaxBytes.
	MaxBytes int
}

// rasterizerPool pools vector.Rasterizer instances; their accumulation
// buffers are reused across glyphs.
var rasterizerPool = sync.Pool{
	New: func() any { return vector.NewRasterizer(0, 0) },
}

// Rasterize scan-converts an outline given in pixels with y up and the
// glyph origin at (0, 0). The returned Pix comes from the buffer pool;
// release it with pool.Put when done. An outline without area yields an
// empty Bitmap and no error.
func Rasterize(o *font.Outline, opts Options) (Bitmap, error) {
	channels := 1
	if opts.Mode == ModeSubpixel {
		channels = 3
	}
	if o.IsEmpty() {
		return Bitmap{Channels: channels}, nil
	}

	b := o.Bounds()
	if !finite(b.MinX) || !finite(b.MinY) || !finite(b.MaxX) || !finite(b.MaxY) {
		return Bitmap{}, ErrGeometry
	}
	if b.Empty() {
		return Bitmap{Channels: channels}, nil
	}

	x0, x1 := math.Floor(b.MinX), math.Ceil(b.MaxX)
	y0, y1 := math.Floor(b.MinY), math.Ceil(b.MaxY)
	sx, sy := 1, 1
	if opts.Mode == ModeSubpixel {
		// One pixel of padding along the subpixel axis catches filter spill.
		if opts.VerticalSubpixels {
			y0, y1 = y0-1, y1+1
			sy = 3
		} else {
			x0, x1 = x0-1, x1+1
			sx = 3
		}
	}

	wf, hf := x1-x0, y1-y0
	if wf > MaxDimension || hf > MaxDimension {
		return Bitmap{}, ErrTooLarge
	}
	w, h := int(wf), int(hf)
	limit := opts.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	if w*h*channels > limit {
		return Bitmap{}, ErrTooLarge
	}

	sw, sh := w*sx, h*sy
	samples := pool.Get(sw * sh)
	defer pool.Put(samples)
	mask := &image.Alpha{Pix: samples, Stride: sw, Rect: image.Rect(0, 0, sw, sh)}

	z := rasterizerPool.Get().(*vector.Rasterizer)
	z.Reset(sw, sh)
	z.DrawOp = draw.Src
	tracePath(z, o, func(p font.Point) (float32, float32) {
		return float32((p.X - x0) * float64(sx)), float32((y1 - p.Y) * float64(sy))
	})
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	rasterizerPool.Put(z)

	pix := pool.Get(w * h * channels)
	switch opts.Mode {
	case ModeMonochrome:
		copy(pix, samples)
		threshold(pix)
	case ModeSubpixel:
		if opts.VerticalSubpixels {
			filterVertical(pix, samples, w, h)
		} else {
			filterHorizontal(pix, samples, w, h)
		}
		color.Apply(color.Table(opts.CorrectGamma, opts.RemoveGamma), pix)
	default:
		copy(pix, samples)
		color.Apply(color.Table(opts.CorrectGamma, opts.RemoveGamma), pix)
	}

	bm := Bitmap{X: int(x0), Width: w, Height: h, Channels: channels, Pix: pix}
	if opts.YUp {
		flipRows(pix, bm.Stride(), h)
		bm.Y = int(y0)
	} else {
		bm.Y = -int(y1)
	}
	return bm, nil
}

// tracePath emits o into z, closing every contour explicitly.
func tracePath(z *vector.Rasterizer, o *font.Outline, tf func(font.Point) (float32, float32)) {
	open := false
	for _, seg := range o.Segments {
		switch seg.Op {
		case font.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := tf(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case font.SegmentOpLineTo:
			x, y := tf(seg.Args[0])
			z.LineTo(x, y)
		case font.SegmentOpQuadTo:
			cx, cy := tf(seg.Args[0])
			x, y := tf(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case font.SegmentOpCubeTo:
			ax, ay := tf(seg.Args[0])
			bx, by := tf(seg.Args[1])
			x, y := tf(seg.Args[2])
			z.CubeTo(ax, ay, bx, by, x, y)
		}
	}
	if open {
		z.ClosePath()
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
