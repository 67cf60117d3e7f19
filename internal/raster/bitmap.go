package raster

// Bitmap is a rasterized coverage image.
type Bitmap struct {
	// X and Y are the offset of the first pixel of Pix from the glyph
	// origin. See Options.YUp for the vertical convention.
	X, Y int

	// Width and Height are the pixel dimensions.
	Width, Height int

	// Channels is 1 for monochrome and greyscale, 3 for subpixel output.
	Channels int

	// Pix holds Height rows of Width*Channels bytes.
	Pix []byte
}

// Stride returns the number of bytes per row.
func (b *Bitmap) Stride() int {
	return b.Width * b.Channels
}

// Empty reports whether the bitmap has no pixels.
func (b *Bitmap) Empty() bool {
	return b.Width == 0 || b.Height == 0
}

// flipRows reverses the row order of pix in place.
func flipRows(pix []byte, stride, height int) {
	tmp := make([]byte, stride)
	for top, bottom := 0, height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
