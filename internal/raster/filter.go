package raster

// lcdFilter is the five-tap low-pass filter applied to subpixel samples.
// The taps sum to 256.
var lcdFilter = [5]int{8, 77, 86, 77, 8}

// monoThreshold is the coverage at which a monochrome pixel is set.
const monoThreshold = 128

// threshold turns coverage into a binary mask in place.
func threshold(pix []byte) {
	for i, v := range pix {
		if v >= monoThreshold {
			pix[i] = 0xff
		} else {
			pix[i] = 0
		}
	}
}

// filterLine downsamples 3n supersamples into n pixels of three
// subpixel bytes each. Sample k of a pixel feeds byte k. Samples are read
// with step sstep and bytes written with step dstep, so the same code
// serves rows and columns.
func filterLine(dst []byte, dstart, dstep int, src []byte, sstart, sstep, n int) {
	total := 3 * n
	for i := 0; i < total; i++ {
		sum := 0
		for t, w := range lcdFilter {
			j := i + t - 2
			if j < 0 || j >= total {
				continue
			}
			sum += w * int(src[sstart+j*sstep])
		}
		v := (sum + 128) >> 8
		if v > 0xff {
			v = 0xff
		}
		// pixel i/3, channel i%3
		dst[dstart+(i/3)*dstep+i%3] = byte(v)
	}
}

// filterHorizontal converts a (3w)×h sample image into w×h RGB-ordered pixels.
func filterHorizontal(dst, src []byte, w, h int) {
	for y := 0; y < h; y++ {
		filterLine(dst, y*w*3, 3, src, y*w*3, 1, w)
	}
}

// filterVertical converts a w×(3h) sample image into w×h pixels whose
// bytes are the top, middle and bottom samples of each pixel.
func filterVertical(dst, src []byte, w, h int) {
	for x := 0; x < w; x++ {
		filterLine(dst, x*3, w*3, src, x, w, h)
	}
}
