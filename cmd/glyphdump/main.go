// Command glyphdump renders text with gglyph and prints every glyph as
// ASCII shades, or writes the whole line to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/gglyph"
	"github.com/gogpu/gglyph/font"
)

// shades maps coverage to characters, lightest first.
const shades = " .:-=+*#%@"

// placed is a glyph with its pen position on the line.
type placed struct {
	glyph *gglyph.Glyph
	penX  float64
	text  string
}

func main() {
	var (
		fontPath  = flag.String("font", "", "font file (default: Go Regular)")
		size      = flag.Float64("size", 24, "em size in pixels")
		smoothing = flag.String("smoothing", "grey", "mono, grey or lcd")
		order     = flag.String("order", "rgb", "subpixel order for lcd: rgb, bgr, vrgb or vbgr")
		hinting   = flag.Int("hinting", 100, "hinting strength, 0 to 100")
		text      = flag.String("text", "Hello, gglyph!", "text to render")
		output    = flag.String("png", "", "write the line to this PNG file instead of printing")
		verbose   = flag.Bool("v", false, "log rendering decisions")
	)
	flag.Parse()

	if *verbose {
		gglyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	f, err := openFont(*fontPath)
	if err != nil {
		log.Fatalf("Failed to open font: %v", err)
	}
	defer f.Close()

	opts, err := renderingOptions(*smoothing, *order, *hinting)
	if err != nil {
		log.Fatal(err)
	}
	r, err := gglyph.NewRendering(opts...)
	if err != nil {
		log.Fatalf("Invalid rendering: %v", err)
	}

	ctx, err := gglyph.NewContext([]*font.Font{f}, *size, &r, nil)
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer ctx.Close()

	line, err := layout(ctx, []byte(*text))
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		for _, p := range line {
			p.glyph.Release()
		}
	}()

	if *output != "" {
		if err := writePNG(*output, line, *size); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		log.Printf("Line saved to %s (%d glyphs)\n", *output, len(line))
		return
	}
	for _, p := range line {
		printGlyph(p)
	}
}

func openFont(path string) (*font.Font, error) {
	if path == "" {
		return font.OpenMem(goregular.TTF)
	}
	return font.OpenFile(path)
}

func renderingOptions(smoothing, order string, hinting int) ([]gglyph.RenderingOption, error) {
	opts := []gglyph.RenderingOption{gglyph.WithHinting(gglyph.Hinting(hinting))}
	switch smoothing {
	case "mono":
		opts = append(opts, gglyph.WithSmoothing(gglyph.SmoothingMonochrome))
	case "grey", "gray":
		opts = append(opts, gglyph.WithSmoothing(gglyph.SmoothingGreyscale))
	case "lcd":
		o, ok := map[string]gglyph.SubpixelOrder{
			"rgb":  gglyph.SubpixelOrderRGB,
			"bgr":  gglyph.SubpixelOrderBGR,
			"vrgb": gglyph.SubpixelOrderVRGB,
			"vbgr": gglyph.SubpixelOrderVBGR,
		}[order]
		if !ok {
			return nil, fmt.Errorf("unknown subpixel order %q", order)
		}
		opts = append(opts, gglyph.WithSmoothing(gglyph.SmoothingSubpixel), gglyph.WithSubpixelOrder(o))
	default:
		return nil, fmt.Errorf("unknown smoothing %q", smoothing)
	}
	return opts, nil
}

// layout walks text cluster by cluster. A ligature replaces the glyph of
// the cluster it joins.
func layout(ctx *gglyph.Context, text []byte) ([]placed, error) {
	var (
		line  []placed
		saved gglyph.SavedGrapheme
		pen   float64
	)
	for len(text) > 0 {
		_, frac := math.Modf(pen)
		n, g, err := ctx.ClusterGlyph(text, &saved, frac, 0)
		if err != nil {
			return line, fmt.Errorf("rendering %q: %w", text, err)
		}
		consumed := n - g.Preceding
		label := string(text[:consumed])
		if g.Preceding > 0 && len(line) > 0 {
			last := line[len(line)-1]
			line = line[:len(line)-1]
			last.glyph.Release()
			pen = last.penX
			label = last.text + label
		}
		line = append(line, placed{glyph: g, penX: pen, text: label})
		pen += g.Advance
		text = text[consumed:]
	}
	return line, nil
}

func printGlyph(p placed) {
	g := p.glyph
	fmt.Printf("%q advance=%.2f origin=(%d,%d) size=%dx%d kerning=%.2f\n",
		p.text, g.Advance, g.X, g.Y, g.Width, g.Height, g.Kerning)
	ch := g.Channels()
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			sum := 0
			for _, v := range g.Image[row*g.Stride()+col*ch:][:ch] {
				sum += int(v)
			}
			b.WriteByte(shades[sum/ch*(len(shades)-1)/255])
		}
		b.WriteByte('\n')
	}
	fmt.Print(b.String())
}

// writePNG draws the line dark on light with the baseline at 1.25 em.
func writePNG(path string, line []placed, size float64) error {
	width := 1
	if n := len(line); n > 0 {
		last := line[n-1]
		width = int(math.Ceil(last.penX+math.Max(last.glyph.Advance, float64(last.glyph.X+last.glyph.Width)))) + 1
	}
	height := int(math.Ceil(size * 1.6))
	baseline := int(math.Ceil(size * 1.25))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	for _, p := range line {
		g := p.glyph
		ch := g.Channels()
		x0 := int(math.Floor(p.penX)) + g.X
		y0 := baseline + g.Y
		for row := 0; row < g.Height; row++ {
			for col := 0; col < g.Width; col++ {
				px := g.Image[row*g.Stride()+col*ch:][:ch]
				c := color.RGBA{R: 0xff - px[0], G: 0xff - px[0], B: 0xff - px[0], A: 0xff}
				if ch == 3 {
					// Image bytes follow the physical subpixel order.
					r, b := px[0], px[2]
					if g.SubpixelOrder == gglyph.SubpixelOrderBGR || g.SubpixelOrder == gglyph.SubpixelOrderVBGR {
						r, b = b, r
					}
					c.R, c.G, c.B = 0xff-r, 0xff-px[1], 0xff-b
				}
				img.SetRGBA(x0+col, y0+row, c)
			}
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, img); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
