// Package snapshot renders a view's cell grid into a bitmap. Each cell
// becomes a block of pixels filled with the cell background; glyphs are
// marked with a centered foreground block. Cell terminals carry no font
// rasterizer, so the bitmap is a color-faithful block rendering rather than
// a glyph-faithful one.
package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/sheen-go/sheen/internal/cells"
	"github.com/sheen-go/sheen/settings"
)

// Options controls the pixel geometry and backdrop of a snapshot.
type Options struct {
	CellWidth  int         // pixels per cell, horizontal
	CellHeight int         // pixels per cell, vertical
	Background color.Color // nil leaves the backdrop transparent
}

// DefaultOptions matches a common 8x16 terminal cell with a transparent
// backdrop.
func DefaultOptions() Options {
	return Options{CellWidth: 8, CellHeight: 16}
}

// OptionsFrom builds Options from loaded snapshot settings.
func OptionsFrom(cfg settings.SnapshotConfig) Options {
	return Options{CellWidth: cfg.CellWidth, CellHeight: cfg.CellHeight}
}

// defaultForeground stands in for glyphs that carry no explicit color.
var defaultForeground = color.RGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.CellWidth <= 0 {
		o.CellWidth = d.CellWidth
	}
	if o.CellHeight <= 0 {
		o.CellHeight = d.CellHeight
	}
	return o
}

// Image renders the view's current cell grid to an RGBA bitmap sized to
// the view's intrinsic cell dimensions. An empty view yields a degenerate
// zero-area image; callers that care must check the bounds themselves.
func Image(view string, opts Options) *image.RGBA {
	opts = opts.normalized()
	grid := cells.FromString(view)
	cw, ch := opts.CellWidth, opts.CellHeight

	img := image.NewRGBA(image.Rect(0, 0, grid.Width()*cw, grid.Height()*ch))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			c := grid.At(x, y)
			px, py := x*cw, y*ch

			if c.Bg.Set {
				fill(img, px, py, px+cw, py+ch, rgba(c.Bg))
			}
			if c.Rune == 0 || c.Rune == ' ' {
				continue
			}

			fg := defaultForeground
			if c.Fg.Set {
				fg = rgba(c.Fg)
			}
			// Glyph marker: the middle half of the cell.
			fill(img, px+cw/4, py+ch/4, px+cw-cw/4, py+ch-ch/4, fg)
		}
	}

	return img
}

// PNG renders the view and encodes it as PNG.
func PNG(w io.Writer, view string, opts Options) error {
	return png.Encode(w, Image(view, opts))
}

func rgba(c cells.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

func fill(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, c)
		}
	}
}
