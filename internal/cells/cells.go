// Package cells parses styled terminal output into a grid of cells so view
// transforms can recolor, resample, and composite it, then renders the grid
// back to ANSI.
package cells

import (
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
)

// Attr is a bitmask of text attributes carried by a cell.
type Attr uint8

// Cell attributes.
const (
	Bold Attr = 1 << iota
	Faint
	Italic
	Underline
	Reverse
)

// Color is an RGB color. Set reports whether the cell carries an explicit
// color; unset means the terminal default.
type Color struct {
	R, G, B uint8
	Set     bool
}

// RGB builds a set color from components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, Set: true}
}

// Hex parses a "#rrggbb" color. Malformed input yields an unset color.
func Hex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b)
}

// Parse interprets a lipgloss-style color value: "#rrggbb" hex or an ANSI
// palette index ("0".."255").
func Parse(s string) Color {
	if strings.HasPrefix(s, "#") {
		return Hex(s)
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 255 {
		return palette256(n)
	}
	return Color{}
}

// Blend mixes a toward b by t in [0,1] in RGB space. Unset colors pass
// through unchanged: there is nothing to mix from.
func Blend(a, b Color, t float64) Color {
	if !a.Set || !b.Set {
		return a
	}
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	return RGB(r, g, bl)
}

// Cell is one terminal cell. Rune 0 marks the continuation column of a
// double-width rune to its left.
type Cell struct {
	Rune rune
	Fg   Color
	Bg   Color
	Attr Attr
}

// Transparent reports whether the cell lets the layer below show through
// when composited: an unstyled blank.
func (c Cell) Transparent() bool {
	return c.Rune == ' ' && !c.Bg.Set && c.Attr == 0
}

// Blank returns an unstyled space cell.
func Blank() Cell {
	return Cell{Rune: ' '}
}

// Grid is a rectangular grid of cells.
type Grid struct {
	rows [][]Cell
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return len(g.rows)
}

// At returns the cell at column x, row y. Out-of-range lookups return a
// blank cell.
func (g *Grid) At(x, y int) Cell {
	if y < 0 || y >= len(g.rows) {
		return Blank()
	}
	if x < 0 || x >= len(g.rows[y]) {
		return Blank()
	}
	return g.rows[y][x]
}

// Set writes the cell at column x, row y. Out-of-range writes are dropped.
// Writes keep double-width pairs coherent: overwriting half of a pair blanks
// the orphaned half, and a double-width rune claims the next column for its
// continuation (or is blanked when no column is left), so rendered rows keep
// their width.
func (g *Grid) Set(x, y int, c Cell) {
	if y < 0 || y >= len(g.rows) {
		return
	}
	row := g.rows[y]
	if x < 0 || x >= len(row) {
		return
	}
	old := row[x]
	row[x] = c

	if c.Rune != 0 && old.Rune == 0 && x > 0 && runewidth.RuneWidth(row[x-1].Rune) == 2 {
		row[x-1].Rune = ' '
	}
	if runewidth.RuneWidth(old.Rune) == 2 && x+1 < len(row) && row[x+1].Rune == 0 {
		row[x+1].Rune = ' '
	}

	switch {
	case c.Rune == 0:
		// A continuation is only valid directly after its head.
		if x == 0 || runewidth.RuneWidth(row[x-1].Rune) != 2 {
			row[x].Rune = ' '
		}
	case runewidth.RuneWidth(c.Rune) == 2:
		if x+1 >= len(row) {
			row[x].Rune = ' '
			return
		}
		if runewidth.RuneWidth(row[x+1].Rune) == 2 && x+2 < len(row) && row[x+2].Rune == 0 {
			row[x+2].Rune = ' '
		}
		row[x+1] = Cell{Fg: c.Fg, Bg: c.Bg, Attr: c.Attr}
	}
}

// New returns a blank grid of the given size.
func New(width, height int) *Grid {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	rows := make([][]Cell, height)
	for y := range rows {
		rows[y] = make([]Cell, width)
		for x := range rows[y] {
			rows[y][x] = Blank()
		}
	}
	return &Grid{rows: rows}
}

// Map applies fn to every cell in place. Continuation cells are visited too
// so styles stay coherent across double-width runes.
func (g *Grid) Map(fn func(Cell) Cell) {
	for y := range g.rows {
		for x := range g.rows[y] {
			g.rows[y][x] = fn(g.rows[y][x])
		}
	}
}

// Composite overlays top onto the grid with its top-left corner at (x, y).
// Transparent cells keep the base; everything else wins. Out-of-bounds
// regions are clipped.
func (g *Grid) Composite(top *Grid, x, y int) {
	if top == nil {
		return
	}
	for ty := 0; ty < top.Height(); ty++ {
		for tx := 0; tx < top.Width(); tx++ {
			c := top.At(tx, ty)
			if c.Rune != 0 && c.Transparent() {
				continue
			}
			g.Set(x+tx, y+ty, c)
		}
	}
}

// Resample returns a nearest-neighbor resampled copy of the grid at the
// given size. A zero or negative dimension yields an empty grid.
func (g *Grid) Resample(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return New(0, 0)
	}
	srcW, srcH := g.Width(), g.Height()
	out := New(width, height)
	if srcW == 0 || srcH == 0 {
		return out
	}
	for y := 0; y < height; y++ {
		sy := y * srcH / height
		for x := 0; x < width; x++ {
			sx := x * srcW / width
			c := g.At(sx, sy)
			if c.Rune == 0 {
				// Continuation column: fall back to the head rune.
				c = g.At(sx-1, sy)
			}
			// Rows are written raw; fixWideRunes restores pair coherence
			// once the whole row is sampled.
			out.rows[y][x] = c
		}
		out.fixWideRunes(y)
	}
	return out
}

// fixWideRunes repairs a resampled row so every double-width rune is
// followed by exactly one continuation cell.
func (g *Grid) fixWideRunes(y int) {
	row := g.rows[y]
	for x := 0; x < len(row); x++ {
		c := row[x]
		if c.Rune == 0 {
			row[x] = Cell{Rune: ' ', Fg: c.Fg, Bg: c.Bg, Attr: c.Attr}
			continue
		}
		if runewidth.RuneWidth(c.Rune) == 2 {
			if x+1 >= len(row) {
				row[x].Rune = ' '
				continue
			}
			row[x+1] = Cell{Fg: c.Fg, Bg: c.Bg, Attr: c.Attr}
			x++
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	rows := make([][]Cell, len(g.rows))
	for y := range g.rows {
		rows[y] = make([]Cell, len(g.rows[y]))
		copy(rows[y], g.rows[y])
	}
	return &Grid{rows: rows}
}
