package sheen

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sheen-go/sheen/internal/cells"
)

// DefaultDashRun is the default dash segment length, in cells, for
// patterned dashed borders.
const DefaultDashRun = 6

// dashedBorder uses the box-drawing dashed rune set, whose dash pitch is
// roughly one cell.
var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "┆",
	Right:       "┆",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

var dashedThickBorder = lipgloss.Border{
	Top:         "┅",
	Bottom:      "┅",
	Left:        "┇",
	Right:       "┇",
	TopLeft:     "┏",
	TopRight:    "┓",
	BottomLeft:  "┗",
	BottomRight: "┛",
}

// RoundedBorder overlays a rounded outline in the given color on the
// outermost cells of the view. The view's footprint does not change; the
// outline is drawn over whatever occupies the edge, like any other overlay.
func RoundedBorder(v string, color lipgloss.Color) string {
	return borderOverlay(v, lipgloss.RoundedBorder(), color, nil)
}

// RoundedBorderWidth is RoundedBorder with a line width. Cell terminals
// have no sub-cell strokes: width 1 draws the rounded set, anything wider
// upgrades to the thick set.
func RoundedBorderWidth(v string, color lipgloss.Color, lineWidth int) string {
	b := lipgloss.RoundedBorder()
	if lineWidth > 1 {
		b = lipgloss.ThickBorder()
	}
	return borderOverlay(v, b, color, nil)
}

// DashedBorder overlays a dashed outline in the given color, same overlay
// semantics as RoundedBorder. Solid and dashed outlines color their runes
// the same way.
func DashedBorder(v string, color lipgloss.Color) string {
	return borderOverlay(v, dashedBorder, color, nil)
}

// DashedBorderPattern draws the outline with explicit on/off runs of
// dashRun cells instead of the dashed rune set. Corners are always drawn.
func DashedBorderPattern(v string, color lipgloss.Color, lineWidth, dashRun int) string {
	b := lipgloss.RoundedBorder()
	if lineWidth > 1 {
		b = lipgloss.ThickBorder()
	}
	if dashRun < 1 {
		dashRun = DefaultDashRun
	}
	run := dashRun
	return borderOverlay(v, b, color, func(i int) bool {
		return (i/run)%2 == 0
	})
}

// borderOverlay composites a border ring onto the view's edge cells.
// pattern, when non-nil, gates each edge position; nil draws every cell.
func borderOverlay(v string, b lipgloss.Border, color lipgloss.Color, pattern func(int) bool) string {
	grid := cells.FromString(v)
	w, h := grid.Width(), grid.Height()
	if w == 0 || h == 0 {
		return v
	}

	fg := cells.Parse(string(color))
	cell := func(s string) cells.Cell {
		r := []rune(s)
		if len(r) == 0 {
			return cells.Blank()
		}
		return cells.Cell{Rune: r[0], Fg: fg}
	}
	on := func(i int) bool {
		return pattern == nil || pattern(i)
	}

	for x := 1; x < w-1; x++ {
		if on(x - 1) {
			grid.Set(x, 0, cell(b.Top))
			grid.Set(x, h-1, cell(b.Bottom))
		}
	}
	for y := 1; y < h-1; y++ {
		if on(y - 1) {
			grid.Set(0, y, cell(b.Left))
			grid.Set(w-1, y, cell(b.Right))
		}
	}
	grid.Set(0, 0, cell(b.TopLeft))
	grid.Set(w-1, 0, cell(b.TopRight))
	grid.Set(0, h-1, cell(b.BottomLeft))
	grid.Set(w-1, h-1, cell(b.BottomRight))

	return grid.String()
}
