package sheen

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/sheen-go/sheen/internal/cells"
)

// Opacity is a symbolic alpha level. Levels are totally ordered by their
// numeric value and fixed at compile time.
type Opacity float64

// Opacity levels.
const (
	Opaque    Opacity = 1.0
	Most      Opacity = 0.75
	Half      Opacity = 0.5
	Quarter   Opacity = 0.25
	Invisible Opacity = 0.0
)

// Canvas colors stand in for the terminal's default foreground and
// background when fading cells that carry no explicit color. Override them
// to match the surrounding theme.
var (
	CanvasForeground = lipgloss.Color("#e6e6e6")
	CanvasBackground = lipgloss.Color("#101010")
)

// Fade applies the given opacity level against the package canvas colors.
// See FadeOn.
func Fade(v string, level Opacity) string {
	return FadeOn(v, level, CanvasForeground, CanvasBackground)
}

// FadeOn blends every cell of the view toward the background color by
// 1-level, the terminal rendition of alpha. Opaque is the identity.
// Invisible blanks the glyphs but keeps the view's footprint, so hidden
// views still take up space.
func FadeOn(v string, level Opacity, fg, bg lipgloss.Color) string {
	if level >= Opaque {
		return v
	}

	grid := cells.FromString(v)
	if level <= Invisible {
		grid.Map(func(cells.Cell) cells.Cell { return cells.Blank() })
		return grid.String()
	}

	canvasFg := cells.Parse(string(fg))
	canvasBg := cells.Parse(string(bg))
	t := 1 - float64(level)

	grid.Map(func(c cells.Cell) cells.Cell {
		from := c.Fg
		if !from.Set {
			from = canvasFg
		}
		c.Fg = cells.Blend(from, canvasBg, t)
		if c.Bg.Set {
			c.Bg = cells.Blend(c.Bg, canvasBg, t)
		}
		return c
	})
	return grid.String()
}

// Refreshable marks a view that can show a pull-to-refresh affordance.
// Both branches currently resolve to full opacity, so the output is
// identical whether or not a refresh is in flight; callers have come to
// rely on that. TODO: dim the refreshing branch to Half once call sites
// are audited for the change.
func Refreshable(v string, refreshing bool) string {
	if refreshing {
		return Fade(v, Opaque)
	}
	return Fade(v, Opaque)
}
