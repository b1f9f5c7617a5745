package sheen

import (
	"math"

	"github.com/sheen-go/sheen/internal/cells"
)

// DisabledScale is the uniform scale applied to disabled views.
const DisabledScale = 0.7

// Scale resamples a view to factor times its size, nearest neighbor. A
// factor of 1 is the identity; zero or negative factors collapse the view.
func Scale(v string, factor float64) string {
	if factor == 1 {
		return v
	}
	if factor <= 0 {
		return ""
	}

	grid := cells.FromString(v)
	w, h := grid.Width(), grid.Height()
	if w == 0 || h == 0 {
		return v
	}

	sw := scaleDim(w, factor)
	sh := scaleDim(h, factor)
	return grid.Resample(sw, sh).String()
}

func scaleDim(n int, factor float64) int {
	scaled := int(math.Round(float64(n) * factor))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// Disabled renders a view in its disabled state: half opacity at 0.7 scale.
// When disabled is false the view is returned unchanged, full opacity at
// full scale.
func Disabled(v string, disabled bool) string {
	if !disabled {
		return v
	}
	return Scale(Fade(v, Half), DisabledScale)
}

// Loading layers an indicator over a view while it loads. The base view
// gets Disabled(loading) applied; the indicator is composited centered on
// top, and only when loading is true.
func Loading(v string, loading bool, indicator string) string {
	base := Disabled(v, loading)
	if !loading {
		return base
	}

	grid := cells.FromString(base)
	top := cells.FromString(indicator)
	x := (grid.Width() - top.Width()) / 2
	y := (grid.Height() - top.Height()) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	grid.Composite(top, x, y)
	return grid.String()
}
