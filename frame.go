package sheen

import "github.com/charmbracelet/lipgloss"

// Frame constrains a view to exactly width x height cells: larger content is
// clipped, smaller content is centered in whitespace. Negative dimensions
// are handed to lipgloss unchecked.
func Frame(v string, width, height int) string {
	if width > 0 {
		v = lipgloss.NewStyle().MaxWidth(width).Render(v)
	}
	if height > 0 {
		v = lipgloss.NewStyle().MaxHeight(height).Render(v)
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, v)
}

// Square frames a view to side x side cells.
func Square(v string, side int) string {
	return Frame(v, side, side)
}

// StretchHorizontal expands a view to fill the given available width. The
// terminal has no unbounded axis; the caller supplies the bound.
func StretchHorizontal(v string, width int) string {
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, v)
}

// StretchVertical expands a view to fill the given available height.
func StretchVertical(v string, height int) string {
	return lipgloss.PlaceVertical(height, lipgloss.Center, v)
}

// Stretch expands a view to fill both axes, vertical first. The order is
// immaterial: the axes are independent.
func Stretch(v string, width, height int) string {
	return StretchHorizontal(StretchVertical(v, height), width)
}
