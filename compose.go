package sheen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spacing tokens, in rows or columns. Terminal spacing is whole cells, so
// the scale is coarser than a pixel grid.
const (
	SpacingS = 1
	SpacingM = 2
	SpacingL = 4
)

// Beside lays two views out left to right, centered on the cross axis.
func Beside(a, b string) string {
	return lipgloss.JoinHorizontal(lipgloss.Center, a, b)
}

// Above lays two views out top to bottom, center-aligned.
func Above(a, b string) string {
	return lipgloss.JoinVertical(lipgloss.Center, a, b)
}

// AboveLeading lays two views out top to bottom, leading-aligned.
func AboveLeading(a, b string) string {
	return lipgloss.JoinVertical(lipgloss.Left, a, b)
}

// AboveLeadingGap is AboveLeading with the small spacing token between the
// two views.
func AboveLeadingGap(a, b string) string {
	return lipgloss.JoinVertical(lipgloss.Left, a, gap(SpacingS), b)
}

// gap returns n empty rows as a join operand.
func gap(n int) string {
	if n < 1 {
		n = 1
	}
	return strings.Repeat("\n", n-1)
}
