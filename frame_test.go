package sheen

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestSquareFramesBothDimensions(t *testing.T) {
	got := Square("x", 5)
	if w := lipgloss.Width(got); w != 5 {
		t.Fatalf("width = %d, want 5", w)
	}
	if h := lipgloss.Height(got); h != 5 {
		t.Fatalf("height = %d, want 5", h)
	}
	if !strings.Contains(got, "x") {
		t.Fatalf("content lost: %q", got)
	}
}

func TestFrameClipsOversizedContent(t *testing.T) {
	content := strings.Repeat("abcdefgh\n", 5) + "abcdefgh"
	got := Frame(content, 4, 3)
	if w := lipgloss.Width(got); w != 4 {
		t.Fatalf("width = %d, want 4", w)
	}
	if h := lipgloss.Height(got); h != 3 {
		t.Fatalf("height = %d, want 3", h)
	}
}

func TestFrameNegativePassesThrough(t *testing.T) {
	// No validation by contract: a negative frame falls through to
	// lipgloss, which leaves the content alone.
	got := Frame("hi", -3, -3)
	if !strings.Contains(got, "hi") {
		t.Fatalf("content lost on negative frame: %q", got)
	}
}

func TestStretchHorizontalFillsWidth(t *testing.T) {
	got := StretchHorizontal("ab", 10)
	if w := lipgloss.Width(got); w != 10 {
		t.Fatalf("width = %d, want 10", w)
	}
}

func TestStretchVerticalFillsHeight(t *testing.T) {
	got := StretchVertical("ab", 4)
	if h := lipgloss.Height(got); h != 4 {
		t.Fatalf("height = %d, want 4", h)
	}
}

func TestStretchFillsBothAxes(t *testing.T) {
	got := Stretch("ab", 10, 4)
	if w := lipgloss.Width(got); w != 10 {
		t.Fatalf("width = %d, want 10", w)
	}
	if h := lipgloss.Height(got); h != 4 {
		t.Fatalf("height = %d, want 4", h)
	}

	// Both axis constraints are independent; the composed order matches
	// applying vertical then horizontal by hand.
	if byHand := StretchHorizontal(StretchVertical("ab", 4), 10); got != byHand {
		t.Fatalf("Stretch differs from manual composition")
	}
}
