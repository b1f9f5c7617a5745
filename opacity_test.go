package sheen

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestOpacityLevelsAreOrdered(t *testing.T) {
	levels := []Opacity{Opaque, Most, Half, Quarter, Invisible}
	for i := 1; i < len(levels); i++ {
		if levels[i-1] <= levels[i] {
			t.Fatalf("levels not strictly decreasing at %d: %v <= %v", i, levels[i-1], levels[i])
		}
	}
	if Opaque != 1.0 || Most != 0.75 || Half != 0.5 || Quarter != 0.25 || Invisible != 0.0 {
		t.Fatalf("level values drifted: %v %v %v %v %v", Opaque, Most, Half, Quarter, Invisible)
	}
}

func TestFadeOpaqueIsIdentity(t *testing.T) {
	in := "\x1b[38;2;200;100;50mhi\x1b[0m"
	if got := Fade(in, Opaque); got != in {
		t.Fatalf("Fade(Opaque) = %q, want input unchanged", got)
	}
}

var fgSeq = regexp.MustCompile(`38;2;(\d+);(\d+);(\d+)`)

// fadedRed extracts the red channel of the first foreground sequence.
func fadedRed(t *testing.T, s string) int {
	t.Helper()
	m := fgSeq.FindStringSubmatch(s)
	if m == nil {
		t.Fatalf("no truecolor foreground in %q", s)
	}
	r, err := strconv.Atoi(m[1])
	if err != nil {
		t.Fatalf("bad red channel: %v", err)
	}
	return r
}

func TestFadeIsMonotonicInLevel(t *testing.T) {
	in := "\x1b[38;2;200;100;50mhi\x1b[0m"

	reds := []int{
		fadedRed(t, Fade(in, Opaque)),
		fadedRed(t, Fade(in, Most)),
		fadedRed(t, Fade(in, Half)),
		fadedRed(t, Fade(in, Quarter)),
	}
	want := []int{200, 154, 108, 62}
	for i := range reds {
		if reds[i] != want[i] {
			t.Fatalf("red at level %d = %d, want %d", i, reds[i], want[i])
		}
	}
}

func TestFadeInvisibleKeepsFootprint(t *testing.T) {
	in := "\x1b[38;2;200;100;50mhidden\x1b[0m\nrow two"
	got := Fade(in, Invisible)

	if w := lipgloss.Width(got); w != 7 {
		t.Fatalf("width = %d, want 7", w)
	}
	if h := lipgloss.Height(got); h != 2 {
		t.Fatalf("height = %d, want 2", h)
	}
	if s := strings.TrimSpace(ansi.Strip(got)); s != "" {
		t.Fatalf("expected blank content, got %q", s)
	}
}

func TestFadeBlendsBackgroundToo(t *testing.T) {
	in := "\x1b[48;2;200;100;50m \x1b[0m"
	got := Fade(in, Half)
	if !strings.Contains(got, "48;2;108;58;33") {
		t.Fatalf("expected blended background, got %q", got)
	}
}

// Refreshable currently yields identical output for both branches. This is
// a regression check on that known quirk: when the refreshing branch
// finally dims, this test must be updated alongside the call sites.
func TestRefreshableBranchesMatch(t *testing.T) {
	in := "\x1b[38;2;200;100;50mcontent\x1b[0m"
	on := Refreshable(in, true)
	off := Refreshable(in, false)
	if on != off {
		t.Fatalf("Refreshable branches diverged:\n  true:  %q\n  false: %q", on, off)
	}
	if on != in {
		t.Fatalf("Refreshable altered the view: %q", on)
	}
}
