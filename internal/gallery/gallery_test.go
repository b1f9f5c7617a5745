package gallery

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/sheen-go/sheen/focus"
)

func init() {
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestPageString(t *testing.T) {
	names := map[Page]string{
		PageCompose: "compose",
		PageFrames:  "frames",
		PageFade:    "fade",
		PageEffects: "effects",
		PageBorders: "borders",
		PageMotion:  "motion",
		PageInputs:  "inputs",
	}
	for page, want := range names {
		if got := page.String(); got != want {
			t.Errorf("Page(%d).String() = %q, want %q", page, got, want)
		}
	}
	if got := Page(99).String(); got != "unknown" {
		t.Errorf("out-of-range page = %q, want unknown", got)
	}
}

func TestFrameRendersEveryPage(t *testing.T) {
	for page := PageCompose; page < pageCount; page++ {
		t.Run(page.String(), func(t *testing.T) {
			out := Frame(nil, page, 80)
			if strings.TrimSpace(out) == "" {
				t.Fatalf("page %s rendered empty", page)
			}
			if !strings.Contains(ansi.Strip(out), page.String()) {
				t.Errorf("page %s output missing its tab label", page)
			}
		})
	}
}

func TestTabCyclesPages(t *testing.T) {
	var model tea.Model = *New(nil)

	for i := 0; i < int(pageCount); i++ {
		m := model.(Model)
		want := Page(i)
		if m.page != want {
			t.Fatalf("after %d tabs page = %v, want %v", i, m.page, want)
		}
		model, _ = model.Update(keyMsg("tab"))
	}

	// A full cycle wraps back to the first page.
	if got := model.(Model).page; got != PageCompose {
		t.Errorf("after full cycle page = %v, want %v", got, PageCompose)
	}

	model, _ = model.Update(keyMsg("shift+tab"))
	if got := model.(Model).page; got != pageCount-1 {
		t.Errorf("shift+tab from first page = %v, want %v", got, pageCount-1)
	}
}

func TestToggleKeys(t *testing.T) {
	var model tea.Model = *New(nil)

	model, _ = model.Update(keyMsg("d"))
	if !model.(Model).disabled {
		t.Errorf("expected disabled after d")
	}
	model, _ = model.Update(keyMsg("d"))
	if model.(Model).disabled {
		t.Errorf("expected enabled after second d")
	}

	model, _ = model.Update(keyMsg("s"))
	if !model.(Model).loading {
		t.Errorf("expected loading after s")
	}
}

func TestQuitKey(t *testing.T) {
	var model tea.Model = *New(nil)
	_, cmd := model.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected tea.QuitMsg, got %T", cmd())
	}
}

func TestDismissBlursInputs(t *testing.T) {
	m := New(nil)
	m.page = PageInputs

	var model tea.Model = *m
	model, _ = model.Update(keyMsg("i"))
	if !model.(Model).name.Focused() {
		t.Fatalf("expected name input focused after i")
	}

	// Esc from a focused input requests dismissal rather than blurring
	// directly.
	updated, cmd := model.Update(keyMsg("esc"))
	if cmd == nil {
		t.Fatalf("expected dismiss command")
	}
	msg := cmd()
	if _, ok := msg.(focus.DismissMsg); !ok {
		t.Fatalf("expected focus.DismissMsg, got %T", msg)
	}

	updated, _ = updated.Update(msg)
	if updated.(Model).name.Focused() {
		t.Errorf("expected name input blurred after dismiss")
	}
}

func TestFocusedInputConsumesHotkeys(t *testing.T) {
	m := New(nil)
	m.page = PageInputs

	var model tea.Model = *m
	model, _ = model.Update(keyMsg("i"))

	// "d" should type into the input, not toggle the disabled state.
	model, _ = model.Update(keyMsg("d"))
	got := model.(Model)
	if got.disabled {
		t.Errorf("hotkey toggled while input focused")
	}
	if got.name.Value() != "d" {
		t.Errorf("input value = %q, want %q", got.name.Value(), "d")
	}
}

func TestWindowSizeTracked(t *testing.T) {
	var model tea.Model = *New(nil)
	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m := model.(Model)
	if m.width != 120 || m.height != 40 {
		t.Errorf("size = %dx%d, want 120x40", m.width, m.height)
	}
}
