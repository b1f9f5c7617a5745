package gallery

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sheen-go/sheen"
	"github.com/sheen-go/sheen/motion"
)

// View renders the active page under the tab bar.
func (m Model) View() string {
	var page string
	switch m.page {
	case PageCompose:
		page = m.composePage()
	case PageFrames:
		page = m.framesPage()
	case PageFade:
		page = m.fadePage()
	case PageEffects:
		page = m.effectsPage()
	case PageBorders:
		page = m.bordersPage()
	case PageMotion:
		page = m.motionPage()
	case PageInputs:
		page = m.inputsPage()
	}

	body := sheen.AboveLeading(m.tabBar(), page)
	body = sheen.AboveLeadingGap(body, m.helpLine())
	if m.width > 0 {
		body = sheen.StretchHorizontal(body, m.width)
	}
	return body
}

func (m Model) tabBar() string {
	tabs := make([]string, 0, int(pageCount))
	for p := PageCompose; p < pageCount; p++ {
		if p == m.page {
			tabs = append(tabs, m.styles.TabActive.Render(p.String()))
			continue
		}
		tabs = append(tabs, m.styles.Tab.Render(p.String()))
	}
	bar := lipgloss.JoinHorizontal(lipgloss.Center, tabs...)
	return sheen.Beside(m.styles.Title.Render("sheen"), bar)
}

func (m Model) helpLine() string {
	return m.styles.Help.Render(
		"tab: next page • d: disable • s: loading • a: animate • i: focus input • esc: dismiss • q: quit")
}

func (m Model) card(title, content string) string {
	return m.styles.Card.Render(sheen.AboveLeadingGap(m.styles.CardTitle.Render(title), content))
}

func (m Model) composePage() string {
	a := m.styles.Badge.Render("A")
	b := m.styles.Badge.Render("B")
	row := m.card("Beside", sheen.Beside(a, b))
	col := m.card("Above", sheen.Above(a, b))
	lead := m.card("AboveLeading", sheen.AboveLeading(a, b))
	gapd := m.card("AboveLeadingGap", sheen.AboveLeadingGap(a, b))
	return sheen.Beside(sheen.Beside(row, col), sheen.Beside(lead, gapd))
}

func (m Model) framesPage() string {
	dot := m.styles.Badge.Render("x")
	sq := m.card("Square(7)", sheen.Square(dot, 7))
	st := m.card("Stretch(24x5)", sheen.Stretch(dot, 24, 5))
	return sheen.Beside(sq, st)
}

func (m Model) fadePage() string {
	sample := m.styles.Badge.Render(" fade me ")
	levels := []struct {
		name  string
		level sheen.Opacity
	}{
		{"Opaque", sheen.Opaque},
		{"Most", sheen.Most},
		{"Half", sheen.Half},
		{"Quarter", sheen.Quarter},
		{"Invisible", sheen.Invisible},
	}
	cards := make([]string, 0, len(levels))
	for _, l := range levels {
		cards = append(cards, m.card(l.name, sheen.Fade(sample, l.level)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (m Model) effectsPage() string {
	base := m.styles.Card.Render("some content\nacross three\nshort lines")

	disabled := m.card(fmt.Sprintf("Disabled(%v)", m.disabled), sheen.Disabled(base, m.disabled))
	indicator := m.styles.Badge.Render(" " + m.spinner.View() + "loading ")
	loading := m.card(fmt.Sprintf("Loading(%v)", m.loading), sheen.Loading(base, m.loading, indicator))
	return sheen.Beside(disabled, loading)
}

func (m Model) bordersPage() string {
	content := strings.Repeat("content \n", 3)
	solid := m.card("RoundedBorder", sheen.RoundedBorder(content, m.styles.Accent))
	dashed := m.card("DashedBorder", sheen.DashedBorder(content, m.styles.Warn))
	pattern := m.card("DashedBorderPattern", sheen.DashedBorderPattern(content, m.styles.Warn, 1, 2))
	return sheen.Beside(sheen.Beside(solid, dashed), pattern)
}

func (m Model) motionPage() string {
	width := motion.LerpInt(1, 30, m.anim.Progress())
	bar := m.styles.Badge.Render(strings.Repeat(" ", width))
	status := fmt.Sprintf("progress %.2f", m.anim.Progress())
	return m.card("Slick ease-out", sheen.AboveLeadingGap(bar, m.styles.Help.Render(status)))
}

func (m Model) inputsPage() string {
	state := "blurred"
	if m.name.Focused() || m.note.Focused() {
		state = "focused"
	}
	inputs := sheen.AboveLeadingGap(m.name.View(), m.note.View())
	return m.card("Inputs ("+state+")", inputs)
}
