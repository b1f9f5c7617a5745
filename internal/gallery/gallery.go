// Package gallery is an interactive tour of the sheen helpers: one page per
// modifier family, rendered live so the effects can be toggled.
package gallery

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheen-go/sheen/focus"
	"github.com/sheen-go/sheen/motion"
	"github.com/sheen-go/sheen/settings"
)

// Page identifies a gallery page.
type Page int

// Gallery pages, in tab order.
const (
	PageCompose Page = iota
	PageFrames
	PageFade
	PageEffects
	PageBorders
	PageMotion
	PageInputs
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageCompose:
		return "compose"
	case PageFrames:
		return "frames"
	case PageFade:
		return "fade"
	case PageEffects:
		return "effects"
	case PageBorders:
		return "borders"
	case PageMotion:
		return "motion"
	case PageInputs:
		return "inputs"
	default:
		return "unknown"
	}
}

// Model is the gallery TUI model.
type Model struct {
	config *settings.Config
	styles *Styles

	page     Page
	width    int
	height   int
	disabled bool
	loading  bool

	spinner spinner.Model
	anim    motion.Anim
	name    textinput.Model
	note    textinput.Model
}

// New creates a gallery model.
func New(cfg *settings.Config) *Model {
	if cfg == nil {
		cfg = settings.Default()
	}
	styles := NewStyles(cfg.UI.Theme)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 64
	name.Width = 24

	note := textinput.New()
	note.Placeholder = "note"
	note.CharLimit = 64
	note.Width = 24

	return &Model{
		config:  cfg,
		styles:  styles,
		page:    PageCompose,
		spinner: sp,
		anim:    motion.New(motion.Slick()),
		name:    name,
		note:    note,
	}
}

// Init starts the spinner ticking.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case motion.FrameMsg:
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Update(msg)
		return m, cmd

	case focus.DismissMsg:
		focus.Dismiss(&m.name, &m.note)
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Typing into a focused input wins over page hotkeys.
	if m.name.Focused() || m.note.Focused() {
		switch msg.String() {
		case "esc":
			return m, focus.DismissCmd()
		case "ctrl+c":
			return m, tea.Quit
		}
		return m.updateInputs(msg)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab", "right", "l":
		m.page = (m.page + 1) % pageCount
		return m.enterPage()
	case "shift+tab", "left", "h":
		m.page = (m.page + pageCount - 1) % pageCount
		return m.enterPage()
	case "d":
		m.disabled = !m.disabled
		return m, nil
	case "s":
		m.loading = !m.loading
		return m, nil
	case "a":
		var cmd tea.Cmd
		m.anim, cmd = m.anim.Start()
		return m, cmd
	case "i":
		if m.page == PageInputs {
			return m, m.name.Focus()
		}
		return m, nil
	case "esc":
		return m, focus.DismissCmd()
	}
	return m, nil
}

// enterPage retriggers the motion demo when the motion page is shown; the
// animation is scoped to the page value, so revisiting any other page does
// nothing.
func (m Model) enterPage() (tea.Model, tea.Cmd) {
	if m.page != PageMotion {
		return m, nil
	}
	var cmd tea.Cmd
	m.anim, cmd = m.anim.SetValue(m.page)
	return m, cmd
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.name, cmd = m.name.Update(msg)
	cmds = append(cmds, cmd)
	m.note, cmd = m.note.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// Frame renders one non-interactive gallery frame at the given width, for
// snapshotting outside a running program.
func Frame(cfg *settings.Config, page Page, width int) string {
	m := New(cfg)
	m.page = page
	m.width = width
	return m.View()
}

// Run starts the gallery.
func Run(cfg *settings.Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
