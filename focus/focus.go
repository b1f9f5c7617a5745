// Package focus dismisses active text inputs, the terminal rendition of
// resigning the first responder. Bubbles text inputs and text areas satisfy
// Blurrable through their pointer receivers.
package focus

import tea "github.com/charmbracelet/bubbletea"

// Blurrable is anything that can drop input focus.
type Blurrable interface {
	Blur()
}

// Dismiss blurs every given input. Nil entries and already-blurred inputs
// are silent no-ops; there is nothing to report.
func Dismiss(inputs ...Blurrable) {
	for _, in := range inputs {
		if in == nil {
			continue
		}
		in.Blur()
	}
}

// DismissMsg asks every model in the tree to drop input focus.
type DismissMsg struct{}

// DismissCmd broadcasts a DismissMsg. Models that own text inputs handle it
// by blurring them.
func DismissCmd() tea.Cmd {
	return func() tea.Msg {
		return DismissMsg{}
	}
}
