// Package sheen provides a thin convenience layer over lipgloss views:
// composition helpers, framing and stretch modifiers, opacity and visual
// state effects, border overlays, and conditional transforms. A view is a
// rendered styled string; every helper takes one and returns a new one.
package sheen
