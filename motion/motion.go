// Package motion provides animation presets for bubbletea programs: an
// eased progress model driven by frame ticks, with the process-wide
// reduced motion preference honored on every frame.
package motion

import (
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sheen-go/sheen/settings"
)

// Curve maps linear time in [0,1] to eased progress in [0,1].
type Curve func(t float64) float64

// SlickEaseOut is the house easing curve: a cubic ease-out that starts
// fast and settles gently.
func SlickEaseOut(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	u := 1 - t
	return 1 - u*u*u
}

// Linear is the identity curve.
func Linear(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}

// DefaultFPS is the frame rate animations tick at.
const DefaultFPS = 60

// Animation describes an easing preset.
type Animation struct {
	Duration time.Duration
	Curve    Curve
	FPS      int
}

// Slick returns the standard animation preset: SlickEaseOut over 220ms.
func Slick() Animation {
	return Animation{
		Duration: 220 * time.Millisecond,
		Curve:    SlickEaseOut,
		FPS:      DefaultFPS,
	}
}

// Frames samples the curve at n evenly spaced times, ending at 1. Under
// reduced motion the animation collapses to its final state.
func (a Animation) Frames(n int) []float64 {
	if settings.ReducedMotion() || n <= 1 {
		return []float64{1}
	}
	curve := a.curve()
	out := make([]float64, n)
	for i := range out {
		out[i] = curve(float64(i) / float64(n-1))
	}
	return out
}

func (a Animation) curve() Curve {
	if a.Curve == nil {
		return SlickEaseOut
	}
	return a.Curve
}

func (a Animation) interval() time.Duration {
	fps := a.FPS
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// FrameMsg advances an Anim. The ID routes frames to the Anim that
// requested them, the spinner idiom.
type FrameMsg struct {
	ID int
}

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Anim is a bubbles-style model that runs an Animation and exposes eased
// progress for the view to interpolate with.
type Anim struct {
	Animation Animation

	id       int
	start    time.Time
	running  bool
	progress float64
	value    any
	hasValue bool
}

// New creates an Anim for the given preset, at rest with zero progress.
func New(a Animation) Anim {
	return Anim{Animation: a, id: nextID()}
}

// ID returns the anim's frame routing ID.
func (m Anim) ID() int {
	return m.id
}

// Progress returns the current eased progress in [0,1].
func (m Anim) Progress() float64 {
	if settings.ReducedMotion() {
		return 1
	}
	return m.progress
}

// Running reports whether the animation is mid-flight.
func (m Anim) Running() bool {
	return m.running
}

// Start kicks off the animation from zero. Under reduced motion it jumps
// straight to the final state and issues no command.
func (m Anim) Start() (Anim, tea.Cmd) {
	if settings.ReducedMotion() {
		m.running = false
		m.progress = 1
		return m, nil
	}
	m.running = true
	m.start = time.Now()
	m.progress = 0
	return m, m.frame()
}

// SetValue retriggers the animation only when the value changes, the
// animate-on-value-change scoping. The value must be comparable.
func (m Anim) SetValue(v any) (Anim, tea.Cmd) {
	if m.hasValue && m.value == v {
		return m, nil
	}
	m.value = v
	m.hasValue = true
	return m.Start()
}

// Update advances the animation on its own FrameMsg; every other message
// passes through untouched.
func (m Anim) Update(msg tea.Msg) (Anim, tea.Cmd) {
	fm, ok := msg.(FrameMsg)
	if !ok || fm.ID != m.id || !m.running {
		return m, nil
	}

	if settings.ReducedMotion() {
		m.running = false
		m.progress = 1
		return m, nil
	}

	d := m.Animation.Duration
	if d <= 0 {
		m.running = false
		m.progress = 1
		return m, nil
	}

	t := float64(time.Since(m.start)) / float64(d)
	if t >= 1 {
		m.running = false
		m.progress = 1
		return m, nil
	}
	m.progress = m.Animation.curve()(t)
	return m, m.frame()
}

// frame schedules the next FrameMsg.
func (m Anim) frame() tea.Cmd {
	id := m.id
	return tea.Tick(m.Animation.interval(), func(time.Time) tea.Msg {
		return FrameMsg{ID: id}
	})
}

// Lerp interpolates between two values by eased progress.
func Lerp(from, to, progress float64) float64 {
	if progress <= 0 {
		return from
	}
	if progress >= 1 {
		return to
	}
	return from + (to-from)*progress
}

// LerpInt is Lerp rounded to the nearest integer.
func LerpInt(from, to int, progress float64) int {
	return int(math.Round(Lerp(float64(from), float64(to), progress)))
}
