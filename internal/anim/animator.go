// Package anim drives numeric count-up animations, throttling and the
// header typing effect for the TUI.
//
// Every animated field is keyed by name and carries a generation token.
// Starting a new animation on a field bumps its generation, so frames
// scheduled for an older target are ignored instead of racing the new one.
package anim

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Timing controls how long an animation runs and how often it advances.
type Timing struct {
	Duration time.Duration
	Frame    time.Duration
}

// Frames returns the number of frames an animation spans, at least one.
func (t Timing) Frames() float64 {
	if t.Frame <= 0 || t.Duration <= 0 {
		return 1
	}
	n := float64(t.Duration) / float64(t.Frame)
	if n < 1 {
		return 1
	}
	return n
}

type field struct {
	from    float64
	target  float64
	current float64
	step    float64
	gen     uint64
	running bool
}

// Animator owns the animated value of each field.
type Animator struct {
	timing Timing
	fields map[string]*field
}

// New returns an Animator using the given timing for every field.
func New(timing Timing) *Animator {
	return &Animator{
		timing: timing,
		fields: make(map[string]*field),
	}
}

// SetTiming changes the timing of animations started from now on.
func (a *Animator) SetTiming(timing Timing) {
	a.timing = timing
}

func (a *Animator) field(key string) *field {
	f, ok := a.fields[key]
	if !ok {
		f = &field{}
		a.fields[key] = f
	}
	return f
}

// Start animates key from its last displayed value toward target and returns
// the new generation. Any animation already running on key is superseded.
func (a *Animator) Start(key string, target float64) uint64 {
	f := a.field(key)
	f.gen++
	f.from = f.current
	f.target = target
	f.step = math.Abs(target-f.current) / a.timing.Frames()
	f.running = f.step > 0
	if !f.running {
		f.current = target
	}
	return f.gen
}

// Set places key at v immediately, cancelling any running animation.
func (a *Animator) Set(key string, v float64) {
	f := a.field(key)
	f.gen++
	f.from, f.target, f.current = v, v, v
	f.step = 0
	f.running = false
}

// Step advances key by one frame if gen is still current. It reports whether
// another frame is needed.
func (a *Animator) Step(key string, gen uint64) bool {
	f, ok := a.fields[key]
	if !ok || f.gen != gen || !f.running {
		return false
	}

	if f.target >= f.from {
		f.current += f.step
		if f.current >= f.target {
			f.current = f.target
			f.running = false
		}
	} else {
		f.current -= f.step
		if f.current <= f.target {
			f.current = f.target
			f.running = false
		}
	}
	return f.running
}

// Value returns the exact current value of key.
func (a *Animator) Value(key string) float64 {
	if f, ok := a.fields[key]; ok {
		return f.current
	}
	return 0
}

// Display returns the value to render for key: whole units while the
// animation runs, the exact target once it has finished.
func (a *Animator) Display(key string) float64 {
	f, ok := a.fields[key]
	if !ok {
		return 0
	}
	if !f.running {
		return f.current
	}
	if f.target >= f.from {
		return math.Floor(f.current)
	}
	return math.Ceil(f.current)
}

// Target returns the value key is heading toward.
func (a *Animator) Target(key string) float64 {
	if f, ok := a.fields[key]; ok {
		return f.target
	}
	return 0
}

// Running reports whether key still has frames to play.
func (a *Animator) Running(key string) bool {
	f, ok := a.fields[key]
	return ok && f.running
}

// Generation returns the current generation token of key.
func (a *Animator) Generation(key string) uint64 {
	if f, ok := a.fields[key]; ok {
		return f.gen
	}
	return 0
}

// FrameMsg asks the owner to advance Key by one frame.
type FrameMsg struct {
	Key string
	Gen uint64
}

// Tick schedules the next frame for key at generation gen.
func (a *Animator) Tick(key string, gen uint64) tea.Cmd {
	return tea.Tick(a.timing.Frame, func(time.Time) tea.Msg {
		return FrameMsg{Key: key, Gen: gen}
	})
}

// Animate starts animating key toward target and returns the command that
// plays its first frame.
func (a *Animator) Animate(key string, target float64) tea.Cmd {
	gen := a.Start(key, target)
	if !a.Running(key) {
		return nil
	}
	return a.Tick(key, gen)
}

// Update handles a FrameMsg and returns the command for the following frame,
// or nil once the field has settled or the frame is stale.
func (a *Animator) Update(msg FrameMsg) tea.Cmd {
	if !a.Step(msg.Key, msg.Gen) {
		return nil
	}
	return a.Tick(msg.Key, msg.Gen)
}
