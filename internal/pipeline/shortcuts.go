package pipeline

import "strconv"

// Shortcuts tracks the quick-value buttons next to an amount input. At most
// one is active; typing a custom value clears it.
type Shortcuts struct {
	Values []float64
	active int
}

// NewShortcuts returns a set of shortcuts with none active.
func NewShortcuts(values []float64) Shortcuts {
	return Shortcuts{Values: values, active: -1}
}

// Select marks shortcut i active and returns the raw text to place in the
// input. Out-of-range indexes change nothing.
func (s *Shortcuts) Select(i int) (string, bool) {
	if i < 0 || i >= len(s.Values) {
		return "", false
	}
	s.active = i
	return strconv.FormatFloat(s.Values[i], 'f', -1, 64), true
}

// Clear drops the active marker, as when the user types a custom value.
func (s *Shortcuts) Clear() {
	s.active = -1
}

// Active returns the index of the active shortcut, or -1.
func (s Shortcuts) Active() int {
	return s.active
}

// Match marks the shortcut equal to v active, or clears the marker when v is
// not one of the values.
func (s *Shortcuts) Match(v float64) {
	s.active = -1
	for i, sv := range s.Values {
		if sv == v {
			s.active = i
			return
		}
	}
}
