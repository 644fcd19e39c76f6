package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	typeDelay       = 100 * time.Millisecond
	deleteDelay     = 50 * time.Millisecond
	holdDelay       = 2000 * time.Millisecond
	nextWordDelay   = 500 * time.Millisecond
	typewriterStart = 2000 * time.Millisecond
)

// Typewriter types a word one rune at a time, holds it, deletes it and moves
// on to the next word.
type Typewriter struct {
	words    [][]rune
	word     int
	chars    int
	deleting bool
	text     string
}

// NewTypewriter returns a Typewriter cycling through words.
func NewTypewriter(words ...string) *Typewriter {
	tw := &Typewriter{}
	for _, w := range words {
		tw.words = append(tw.words, []rune(w))
	}
	return tw
}

// Text returns the currently visible portion of the word.
func (tw *Typewriter) Text() string {
	return tw.text
}

// Next advances the effect by one rune and returns the delay before the next
// advance.
func (tw *Typewriter) Next() time.Duration {
	if len(tw.words) == 0 {
		return 0
	}
	current := tw.words[tw.word]

	if tw.deleting {
		if tw.chars > 0 {
			tw.chars--
		}
	} else if tw.chars < len(current) {
		tw.chars++
	}
	tw.text = string(current[:tw.chars])

	delay := typeDelay
	if tw.deleting {
		delay = deleteDelay
	}

	switch {
	case !tw.deleting && tw.chars == len(current):
		delay = holdDelay
		tw.deleting = true
	case tw.deleting && tw.chars == 0:
		tw.deleting = false
		tw.word = (tw.word + 1) % len(tw.words)
		delay = nextWordDelay
	}
	return delay
}

// TypeMsg advances the typewriter.
type TypeMsg struct{}

// TypeAfter schedules the next TypeMsg.
func TypeAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return TypeMsg{} })
}

// StartTyping schedules the first TypeMsg after the initial page delay.
func StartTyping() tea.Cmd {
	return TypeAfter(typewriterStart)
}
