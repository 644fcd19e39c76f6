package anim

import (
	"testing"
	"time"
)

func TestTypewriter_Cycle(t *testing.T) {
	tw := NewTypewriter("Sol", "Já")

	wantTexts := []string{"S", "So", "Sol", "So", "S", "", "J", "Já"}
	wantDelays := []time.Duration{
		typeDelay, typeDelay, holdDelay,
		deleteDelay, deleteDelay, nextWordDelay,
		typeDelay, holdDelay,
	}

	for i := range wantTexts {
		d := tw.Next()
		if tw.Text() != wantTexts[i] {
			t.Fatalf("step %d: text = %q, want %q", i, tw.Text(), wantTexts[i])
		}
		if d != wantDelays[i] {
			t.Fatalf("step %d: delay = %v, want %v", i, d, wantDelays[i])
		}
	}
}

func TestTypewriter_Empty(t *testing.T) {
	tw := NewTypewriter()
	if d := tw.Next(); d != 0 {
		t.Fatalf("empty typewriter delay = %v, want 0", d)
	}
}
