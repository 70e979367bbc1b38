package ui

import (
	"bytes"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
)

func TestProgramCyclesTabsAndQuits(t *testing.T) {
	model := NewModel(Options{PollInterval: 5 * time.Millisecond})
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(60, 12))

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte("Welcome to the Home tab."))
	}, teatest.WithDuration(3*time.Second), teatest.WithCheckInterval(10*time.Millisecond))

	tm.Send(keyRight())
	tm.Send(keyRight())
	tm.Send(keyRune('a'))
	tm.Send(keyLeft())
	tm.Send(keyRune('q'))

	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))
	final, ok := tm.FinalModel(t).(*Model)
	if !ok {
		t.Fatalf("expected *Model as final model")
	}
	if final.Current() != 1 {
		t.Fatalf("expected current 1 after right,right,a,left, got %d", final.Current())
	}
	if final.Running() {
		t.Fatalf("expected running=false after quit")
	}
	if final.Err() != nil {
		t.Fatalf("expected clean exit, got %v", final.Err())
	}
	if w, h := final.Size(); w != 60 || h != 12 {
		t.Fatalf("expected terminal size 60x12, got %dx%d", w, h)
	}
	if final.Iterations() < 6 {
		t.Fatalf("expected at least six iterations (resize plus five keys), got %d", final.Iterations())
	}
	// Bubble Tea draws once before the first message and once more on a clean
	// shutdown; every iteration in between renders exactly once.
	if diff := final.Renders() - final.Iterations(); diff < 1 || diff > 2 {
		t.Fatalf("expected one render per iteration plus the initial frame, got %d renders for %d iterations", final.Renders(), final.Iterations())
	}
}

func TestProgramKeepsPollingWithoutInput(t *testing.T) {
	model := NewModel(Options{PollInterval: 2 * time.Millisecond})
	tm := teatest.NewTestModel(t, model, teatest.WithInitialTermSize(40, 8))

	time.Sleep(60 * time.Millisecond)
	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	tm.WaitFinished(t, teatest.WithFinalTimeout(3*time.Second))

	final := tm.FinalModel(t).(*Model)
	// resize + quit account for two iterations; the rest came from poll ticks.
	if final.Iterations() <= 2 {
		t.Fatalf("expected idle poll ticks to drive iterations, got %d", final.Iterations())
	}
	if final.Current() != 0 {
		t.Fatalf("expected idle polling to leave the selection alone, got %d", final.Current())
	}
}
