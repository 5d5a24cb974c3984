package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"w", runeKey('w'), core.ActionUp, false},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"s", runeKey('s'), core.ActionDown, false},
		{"d", runeKey('d'), core.ActionGas, false},
		{"right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionGas, false},
		{"a", runeKey('a'), core.ActionBrake, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionConfirm, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"x", runeKey('x'), core.ActionNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %s, %v; expected %s, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestHoldTrackerGasLasts(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionGas)

	for i := 0; i < 3; i++ {
		if !h.Poll().Gas {
			t.Fatalf("gas released early on tick %d", i)
		}
	}
	if h.Poll().Gas {
		t.Error("gas should release once the window passes without a repeat")
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(core.ActionBrake)
	h.Poll()
	h.Poll()
	h.Press(core.ActionBrake)
	for i := 0; i < 3; i++ {
		if !h.Poll().Brake {
			t.Fatalf("repeat should restart the window, released on tick %d", i)
		}
	}
}

func TestHoldTrackerGasBrakeExclusive(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionGas)
	h.Press(core.ActionBrake)
	c := h.Poll()
	if c.Gas || !c.Brake {
		t.Errorf("last pressed should win, got %+v", c)
	}
}

func TestHoldTrackerTapsLastOneTick(t *testing.T) {
	h := NewHoldTracker(10)
	h.Press(core.ActionUp)
	h.Press(core.ActionConfirm)
	h.Press(core.ActionQuit)

	c := h.Poll()
	if !c.Up || !c.Confirm {
		t.Errorf("taps should show on the next poll, got %+v", c)
	}
	if c := h.Poll(); c != (core.Controls{}) {
		t.Errorf("taps should last one tick, got %+v", c)
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(core.ActionGas)
	h.Release()
	if h.Poll().Gas {
		t.Error("Release should drop every hold")
	}
}
