package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// DefaultHoldTicks covers the usual keyboard auto-repeat delay at 60 ticks
// per second, so a held key reads as continuously pressed.
const DefaultHoldTicks = 30

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case "d", "right", "l":
		return core.ActionGas, false
	case "a", "left", "h":
		return core.ActionBrake, false
	case "enter", " ":
		return core.ActionConfirm, false
	case "p", "esc":
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// HoldTracker emulates key releases. Terminals report presses and
// auto-repeats but never releases, so gas and brake stay held until
// window ticks pass without a repeat. Every other action lasts one tick.
type HoldTracker struct {
	window int
	left   map[core.Action]int
}

// NewHoldTracker creates a tracker; window <= 0 uses DefaultHoldTicks.
func NewHoldTracker(window int) *HoldTracker {
	if window <= 0 {
		window = DefaultHoldTicks
	}
	return &HoldTracker{
		window: window,
		left:   make(map[core.Action]int),
	}
}

// Press records a key press or repeat.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionGas:
		// Gas and brake are exclusive: the last one pressed wins.
		delete(h.left, core.ActionBrake)
		h.left[a] = h.window
	case core.ActionBrake:
		delete(h.left, core.ActionGas)
		h.left[a] = h.window
	default:
		h.left[a] = 1
	}
}

// Poll returns the controls held this tick and ages every hold by one tick.
func (h *HoldTracker) Poll() core.Controls {
	var c core.Controls
	for a, n := range h.left {
		c.Set(a)
		if n <= 1 {
			delete(h.left, a)
		} else {
			h.left[a] = n - 1
		}
	}
	return c
}

// Release drops every hold, used when focus moves away from the run.
func (h *HoldTracker) Release() {
	clear(h.left)
}
