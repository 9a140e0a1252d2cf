package tui

import "github.com/vovakirdan/bubble-burst/internal/core"

// HoldTracker turns key presses into held directions.
//
// Terminals deliver a press followed by autorepeat presses, but never a
// release. A direction stays held for a while after its last press: long
// enough after the first press to bridge the autorepeat delay, and a short
// window after each repeat so releasing the key stops the player quickly.
type HoldTracker struct {
	initial int // Ticks held after a fresh press
	repeat  int // Ticks held after an autorepeat press

	left  int
	right int
}

// NewHoldTracker creates a tracker with hold windows in ticks.
func NewHoldTracker(initial, repeat int) *HoldTracker {
	return &HoldTracker{initial: max(initial, 1), repeat: max(repeat, 1)}
}

// HoldTrackerFor sizes the hold windows for a tick rate.
func HoldTrackerFor(tickRate int) *HoldTracker {
	return NewHoldTracker(tickRate/2, tickRate/6)
}

// Press registers a direction key. Pressing one direction releases the other.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.refresh(h.left)
		h.right = 0
	case core.ActionRight:
		h.right = h.refresh(h.right)
		h.left = 0
	}
}

func (h *HoldTracker) refresh(remaining int) int {
	if remaining > 0 {
		return max(remaining, h.repeat)
	}
	return h.initial
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left = 0
	h.right = 0
}

// Apply marks the held directions on the frame.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
	}
}

// Tick ages the hold windows by one simulation tick.
func (h *HoldTracker) Tick() {
	h.left = max(h.left-1, 0)
	h.right = max(h.right-1, 0)
}
