package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow - walk counter-clockwise (level)
	ActionRight             // D, Right arrow - walk clockwise (level)
	ActionJump              // W, Up arrow - jump off the current surface
	ActionFall              // S, Down arrow - drop through a platform (level)
	ActionShoot             // Space, F - fire the equipped weapon (level)
	ActionStrafe            // X - toggle strafing (keep facing while moving)
	ActionWeapon1           // 1 - equip first weapon
	ActionWeapon2           // 2 - equip second weapon
	ActionNextWeapon        // Tab - cycle weapons
	ActionConfirm           // Enter - confirm selection in menu
	ActionBack              // B, Escape - go back to menu
	ActionRestart           // R key - restart game after game over
	ActionQuit              // Q, Ctrl+C - exit game/session
	ActionPause             // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionJump:
		return "Jump"
	case ActionFall:
		return "Fall"
	case ActionShoot:
		return "Shoot"
	case ActionStrafe:
		return "Strafe"
	case ActionWeapon1:
		return "Weapon1"
	case ActionWeapon2:
		return "Weapon2"
	case ActionNextWeapon:
		return "NextWeapon"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered (or are held) during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// HeldActions turns discrete key presses into level signals.
// Terminals only report presses (and auto-repeats), never releases, so a
// press keeps its action held for a fixed number of ticks; each repeat
// refreshes the hold.
type HeldActions struct {
	holdTicks int
	remaining map[Action]int
}

// NewHeldActions creates a tracker that holds each press for holdTicks ticks.
func NewHeldActions(holdTicks int) *HeldActions {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &HeldActions{
		holdTicks: holdTicks,
		remaining: make(map[Action]int),
	}
}

// Press starts or refreshes the hold for an action.
func (h *HeldActions) Press(a Action) {
	h.remaining[a] = h.holdTicks
}

// Release drops an action immediately.
func (h *HeldActions) Release(a Action) {
	delete(h.remaining, a)
}

// Held reports whether an action is currently held.
func (h *HeldActions) Held(a Action) bool {
	return h.remaining[a] > 0
}

// Apply marks every held action in the frame and then ages all holds by one tick.
func (h *HeldActions) Apply(f *InputFrame) {
	for a, n := range h.remaining {
		f.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Reset drops every hold.
func (h *HeldActions) Reset() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
