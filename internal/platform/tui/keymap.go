package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/planetary/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up", "k":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionFall, false
	case " ", "f":
		return core.ActionShoot, false
	case "x":
		return core.ActionStrafe, false
	case "1":
		return core.ActionWeapon1, false
	case "2":
		return core.ActionWeapon2, false
	case "tab":
		return core.ActionNextWeapon, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	}

	return core.ActionNone, false
}

// IsLevel reports whether an action is a level signal that stays on while
// its key is held, as opposed to an edge triggered once per press.
func IsLevel(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionFall, core.ActionShoot:
		return true
	}
	return false
}

// MapKeyToFrame routes a key press: level actions refresh their hold,
// edge actions go straight into the frame.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame, held *core.HeldActions) bool {
	action, isQuit := km.MapKey(msg)
	switch {
	case action == core.ActionNone || isQuit:
	case IsLevel(action) && held != nil:
		held.Press(action)
		// Reversing direction should not wait for the old hold to expire.
		switch action {
		case core.ActionLeft:
			held.Release(core.ActionRight)
		case core.ActionRight:
			held.Release(core.ActionLeft)
		}
	default:
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
