package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibeware/microware/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// Centralizing the bindings keeps them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a round action. Returns the action
// (may be ActionNone) and whether it was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c":
		return core.ActionQuit, true
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case " ", "enter":
		return core.ActionPress, false
	case "esc":
		return core.ActionBack, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame folds a key message into an input frame. Printable runes
// are captured too so typing rounds see the raw letters. Returns true on
// a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	if msg.Type == tea.KeyRunes {
		frame.Runes = append(frame.Runes, msg.Runes...)
	}
	return isQuit
}

// MenuAction is a menu-specific intent derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionHistory
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
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab", "h":
		return MenuActionHistory
	}
	return MenuActionNone
}
