package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/overlay"
)

// Terminals report key presses but never releases. A pressed key is treated
// as held until initialHold passes without another press; auto-repeat
// events then keep it alive in repeatHold steps.
const (
	initialHold = 300 * time.Millisecond
	repeatHold  = 150 * time.Millisecond
)

// KeyState turns a stream of key presses into held keys.
type KeyState struct {
	until map[core.Key]time.Time
}

// NewKeyState creates an empty key state.
func NewKeyState() *KeyState {
	return &KeyState{until: make(map[core.Key]time.Time)}
}

// Press records a press of k at now.
func (s *KeyState) Press(k core.Key, now time.Time) {
	hold := initialHold
	if t, ok := s.until[k]; ok && now.Before(t) {
		hold = repeatHold
	}
	s.until[k] = now.Add(hold)
}

// ReleaseAll forgets every held key.
func (s *KeyState) ReleaseAll() {
	clear(s.until)
}

// Frame returns the keys still held at now and drops the expired ones.
func (s *KeyState) Frame(now time.Time) core.InputFrame {
	frame := core.NewInputFrame()
	for k, t := range s.until {
		if now.Before(t) {
			frame.Set(k)
		} else {
			delete(s.until, k)
		}
	}
	return frame
}

// Command is a driver-level request that bypasses the engine.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandScreenshot
	CommandAutofire
)

// KeyMapper translates Bubble Tea key messages to game keys, menu actions
// and driver commands. Bindings depend on the engine mode, so "s" moves the
// ship in play but opens settings in the main menu.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapCommand returns the driver command bound to msg, if any.
func (km *KeyMapper) MapCommand(msg tea.KeyMsg, mode engine.Mode) Command {
	switch msg.String() {
	case "ctrl+c":
		return CommandQuit
	case "q":
		if mode != engine.ModePlaying && mode != engine.ModeWarning {
			return CommandQuit
		}
	case "ctrl+s":
		return CommandScreenshot
	case "f":
		return CommandAutofire
	}
	return CommandNone
}

// MapAction returns the menu action bound to msg in mode.
func (km *KeyMapper) MapAction(msg tea.KeyMsg, mode engine.Mode) overlay.Action {
	key := msg.String()

	switch mode {
	case engine.ModeMenu:
		switch key {
		case "enter", " ":
			return overlay.ActionConfirm
		case "s":
			return overlay.ActionSettings
		}
	case engine.ModeSettings:
		switch key {
		case "1":
			return overlay.ActionToggleSound
		case "2":
			return overlay.ActionToggleShake
		case "esc", "b", "enter":
			return overlay.ActionBack
		}
	case engine.ModePaused:
		switch key {
		case "enter", "esc":
			return overlay.ActionConfirm
		case "b":
			return overlay.ActionBack
		}
	case engine.ModeGameOver:
		switch key {
		case "enter", "r", " ":
			return overlay.ActionConfirm
		case "esc", "b":
			return overlay.ActionBack
		}
	}
	return overlay.ActionNone
}

// MapKeys returns the game keys bound to msg. Shift with an arrow dashes in
// that direction.
func (km *KeyMapper) MapKeys(msg tea.KeyMsg) []core.Key {
	key := msg.String()
	if dir, ok := strings.CutPrefix(key, "shift+"); ok {
		if k := gameKey(dir); k != core.KeyNone {
			return []core.Key{core.KeyDash, k}
		}
	}
	if k := gameKey(key); k != core.KeyNone {
		return []core.Key{k}
	}
	return nil
}

func gameKey(key string) core.Key {
	switch key {
	case "a", "left":
		return core.KeyLeft
	case "d", "right":
		return core.KeyRight
	case "w", "up":
		return core.KeyUp
	case "s", "down":
		return core.KeyDown
	case " ":
		return core.KeyFire
	case "x":
		return core.KeyDash
	case "p", "esc":
		return core.KeyPause
	case "1":
		return core.KeyUpgrade1
	case "2":
		return core.KeyUpgrade2
	case "3":
		return core.KeyUpgrade3
	}
	return core.KeyNone
}
