// Package overlay describes the menus shown around a run (main menu,
// settings, pause, game over, upgrade choice) and turns menu actions into
// engine calls. Drivers translate their own keys into Actions and draw the
// Panel on top of the engine frame.
package overlay

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
)

// Action is a menu command, independent of the physical key.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionSettings
	ActionBack
	ActionToggleSound
	ActionToggleShake
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionConfirm:
		return "confirm"
	case ActionSettings:
		return "settings"
	case ActionBack:
		return "back"
	case ActionToggleSound:
		return "toggle_sound"
	case ActionToggleShake:
		return "toggle_shake"
	default:
		return "none"
	}
}

// SettingsSaver persists user settings.
type SettingsSaver interface {
	Save(s core.Settings) error
}

// Controller applies menu actions to an engine.
type Controller struct {
	game   *engine.Engine
	saver  SettingsSaver
	logger *log.Logger
}

// NewController binds a controller to game. saver and logger may be nil.
func NewController(game *engine.Engine, saver SettingsSaver, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{game: game, saver: saver, logger: logger}
}

// Handle applies a for the current mode and reports whether anything
// changed. Actions that make no sense in the current mode are ignored.
func (c *Controller) Handle(a Action) bool {
	switch c.game.Mode() {
	case engine.ModeMenu:
		switch a {
		case ActionConfirm:
			return c.game.SetMode(engine.ModePlaying)
		case ActionSettings:
			return c.game.SetMode(engine.ModeSettings)
		}
	case engine.ModeSettings:
		switch a {
		case ActionToggleSound:
			s := c.game.Settings()
			s.SoundEnabled = !s.SoundEnabled
			c.apply(s)
			return true
		case ActionToggleShake:
			s := c.game.Settings()
			s.Screenshake = !s.Screenshake
			c.apply(s)
			return true
		case ActionBack, ActionConfirm:
			return c.game.SetMode(engine.ModeMenu)
		}
	case engine.ModePaused:
		switch a {
		case ActionConfirm:
			return c.game.SetMode(engine.ModePlaying)
		case ActionBack:
			return c.game.SetMode(engine.ModeMenu)
		}
	case engine.ModeGameOver:
		switch a {
		case ActionConfirm:
			return c.game.SetMode(engine.ModePlaying)
		case ActionBack:
			return c.game.SetMode(engine.ModeMenu)
		}
	}
	return false
}

func (c *Controller) apply(s core.Settings) {
	c.game.ApplySettings(s)
	if c.saver == nil {
		return
	}
	if err := c.saver.Save(s); err != nil {
		c.logger.Error("save settings", "err", err)
	}
}
