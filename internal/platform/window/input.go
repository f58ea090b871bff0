package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/overlay"
)

// keyBindings lists the physical keys for each game key.
var keyBindings = map[core.Key][]ebiten.Key{
	core.KeyLeft:     {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.KeyRight:    {ebiten.KeyD, ebiten.KeyArrowRight},
	core.KeyUp:       {ebiten.KeyW, ebiten.KeyArrowUp},
	core.KeyDown:     {ebiten.KeyS, ebiten.KeyArrowDown},
	core.KeyFire:     {ebiten.KeySpace},
	core.KeyDash:     {ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyX},
	core.KeyPause:    {ebiten.KeyP, ebiten.KeyEscape},
	core.KeyUpgrade1: {ebiten.Key1},
	core.KeyUpgrade2: {ebiten.Key2},
	core.KeyUpgrade3: {ebiten.Key3},
}

// readFrame builds the input frame from the held keys and the mouse button.
func readFrame(pressed func(ebiten.Key) bool, mouse bool) core.InputFrame {
	frame := core.NewInputFrame()
	for k, keys := range keyBindings {
		for _, key := range keys {
			if pressed(key) {
				frame.Set(k)
				break
			}
		}
	}
	if mouse {
		frame.Set(core.KeyFire)
	}
	return frame
}

// menuAction returns the overlay action for the keys pressed this tick.
// Escape and Enter resume a paused run and B abandons it; P resumes through
// the engine.
func menuAction(mode engine.Mode, justPressed func(ebiten.Key) bool) overlay.Action {
	confirm := justPressed(ebiten.KeyEnter)
	switch mode {
	case engine.ModeMenu:
		if confirm || justPressed(ebiten.KeySpace) {
			return overlay.ActionConfirm
		}
		if justPressed(ebiten.KeyS) {
			return overlay.ActionSettings
		}
	case engine.ModeSettings:
		switch {
		case justPressed(ebiten.Key1):
			return overlay.ActionToggleSound
		case justPressed(ebiten.Key2):
			return overlay.ActionToggleShake
		case confirm || justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyB):
			return overlay.ActionBack
		}
	case engine.ModePaused:
		if confirm || justPressed(ebiten.KeyEscape) {
			return overlay.ActionConfirm
		}
		if justPressed(ebiten.KeyB) {
			return overlay.ActionBack
		}
	case engine.ModeGameOver:
		if confirm || justPressed(ebiten.KeyR) {
			return overlay.ActionConfirm
		}
		if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyB) {
			return overlay.ActionBack
		}
	}
	return overlay.ActionNone
}

// quitRequested reports Q outside of active play.
func quitRequested(mode engine.Mode, justPressed func(ebiten.Key) bool) bool {
	if mode == engine.ModePlaying || mode == engine.ModeWarning {
		return false
	}
	return justPressed(ebiten.KeyQ)
}
