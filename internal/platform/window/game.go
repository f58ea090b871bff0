// Package window hosts the engine in a desktop window through ebiten, with
// real key releases and mouse fire.
package window

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/overlay"
)

// Options configures the window driver.
type Options struct {
	Engine *engine.Engine
	Saver  overlay.SettingsSaver
	Logger *log.Logger
	Scale  float64 // window pixels per playfield unit
	TPS    int
}

// Game implements ebiten.Game.
type Game struct {
	engine     *engine.Engine
	controller *overlay.Controller
	logger     *log.Logger
	scale      float64
	dt         float64
}

// New creates the window driver.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	tps := opts.TPS
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return &Game{
		engine:     opts.Engine,
		controller: overlay.NewController(opts.Engine, opts.Saver, logger),
		logger:     logger,
		scale:      scale,
		dt:         1 / float64(tps),
	}
}

// Update polls devices, applies menu actions and advances the engine by one
// fixed tick.
func (g *Game) Update() error {
	mode := g.engine.Mode()
	if quitRequested(mode, inpututil.IsKeyJustPressed) {
		return ebiten.Termination
	}
	if action := menuAction(mode, inpututil.IsKeyJustPressed); action != overlay.ActionNone {
		g.controller.Handle(action)
	}

	mouse := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	g.engine.SetInput(readFrame(ebiten.IsKeyPressed, mouse))
	g.engine.Update(g.dt)
	return nil
}

// Draw renders the engine and the overlay panel.
func (g *Game) Draw(screen *ebiten.Image) {
	s := NewSurface(screen, g.scale)
	g.engine.Render(s)
	if panel, ok := overlay.PanelFor(g.engine.Snapshot()); ok {
		overlay.Draw(s, panel)
	}
}

// Layout keeps the playfield at a fixed logical size.
func (g *Game) Layout(_, _ int) (int, int) {
	return int(core.PlayfieldW * g.scale), int(core.PlayfieldH * g.scale)
}

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	g := New(opts)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Nebula Defender")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if opts.TPS > 0 {
		ebiten.SetTPS(opts.TPS)
	}

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
