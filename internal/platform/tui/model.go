package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
	"github.com/vovakirdan/nebula-defender/internal/overlay"
)

// ModelOptions configures a terminal session.
type ModelOptions struct {
	Engine  *engine.Engine
	Saver   overlay.SettingsSaver // nil keeps settings in memory
	Runtime core.RuntimeConfig
	Logger  *log.Logger

	// ScreenshotDir defaults to ~/.nebula/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one engine.
type Model struct {
	engine     *engine.Engine
	controller *overlay.Controller
	screen     *core.Screen
	canvas     *core.Canvas
	keys       *KeyState
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	logger     *log.Logger
	shotDir    string
	autofire   bool
	lastTick   time.Time
	quitting   bool
	now        func() time.Time
}

// NewModel creates a Bubble Tea model for the given engine.
func NewModel(opts ModelOptions) Model {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if cfg.ScreenW <= 0 || cfg.ScreenH <= 0 {
		def := core.DefaultConfig()
		cfg.ScreenW, cfg.ScreenH = def.ScreenW, def.ScreenH
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".nebula", "screenshots")
		}
	}

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	return Model{
		engine:     opts.Engine,
		controller: overlay.NewController(opts.Engine, opts.Saver, logger),
		screen:     screen,
		canvas:     core.NewCanvas(screen),
		keys:       NewKeyState(),
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		logger:     logger,
		shotDir:    shotDir,
		now:        time.Now,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey routes a key to a driver command, a menu action or the engine,
// in that order.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	mode := m.engine.Mode()

	switch m.keyMapper.MapCommand(msg, mode) {
	case CommandQuit:
		m.quitting = true
		return m, tea.Quit
	case CommandScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case CommandAutofire:
		m.autofire = !m.autofire
		return m, nil
	}

	if action := m.keyMapper.MapAction(msg, mode); action != overlay.ActionNone {
		if m.controller.Handle(action) {
			m.keys.ReleaseAll()
		}
		return m, nil
	}

	now := m.now()
	for _, k := range m.keyMapper.MapKeys(msg) {
		m.keys.Press(k, now)
	}
	return m, nil
}

// handleTick advances the engine by the real time since the last tick.
func (m Model) handleTick(at time.Time) (tea.Model, tea.Cmd) {
	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = at.Sub(m.lastTick).Seconds()
	}
	m.lastTick = at

	frame := m.keys.Frame(m.now())
	if m.autofire {
		frame.Set(core.KeyFire)
	}
	m.engine.SetInput(frame)
	m.engine.Update(dt)

	return m, tickCmd(m.config.TickRate)
}

// draw renders the engine and any overlay panel into the screen buffer.
func (m *Model) draw() {
	m.canvas.Clear(core.ColorDefault)
	m.engine.Render(m.canvas)
	if panel, ok := overlay.PanelFor(m.engine.Snapshot()); ok {
		overlay.Draw(m.canvas, panel)
	}
	if m.autofire {
		m.screen.DrawTextColor(0, m.screen.Height()-1, "AUTOFIRE", core.ColorBrightYellow)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	if m.shotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("nebula_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.draw()
	return RenderScreen(m.screen)
}

// Run starts a Bubble Tea program hosting the engine.
func Run(opts ModelOptions) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
