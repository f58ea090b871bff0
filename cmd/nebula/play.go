package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start Nebula Defender in the terminal.

Controls:
  WASD/Arrows    - Move
  Space          - Fire (F toggles autofire)
  X/Shift+Arrow  - Dash (after the Thruster Dash upgrade)
  P/Esc          - Pause
  1/2/3          - Choose an upgrade
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Terminals do not report key releases, so a key counts as held for a short
moment after each press. Autofire spares your space bar.

Examples:
  nebula play
  nebula play --difficulty easy
  nebula play --config ./my-nebula.yaml --log-file ./nebula.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The terminal belongs to the game, so logs only go to --log-file.
	logger, closeLog, err := newLogger("nebula", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := core.DefaultConfig().ScreenW, core.DefaultConfig().ScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	session, err := openLocalSession(logger)
	if err != nil {
		return err
	}
	defer session.Close()

	return tui.Run(tui.ModelOptions{
		Engine: session.engine,
		Saver:  session.settings,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
		Logger: logger,
	})
}
