package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nebula-defender/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start Nebula Defender in a 960x540 desktop window.

Controls are the same as in the terminal, plus the left mouse button fires.

Examples:
  nebula window
  nebula window --scale 1.5 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per playfield unit")
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("nebula", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	session, err := openLocalSession(logger)
	if err != nil {
		return err
	}
	defer session.Close()

	return window.Run(window.Options{
		Engine: session.engine,
		Saver:  session.settings,
		Logger: logger,
		Scale:  flagScale,
		TPS:    flagFPS,
	})
}
