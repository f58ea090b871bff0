// nebula is a top-down arcade shooter for the terminal, a desktop window, or
// remote play over SSH.
//
// Usage:
//
//	nebula play              - Play in the terminal
//	nebula window            - Play in a desktop window
//	nebula serve             - Start SSH server for remote play
//	nebula scores [mode]     - Show the run history
//	nebula codex             - List enemies and upgrades
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.nebula/nebula.db)
//	--config <path>       - Use a custom tuning file
//	--difficulty <name>   - easy, normal or hard
//	--log-file <path>     - Write logs to a file
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "nebula",
	Short: "Nebula Defender - survive waves of enemies and bosses",
	Long: `Nebula Defender is a top-down arcade shooter. Fly your ship through
endless waves, build combos, pick upgrades between waves and survive a boss
every fifth wave.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View the run history
  codex    - List enemy archetypes and upgrades

Examples:
  nebula play
  nebula play --difficulty hard --seed 42
  nebula window --scale 1.5
  nebula serve --ssh :2222
  nebula scores --tui`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", "~/.nebula/nebula.db", "Path to run history database")
	flags.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	flags.StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard")
	flags.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	flags.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(codexCmd)
}
