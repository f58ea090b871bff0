package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/nebula-defender/internal/config"
	"github.com/vovakirdan/nebula-defender/internal/platform/tui"
	"github.com/vovakirdan/nebula-defender/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [easy|normal|hard]",
	Short: "Show the run history",
	Long: `Display the best runs, optionally for one difficulty only.

Examples:
  nebula scores
  nebula scores hard --limit 20
  nebula scores --tui
  nebula scores easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the history interactively")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the run history (high scores are kept)")
}

func runScores(_ *cobra.Command, args []string) error {
	difficulty := ""
	if len(args) == 1 {
		preset, err := config.ParsePreset(args[0])
		if err != nil {
			return err
		}
		difficulty = string(preset)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(difficulty); err != nil {
			return err
		}
		fmt.Println("Run history cleared.")
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, difficulty, width, height)
	}

	runs, err := store.TopRuns(difficulty, flagScoresLimit)
	if err != nil {
		return err
	}

	title := "all difficulties"
	if difficulty != "" {
		title = difficulty
	}
	fmt.Printf("Nebula Defender - Best Runs (%s)\n\n", title)

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'nebula play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-4s  %-6s  %-6s  %s\n", "Rank", "Score", "Wave", "Kills", "Boss", "Time", "Mode", "Date")
	fmt.Printf("  %-4s  %-8s  %-4s  %-5s  %-4s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----", "----", "----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-4d  %-5d  %-4d  %-6s  %-6s  %s\n",
			i+1, r.Score, r.Wave, r.Kills, r.BossKills,
			r.Duration.Round(time.Second), r.Difficulty, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats(difficulty)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d   Best: %d   Average: %.0f   Best wave: %d\n", st.Runs, st.BestScore, st.AverageScore, st.BestWave)
	fmt.Printf("Kills: %d   Bosses: %d   Time played: %s\n", st.TotalKills, st.TotalBosses, st.TotalPlayTime.Round(time.Second))
	return nil
}
