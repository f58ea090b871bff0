package overlay

import (
	"fmt"

	"github.com/vovakirdan/nebula-defender/internal/core"
	"github.com/vovakirdan/nebula-defender/internal/engine"
)

// Panel is the text shown over the playfield while the game is not in
// active play.
type Panel struct {
	Title string
	Lines []string
	Hint  string
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// PanelFor returns the panel for the snapshot's mode. Playing and warning
// have no panel; the engine HUD and banner cover them.
func PanelFor(s engine.Snapshot) (Panel, bool) {
	switch s.Mode {
	case engine.ModeMenu:
		return Panel{
			Title: "NEBULA DEFENDER",
			Lines: []string{
				"Fight through waves, build combos, survive bosses.",
				"",
				fmt.Sprintf("High score: %d", s.HighScore),
			},
			Hint: "Enter: start   S: settings   Q: quit",
		}, true
	case engine.ModeSettings:
		return Panel{
			Title: "SETTINGS",
			Lines: []string{
				"[1] Sound         " + onOff(s.Settings.SoundEnabled),
				"[2] Screen shake  " + onOff(s.Settings.Screenshake),
			},
			Hint: "1/2: toggle   Esc: back",
		}, true
	case engine.ModePaused:
		return Panel{
			Title: "PAUSED",
			Lines: []string{fmt.Sprintf("Wave %d   Score %d", s.Wave, s.Score)},
			Hint:  "P/Esc: resume   B: main menu",
		}, true
	case engine.ModeGameOver:
		lines := []string{
			fmt.Sprintf("Score: %d", s.Score),
			fmt.Sprintf("High Score: %d", s.HighScore),
			fmt.Sprintf("Wave %d   Kills %d   Bosses %d", s.Wave, s.TotalKills, s.BossKills),
		}
		if s.Score > 0 && s.Score >= s.HighScore {
			lines = append(lines, "", "NEW HIGH SCORE")
		}
		return Panel{
			Title: "GAME OVER",
			Lines: lines,
			Hint:  "Enter: restart   Esc: main menu",
		}, true
	case engine.ModeUpgrade:
		lines := make([]string, 0, len(s.Options))
		for i, o := range s.Options {
			line := fmt.Sprintf("[%d] %s %s  %s", i+1, o.Icon, o.Name, o.Description)
			if o.Stacks > 0 {
				line += fmt.Sprintf("  (Lv %d)", o.Stacks)
			}
			lines = append(lines, line)
		}
		return Panel{
			Title: fmt.Sprintf("WAVE %d CLEARED", s.Wave-1),
			Lines: lines,
			Hint:  "Press 1-3 to choose an upgrade",
		}, true
	}
	return Panel{}, false
}

const (
	lineStep = 22.0
	padding  = 24.0
)

// Draw renders p centered on s.
func Draw(s core.Surface, p Panel) {
	width := s.TextWidth(p.Title)
	for _, l := range p.Lines {
		width = max(width, s.TextWidth(l))
	}
	width = max(width, s.TextWidth(p.Hint)) + 2*padding
	height := float64(len(p.Lines)+4)*lineStep + padding

	x := core.PlayfieldW/2 - width/2
	y := core.PlayfieldH/2 - height/2
	s.FillRect(x, y, width, height, core.ColorDarkGray)

	row := y + padding/2
	centered(s, row, p.Title, core.ColorBrightCyan)
	row += 2 * lineStep
	for _, l := range p.Lines {
		s.DrawText(x+padding, row, l, core.ColorBrightWhite)
		row += lineStep
	}
	row += lineStep
	centered(s, row, p.Hint, core.ColorGray)
}

func centered(s core.Surface, y float64, text string, c core.Color) {
	s.DrawText(core.PlayfieldW/2-s.TextWidth(text)/2, y, text, c)
}
