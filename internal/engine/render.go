package engine

import (
	"fmt"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

const (
	hudBarW     = 200.0
	hudBarH     = 14.0
	bossBarW    = 360.0
	bossBarH    = 14.0
	bannerH     = 84.0
	bannerTitle = "WARNING: BOSS INCOMING"
)

// Render draws the current frame onto s. The world is shaken when screen
// shake is enabled; the HUD never is.
func (e *Engine) Render(s core.Surface) {
	s.Clear(core.ColorDefault)
	e.renderStars(s)

	var world core.Surface = s
	if !e.shakeOffset.IsZero() {
		world = core.Offset{Surface: s, DX: e.shakeOffset.X, DY: e.shakeOffset.Y}
	}
	e.renderWorld(world)

	e.renderHUD(s)
	if e.mode == ModeWarning {
		e.renderBanner(s)
	}
}

func (e *Engine) renderStars(s core.Surface) {
	for _, st := range e.stars {
		c := core.ColorDarkGray
		switch st.Layer {
		case 3:
			c = core.ColorWhite
		case 2:
			c = core.ColorGray
		}
		s.FillRect(st.Pos.X, st.Pos.Y, st.Size, st.Size, c)
	}
}

func (e *Engine) renderWorld(s core.Surface) {
	for _, p := range e.particles {
		s.FillRect(p.Pos.X, p.Pos.Y, p.Size, p.Size, p.Color)
	}
	for _, pk := range e.pickups {
		c := core.ColorBrightGreen
		if pk.Kind == PickupShield {
			c = core.ColorBrightCyan
		}
		s.FillCircle(pk.Pos.X, pk.Pos.Y, pk.Radius, c)
	}
	for _, b := range e.bullets {
		c := core.ColorOrange
		if b.FromPlayer {
			c = core.ColorBrightYellow
		}
		s.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, c)
	}
	for _, en := range e.enemies {
		if en.Elite {
			s.FillCircle(en.Pos.X, en.Pos.Y, en.Radius+3, core.ColorBrightYellow)
		}
		s.FillCircle(en.Pos.X, en.Pos.Y, en.Radius, en.Color)
	}
	if e.bossAlive() {
		b := e.boss
		s.FillCircle(b.Pos.X, b.Pos.Y, b.Radius, bossColor(b.Phase))
	}
	if e.mode != ModeGameOver {
		e.renderPlayer(s)
	}
	for _, d := range e.numbers {
		text := fmt.Sprintf("%d", d.Value)
		c := core.ColorWhite
		if d.Crit {
			text += "!"
			c = core.ColorBrightYellow
		}
		s.DrawText(d.Pos.X, d.Pos.Y, text, c)
	}
}

func bossColor(phase int) core.Color {
	switch phase {
	case 3:
		return core.ColorBrightMagenta
	case 2:
		return core.ColorOrange
	default:
		return core.ColorYellow
	}
}

func (e *Engine) renderPlayer(s core.Surface) {
	p := e.player
	hull := core.ColorBrightCyan
	if p.HitFlash > 0 || p.Invuln > 0 {
		hull = core.ColorBrightWhite
	}
	// Wings, then the fuselage on top.
	s.FillRect(p.Pos.X-p.W/2, p.Pos.Y, p.W, p.H/2, hull)
	s.FillRect(p.Pos.X-4, p.Pos.Y-p.H/2, 8, p.H, core.ColorBrightBlue)
}

func (e *Engine) renderHUD(s core.Surface) {
	r := e.run
	s.DrawText(16, 4, fmt.Sprintf("WAVE %d  KILLS %d/%d", r.Wave, r.WaveKills, r.KillTarget), core.ColorBrightWhite)
	s.DrawText(16, 24, fmt.Sprintf("SCORE %d  HI %d", r.Score, e.highScore), core.ColorWhite)
	comboColor := core.ColorGray
	if r.Combo > 1 {
		comboColor = core.ColorBrightYellow
	}
	s.DrawText(16, 44, fmt.Sprintf("COMBO x%.1f", r.Combo), comboColor)

	p := e.player
	x := core.PlayfieldW - hudBarW - 16
	e.renderBar(s, x, 4, hudBarW, hudBarH, p.HP/p.MaxHP, core.ColorRed)
	s.DrawText(x-60, 4, fmt.Sprintf("HP %3.0f", p.HP), core.ColorBrightRed)
	shieldRatio := 0.0
	if p.MaxShield > 0 {
		shieldRatio = p.Shield / p.MaxShield
	}
	e.renderBar(s, x, 24, hudBarW, hudBarH, shieldRatio, core.ColorCyan)
	s.DrawText(x-60, 24, fmt.Sprintf("SH %3.0f", p.Shield), core.ColorBrightCyan)

	if e.bossAlive() {
		b := e.boss
		bx := core.PlayfieldW/2 - bossBarW/2
		e.renderBar(s, bx, 64, bossBarW, bossBarH, b.HP/b.MaxHP, bossColor(b.Phase))
		label := fmt.Sprintf("BOSS  PHASE %d", b.Phase)
		s.DrawText(core.PlayfieldW/2-s.TextWidth(label)/2, 84, label, core.ColorBrightWhite)
	}
}

func (e *Engine) renderBar(s core.Surface, x, y, w, h, ratio float64, c core.Color) {
	s.FillRect(x, y, w, h, core.ColorDarkGray)
	if fill := w * core.ClampF(ratio, 0, 1); fill > 0 {
		s.FillRect(x, y, fill, h, c)
	}
}

func (e *Engine) renderBanner(s core.Surface) {
	y := core.PlayfieldH/2 - bannerH/2
	s.FillRect(0, y, core.PlayfieldW, bannerH, core.ColorRed)
	s.DrawText(core.PlayfieldW/2-s.TextWidth(bannerTitle)/2, core.PlayfieldH/2-8, bannerTitle, core.ColorBrightWhite)
	countdown := fmt.Sprintf("%.1fs", e.run.WarningTimer)
	s.DrawText(core.PlayfieldW/2-s.TextWidth(countdown)/2, core.PlayfieldH/2+16, countdown, core.ColorBrightYellow)
}
