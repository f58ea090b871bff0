package window

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// glyphW and glyphH are the debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

// Surface draws playfield units onto an ebiten image at scale pixels per
// unit.
type Surface struct {
	dst   *ebiten.Image
	scale float64
}

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image, scale float64) *Surface {
	if scale <= 0 {
		scale = 1
	}
	return &Surface{dst: dst, scale: scale}
}

func (s *Surface) px(v float64) float32 {
	return float32(v * s.scale)
}

func (s *Surface) Clear(c core.Color) {
	s.dst.Fill(c.ToRGBA())
}

func (s *Surface) FillRect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(s.dst, s.px(x), s.px(y), s.px(w), s.px(h), c.ToRGBA(), false)
}

func (s *Surface) FillCircle(cx, cy, r float64, c core.Color) {
	vector.DrawFilledCircle(s.dst, s.px(cx), s.px(cy), s.px(r), c.ToRGBA(), true)
}

// DrawText uses the debug font, which is always white; the color only
// tints a backing strip for non-white text.
func (s *Surface) DrawText(x, y float64, text string, c core.Color) {
	if c != core.ColorWhite && c != core.ColorBrightWhite && c != core.ColorDefault {
		w := float64(utf8.RuneCountInString(text) * glyphW)
		vector.DrawFilledRect(s.dst, s.px(x)-2, s.px(y), float32(w)+4, glyphH, fade(c), false)
	}
	ebitenutil.DebugPrintAt(s.dst, text, int(x*s.scale), int(y*s.scale))
}

// TextWidth returns the debug font width of text in playfield units.
func (s *Surface) TextWidth(text string) float64 {
	return float64(utf8.RuneCountInString(text)*glyphW) / s.scale
}
