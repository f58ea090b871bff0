package core

import (
	"math"
	"unicode/utf8"
)

// Surface is a drawing target addressed in playfield units (PlayfieldW x
// PlayfieldH). Implementations scale to their own resolution.
type Surface interface {
	Clear(c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	DrawText(x, y float64, text string, c Color)
	// TextWidth returns how many playfield units text occupies.
	TextWidth(text string) float64
}

// Offset wraps a surface and translates every draw call by (dx, dy).
// Used for screen shake.
type Offset struct {
	Surface
	DX, DY float64
}

// FillRect draws a translated rectangle.
func (o Offset) FillRect(x, y, w, h float64, c Color) {
	o.Surface.FillRect(x+o.DX, y+o.DY, w, h, c)
}

// FillCircle draws a translated circle.
func (o Offset) FillCircle(cx, cy, r float64, c Color) {
	o.Surface.FillCircle(cx+o.DX, cy+o.DY, r, c)
}

// DrawText draws translated text.
func (o Offset) DrawText(x, y float64, text string, c Color) {
	o.Surface.DrawText(x+o.DX, y+o.DY, text, c)
}

// Canvas adapts a Screen to the Surface interface. Terminal cells are roughly
// twice as tall as wide, so each cell covers PlayfieldW/width by
// PlayfieldH/height units and shapes smaller than a cell collapse to a glyph.
type Canvas struct {
	screen *Screen
}

// NewCanvas creates a canvas drawing into s.
func NewCanvas(s *Screen) *Canvas {
	return &Canvas{screen: s}
}

// Screen returns the underlying buffer.
func (c *Canvas) Screen() *Screen {
	return c.screen
}

func (c *Canvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / PlayfieldW, float64(c.screen.Height()) / PlayfieldH
}

func (c *Canvas) cell(x, y float64) (int, int) {
	sx, sy := c.scale()
	return int(math.Floor(x * sx)), int(math.Floor(y * sy))
}

// Clear resets every cell.
func (c *Canvas) Clear(_ Color) {
	c.screen.Clear()
}

// FillRect fills the cells covered by the rectangle. Rectangles thinner than
// a cell still mark the cell holding their origin.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	x0, y0 := c.cell(x, y)
	x1, y1 := c.cell(x+w, y+h)
	if x1 <= x0 || y1 <= y0 {
		glyph := '·'
		if w >= 3 || h >= 3 {
			glyph = '•'
		}
		c.screen.SetCell(x0, y0, glyph, col)
		return
	}
	for cy := y0; cy < y1; cy++ {
		for cx := x0; cx < x1; cx++ {
			c.screen.SetCell(cx, cy, '█', col)
		}
	}
}

// FillCircle fills every cell whose center lies inside the circle, or a
// single glyph when the circle is smaller than a cell.
func (c *Canvas) FillCircle(cx, cy, r float64, col Color) {
	sx, sy := c.scale()
	x0, y0 := c.cell(cx-r, cy-r)
	x1, y1 := c.cell(cx+r, cy+r)
	if x1-x0 < 2 && y1-y0 < 2 {
		x, y := c.cell(cx, cy)
		glyph := '•'
		if r >= 8 {
			glyph = '●'
		}
		c.screen.SetCell(x, y, glyph, col)
		return
	}
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			px := (float64(x) + 0.5) / sx
			py := (float64(y) + 0.5) / sy
			if Distance(V(px, py), V(cx, cy)) <= r {
				c.screen.SetCell(x, y, '█', col)
			}
		}
	}
}

// TextWidth returns the width of text in playfield units, one cell per rune.
func (c *Canvas) TextWidth(text string) float64 {
	sx, _ := c.scale()
	return float64(utf8.RuneCountInString(text)) / sx
}

// DrawText writes text starting at the cell containing (x, y).
func (c *Canvas) DrawText(x, y float64, text string, col Color) {
	cx, cy := c.cell(x, y)
	c.screen.DrawTextColor(cx, cy, text, col)
}
