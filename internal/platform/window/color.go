package window

import (
	"image/color"

	"github.com/vovakirdan/nebula-defender/internal/core"
)

// fade returns c at a third of its opacity, premultiplied.
func fade(c core.Color) color.RGBA {
	rgba := c.ToRGBA()
	return color.RGBA{R: rgba.R / 3, G: rgba.G / 3, B: rgba.B / 3, A: 0x55}
}
