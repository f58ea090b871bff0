package core

import "image/color"

// Color represents a foreground color for a screen cell or shape.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

var palette = map[Color]color.RGBA{
	ColorDefault:       {0x05, 0x07, 0x14, 0xff},
	ColorRed:           {0xd9, 0x3a, 0x3a, 0xff},
	ColorGreen:         {0x3f, 0xc8, 0x5a, 0xff},
	ColorYellow:        {0xe8, 0xc5, 0x3a, 0xff},
	ColorBlue:          {0x3a, 0x6d, 0xd9, 0xff},
	ColorMagenta:       {0xc2, 0x4d, 0xd9, 0xff},
	ColorCyan:          {0x3a, 0xc8, 0xd9, 0xff},
	ColorWhite:         {0xc8, 0xcc, 0xd8, 0xff},
	ColorBrightRed:     {0xff, 0x5c, 0x5c, 0xff},
	ColorBrightGreen:   {0x7c, 0xff, 0x8a, 0xff},
	ColorBrightYellow:  {0xff, 0xe6, 0x6b, 0xff},
	ColorBrightBlue:    {0x6b, 0x9c, 0xff, 0xff},
	ColorBrightMagenta: {0xf2, 0x7c, 0xff, 0xff},
	ColorBrightCyan:    {0x7c, 0xf4, 0xff, 0xff},
	ColorBrightWhite:   {0xff, 0xff, 0xff, 0xff},
	ColorOrange:        {0xff, 0x9a, 0x3c, 0xff},
	ColorGray:          {0x8a, 0x8f, 0x9c, 0xff},
	ColorDarkGray:      {0x3c, 0x40, 0x4c, 0xff},
}

// ToRGBA returns the color used by pixel surfaces.
func (c Color) ToRGBA() color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[ColorDefault]
}
