package color

import (
	"fmt"
	"image/color"
)

// Color is a restricted, canonical palette for drawings of the panel.
// Every color has one meaning, and the colors are as visually distinct
// as possible. It follows the 3-bit RGB palette with a few changes:
// * Gray as an added color (in the center of the color cube)
// * Yellow shifted toward orange to better distinguish it from white
// * Cyan darkened and shifted toward blue to better distinguish it from green
// * Magenta darkened to better distinguish it from red
type Color byte

const (
	White Color = iota
	Black
	Gray
	Red
	Green
	Blue
	Magenta
	Cyan
	Orange
)

// Meanings of palette entries in panel drawings.
const (
	Background = White
	Outline    = Black
	Frame      = Gray
	Honeycomb  = Orange
	Cut        = Blue
	Travel     = Magenta
)

var Palette = color.Palette{
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, // White
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, // Black
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff}, // Gray
	color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}, // Red
	color.RGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}, // Green
	color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}, // Blue
	color.RGBA{R: 0xcc, G: 0x00, B: 0xcc, A: 0xff}, // Magenta
	color.RGBA{R: 0x00, G: 0xbb, B: 0xdd, A: 0xff}, // Cyan
	color.RGBA{R: 0xff, G: 0xdd, B: 0x00, A: 0xff}, // Orange
}

// RGBA returns the palette entry for c. Unknown colors map to White.
func (c Color) RGBA() color.RGBA {
	if int(c) >= len(Palette) {
		return Palette[White].(color.RGBA)
	}
	return Palette[c].(color.RGBA)
}

// Hex formats c for SVG style attributes.
func (c Color) Hex() string {
	rgba := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
