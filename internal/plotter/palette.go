package plotter

import (
	"fmt"
	"image/color"
)

// PaletteColor is one entry of the pedestrian colour cycle.
type PaletteColor struct {
	Code string // single-letter code: b g r c m y k
	RGBA color.RGBA
}

// Hex returns the colour as #rrggbb.
func (c PaletteColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.RGBA.R, c.RGBA.G, c.RGBA.B)
}

// Palette is the fixed seven colour cycle, in the order pedestrians use it.
var Palette = [...]PaletteColor{
	{Code: "b", RGBA: color.RGBA{R: 0, G: 0, B: 255, A: 255}},
	{Code: "g", RGBA: color.RGBA{R: 0, G: 128, B: 0, A: 255}},
	{Code: "r", RGBA: color.RGBA{R: 255, G: 0, B: 0, A: 255}},
	{Code: "c", RGBA: color.RGBA{R: 0, G: 191, B: 191, A: 255}},
	{Code: "m", RGBA: color.RGBA{R: 191, G: 0, B: 191, A: 255}},
	{Code: "y", RGBA: color.RGBA{R: 191, G: 191, B: 0, A: 255}},
	{Code: "k", RGBA: color.RGBA{R: 0, G: 0, B: 0, A: 255}},
}

// ColorFor returns Palette[pedestrian mod 7].
func ColorFor(pedestrian int) PaletteColor {
	n := len(Palette)
	return Palette[((pedestrian%n)+n)%n]
}
