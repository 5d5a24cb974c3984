package core

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an RGB color with each channel stored as a float in [0, 255].
// Channels stay continuous so blends can approach a target geometrically;
// quantization to bytes happens only when the color leaves the simulation.
type Color struct {
	R, G, B float64
}

// RGB builds a color from byte channels.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// ParseHex parses a "#rrggbb" (or "#rgb") string.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color{R: c.R * 255, G: c.G * 255, B: c.B * 255}, nil
}

// MustHex is like ParseHex but panics on malformed input.
// Only use it with compile-time constant colors.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats the color as "#rrggbb", rounding each channel.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// RGB255 returns the rounded byte channels.
func (c Color) RGB255() (r, g, b uint8) {
	return c.colorful().Clamped().RGB255()
}

// Lerp moves every channel the given fraction of the way toward target.
func (c Color) Lerp(target Color, t float64) Color {
	return Color{
		R: c.R + (target.R-c.R)*t,
		G: c.G + (target.G-c.G)*t,
		B: c.B + (target.B-c.B)*t,
	}
}

// Scale multiplies every channel, used for shading.
func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}
}
