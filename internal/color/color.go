// Package color is the RGBA value used for tile foregrounds and backgrounds.
//
// Channels are deliberately unclamped: R, G and B are meant to be 0-255 and A
// 0.0-1.0, but nothing here enforces it. Values are clamped only at the output
// boundary (TCell, RGBA).
package color

import (
	"fmt"
	stdcolor "image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA colour. A is the blend weight used when compositing.
type Color struct {
	R, G, B int
	A       float64
}

// Common colours.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{255, 255, 255, 1}
	// Default is the foreground given to tiles that don't choose one.
	Default = Color{240, 240, 240, 1}
)

// New returns a colour with the given channels.
func New(r, g, b int, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Blend composites top over bottom using top.A as the weight:
// result = top*top.A + bottom*(1-top.A), per channel.
// A weight of 0 returns bottom unchanged; 1 returns top unchanged.
func Blend(top, bottom Color) Color {
	if top.A <= 0 {
		return bottom
	}
	if top.A >= 1 {
		return top
	}
	inv := 1 - top.A
	return Color{
		R: mix(top.R, bottom.R, top.A, inv),
		G: mix(top.G, bottom.G, top.A, inv),
		B: mix(top.B, bottom.B, top.A, inv),
		A: top.A + bottom.A*inv,
	}
}

func mix(top, bottom int, alpha, inv float64) int {
	return int(math.Round(float64(top)*alpha + float64(bottom)*inv))
}

// ParseHex parses "#rrggbb" (or "#rgb") into an opaque colour.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return Color{R: int(r), G: int(g), B: int(b), A: 1}, nil
}

// Hex formats the colour as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// TCell converts to a true-colour terminal colour. Alpha is ignored: callers
// pass colours that were already blended down to an opaque result.
func (c Color) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(clamp(c.R)), int32(clamp(c.G)), int32(clamp(c.B)))
}

// RGBA converts to an opaque image colour.
func (c Color) RGBA() stdcolor.RGBA {
	return stdcolor.RGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: 0xff}
}

func clamp(v int) uint8 {
	if v >= 255 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v)
}
