package render

import (
	"strings"

	"tile-sandbox/internal/color"
	"tile-sandbox/internal/layer"
)

// Cell is the composited content of one grid position.
type Cell struct {
	Char string
	Fg   color.Color
	Bg   color.Color
}

// Over composites tile t on top of base. The tile's background is blended
// over the base background; a non-empty char replaces the base glyph and its
// colour is blended over the resulting background. A tile with no char keeps
// the glyph underneath.
func Over(base Cell, t *layer.Tile) Cell {
	if t == nil {
		return base
	}
	out := base
	out.Bg = color.Blend(t.Background, base.Bg)
	if t.Char != "" {
		out.Char = t.Char
		out.Fg = color.Blend(t.Color, out.Bg)
	}
	return out
}

// Composite folds tiles back-to-front onto base, skipping nil entries.
func Composite(base Cell, tiles ...*layer.Tile) Cell {
	for _, t := range tiles {
		base = Over(base, t)
	}
	return base
}

// Frame is a row-major grid of composited cells.
type Frame struct {
	Width, Height int
	// Scale is the size factor of one cell on the output surface.
	Scale int
	Cells []Cell
}

// NewFrame allocates a width × height frame.
func NewFrame(width, height, scale int) *Frame {
	return &Frame{
		Width:  width,
		Height: height,
		Scale:  scale,
		Cells:  make([]Cell, width*height),
	}
}

// At returns the cell at (x, y). Panics if out of range.
func (f *Frame) At(x, y int) Cell {
	return f.Cells[y*f.Width+x]
}

// Row returns the glyphs of row y as a string, blanks for empty cells.
func (f *Frame) Row(y int) string {
	var b strings.Builder
	for x := 0; x < f.Width; x++ {
		ch := f.Cells[y*f.Width+x].Char
		if ch == "" {
			ch = " "
		}
		b.WriteString(ch)
	}
	return b.String()
}
