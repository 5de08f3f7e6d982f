package layer

import (
	"tile-sandbox/internal/color"
	"tile-sandbox/internal/geom"
)

// Tile is the desired look of one grid cell at a position.
// Layers hold tiles by pointer, so a tile changed after Draw and before the
// next Commit is drawn in its changed form.
type Tile struct {
	Char       string
	Color      color.Color
	Background color.Color
	Pos        geom.Vector
	Visible    bool
}

// TileOptions configures NewTile. Nil colours take the defaults.
type TileOptions struct {
	Char       string
	Color      *color.Color
	Background *color.Color
	Pos        geom.Vector
	Hidden     bool
}

// NewTile builds a tile, filling unset options with the defaults: transparent
// background, empty char, color.Default foreground, visible, at the origin.
func NewTile(opts TileOptions) *Tile {
	t := &Tile{
		Char:       opts.Char,
		Color:      color.Default,
		Background: color.Transparent,
		Pos:        opts.Pos,
		Visible:    !opts.Hidden,
	}
	if opts.Color != nil {
		t.Color = *opts.Color
	}
	if opts.Background != nil {
		t.Background = *opts.Background
	}
	return t
}
