// Package render composites named layers into a frame and presents it to an
// output surface.
package render

import (
	"errors"
	"fmt"

	"tile-sandbox/internal/color"
	"tile-sandbox/internal/layer"
)

// ErrInvalidSize is returned for a non-positive renderer size.
var ErrInvalidSize = errors.New("renderer size must be positive")

// Surface receives one composited frame per Commit.
type Surface interface {
	Present(f *Frame)
}

type namedLayer struct {
	name  string
	layer *layer.Layer
}

// Renderer owns an ordered set of layers. Registration order is compositing
// order: the first layer added is the back-most.
type Renderer struct {
	surface    Surface
	layers     []namedLayer
	index      map[string]int
	scale      int
	clear      color.Color
	beforeDraw func()
	frame      *Frame
}

// NewRenderer creates a renderer producing width × height frames. surface may
// be nil, in which case Commit only composites.
func NewRenderer(surface Surface, width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("new renderer %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Renderer{
		surface: surface,
		index:   make(map[string]int),
		scale:   1,
		clear:   color.Black,
		frame:   NewFrame(width, height, 1),
	}, nil
}

// SetSize sets the scale factor carried by every frame. Non-positive values
// are ignored.
func (r *Renderer) SetSize(n int) {
	if n <= 0 {
		return
	}
	r.scale = n
	r.frame.Scale = n
}

// Scale returns the current scale factor.
func (r *Renderer) Scale() int { return r.scale }

// SetClearColor sets the colour underneath every layer.
func (r *Renderer) SetClearColor(c color.Color) { r.clear = c }

// AddLayer registers l under name. Registering an existing name replaces the
// layer in place, keeping its compositing position.
func (r *Renderer) AddLayer(name string, l *layer.Layer) {
	if i, ok := r.index[name]; ok {
		r.layers[i].layer = l
		return
	}
	r.index[name] = len(r.layers)
	r.layers = append(r.layers, namedLayer{name: name, layer: l})
}

// Layer looks up a registered layer by name.
func (r *Renderer) Layer(name string) (*layer.Layer, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.layers[i].layer, true
}

// Names returns the registered layer names back-to-front.
func (r *Renderer) Names() []string {
	names := make([]string, len(r.layers))
	for i, nl := range r.layers {
		names[i] = nl.name
	}
	return names
}

// OnBeforeDraw installs the hook run at the start of every Commit, before
// layers are committed. Only the latest hook is kept; nil removes it.
func (r *Renderer) OnBeforeDraw(fn func()) { r.beforeDraw = fn }

// Frame returns the most recently composited frame.
func (r *Renderer) Frame() *Frame { return r.frame }

// Commit runs the pre-draw hook, commits every layer in registration order,
// composites them into the frame and presents it.
func (r *Renderer) Commit() {
	if r.beforeDraw != nil {
		r.beforeDraw()
	}
	for _, nl := range r.layers {
		nl.layer.Commit()
	}
	r.composite()
	if r.surface != nil {
		r.surface.Present(r.frame)
	}
}

// composite resolves every frame cell back-to-front across all layers.
func (r *Renderer) composite() {
	f := r.frame
	base := Cell{Fg: r.clear, Bg: r.clear}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := base
			for _, nl := range r.layers {
				c = Over(c, nl.layer.At(x, y))
			}
			f.Cells[y*f.Width+x] = c
		}
	}
}
