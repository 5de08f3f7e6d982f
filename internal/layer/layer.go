// Package layer implements a fixed-size grid of committed tiles with a queue
// of pending draw operations that is resolved once per frame.
package layer

import (
	"errors"
	"fmt"

	"tile-sandbox/internal/geom"
)

// ErrInvalidSize is returned when a layer is built with a non-positive size.
var ErrInvalidSize = errors.New("layer size must be positive")

// Layer is a Size.X × Size.Y grid of tiles plus the operations drawn since
// the last Commit.
type Layer struct {
	size       geom.Vector
	buffer     []*Tile
	operations []*Tile
	// cell index each committed tile currently occupies
	placed     map[*Tile]int
}

// New creates an empty layer.
func New(size geom.Vector) (*Layer, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("new layer %dx%d: %w", size.X, size.Y, ErrInvalidSize)
	}
	return &Layer{
		size:   size,
		buffer: make([]*Tile, size.X*size.Y),
		placed: make(map[*Tile]int),
	}, nil
}

// Size returns the grid dimensions.
func (l *Layer) Size() geom.Vector { return l.size }

// Draw queues t for the next Commit. Nil, hidden and out-of-bounds tiles are
// ignored.
func (l *Layer) Draw(t *Tile) {
	if t == nil || !t.Visible || !t.Pos.In(l.size) {
		return
	}
	l.operations = append(l.operations, t)
}

// Operations returns the pending operations in draw order. The slice is only
// valid until the next Commit; the tiles may be mutated through it.
func (l *Layer) Operations() []*Tile { return l.operations }

// Commit writes pending operations into the buffer in draw order, so the last
// tile drawn at a position wins, then clears the queue.
//
// A tile occupies at most one cell: committing it at a new position vacates
// the cell it held before.
func (l *Layer) Commit() {
	for _, t := range l.operations {
		// Re-check: the tile may have moved or been hidden since Draw.
		if !t.Visible || !t.Pos.In(l.size) {
			continue
		}
		idx := t.Pos.Y*l.size.X + t.Pos.X
		if prev, ok := l.placed[t]; ok && prev != idx && l.buffer[prev] == t {
			l.buffer[prev] = nil
		}
		if old := l.buffer[idx]; old != nil && old != t {
			delete(l.placed, old)
		}
		l.buffer[idx] = t
		l.placed[t] = idx
	}
	clear(l.operations)
	l.operations = l.operations[:0]
}

// At returns the committed tile at (x, y), or nil when the cell is empty or
// out of range.
func (l *Layer) At(x, y int) *Tile {
	if !(geom.Vector{X: x, Y: y}).In(l.size) {
		return nil
	}
	return l.buffer[y*l.size.X+x]
}

// Clear drops every committed tile and pending operation.
func (l *Layer) Clear() {
	clear(l.buffer)
	clear(l.placed)
	clear(l.operations)
	l.operations = l.operations[:0]
}
