// Package geom holds the integer grid vector shared by tiles, layers and input.
package geom

// Vector is a point or offset on the tile grid.
// It is a plain value; Add on a pointer moves it in place, the package-level
// Add returns a fresh value.
type Vector struct {
	X, Y int
}

// Zero returns the origin.
func Zero() Vector { return Vector{} }

// Add moves v by o in place and returns v so calls can be chained.
func (v *Vector) Add(o Vector) *Vector {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Add returns a + b without touching either operand.
func Add(a, b Vector) Vector {
	return Vector{X: a.X + b.X, Y: a.Y + b.Y}
}

// In reports whether v lies inside [0, size.X) × [0, size.Y).
func (v Vector) In(size Vector) bool {
	return v.X >= 0 && v.X < size.X && v.Y >= 0 && v.Y < size.Y
}
