package game

import (
	"math"

	"tile-sandbox/internal/geom"
)

// shimmerAlpha is the background glyph opacity at pos: (sin(x/y + 5 + phase) + 1) / 2.
// Row 0 would divide by zero and is drawn fully opaque.
func shimmerAlpha(pos geom.Vector, phase float64) float64 {
	if pos.Y == 0 {
		return 1
	}
	return (math.Sin(float64(pos.X)/float64(pos.Y)+5+phase) + 1) / 2
}

// shimmer is the renderer's pre-draw hook: it rewrites the alpha of every
// pending background operation.
func (g *GameState) shimmer() {
	phase := g.tickAt.Sub(g.start).Seconds() * g.cfg.ShimmerSpeed
	for _, op := range g.background.Operations() {
		op.Color.A = shimmerAlpha(op.Pos, phase)
	}
}
