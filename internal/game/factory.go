package game

import (
	"math"

	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

// Factory builds tagged physics bodies for (kind, tier) pairs. It always
// succeeds given catalog indices, which only this package produces.
type Factory struct {
	engine  Engine
	catalog *shape.Catalog
	tags    tagTable
}

// Create instantiates a body for the given kind and tier at (x, y), tags
// it, and nudges it downward so stacked pairs never rest in perfect
// symmetry. Returns the new handle.
func (f *Factory) Create(kind shape.Kind, tier int, x, y float64) physics.Body {
	st := f.catalog.Tier(kind, tier)

	var b physics.Body
	switch kind {
	case shape.KindCircle:
		b = f.engine.AddCircle(st.Size, x, y)
	case shape.KindSquare:
		b = f.engine.AddRoundedPolygon(squareVerts(st.Size-st.Rounding), st.Rounding, x, y)
	default:
		b = f.engine.AddRoundedPolygon(triangleVerts(st.Size-st.Rounding), st.Rounding, x, y)
	}

	f.tags.set(b, shape.Tag{Kind: kind, Tier: tier})
	f.engine.ApplyForce(b, 0, NudgeForce)
	return b
}

// squareVerts returns the corners of an axis-aligned square with the given
// half-extent, centered on the origin.
func squareVerts(half float64) []physics.Vec {
	return []physics.Vec{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
}

// triangleVerts returns an equilateral triangle with the given circumradius,
// centered on its centroid and pointing up (negative y).
func triangleVerts(circumradius float64) []physics.Vec {
	half := circumradius * math.Cos(math.Pi/6)
	return []physics.Vec{
		{X: 0, Y: -circumradius},
		{X: half, Y: circumradius / 2},
		{X: -half, Y: circumradius / 2},
	}
}
