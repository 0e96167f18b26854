package game

import "github.com/tomz197/mergefall/internal/physics"

// Governor clamps the horizontal velocity of every dynamic body after each
// physics step. Vertical velocity is left to gravity. The pass is
// idempotent and independent of body order.
type Governor struct {
	engine Engine
	max    float64
}

// Clamp applies the horizontal speed limit to all dynamic bodies.
func (g *Governor) Clamp() {
	g.engine.EachDynamic(func(b physics.Body) {
		vx, vy := g.engine.Velocity(b)
		switch {
		case vx > g.max:
			g.engine.SetVelocity(b, g.max, vy)
		case vx < -g.max:
			g.engine.SetVelocity(b, -g.max, vy)
		}
	})
}
