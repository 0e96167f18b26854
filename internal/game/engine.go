// Package game implements the merge-game logic layer: the shape factory,
// the fusion resolver, the velocity governor, the spawn scheduler, and the
// active-shape controller. It sits on top of a rigid-body engine consumed
// through the Engine interface and stores no positions or velocities of its
// own; everything kinetic is queried live from the engine.
package game

import "github.com/tomz197/mergefall/internal/physics"

// Engine is the contract the rigid-body collaborator must provide. It is
// implemented by physics.World and by the in-memory fake used in tests.
//
// Operations on handles the engine no longer knows must be no-ops (reads
// return zeros); the core relies on this when a handle dies mid-frame.
type Engine interface {
	// AddCircle creates a dynamic circle body centered at (x, y).
	AddCircle(radius, x, y float64) physics.Body

	// AddRoundedPolygon creates a dynamic convex polygon body centered at
	// (x, y), with verts relative to the center and rounded corners.
	AddRoundedPolygon(verts []physics.Vec, rounding, x, y float64) physics.Body

	// Remove destroys a body.
	Remove(b physics.Body)

	// Position returns the body's center.
	Position(b physics.Body) (x, y float64)

	// Velocity returns the body's linear velocity.
	Velocity(b physics.Body) (vx, vy float64)

	// SetVelocity overwrites the body's linear velocity.
	SetVelocity(b physics.Body, vx, vy float64)

	// ApplyForce applies a force through the body's center for the next step.
	ApplyForce(b physics.Body, fx, fy float64)

	// EachDynamic calls fn for every live dynamic (non-static, non-sensor)
	// body.
	EachDynamic(fn func(physics.Body))

	// Step advances the simulation by dt seconds and returns the pairs of
	// bodies newly touching during that step, in report order.
	Step(dt float64) []physics.Contact
}
