// Package physics wraps the Chipmunk2D rigid-body engine behind opaque
// body handles. Game code never touches cp types: it creates bodies, reads
// positions and velocities, applies forces, and consumes the per-step feed
// of newly touching pairs.
package physics

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
)

// Body is an opaque handle to a dynamic body owned by the World.
type Body uint64

// NoBody is the zero handle; no live body ever has it.
const NoBody Body = 0

// Vec is a 2D vector in logical field units. Y grows downward.
type Vec struct {
	X, Y float64
}

// Contact reports a pair of bodies that started touching during a step.
type Contact struct {
	A, B Body
}

// Field is the bounded play area: a floor at y=Height and side walls at
// x=0 and x=Width. The top is open so shapes can drop in from above.
type Field struct {
	Width, Height float64
}

// Config tunes a new World.
type Config struct {
	Field   Field
	Gravity float64 // Downward acceleration in units/s^2
}

const (
	shapeCollisionType cp.CollisionType = 1

	// Walls extend this far above the visible top so a controlled shape
	// spawned off-screen still stays between the side walls.
	wallRise   = 60.0
	wallRadius = 0.5

	wallElasticity = 0.05
	wallFriction   = 0.9

	bodyElasticity = 0.1
	bodyFriction   = 0.7
	bodyDensity    = 0.08

	spaceIterations = 16
)

type bodyRec struct {
	body  *cp.Body
	shape *cp.Shape
}

// World owns the cp.Space, the static field geometry, and the handle table.
// All methods must be called from the single game goroutine.
type World struct {
	space    *cp.Space
	bodies   map[Body]*bodyRec
	next     Body
	contacts []Contact
}

// NewWorld builds a space with gravity and the static field walls.
func NewWorld(cfg Config) *World {
	space := cp.NewSpace()
	space.Iterations = spaceIterations
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})

	w := &World{
		space:  space,
		bodies: make(map[Body]*bodyRec),
		next:   1,
	}
	w.addWalls(cfg.Field)

	handler := space.NewCollisionHandler(shapeCollisionType, shapeCollisionType)
	handler.BeginFunc = w.onBegin
	return w
}

func (w *World) addWalls(f Field) {
	segments := []struct{ a, b cp.Vector }{
		{cp.Vector{X: 0, Y: f.Height}, cp.Vector{X: f.Width, Y: f.Height}},
		{cp.Vector{X: 0, Y: -wallRise}, cp.Vector{X: 0, Y: f.Height}},
		{cp.Vector{X: f.Width, Y: -wallRise}, cp.Vector{X: f.Width, Y: f.Height}},
	}
	for _, s := range segments {
		seg := cp.NewSegment(w.space.StaticBody, s.a, s.b, wallRadius)
		seg.SetElasticity(wallElasticity)
		seg.SetFriction(wallFriction)
		w.space.AddShape(seg)
	}
}

// onBegin runs inside space.Step for every pair of shapes newly touching.
// Wall segments carry no handle and are filtered out here; the pair is
// recorded and the collision proceeds normally.
func (w *World) onBegin(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Bodies()
	ha, okA := a.UserData.(Body)
	hb, okB := b.UserData.(Body)
	if okA && okB {
		w.contacts = append(w.contacts, Contact{A: ha, B: hb})
	}
	return true
}

func (w *World) register(body *cp.Body, shape *cp.Shape) Body {
	shape.SetElasticity(bodyElasticity)
	shape.SetFriction(bodyFriction)
	shape.SetCollisionType(shapeCollisionType)
	w.space.AddShape(shape)

	h := w.next
	w.next++
	body.UserData = h
	w.bodies[h] = &bodyRec{body: body, shape: shape}
	return h
}

// AddCircle creates a dynamic circle body centered at (x, y).
func (w *World) AddCircle(radius, x, y float64) Body {
	mass := bodyDensity * math.Pi * radius * radius
	body := cp.NewBody(mass, cp.MomentForCircle(mass, 0, radius, cp.Vector{}))
	body.SetPosition(cp.Vector{X: x, Y: y})
	w.space.AddBody(body)
	return w.register(body, cp.NewCircle(body, radius, cp.Vector{}))
}

// AddRoundedPolygon creates a dynamic convex polygon body centered at
// (x, y). verts are relative to the body center; rounding inflates every
// corner by that radius.
func (w *World) AddRoundedPolygon(verts []Vec, rounding, x, y float64) Body {
	vs := make([]cp.Vector, len(verts))
	for i, v := range verts {
		vs[i] = cp.Vector{X: v.X, Y: v.Y}
	}

	mass := bodyDensity * math.Abs(cp.AreaForPoly(len(vs), vs, rounding))
	body := cp.NewBody(mass, cp.MomentForPoly(mass, len(vs), vs, cp.Vector{}, rounding))
	body.SetPosition(cp.Vector{X: x, Y: y})
	w.space.AddBody(body)
	return w.register(body, cp.NewPolyShape(body, len(vs), vs, cp.NewTransformIdentity(), rounding))
}

// Remove destroys a body. Unknown handles are a no-op, so callers holding a
// handle that was already destroyed this frame stay safe.
func (w *World) Remove(b Body) {
	rec, ok := w.bodies[b]
	if !ok {
		return
	}
	w.space.RemoveShape(rec.shape)
	w.space.RemoveBody(rec.body)
	delete(w.bodies, b)
}

// Position returns the body's center. Unknown handles read as the origin.
func (w *World) Position(b Body) (x, y float64) {
	rec, ok := w.bodies[b]
	if !ok {
		return 0, 0
	}
	p := rec.body.Position()
	return p.X, p.Y
}

// Velocity returns the body's linear velocity.
func (w *World) Velocity(b Body) (vx, vy float64) {
	rec, ok := w.bodies[b]
	if !ok {
		return 0, 0
	}
	v := rec.body.Velocity()
	return v.X, v.Y
}

// SetVelocity overwrites the body's linear velocity.
func (w *World) SetVelocity(b Body, vx, vy float64) {
	if rec, ok := w.bodies[b]; ok {
		rec.body.SetVelocity(vx, vy)
	}
}

// Angle returns the body's rotation in radians.
func (w *World) Angle(b Body) float64 {
	rec, ok := w.bodies[b]
	if !ok {
		return 0
	}
	return rec.body.Angle()
}

// ApplyForce applies a force through the body's center of gravity for the
// next step. Forces are cleared by the engine after each step.
func (w *World) ApplyForce(b Body, fx, fy float64) {
	if rec, ok := w.bodies[b]; ok {
		rec.body.ApplyForceAtWorldPoint(cp.Vector{X: fx, Y: fy}, rec.body.Position())
	}
}

// EachDynamic calls fn for every live dynamic body in handle order. Only
// dynamic bodies are ever registered; walls stay outside the handle table.
func (w *World) EachDynamic(fn func(Body)) {
	handles := make([]Body, 0, len(w.bodies))
	for h := range w.bodies {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		fn(h)
	}
}

// Count returns the number of live dynamic bodies.
func (w *World) Count() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds and returns the pairs of
// bodies that began touching during this step, in report order. The slice
// is reused; it is valid until the next Step call.
func (w *World) Step(dt float64) []Contact {
	w.contacts = w.contacts[:0]
	w.space.Step(dt)
	return w.contacts
}
