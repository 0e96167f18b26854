package game

import (
	"github.com/tomz197/mergefall/internal/physics"
)

// fakeBody is the in-memory body record the fake engine tracks.
type fakeBody struct {
	x, y     float64
	vx, vy   float64
	fx, fy   float64 // accumulated forces, never integrated
	circle   bool
	radius   float64
	rounding float64
}

// fakeEngine implements Engine without any simulation: bodies sit where
// they are put and contacts are whatever the test queues before Step.
type fakeEngine struct {
	bodies map[physics.Body]*fakeBody
	next   physics.Body
	queued []physics.Contact
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{
		bodies: make(map[physics.Body]*fakeBody),
		next:   1,
	}
}

func (e *fakeEngine) add(b *fakeBody) physics.Body {
	h := e.next
	e.next++
	e.bodies[h] = b
	return h
}

func (e *fakeEngine) AddCircle(radius, x, y float64) physics.Body {
	return e.add(&fakeBody{x: x, y: y, circle: true, radius: radius})
}

func (e *fakeEngine) AddRoundedPolygon(verts []physics.Vec, rounding, x, y float64) physics.Body {
	return e.add(&fakeBody{x: x, y: y, rounding: rounding})
}

func (e *fakeEngine) Remove(b physics.Body) {
	delete(e.bodies, b)
}

func (e *fakeEngine) Position(b physics.Body) (float64, float64) {
	if rec, ok := e.bodies[b]; ok {
		return rec.x, rec.y
	}
	return 0, 0
}

func (e *fakeEngine) Velocity(b physics.Body) (float64, float64) {
	if rec, ok := e.bodies[b]; ok {
		return rec.vx, rec.vy
	}
	return 0, 0
}

func (e *fakeEngine) SetVelocity(b physics.Body, vx, vy float64) {
	if rec, ok := e.bodies[b]; ok {
		rec.vx, rec.vy = vx, vy
	}
}

func (e *fakeEngine) ApplyForce(b physics.Body, fx, fy float64) {
	if rec, ok := e.bodies[b]; ok {
		rec.fx += fx
		rec.fy += fy
	}
}

func (e *fakeEngine) EachDynamic(fn func(physics.Body)) {
	handles := make([]physics.Body, 0, len(e.bodies))
	for h := range e.bodies {
		handles = append(handles, h)
	}
	for i := 0; i < len(handles); i++ {
		for j := i + 1; j < len(handles); j++ {
			if handles[j] < handles[i] {
				handles[i], handles[j] = handles[j], handles[i]
			}
		}
	}
	for _, h := range handles {
		fn(h)
	}
}

func (e *fakeEngine) Step(dt float64) []physics.Contact {
	out := e.queued
	e.queued = nil
	return out
}

// queueContact schedules a contact pair for the next Step.
func (e *fakeEngine) queueContact(a, b physics.Body) {
	e.queued = append(e.queued, physics.Contact{A: a, B: b})
}
