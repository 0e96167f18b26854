package game

import (
	"math"

	"github.com/tomz197/mergefall/internal/physics"
)

// Direction is a lateral input direction.
type Direction int

const (
	MoveLeft  Direction = -1
	MoveRight Direction = 1
)

// Controller owns the single currently controlled shape and its
// settle-or-exit state machine. It is either Controlled (active holds a
// live handle) or Released (no active shape; the next Tick spawns one).
//
// There is no maximum-wait fallback: a shape that never settles and never
// exits stays controlled.
type Controller struct {
	engine    Engine
	scheduler *Scheduler
	tags      tagTable
	field     physics.Field

	active     physics.Body
	controlled bool

	// prevY is the vertical position sampled on the previous tick, used
	// for settle detection. Valid only when hasPrev is set.
	prevY   float64
	hasPrev bool
}

// Controlled reports the active handle, if any.
func (c *Controller) Controlled() (physics.Body, bool) {
	return c.active, c.controlled
}

// Tick runs one display-tick check of the state machine.
func (c *Controller) Tick() {
	if !c.controlled {
		c.adopt(c.scheduler.Spawn())
		return
	}

	// The active shape can be consumed by a fusion between ticks; its
	// handle then disappears from the tag table.
	if _, ok := c.tags.lookup(c.active); !ok {
		c.adopt(c.scheduler.Spawn())
		return
	}

	_, y := c.engine.Position(c.active)

	// Fell past the floor: destroy and replace.
	if y > c.field.Height+ExitMargin {
		c.tags.remove(c.active)
		c.engine.Remove(c.active)
		c.adopt(c.scheduler.Spawn())
		return
	}

	// Settled: resting speed and a stable rounded row across two ticks.
	// The shape itself stays in the field; only control moves on.
	vx, vy := c.engine.Velocity(c.active)
	if math.Hypot(vx, vy) < RestSpeed && c.hasPrev && math.Round(y) == math.Round(c.prevY) {
		c.adopt(c.scheduler.Spawn())
		return
	}

	c.prevY = y
	c.hasPrev = true
}

// Move applies the fixed lateral force to the controlled shape. Input while
// Released has no effect.
func (c *Controller) Move(d Direction) {
	if !c.controlled {
		return
	}
	c.engine.ApplyForce(c.active, float64(d)*LateralForce, 0)
}

func (c *Controller) adopt(b physics.Body) {
	c.active = b
	c.controlled = true
	c.hasPrev = false
}
