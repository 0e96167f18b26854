package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

func newControllerFixture(t *testing.T) (*Controller, *fakeEngine, tagTable) {
	t.Helper()
	engine := newFakeEngine()
	tags := make(tagTable)
	catalog := shape.DefaultCatalog()
	factory := &Factory{engine: engine, catalog: catalog, tags: tags}
	field := physics.Field{Width: 120, Height: 80}
	scheduler := &Scheduler{factory: factory, field: field, rng: rand.New(rand.NewSource(1))}
	c := &Controller{engine: engine, scheduler: scheduler, tags: tags, field: field}
	return c, engine, tags
}

func TestTickSpawnsWhenReleased(t *testing.T) {
	c, engine, _ := newControllerFixture(t)

	_, ok := c.Controlled()
	require.False(t, ok)

	c.Tick()

	b, ok := c.Controlled()
	require.True(t, ok)
	_, y := engine.Position(b)
	assert.Equal(t, -SpawnHeight, y, "spawns above the field top")
}

func TestTickKeepsControlWhileFalling(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	engine.bodies[b].vy = 20 // falling fast

	for i := 0; i < 5; i++ {
		engine.bodies[b].y += 5
		c.Tick()
	}

	cur, ok := c.Controlled()
	require.True(t, ok)
	assert.Equal(t, b, cur, "a falling shape stays controlled")
}

func TestTickReleasesOnSettle(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	// At rest on the floor: slow and vertically stable across two ticks.
	rec := engine.bodies[b]
	rec.y = 70
	rec.vx, rec.vy = 0.1, 0.1

	c.Tick() // samples prevY
	c.Tick() // detects the settle, adopts a fresh spawn

	cur, ok := c.Controlled()
	require.True(t, ok)
	assert.NotEqual(t, b, cur, "control must move to a new spawn")

	_, alive := engine.bodies[b]
	assert.True(t, alive, "the settled shape stays in the field")
}

func TestTickSlowButStillSinkingStaysControlled(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	rec := engine.bodies[b]
	rec.vx, rec.vy = 0.1, 0.1
	rec.y = 50

	c.Tick()
	rec.y = 53 // rounded row moved, not settled
	c.Tick()

	cur, _ := c.Controlled()
	assert.Equal(t, b, cur)
}

func TestTickRemovesExitedShape(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	engine.bodies[b].y = c.field.Height + ExitMargin + 1

	c.Tick()

	_, alive := engine.bodies[b]
	assert.False(t, alive, "an exited shape is destroyed")

	cur, ok := c.Controlled()
	require.True(t, ok)
	assert.NotEqual(t, b, cur)
}

func TestTickRespawnsWhenActiveFusedAway(t *testing.T) {
	c, engine, tags := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	// Simulate a fusion consuming the active shape between ticks.
	tags.remove(b)
	engine.Remove(b)

	c.Tick()

	cur, ok := c.Controlled()
	require.True(t, ok)
	assert.NotEqual(t, b, cur)
}

func TestMoveAppliesLateralForce(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	c.Move(MoveLeft)
	c.Move(MoveRight)
	c.Move(MoveRight)

	assert.Equal(t, LateralForce, engine.bodies[b].fx, "one right press should remain")
	assert.Equal(t, NudgeForce, engine.bodies[b].fy, "no vertical force beyond the spawn nudge")
}

func TestMoveIgnoredWhileReleased(t *testing.T) {
	c, engine, _ := newControllerFixture(t)

	c.Move(MoveLeft) // no active shape yet

	assert.Empty(t, engine.bodies)
}

func TestSettleDetectionResetsOnAdopt(t *testing.T) {
	c, engine, _ := newControllerFixture(t)
	c.Tick()
	b, _ := c.Controlled()

	rec := engine.bodies[b]
	rec.vx, rec.vy = 0, 0
	rec.y = 70
	c.Tick()
	c.Tick() // settles, adopts a fresh spawn

	// The fresh spawn is also slow at first but must not settle on its
	// very next tick; it needs two stable samples of its own.
	next, _ := c.Controlled()
	require.NotEqual(t, b, next)
	c.Tick()
	cur, _ := c.Controlled()
	assert.Equal(t, next, cur)
}
