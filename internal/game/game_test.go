package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

func newTestGame(t *testing.T, engine Engine) *Game {
	t.Helper()
	g, err := New(Config{
		Engine:  engine,
		Catalog: shape.DefaultCatalog(),
		Field:   physics.Field{Width: 120, Height: 80},
		Rand:    rand.New(rand.NewSource(1)),
	})
	require.NoError(t, err)
	return g
}

func TestNewRejectsBadConfig(t *testing.T) {
	catalog := shape.DefaultCatalog()
	field := physics.Field{Width: 120, Height: 80}

	_, err := New(Config{Catalog: catalog, Field: field})
	assert.Error(t, err, "nil engine")

	_, err = New(Config{Engine: newFakeEngine(), Field: field})
	assert.Error(t, err, "nil catalog")

	_, err = New(Config{Engine: newFakeEngine(), Catalog: catalog,
		Field: physics.Field{Width: 2 * SideMargin, Height: 80}})
	assert.Error(t, err, "field narrower than the spawn margins")

	_, err = New(Config{Engine: newFakeEngine(), Catalog: catalog,
		Field: physics.Field{Width: 120, Height: 0}})
	assert.Error(t, err, "zero height field")
}

func TestStartSpawnsFirstShape(t *testing.T) {
	engine := newFakeEngine()
	g := newTestGame(t, engine)

	g.Start()

	_, ok := g.Controlled()
	assert.True(t, ok)
	assert.Equal(t, 1, g.Count())
}

func TestStepPhysicsResolvesThenClamps(t *testing.T) {
	engine := newFakeEngine()
	g := newTestGame(t, engine)
	g.Start()

	a := g.factory.Create(shape.KindCircle, 0, 30, 50)
	b := g.factory.Create(shape.KindCircle, 0, 33, 50)
	engine.queueContact(a, b)

	g.StepPhysics(1.0 / 120.0)

	// The pair fused into one tier-1 body; the controlled shape remains.
	assert.Equal(t, 2, g.Count())
	found := false
	g.Each(func(_ physics.Body, tag shape.Tag) {
		if tag.Tier == 1 {
			found = true
		}
	})
	assert.True(t, found, "fusion successor present after the step")
}

func TestStepPhysicsAppliesGovernor(t *testing.T) {
	engine := newFakeEngine()
	g := newTestGame(t, engine)
	g.Start()

	b := g.factory.Create(shape.KindSquare, 0, 30, 50)
	engine.SetVelocity(b, 500, 10)

	g.StepPhysics(1.0 / 120.0)

	vx, vy := engine.Velocity(b)
	assert.Equal(t, MaxHorizontalSpeed, vx, "governor runs every physics step")
	assert.Equal(t, 10.0, vy)
}

func TestEachVisitsInHandleOrder(t *testing.T) {
	engine := newFakeEngine()
	g := newTestGame(t, engine)

	g.factory.Create(shape.KindCircle, 0, 10, 10)
	g.factory.Create(shape.KindSquare, 1, 20, 10)
	g.factory.Create(shape.KindTriangle, 2, 30, 10)

	var seen []physics.Body
	g.Each(func(b physics.Body, _ shape.Tag) {
		seen = append(seen, b)
	})

	require.Len(t, seen, 3)
	assert.Less(t, seen[0], seen[1])
	assert.Less(t, seen[1], seen[2])
}

func TestCountTracksFusions(t *testing.T) {
	engine := newFakeEngine()
	g := newTestGame(t, engine)

	a := g.factory.Create(shape.KindCircle, 0, 30, 50)
	b := g.factory.Create(shape.KindCircle, 0, 33, 50)
	require.Equal(t, 2, g.Count())

	engine.queueContact(a, b)
	g.StepPhysics(1.0 / 120.0)

	assert.Equal(t, 1, g.Count(), "two consumed, one successor")
}
