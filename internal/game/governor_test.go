package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampLimitsHorizontalSpeed(t *testing.T) {
	engine := newFakeEngine()
	g := &Governor{engine: engine, max: 40}

	fast := engine.AddCircle(2, 10, 10)
	engine.SetVelocity(fast, 95, -30)
	negative := engine.AddCircle(2, 20, 10)
	engine.SetVelocity(negative, -60, 12)
	slow := engine.AddCircle(2, 30, 10)
	engine.SetVelocity(slow, 39.5, 80)

	g.Clamp()

	vx, vy := engine.Velocity(fast)
	assert.Equal(t, 40.0, vx)
	assert.Equal(t, -30.0, vy, "vertical speed is untouched")

	vx, vy = engine.Velocity(negative)
	assert.Equal(t, -40.0, vx)
	assert.Equal(t, 12.0, vy)

	vx, vy = engine.Velocity(slow)
	assert.Equal(t, 39.5, vx, "under the cap stays as is")
	assert.Equal(t, 80.0, vy)
}

func TestClampIsIdempotent(t *testing.T) {
	engine := newFakeEngine()
	g := &Governor{engine: engine, max: 40}

	b := engine.AddCircle(2, 10, 10)
	engine.SetVelocity(b, 300, 5)

	g.Clamp()
	g.Clamp()

	vx, vy := engine.Velocity(b)
	assert.Equal(t, 40.0, vx)
	assert.Equal(t, 5.0, vy)
}

func TestClampEmptyWorld(t *testing.T) {
	engine := newFakeEngine()
	g := &Governor{engine: engine, max: 40}
	g.Clamp() // must not panic

	assert.Empty(t, engine.bodies)
}

// The exact cap is not clamped; only strictly faster bodies are.
func TestClampBoundaryExact(t *testing.T) {
	engine := newFakeEngine()
	g := &Governor{engine: engine, max: MaxHorizontalSpeed}

	b := engine.AddCircle(2, 10, 10)
	engine.SetVelocity(b, MaxHorizontalSpeed, 0)

	g.Clamp()

	vx, _ := engine.Velocity(b)
	assert.Equal(t, MaxHorizontalSpeed, vx)
}
