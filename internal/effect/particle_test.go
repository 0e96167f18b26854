package effect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBurstAppendsRequestedCount(t *testing.T) {
	ps := Burst(nil, 10, 20, 8, 5, 0.5, 196)
	require.Len(t, ps, 8)

	for _, p := range ps {
		assert.Equal(t, 10.0, p.X)
		assert.Equal(t, 20.0, p.Y)
		assert.Equal(t, uint8(196), p.Color)
		assert.Greater(t, p.Lifetime, 0.0)
		assert.Equal(t, p.Lifetime, p.MaxLifetime)
	}
}

func TestBurstExtendsExistingSlice(t *testing.T) {
	ps := Burst(nil, 0, 0, 3, 5, 0.5, 1)
	ps = Burst(ps, 50, 50, 4, 5, 0.5, 2)
	assert.Len(t, ps, 7)
}

func TestUpdateMovesParticle(t *testing.T) {
	ps := Burst(nil, 0, 0, 1, 10, 5, 1)
	p := ps[0]
	x0, y0 := p.X, p.Y

	expired := p.Update(0.1)

	assert.False(t, expired)
	moved := p.X != x0 || p.Y != y0
	assert.True(t, moved)
}

func TestUpdateExpiresAfterLifetime(t *testing.T) {
	ps := Burst(nil, 0, 0, 1, 10, 0.2, 1)
	p := ps[0]

	assert.True(t, p.Update(1.0), "lifetime exceeded")
}

func TestUpdateAllCompacts(t *testing.T) {
	ps := Burst(nil, 0, 0, 5, 10, 0.2, 1)
	// Lifetimes vary per particle; a full second outlives them all.
	ps = UpdateAll(ps, 1.0)
	assert.Empty(t, ps)

	ps = Burst(ps, 0, 0, 5, 10, 10, 1)
	ps = UpdateAll(ps, 0.01)
	assert.Len(t, ps, 5, "young particles survive")
}
