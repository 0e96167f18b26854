// Package effect provides short-lived render-side visuals. Particles are
// purely cosmetic: they live on the display tick, never touch the physics
// world, and are spawned in response to fuse and max-size signals.
package effect

import (
	"math"
	"math/rand"
	"sync"

	"github.com/tomz197/mergefall/internal/draw"
)

// particlePool reuses Particle objects to keep bursts allocation-free.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a single flying pixel with a lifetime.
type Particle struct {
	X, Y        float64
	VX, VY      float64
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime, for fade-out
	Drag        float64 // Velocity decay per normalized frame
	Color       uint8
}

// Burst appends count particles radiating from (x, y) to dst and returns
// the extended slice.
func Burst(dst []*Particle, x, y float64, count int, speed, lifetime float64, color uint8) []*Particle {
	for i := 0; i < count; i++ {
		angle := rand.Float64() * 2 * math.Pi
		spd := speed * (0.5 + rand.Float64())
		life := lifetime * (0.5 + rand.Float64()*0.5)

		p := particlePool.Get().(*Particle)
		p.X = x
		p.Y = y
		p.VX = math.Cos(angle) * spd
		p.VY = math.Sin(angle) * spd
		p.Lifetime = life
		p.MaxLifetime = life
		p.Drag = 0.93
		p.Color = color
		dst = append(dst, p)
	}
	return dst
}

// Update advances the particle by dt seconds; it reports true when the
// particle has expired and was returned to the pool.
func (p *Particle) Update(dt float64) bool {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		particlePool.Put(p)
		return true
	}

	dragFactor := math.Pow(p.Drag, dt*60)
	p.VX *= dragFactor
	p.VY *= dragFactor
	p.X += p.VX * dt
	p.Y += p.VY * dt
	return false
}

// Draw renders the particle as a single pixel; the last quarter of its
// life is skipped so bursts fade instead of popping out.
func (p *Particle) Draw(c *draw.Canvas) {
	if p.MaxLifetime > 0 && p.Lifetime/p.MaxLifetime < 0.25 {
		return
	}
	c.SetFloat(p.X, p.Y, p.Color)
}

// UpdateAll advances every particle and compacts the slice in place.
func UpdateAll(particles []*Particle, dt float64) []*Particle {
	kept := particles[:0]
	for _, p := range particles {
		if !p.Update(dt) {
			kept = append(kept, p)
		}
	}
	return kept
}
