package loop

import "time"

// Game loop tuning constants.

// Timing
const (
	targetFPS       = 60
	targetFrameTime = time.Second / targetFPS

	// The physics clock runs at a fixed step inside the display loop.
	physicsHz = 120
	physicsDT = 1.0 / physicsHz

	// maxFrameDelta caps how much simulation time one display frame may
	// owe, so a stalled terminal does not trigger a catch-up spiral.
	maxFrameDelta = 0.25
)

// Field dimensions in logical units. Height is in sub-pixels, so the field
// occupies 40 terminal rows at native scale; the canvas keeps the same
// 3:1 cell aspect when it scales.
const (
	fieldWidth  = 120
	fieldHeight = 80
)

// gravityStrength is the downward acceleration in logical units/s^2.
const gravityStrength = 110.0

// Feedback effects
const (
	fuseParticleBase  = 6 // Particles per fusion, plus 2 per tier
	fuseParticleSpeed = 18.0
	fuseParticleLife  = 0.5 // Seconds
	maxSizeParticles  = 28
	maxSizeSpeed      = 32.0
	maxSizeLife       = 0.8
)
