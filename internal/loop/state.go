package loop

import (
	"time"

	"github.com/tomz197/mergefall/internal/effect"
	"github.com/tomz197/mergefall/internal/game"
	"github.com/tomz197/mergefall/internal/input"
	"github.com/tomz197/mergefall/internal/physics"
)

// State holds everything one game session owns: the logic layer, its
// physics world, render-side particles, and loop bookkeeping. All of it is
// touched only from the session's goroutine.
type State struct {
	Game  *game.Game
	World *physics.World

	Input     input.Input
	Particles []*effect.Particle

	Running bool
	Delta   time.Duration

	// accumulator carries simulation time owed to the fixed-step physics
	// clock across display frames.
	accumulator float64

	// lastTermW/H detect terminal resizes so the screen can be wiped once
	// instead of leaving stale cells outside the new canvas area.
	lastTermW int
	lastTermH int
}

// NewState creates a running state with no game attached yet.
func NewState() *State {
	return &State{Running: true}
}
