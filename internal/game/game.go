package game

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

// Config wires a Game to its collaborators.
type Config struct {
	Engine  Engine
	Catalog *shape.Catalog
	Field   physics.Field

	// Rand drives spawn randomness. Nil means a time-seeded source.
	Rand *rand.Rand

	// OnFuse fires after two shapes fused into tier `tier` at (x, y).
	OnFuse func(kind shape.Kind, tier int, x, y float64)

	// OnMaxSize fires after a max-tier pair annihilated at (x, y).
	OnMaxSize func(kind shape.Kind, x, y float64)
}

// Game is the logic layer above the physics engine. The engine's physics
// clock drives StepPhysics, the display clock drives Tick; both run on the
// same goroutine and never block.
type Game struct {
	engine Engine
	tags   tagTable

	catalog    *shape.Catalog
	factory    *Factory
	resolver   *Resolver
	governor   *Governor
	scheduler  *Scheduler
	controller *Controller
}

// New validates the configuration and assembles a game. Catalog problems
// are configuration errors and must abort startup; they surface here,
// before any spawn.
func New(cfg Config) (*Game, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("game: nil engine")
	}
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("game: nil catalog")
	}
	if cfg.Field.Width <= 2*SideMargin || cfg.Field.Height <= 0 {
		return nil, fmt.Errorf("game: field %gx%g too small", cfg.Field.Width, cfg.Field.Height)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	tags := make(tagTable)
	factory := &Factory{engine: cfg.Engine, catalog: cfg.Catalog, tags: tags}
	scheduler := &Scheduler{factory: factory, field: cfg.Field, rng: rng}

	g := &Game{
		engine:  cfg.Engine,
		tags:    tags,
		catalog: cfg.Catalog,
		factory: factory,
		resolver: &Resolver{
			engine:    cfg.Engine,
			factory:   factory,
			tags:      tags,
			tierCount: cfg.Catalog.TierCount(),
			onFuse:    cfg.OnFuse,
			onMaxSize: cfg.OnMaxSize,
			destroyed: make(map[physics.Body]struct{}),
		},
		governor:  &Governor{engine: cfg.Engine, max: MaxHorizontalSpeed},
		scheduler: scheduler,
		controller: &Controller{
			engine:    cfg.Engine,
			scheduler: scheduler,
			tags:      tags,
			field:     cfg.Field,
		},
	}
	return g, nil
}

// Start performs the initial spawn, moving the controller from Released to
// Controlled.
func (g *Game) Start() {
	g.controller.Tick()
}

// StepPhysics runs one physics step: advance the engine, resolve the
// step's collision batch, then clamp horizontal velocities. The fusion
// pass always runs before the governor pass.
func (g *Game) StepPhysics(dt float64) {
	contacts := g.engine.Step(dt)
	g.resolver.Resolve(contacts)
	g.governor.Clamp()
}

// Tick runs one display-tick check of the active-shape state machine.
func (g *Game) Tick() {
	g.controller.Tick()
}

// Move forwards a lateral input to the controller.
func (g *Game) Move(d Direction) {
	g.controller.Move(d)
}

// Controlled reports the currently controlled shape, if any.
func (g *Game) Controlled() (physics.Body, bool) {
	return g.controller.Controlled()
}

// Catalog returns the tier catalog the game was built with.
func (g *Game) Catalog() *shape.Catalog {
	return g.catalog
}

// Count returns the number of live shape instances.
func (g *Game) Count() int {
	return len(g.tags)
}

// Each calls fn for every live shape instance in stable handle order.
func (g *Game) Each(fn func(b physics.Body, tag shape.Tag)) {
	handles := make([]physics.Body, 0, len(g.tags))
	for h := range g.tags {
		handles = append(handles, h)
	}
	sort.Slice(handles, func(i, j int) bool { return handles[i] < handles[j] })
	for _, h := range handles {
		fn(h, g.tags[h])
	}
}
