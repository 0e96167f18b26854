package game

import (
	"math/rand"

	"github.com/tomz197/mergefall/internal/physics"
)

// Scheduler decides what falls next: a uniformly random kind at a uniformly
// random horizontal position, always at tier zero, a fixed height above the
// visible field top. The random source is injectable so scenario tests can
// seed it.
type Scheduler struct {
	factory *Factory
	field   physics.Field
	rng     *rand.Rand
}

// Spawn creates the next falling shape and returns its handle.
func (s *Scheduler) Spawn() physics.Body {
	kinds := s.factory.catalog.Kinds()
	kind := kinds[s.rng.Intn(len(kinds))]

	span := s.field.Width - 2*SideMargin
	x := SideMargin + s.rng.Float64()*span

	return s.factory.Create(kind, 0, x, -SpawnHeight)
}
