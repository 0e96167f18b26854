package game

import (
	"github.com/tomz197/mergefall/internal/physics"
	"github.com/tomz197/mergefall/internal/shape"
)

// Resolver consumes the per-step collision feed and fuses matching pairs.
type Resolver struct {
	engine    Engine
	factory   *Factory
	tags      tagTable
	tierCount int

	onFuse    func(kind shape.Kind, tier int, x, y float64)
	onMaxSize func(kind shape.Kind, x, y float64)

	// destroyed marks handles consumed earlier in the current batch so a
	// body touching several partners in one step fuses at most once. The
	// map is reused across batches.
	destroyed map[physics.Body]struct{}
}

// Resolve processes one step's collision pairs in report order. Pairs with
// untagged bodies are ordinary physical contacts and are skipped; pairs
// referencing a body already destroyed this batch are skipped; pairs with
// equal tags fuse into the next tier, or annihilate at the max tier.
func (r *Resolver) Resolve(contacts []physics.Contact) {
	if len(contacts) == 0 {
		return
	}
	clear(r.destroyed)

	for _, c := range contacts {
		ta, okA := r.tags.lookup(c.A)
		tb, okB := r.tags.lookup(c.B)
		if !okA || !okB {
			continue
		}
		if _, dead := r.destroyed[c.A]; dead {
			continue
		}
		if _, dead := r.destroyed[c.B]; dead {
			continue
		}
		if ta != tb {
			continue
		}

		// Successor appears at the first-reported body's position.
		x, y := r.engine.Position(c.A)
		r.destroy(c.A)
		r.destroy(c.B)

		if ta.Tier+1 < r.tierCount {
			r.factory.Create(ta.Kind, ta.Tier+1, x, y)
			if r.onFuse != nil {
				r.onFuse(ta.Kind, ta.Tier+1, x, y)
			}
		} else if r.onMaxSize != nil {
			r.onMaxSize(ta.Kind, x, y)
		}
	}
}

func (r *Resolver) destroy(b physics.Body) {
	r.destroyed[b] = struct{}{}
	r.tags.remove(b)
	r.engine.Remove(b)
}
