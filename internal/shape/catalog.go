package shape

import (
	"errors"
	"fmt"
	"sort"
)

// ErrBadCatalog is wrapped by all catalog validation failures.
var ErrBadCatalog = errors.New("invalid tier catalog")

// Catalog maps every shape kind to its ordered size tiers. All kinds carry
// the same tier count so fusion progresses symmetrically; this is validated
// at construction and never changes afterwards.
type Catalog struct {
	kinds []Kind
	tiers map[Kind][]SizeTier
}

// NewCatalog validates the tier table and returns an immutable catalog.
// Every kind must have the same, non-zero number of tiers; sizes must be
// positive and strictly increasing within a kind; rounding must be
// non-negative and smaller than the size it rounds.
func NewCatalog(tiers map[Kind][]SizeTier) (*Catalog, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no kinds", ErrBadCatalog)
	}

	kinds := make([]Kind, 0, len(tiers))
	for k := range tiers {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	n := len(tiers[kinds[0]])
	if n == 0 {
		return nil, fmt.Errorf("%w: kind %s has no tiers", ErrBadCatalog, kinds[0])
	}

	copied := make(map[Kind][]SizeTier, len(tiers))
	for _, k := range kinds {
		ts := tiers[k]
		if len(ts) != n {
			return nil, fmt.Errorf("%w: kind %s has %d tiers, want %d", ErrBadCatalog, k, len(ts), n)
		}
		for i, t := range ts {
			if t.Size <= 0 {
				return nil, fmt.Errorf("%w: kind %s tier %d has non-positive size %g", ErrBadCatalog, k, i, t.Size)
			}
			if t.Rounding < 0 || t.Rounding >= t.Size {
				return nil, fmt.Errorf("%w: kind %s tier %d has rounding %g outside [0, size)", ErrBadCatalog, k, i, t.Rounding)
			}
			if i > 0 && t.Size <= ts[i-1].Size {
				return nil, fmt.Errorf("%w: kind %s tier %d size %g not larger than tier %d", ErrBadCatalog, k, i, t.Size, i-1)
			}
		}
		copied[k] = append([]SizeTier(nil), ts...)
	}

	return &Catalog{kinds: kinds, tiers: copied}, nil
}

// TierCount returns N, the shared number of tiers per kind.
func (c *Catalog) TierCount() int {
	return len(c.tiers[c.kinds[0]])
}

// Kinds returns the kinds in a stable order. The returned slice is shared;
// callers must not modify it.
func (c *Catalog) Kinds() []Kind {
	return c.kinds
}

// TiersOf returns the ordered tier sequence for a kind. The returned slice
// is shared; callers must not modify it.
func (c *Catalog) TiersOf(k Kind) []SizeTier {
	return c.tiers[k]
}

// Tier returns the tier at index i for a kind. Indices are produced only by
// this package's consumers from TierCount, so out-of-range access is a
// programming error and panics like any slice access.
func (c *Catalog) Tier(k Kind, i int) SizeTier {
	return c.tiers[k][i]
}
