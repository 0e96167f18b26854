package shape

// Shipped catalog geometry. Sizes are in logical field units (the play
// field is 120 wide); seven tiers per kind, growing roughly 40% per step.
const defaultTierCount = 7

var defaultSizes = [defaultTierCount]float64{2.4, 3.4, 4.8, 6.6, 9.0, 12.2, 16.0}

var defaultHues = map[Kind]float64{
	KindCircle:   10,  // reds into orange
	KindSquare:   210, // blues into cyan
	KindTriangle: 120, // greens into yellow-green
}

// DefaultCatalog returns the catalog the game ships with. The table is
// built from constants that always validate, so failure is a programming
// error rather than a runtime condition.
func DefaultCatalog() *Catalog {
	tiers := make(map[Kind][]SizeTier, len(defaultHues))
	for kind, hue := range defaultHues {
		ts := make([]SizeTier, defaultTierCount)
		for i, size := range defaultSizes {
			rounding := 0.0
			if kind != KindCircle {
				rounding = size * 0.25
			}
			ts[i] = SizeTier{
				Size:     size,
				Rounding: rounding,
				Color:    tierColor(hue, i, defaultTierCount),
			}
		}
		tiers[kind] = ts
	}

	c, err := NewCatalog(tiers)
	if err != nil {
		panic(err)
	}
	return c
}
