package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTiers() map[Kind][]SizeTier {
	return map[Kind][]SizeTier{
		KindCircle: {{Size: 2}, {Size: 4}, {Size: 8}},
		KindSquare: {{Size: 2, Rounding: 0.5}, {Size: 4, Rounding: 1}, {Size: 8, Rounding: 2}},
	}
}

func TestNewCatalogAcceptsValidTable(t *testing.T) {
	c, err := NewCatalog(validTiers())
	require.NoError(t, err)

	assert.Equal(t, 3, c.TierCount())
	assert.Equal(t, []Kind{KindCircle, KindSquare}, c.Kinds())
	assert.Equal(t, 4.0, c.Tier(KindCircle, 1).Size)
}

func TestNewCatalogRejectsBadTables(t *testing.T) {
	cases := []struct {
		name  string
		tiers map[Kind][]SizeTier
	}{
		{"empty", map[Kind][]SizeTier{}},
		{"no tiers", map[Kind][]SizeTier{KindCircle: {}}},
		{"mismatched counts", map[Kind][]SizeTier{
			KindCircle: {{Size: 2}, {Size: 4}},
			KindSquare: {{Size: 2}},
		}},
		{"zero size", map[Kind][]SizeTier{KindCircle: {{Size: 0}}}},
		{"negative size", map[Kind][]SizeTier{KindCircle: {{Size: -3}}}},
		{"non-increasing sizes", map[Kind][]SizeTier{
			KindCircle: {{Size: 4}, {Size: 4}},
		}},
		{"shrinking sizes", map[Kind][]SizeTier{
			KindCircle: {{Size: 4}, {Size: 2}},
		}},
		{"negative rounding", map[Kind][]SizeTier{
			KindCircle: {{Size: 4, Rounding: -1}},
		}},
		{"rounding not below size", map[Kind][]SizeTier{
			KindCircle: {{Size: 4, Rounding: 4}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.tiers)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadCatalog)
		})
	}
}

func TestNewCatalogCopiesInput(t *testing.T) {
	tiers := validTiers()
	c, err := NewCatalog(tiers)
	require.NoError(t, err)

	tiers[KindCircle][0].Size = 999

	assert.Equal(t, 2.0, c.Tier(KindCircle, 0).Size, "catalog must not alias caller data")
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()

	assert.Equal(t, []Kind{KindCircle, KindSquare, KindTriangle}, c.Kinds())
	assert.Equal(t, 7, c.TierCount())

	for _, k := range c.Kinds() {
		ts := c.TiersOf(k)
		require.Len(t, ts, c.TierCount())
		for i, st := range ts {
			if i > 0 {
				assert.Greater(t, st.Size, ts[i-1].Size, "%s tier %d", k, i)
			}
			// Colors come from the 6x6x6 ANSI cube.
			assert.GreaterOrEqual(t, st.Color, uint8(16))
			assert.LessOrEqual(t, st.Color, uint8(231))
			if k == KindCircle {
				assert.Zero(t, st.Rounding, "circles have no corners to round")
			} else {
				assert.Greater(t, st.Rounding, 0.0)
				assert.Less(t, st.Rounding, st.Size)
			}
		}
	}
}

func TestDefaultCatalogColorsSpreadAcrossTiers(t *testing.T) {
	c := DefaultCatalog()
	for _, k := range c.Kinds() {
		ts := c.TiersOf(k)
		assert.NotEqual(t, ts[0].Color, ts[len(ts)-1].Color,
			"%s smallest and largest tier share a color", k)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "circle", KindCircle.String())
	assert.Equal(t, "square", KindSquare.String())
	assert.Equal(t, "triangle", KindTriangle.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
