package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticSnapshot_BuildsCleanLookup(t *testing.T) {
	snap := StaticSnapshot()
	require.False(t, snap.Empty())

	lookup := BuildLookup(snap)

	// Nothing in the built-in catalog should be dropped by the resolver
	assert.Len(t, lookup.SeriesBySlug, len(snap.Series))
	assert.Len(t, lookup.TypeBySlug, len(snap.Types))
	assert.Len(t, lookup.ConnectorBySlug, len(snap.Connectors))
}

func TestStaticSnapshot_EveryTypeBelongsToAKnownSeries(t *testing.T) {
	snap := StaticSnapshot()
	lookup := BuildLookup(snap)

	for _, ct := range snap.Types {
		assert.Contains(t, lookup.SeriesBySlug, ct.Series, "cable type %s references unknown series", ct.Slug)
		assert.Greater(t, ct.PricePerFoot, 0.0, "cable type %s has no price per foot", ct.Slug)
	}
}

func TestStaticSnapshot_PricingReferencesKnownTypes(t *testing.T) {
	snap := StaticSnapshot()
	lookup := BuildLookup(snap)

	for _, conn := range snap.Connectors {
		seen := make(map[string]bool)
		for _, entry := range conn.Pricing {
			assert.Contains(t, lookup.TypeBySlug, entry.CableTypeSlug,
				"connector %s prices unknown cable type %s", conn.Slug, entry.CableTypeSlug)
			assert.False(t, seen[entry.CableTypeSlug],
				"connector %s has duplicate pricing for %s", conn.Slug, entry.CableTypeSlug)
			seen[entry.CableTypeSlug] = true
			assert.Greater(t, entry.Price, 0.0)
		}
	}
}

func TestStaticSnapshot_CorePricebookValues(t *testing.T) {
	lookup := BuildLookup(StaticSnapshot())

	assert.Equal(t, 1.05, lookup.TypeBySlug["lmr-400"].PricePerFoot)

	var nMaleLMR400, smaMaleLMR400 float64
	for _, entry := range lookup.ConnectorBySlug["n-male"].Pricing {
		if entry.CableTypeSlug == "lmr-400" {
			nMaleLMR400 = entry.Price
		}
	}
	for _, entry := range lookup.ConnectorBySlug["sma-male"].Pricing {
		if entry.CableTypeSlug == "lmr-400" {
			smaMaleLMR400 = entry.Price
		}
	}
	assert.Equal(t, 6.95, nMaleLMR400)
	assert.Equal(t, 4.95, smaMaleLMR400)
}

func TestStaticSource_FetchSnapshot(t *testing.T) {
	source := NewStaticSource()

	snap, err := source.FetchSnapshot(context.Background())
	require.NoError(t, err)
	assert.False(t, snap.Empty())
}
