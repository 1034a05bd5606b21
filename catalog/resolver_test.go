package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaxdirect/models"
)

func TestBuildLookup_IndexesBySlug(t *testing.T) {
	lookup := BuildLookup(Snapshot{
		Series: []models.CableSeries{
			{ID: "s1", Name: "LMR Series", Slug: "lmr-series"},
		},
		Types: []models.CableType{
			{ID: "t1", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series", PricePerFoot: 1.05},
		},
		Connectors: []models.Connector{
			{ID: "c1", Name: "N Male", Slug: "n-male"},
		},
	})

	require.Contains(t, lookup.SeriesBySlug, "lmr-series")
	require.Contains(t, lookup.TypeBySlug, "lmr-400")
	require.Contains(t, lookup.ConnectorBySlug, "n-male")
	assert.Equal(t, 1.05, lookup.TypeBySlug["lmr-400"].PricePerFoot)
}

func TestBuildLookup_SkipsRecordsWithoutSlug(t *testing.T) {
	lookup := BuildLookup(Snapshot{
		Types: []models.CableType{
			{ID: "t1", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series"},
			{ID: "t2", Name: "Draft Cable", Slug: "", Series: "lmr-series"},
		},
		Connectors: []models.Connector{
			{ID: "c1", Name: "Unnamed Draft", Slug: ""},
		},
	})

	assert.Len(t, lookup.TypeBySlug, 1)
	assert.Empty(t, lookup.ConnectorBySlug)
}

func TestBuildLookup_DuplicateSlugLastWriteWins(t *testing.T) {
	lookup := BuildLookup(Snapshot{
		Types: []models.CableType{
			{ID: "t1", Name: "LMR 400 (old)", Slug: "lmr-400", Series: "lmr-series", PricePerFoot: 0.99},
			{ID: "t2", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series", PricePerFoot: 1.05},
		},
	})

	require.Len(t, lookup.TypeBySlug, 1)
	assert.Equal(t, "t2", lookup.TypeBySlug["lmr-400"].ID)
	assert.Equal(t, 1.05, lookup.TypeBySlug["lmr-400"].PricePerFoot)
}

func TestTypesForSeries_FiltersAndSortsByName(t *testing.T) {
	lookup := BuildLookup(Snapshot{
		Types: []models.CableType{
			{ID: "t1", Name: "LMR 600", Slug: "lmr-600", Series: "lmr-series"},
			{ID: "t2", Name: "LMR 100", Slug: "lmr-100", Series: "lmr-series"},
			{ID: "t3", Name: "RG 58", Slug: "rg-58", Series: "rg-series"},
			{ID: "t4", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series"},
		},
	})

	types := lookup.TypesForSeries("lmr-series")
	require.Len(t, types, 3)
	assert.Equal(t, []string{"LMR 100", "LMR 400", "LMR 600"},
		[]string{types[0].Name, types[1].Name, types[2].Name})
}

func TestTypesForSeries_UnknownSeries(t *testing.T) {
	lookup := BuildLookup(StaticSnapshot())
	assert.Empty(t, lookup.TypesForSeries("heliax-series"))
}

func TestTypesForSeries_RawCodepointOrder(t *testing.T) {
	// Sorting is plain byte comparison, not numeric or locale-aware:
	// "LMR 1000" sorts before "LMR 400" because '1' < '4'.
	lookup := BuildLookup(Snapshot{
		Types: []models.CableType{
			{ID: "t1", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series"},
			{ID: "t2", Name: "LMR 1000", Slug: "lmr-1000", Series: "lmr-series"},
		},
	})

	types := lookup.TypesForSeries("lmr-series")
	require.Len(t, types, 2)
	assert.Equal(t, "LMR 1000", types[0].Name)
	assert.Equal(t, "LMR 400", types[1].Name)
}

func TestConnectors_SortedByName(t *testing.T) {
	lookup := BuildLookup(StaticSnapshot())

	connectors := lookup.Connectors()
	require.NotEmpty(t, connectors)
	assert.True(t, sort.SliceIsSorted(connectors, func(i, j int) bool {
		return connectors[i].Name < connectors[j].Name
	}))
}

func TestSeries_SortedByName(t *testing.T) {
	lookup := BuildLookup(StaticSnapshot())

	series := lookup.Series()
	require.Len(t, series, 2)
	assert.Equal(t, "LMR Series", series[0].Name)
	assert.Equal(t, "RG Series", series[1].Name)
}
