package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSnapshot_AllListsLoaded(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/catalog/cable-series":
			w.Write([]byte(`[{"_id":"s1","name":"LMR Series","slug":"lmr-series"}]`))
		case "/catalog/cable-types":
			w.Write([]byte(`[{"_id":"t1","name":"LMR 400","slug":"lmr-400","series":"lmr-series","pricePerFoot":1.05}]`))
		case "/catalog/connectors":
			w.Write([]byte(`[{"_id":"c1","name":"N Male","slug":"n-male","pricing":[{"cableTypeSlug":"lmr-400","cableTypeName":"LMR 400","price":6.95}]}]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cms := NewCMSService(server.URL)
	snap, err := cms.FetchSnapshot(context.Background())

	require.NoError(t, err)
	require.False(t, snap.Empty())
	require.Len(t, snap.Series, 1)
	require.Len(t, snap.Types, 1)
	require.Len(t, snap.Connectors, 1)

	assert.Equal(t, "lmr-series", snap.Series[0].Slug)
	assert.Equal(t, 1.05, snap.Types[0].PricePerFoot)
	require.Len(t, snap.Connectors[0].Pricing, 1)
	assert.Equal(t, 6.95, snap.Connectors[0].Pricing[0].Price)
}

func TestFetchSnapshot_PartialOutageDegradesToEmptyList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/catalog/cable-series":
			w.Write([]byte(`[{"_id":"s1","name":"LMR Series","slug":"lmr-series"}]`))
		case "/catalog/cable-types":
			http.Error(w, "upstream timeout", http.StatusBadGateway)
		case "/catalog/connectors":
			w.Write([]byte(`[]`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	cms := NewCMSService(server.URL)
	snap, err := cms.FetchSnapshot(context.Background())

	// Per-list failures degrade, they never propagate
	require.NoError(t, err)
	assert.Len(t, snap.Series, 1)
	assert.Empty(t, snap.Types)
	assert.Empty(t, snap.Connectors)
}

func TestFetchSnapshot_TotalOutageYieldsEmptySnapshot(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cms := NewCMSService(server.URL)
	snap, err := cms.FetchSnapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Empty(), "empty snapshot signals the caller to use the built-in catalog")
}

func TestFetchSnapshot_MalformedJSONDegrades(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"oops": "not an array"`))
	}))
	defer server.Close()

	cms := NewCMSService(server.URL)
	snap, err := cms.FetchSnapshot(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Empty())
}
