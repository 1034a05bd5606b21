package catalog

import (
	"log"
	"sort"

	"coaxdirect/models"
)

// Lookup holds the slug-keyed views of one catalog snapshot.
// Read-only after construction; safe to share across requests. A refreshed
// catalog produces a new Lookup rather than mutating an existing one.
type Lookup struct {
	SeriesBySlug    map[string]models.CableSeries
	TypeBySlug      map[string]models.CableType
	ConnectorBySlug map[string]models.Connector

	types      []models.CableType
	connectors []models.Connector
}

// BuildLookup transforms a raw snapshot into O(1) slug lookups.
// Records without a slug are skipped with a warning instead of failing the
// whole build. Duplicate slugs are an upstream error; last write wins.
func BuildLookup(snap Snapshot) *Lookup {
	l := &Lookup{
		SeriesBySlug:    make(map[string]models.CableSeries, len(snap.Series)),
		TypeBySlug:      make(map[string]models.CableType, len(snap.Types)),
		ConnectorBySlug: make(map[string]models.Connector, len(snap.Connectors)),
	}

	for _, s := range snap.Series {
		if s.Slug == "" {
			log.Printf("⚠️  BuildLookup: skipping cable series %q (missing slug)", s.Name)
			continue
		}
		l.SeriesBySlug[s.Slug] = s
	}

	for _, t := range snap.Types {
		if t.Slug == "" {
			log.Printf("⚠️  BuildLookup: skipping cable type %q (missing slug)", t.Name)
			continue
		}
		l.TypeBySlug[t.Slug] = t
	}

	for _, c := range snap.Connectors {
		if c.Slug == "" {
			log.Printf("⚠️  BuildLookup: skipping connector %q (missing slug)", c.Name)
			continue
		}
		l.ConnectorBySlug[c.Slug] = c
	}

	// Keep deduplicated slices around for the sorted views
	l.types = make([]models.CableType, 0, len(l.TypeBySlug))
	for _, t := range l.TypeBySlug {
		l.types = append(l.types, t)
	}
	l.connectors = make([]models.Connector, 0, len(l.ConnectorBySlug))
	for _, c := range l.ConnectorBySlug {
		l.connectors = append(l.connectors, c)
	}

	log.Printf("✅ BuildLookup: catalog ready (%d series, %d cable types, %d connectors)",
		len(l.SeriesBySlug), len(l.TypeBySlug), len(l.ConnectorBySlug))
	return l
}

// TypesForSeries returns the cable types belonging to a series, sorted by
// name ascending. Raw codepoint order, not locale-aware; the storefront UI
// depends on this exact ordering.
func (l *Lookup) TypesForSeries(seriesSlug string) []models.CableType {
	var out []models.CableType
	for _, t := range l.types {
		if t.Series == seriesSlug {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Connectors returns every connector sorted by name ascending.
func (l *Lookup) Connectors() []models.Connector {
	out := make([]models.Connector, len(l.connectors))
	copy(out, l.connectors)
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// Series returns every cable series sorted by name ascending.
func (l *Lookup) Series() []models.CableSeries {
	out := make([]models.CableSeries, 0, len(l.SeriesBySlug))
	for _, s := range l.SeriesBySlug {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}
