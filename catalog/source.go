package catalog

import (
	"context"

	"coaxdirect/models"
)

// Snapshot is a raw, read-only copy of the catalog as supplied by a source.
// Lists are unordered and may contain duplicates or malformed records;
// BuildLookup is responsible for cleaning them up.
type Snapshot struct {
	Series     []models.CableSeries `json:"series"`
	Types      []models.CableType   `json:"cableTypes"`
	Connectors []models.Connector   `json:"connectors"`
}

// Empty reports whether the snapshot carries no usable catalog data.
// Used to decide when to fall back to the built-in catalog.
func (s Snapshot) Empty() bool {
	return len(s.Series) == 0 && len(s.Types) == 0 && len(s.Connectors) == 0
}

// Source supplies catalog snapshots. The CMS service is the dynamic
// implementation; StaticSource is the offline fallback. The engine is
// reconstructed from a fresh snapshot whenever the source refreshes.
type Source interface {
	FetchSnapshot(ctx context.Context) (Snapshot, error)
}
