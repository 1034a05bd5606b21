package catalog

import (
	"context"

	"coaxdirect/models"
)

// Built-in catalog used when the CMS is unreachable or not configured.
// Same shape as the CMS payload so the resolver and engine run a single code
// path regardless of where the snapshot came from. Prices here must be kept
// in sync with the CMS pricebook by the ops team.
var staticSnapshot = Snapshot{
	Series: []models.CableSeries{
		{ID: "series-lmr", Name: "LMR Series", Slug: "lmr-series"},
		{ID: "series-rg", Name: "RG Series", Slug: "rg-series"},
	},
	Types: []models.CableType{
		{ID: "type-lmr-100", Name: "LMR 100", Slug: "lmr-100", Series: "lmr-series", PricePerFoot: 0.45},
		{ID: "type-lmr-195", Name: "LMR 195", Slug: "lmr-195", Series: "lmr-series", PricePerFoot: 0.52},
		{ID: "type-lmr-240", Name: "LMR 240", Slug: "lmr-240", Series: "lmr-series", PricePerFoot: 0.68},
		{ID: "type-lmr-400", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series", PricePerFoot: 1.05},
		{ID: "type-lmr-600", Name: "LMR 600", Slug: "lmr-600", Series: "lmr-series", PricePerFoot: 1.95},
		{ID: "type-rg-58", Name: "RG 58", Slug: "rg-58", Series: "rg-series", PricePerFoot: 0.39},
		{ID: "type-rg-8x", Name: "RG 8X", Slug: "rg-8x", Series: "rg-series", PricePerFoot: 0.55},
		{ID: "type-rg-213", Name: "RG 213", Slug: "rg-213", Series: "rg-series", PricePerFoot: 0.89},
	},
	Connectors: []models.Connector{
		{
			ID: "conn-n-male", Name: "N Male", Slug: "n-male",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-100", CableTypeName: "LMR 100", Price: 5.45},
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 5.45},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 5.95},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 6.95},
				{CableTypeSlug: "lmr-600", CableTypeName: "LMR 600", Price: 9.95},
				{CableTypeSlug: "rg-58", CableTypeName: "RG 58", Price: 4.95},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 4.95},
				{CableTypeSlug: "rg-213", CableTypeName: "RG 213", Price: 6.45},
			},
		},
		{
			ID: "conn-n-female", Name: "N Female", Slug: "n-female",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 5.95},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 6.45},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 7.45},
				{CableTypeSlug: "lmr-600", CableTypeName: "LMR 600", Price: 10.95},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 5.45},
				{CableTypeSlug: "rg-213", CableTypeName: "RG 213", Price: 6.95},
			},
		},
		{
			ID: "conn-sma-male", Name: "SMA Male", Slug: "sma-male",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-100", CableTypeName: "LMR 100", Price: 3.95},
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 3.95},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 4.45},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 4.95},
				{CableTypeSlug: "rg-58", CableTypeName: "RG 58", Price: 3.45},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 3.95},
			},
		},
		{
			ID: "conn-sma-female", Name: "SMA Female", Slug: "sma-female",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-100", CableTypeName: "LMR 100", Price: 4.45},
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 4.45},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 4.95},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 5.45},
				{CableTypeSlug: "rg-58", CableTypeName: "RG 58", Price: 3.95},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 4.45},
			},
		},
		{
			ID: "conn-bnc-male", Name: "BNC Male", Slug: "bnc-male",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-100", CableTypeName: "LMR 100", Price: 4.45},
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 4.45},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 4.95},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 5.95},
				{CableTypeSlug: "rg-58", CableTypeName: "RG 58", Price: 3.95},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 4.45},
				{CableTypeSlug: "rg-213", CableTypeName: "RG 213", Price: 5.45},
			},
		},
		{
			// UHF isn't terminated onto the thin LMR cables; those entries are
			// intentionally absent and resolve to a zero connector price.
			ID: "conn-uhf-male", Name: "UHF Male (PL-259)", Slug: "uhf-male",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 4.45},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 4.95},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 3.95},
				{CableTypeSlug: "rg-213", CableTypeName: "RG 213", Price: 4.45},
			},
		},
		{
			ID: "conn-tnc-male", Name: "TNC Male", Slug: "tnc-male",
			Pricing: []models.ConnectorPrice{
				{CableTypeSlug: "lmr-195", CableTypeName: "LMR 195", Price: 5.45},
				{CableTypeSlug: "lmr-240", CableTypeName: "LMR 240", Price: 5.95},
				{CableTypeSlug: "lmr-400", CableTypeName: "LMR 400", Price: 6.45},
				{CableTypeSlug: "rg-8x", CableTypeName: "RG 8X", Price: 4.95},
			},
		},
	},
}

// StaticSnapshot returns a copy of the built-in catalog.
func StaticSnapshot() Snapshot {
	return staticSnapshot
}

// StaticSource is the offline Source implementation backed by the built-in
// catalog. Used when CMS_API_URL is not configured or the CMS fetch comes
// back empty.
type StaticSource struct{}

// NewStaticSource creates a new StaticSource
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Ensure StaticSource implements Source
var _ Source = (*StaticSource)(nil)

// FetchSnapshot returns the built-in catalog. Never fails.
func (s *StaticSource) FetchSnapshot(_ context.Context) (Snapshot, error) {
	return StaticSnapshot(), nil
}
