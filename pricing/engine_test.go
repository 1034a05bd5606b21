package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaxdirect/catalog"
	"coaxdirect/models"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	lookup := catalog.BuildLookup(catalog.StaticSnapshot())
	return NewEngine(lookup)
}

func TestCalculateUnitPrice_LMR400Assembly(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-400",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    50,
		Quantity:        1,
	}

	// (6.95 + 1.05*50 + 4.95) * 1.35 = 86.94
	unitPrice := engine.CalculateUnitPrice(config)
	assert.InDelta(t, 86.94, unitPrice, 0.001)
}

func TestCalculateUnitPrice_IncreasesWithLength(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-240",
		Connector1Slug:  "bnc-male",
		Connector2Slug:  "bnc-male",
		LengthInFeet:    10,
	}

	prev := engine.CalculateUnitPrice(config)
	for _, length := range []int{25, 50, 100, 500} {
		config.LengthInFeet = length
		price := engine.CalculateUnitPrice(config)
		assert.Greater(t, price, prev, "price should grow with length (%d ft)", length)
		prev = price
	}
}

func TestCalculateUnitPrice_UnknownCableType(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-9000",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    50,
	}

	assert.Equal(t, 0.0, engine.CalculateUnitPrice(config))
}

func TestCalculateUnitPrice_NonPositiveLength(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-400",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
	}

	config.LengthInFeet = 0
	assert.Equal(t, 0.0, engine.CalculateUnitPrice(config))

	config.LengthInFeet = -25
	assert.Equal(t, 0.0, engine.CalculateUnitPrice(config))
}

func TestCalculateUnitPrice_MissingPricingEntryContributesZero(t *testing.T) {
	engine := testEngine(t)

	// UHF has no pricing for lmr-100; the connector contributes 0 and the
	// cable still prices out, per the soft-failure policy.
	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-100",
		Connector1Slug:  "uhf-male",
		Connector2Slug:  "uhf-male",
		LengthInFeet:    20,
	}

	// (0 + 0.45*20 + 0) * 1.35 = 12.15
	assert.InDelta(t, 12.15, engine.CalculateUnitPrice(config), 0.001)
}

func TestCalculateUnitPrice_QuantityDoesNotAffectUnitPrice(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-400",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    50,
		Quantity:        1,
	}
	single := engine.CalculateUnitPrice(config)

	config.Quantity = 7
	assert.Equal(t, single, engine.CalculateUnitPrice(config))
}

func TestResolveConnectorPrice_TableValue(t *testing.T) {
	engine := testEngine(t)

	assert.Equal(t, 6.95, engine.ResolveConnectorPrice("n-male", "lmr-400"))
	assert.Equal(t, 4.95, engine.ResolveConnectorPrice("sma-male", "lmr-400"))
}

func TestResolveConnectorPrice_MissingConnector(t *testing.T) {
	engine := testEngine(t)

	assert.Equal(t, 0.0, engine.ResolveConnectorPrice("mystery-connector", "lmr-400"))
}

func TestResolveConnectorPrice_MissingPricingEntry(t *testing.T) {
	engine := testEngine(t)

	// uhf-male exists but has no lmr-195 row
	assert.Equal(t, 0.0, engine.ResolveConnectorPrice("uhf-male", "lmr-195"))
}

func TestCalculateUnitPrice_RoundedToTwoDecimals(t *testing.T) {
	engine := testEngine(t)

	config := &models.Configuration{
		CableSeriesSlug: "rg-series",
		CableTypeSlug:   "rg-58",
		Connector1Slug:  "bnc-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    13,
	}

	// (3.95 + 0.39*13 + 3.45) * 1.35 = 16.8345 -> 16.83
	price := engine.CalculateUnitPrice(config)
	require.InDelta(t, 16.83, price, 0.0001)
	assert.Equal(t, price, float64(int(price*100+0.5))/100, "price should carry at most 2 decimals")
}
