package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coaxdirect/models"
)

var (
	testCableType = models.CableType{
		ID: "t1", Name: "LMR 400", Slug: "lmr-400", Series: "lmr-series",
		PricePerFoot: 1.05, Image: "/catalog-assets/lmr-400/image",
	}
	testConnector1 = models.Connector{ID: "c1", Name: "N Male", Slug: "n-male"}
	testConnector2 = models.Connector{ID: "c2", Name: "SMA Male", Slug: "sma-male"}
)

func testConfig() models.Configuration {
	return models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-400",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    50,
		Quantity:        2,
	}
}

func TestBuild_LineItemFields(t *testing.T) {
	config := testConfig()
	item := Build(&config, testCableType, testConnector1, testConnector2, 86.94)

	assert.Equal(t, "Custom Cable: N Male to SMA Male, 50 ft LMR 400", item.Name)
	assert.Equal(t, int64(8694), item.Price)
	assert.Equal(t, "usd", item.Currency)
	assert.Equal(t, "/catalog-assets/lmr-400/image", item.Image)
	assert.Equal(t, 2, item.Quantity)
}

func TestBuild_Metadata(t *testing.T) {
	config := testConfig()
	item := Build(&config, testCableType, testConnector1, testConnector2, 86.94)

	require.NotNil(t, item.Metadata)
	assert.Equal(t, true, item.Metadata["isCustom"])
	assert.Equal(t, "lmr-series", item.Metadata["cableSeriesSlug"])
	assert.Equal(t, "lmr-400", item.Metadata["cableTypeSlug"])
	assert.Equal(t, "LMR 400", item.Metadata["cableTypeName"])
	assert.Equal(t, "n-male", item.Metadata["connector1Slug"])
	assert.Equal(t, "N Male", item.Metadata["connector1Name"])
	assert.Equal(t, "sma-male", item.Metadata["connector2Slug"])
	assert.Equal(t, "SMA Male", item.Metadata["connector2Name"])
	assert.Equal(t, 50, item.Metadata["lengthInFeet"])
}

func TestBuild_DistinctIDsForIdenticalConfigurations(t *testing.T) {
	config := testConfig()

	a := Build(&config, testCableType, testConnector1, testConnector2, 86.94)
	b := Build(&config, testCableType, testConnector1, testConnector2, 86.94)

	assert.NotEqual(t, a.ID, b.ID, "two add-to-cart clicks must not collide")
	assert.Equal(t, a.Price, b.Price)
	assert.Equal(t, a.Name, b.Name)
	assert.Contains(t, a.ID, "custom-cable-")
}

func TestBuild_QuantityDefaultsToOne(t *testing.T) {
	config := testConfig()
	config.Quantity = 0

	item := Build(&config, testCableType, testConnector1, testConnector2, 86.94)
	assert.Equal(t, 1, item.Quantity)
}

func TestBuild_PriceInMinorUnits(t *testing.T) {
	config := testConfig()

	item := Build(&config, testCableType, testConnector1, testConnector2, 16.83)
	assert.Equal(t, int64(1683), item.Price)

	item = Build(&config, testCableType, testConnector1, testConnector2, 0)
	assert.Equal(t, int64(0), item.Price)
}
