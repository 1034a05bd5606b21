package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coaxdirect/models"
)

func validConfig() models.Configuration {
	return models.Configuration{
		CableSeriesSlug: "lmr-series",
		CableTypeSlug:   "lmr-400",
		Connector1Slug:  "n-male",
		Connector2Slug:  "sma-male",
		LengthInFeet:    50,
		Quantity:        2,
	}
}

func TestValidate_CompleteConfiguration(t *testing.T) {
	config := validConfig()
	result := Validate(&config)

	assert.True(t, result.OK)
	assert.Empty(t, result.Reason)
	assert.Equal(t, 2, config.Quantity)
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Configuration)
	}{
		{"missing series", func(c *models.Configuration) { c.CableSeriesSlug = "" }},
		{"missing cable type", func(c *models.Configuration) { c.CableTypeSlug = "" }},
		{"missing connector 1", func(c *models.Configuration) { c.Connector1Slug = "" }},
		{"missing connector 2", func(c *models.Configuration) { c.Connector2Slug = "" }},
		{"whitespace connector", func(c *models.Configuration) { c.Connector1Slug = "   " }},
		{"zero length", func(c *models.Configuration) { c.LengthInFeet = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validConfig()
			tt.mutate(&config)

			result := Validate(&config)
			assert.False(t, result.OK)
			assert.Equal(t, "Please fill in all required fields: cable series, cable type, both connectors, and length.", result.Reason)
		})
	}
}

func TestValidate_NegativeLength(t *testing.T) {
	config := validConfig()
	config.LengthInFeet = -10

	result := Validate(&config)
	assert.False(t, result.OK)
	assert.Equal(t, "Length must be a positive number of feet.", result.Reason)
}

func TestValidate_NegativeQuantity(t *testing.T) {
	config := validConfig()
	config.Quantity = -3

	result := Validate(&config)
	assert.False(t, result.OK)
	assert.Equal(t, "Quantity must be a positive whole number.", result.Reason)
}

func TestValidate_ZeroQuantityDefaultsToOne(t *testing.T) {
	config := validConfig()
	config.Quantity = 0

	result := Validate(&config)
	assert.True(t, result.OK)
	assert.Equal(t, 1, config.Quantity)
}

func TestValidate_DoesNotCheckCatalogMembership(t *testing.T) {
	// The validator only gates field presence; slugs that don't resolve are
	// priced to zero downstream instead of failing validation.
	config := validConfig()
	config.CableTypeSlug = "not-a-real-cable"

	result := Validate(&config)
	assert.True(t, result.OK)
}
