package pricing

import (
	"strings"

	"coaxdirect/models"
)

// Validate gates a configuration before it may produce a purchasable line
// item. Required fields must all be present and length must be positive.
// Quantity defaults to 1 when absent (the default is written back onto the
// config). Membership checks — whether the cable type actually belongs to
// the chosen series, or whether the connectors have pricing for it — are
// deliberately not done here; those surface as a zero price instead.
func Validate(config *models.Configuration) models.ValidationResult {
	if strings.TrimSpace(config.CableSeriesSlug) == "" ||
		strings.TrimSpace(config.CableTypeSlug) == "" ||
		strings.TrimSpace(config.Connector1Slug) == "" ||
		strings.TrimSpace(config.Connector2Slug) == "" ||
		config.LengthInFeet == 0 {
		return models.ValidationResult{
			OK:     false,
			Reason: "Please fill in all required fields: cable series, cable type, both connectors, and length.",
		}
	}

	if config.LengthInFeet < 0 {
		return models.ValidationResult{
			OK:     false,
			Reason: "Length must be a positive number of feet.",
		}
	}

	if config.Quantity < 0 {
		return models.ValidationResult{
			OK:     false,
			Reason: "Quantity must be a positive whole number.",
		}
	}
	if config.Quantity == 0 {
		config.Quantity = 1
	}

	return models.ValidationResult{OK: true}
}
