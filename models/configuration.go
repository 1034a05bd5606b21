package models

// Configuration is a user's in-progress custom cable selection.
// Created empty in a UI session, mutated field-by-field as dropdowns change,
// consumed once to produce a priced line item, then discarded.
// Example: {
//   "cableSeriesSlug": "lmr-series",
//   "cableTypeSlug": "lmr-400",
//   "connector1Slug": "n-male",
//   "connector2Slug": "sma-male",
//   "lengthInFeet": 50,
//   "quantity": 2
// }
type Configuration struct {
	CableSeriesSlug string `json:"cableSeriesSlug"`
	CableTypeSlug   string `json:"cableTypeSlug"`
	Connector1Slug  string `json:"connector1Slug"`
	Connector2Slug  string `json:"connector2Slug"`
	LengthInFeet    int    `json:"lengthInFeet"` // 0 means not yet selected
	Quantity        int    `json:"quantity,omitempty"`
}

// ValidationResult is the outcome of gating a Configuration.
// Reason is a human-readable message suitable for direct user display.
type ValidationResult struct {
	OK     bool   `json:"ok"`
	Reason string `json:"reason,omitempty"`
}
