package models

// CableSeries represents a product family grouping cable types (e.g., "LMR Series").
// Reference data owned by the CMS; read-only to the engine.
type CableSeries struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CableType represents a specific cable product (e.g., "LMR 400").
// Belongs to exactly one series, referenced by the series slug.
type CableType struct {
	ID           string  `json:"_id"`
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	Series       string  `json:"series"`       // parent series slug
	PricePerFoot float64 `json:"pricePerFoot"` // USD per linear foot; 0 when the CMS has no price set
	Image        string  `json:"image,omitempty"`
}

// ConnectorPrice is one entry of a connector's per-cable-type pricing table.
// A connector costs a different amount depending on which cable it terminates.
type ConnectorPrice struct {
	CableTypeSlug string  `json:"cableTypeSlug"`
	CableTypeName string  `json:"cableTypeName"`
	Price         float64 `json:"price"` // USD
}

// Connector represents a terminator fitted to each end of a cable.
type Connector struct {
	ID      string           `json:"_id"`
	Name    string           `json:"name"`
	Slug    string           `json:"slug"`
	Image   string           `json:"image,omitempty"`
	Pricing []ConnectorPrice `json:"pricing"`
}
