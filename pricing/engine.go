package pricing

import (
	"log"
	"strings"

	"coaxdirect/catalog"
	"coaxdirect/models"
	"coaxdirect/utils"
)

// Markup is the fixed assembly markup applied to every custom cable:
// (connector1 + footage + connector2) * 1.35. Business constant, not
// configurable per call.
const Markup = 1.35

// Engine computes unit prices for custom cable configurations over an
// injected catalog lookup. Stateless beyond the lookup; construct a new
// Engine whenever the catalog snapshot refreshes.
type Engine struct {
	lookup *catalog.Lookup
}

// NewEngine creates a new pricing engine over a catalog lookup
func NewEngine(lookup *catalog.Lookup) *Engine {
	return &Engine{lookup: lookup}
}

// ResolveConnectorPrice returns the price of terminating a connector onto a
// cable type. A connector or pricing entry that does not resolve yields 0
// with a diagnostic; the price must never be silently non-zero for missing
// data, but a missing combination is not a hard error either (the validator
// deliberately does not check pricing coverage).
func (e *Engine) ResolveConnectorPrice(connectorSlug, cableTypeSlug string) float64 {
	conn, ok := e.lookup.ConnectorBySlug[connectorSlug]
	if !ok {
		log.Printf("❌ ResolveConnectorPrice: connector %q not found in catalog", connectorSlug)
		return 0
	}

	for _, entry := range conn.Pricing {
		if entry.CableTypeSlug == cableTypeSlug {
			return entry.Price
		}
	}

	// List the cable types that DO have pricing so an operator can spot the
	// missing pricebook row from the logs.
	priced := make([]string, 0, len(conn.Pricing))
	for _, entry := range conn.Pricing {
		priced = append(priced, entry.CableTypeSlug)
	}
	log.Printf("⚠️  ResolveConnectorPrice: connector %q has no pricing for cable type %q (priced cable types: %s)",
		conn.Name, cableTypeSlug, strings.Join(priced, ", "))
	return 0
}

// CalculateUnitPrice computes the unit price in dollars for one assembled
// cable:
//
//	unit = (connector1 + pricePerFoot*lengthInFeet + connector2) * Markup
//
// rounded to 2 decimal places. Quantity is never multiplied in here; totals
// belong to the cart/display layer. Preconditions that fail (unknown cable
// type, non-positive length) return 0 instead of an error — callers must
// gate with Validate before trusting a result as purchasable.
func (e *Engine) CalculateUnitPrice(config *models.Configuration) float64 {
	cableType, ok := e.lookup.TypeBySlug[config.CableTypeSlug]
	if !ok {
		log.Printf("❌ CalculateUnitPrice: cable type %q not found in catalog", config.CableTypeSlug)
		return 0
	}

	if config.LengthInFeet <= 0 {
		log.Printf("❌ CalculateUnitPrice: invalid length %d ft", config.LengthInFeet)
		return 0
	}

	if cableType.PricePerFoot <= 0 {
		log.Printf("⚠️  CalculateUnitPrice: cable type %q has no price per foot set", cableType.Slug)
	}

	cableFootageCost := cableType.PricePerFoot * float64(config.LengthInFeet)
	connector1Price := e.ResolveConnectorPrice(config.Connector1Slug, config.CableTypeSlug)
	connector2Price := e.ResolveConnectorPrice(config.Connector2Slug, config.CableTypeSlug)

	unitPrice := (connector1Price + cableFootageCost + connector2Price) * Markup
	return utils.RoundToCents(unitPrice)
}
