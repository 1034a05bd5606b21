package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"coaxdirect/cart"
	"coaxdirect/catalog"
	"coaxdirect/models"
	"coaxdirect/pricing"
	"coaxdirect/utils"
)

// CustomizerController handles HTTP requests for the cable customizer
type CustomizerController struct {
	lookup *catalog.Lookup
	engine *pricing.Engine
}

// NewCustomizerController creates a new CustomizerController
func NewCustomizerController(lookup *catalog.Lookup, engine *pricing.Engine) *CustomizerController {
	return &CustomizerController{
		lookup: lookup,
		engine: engine,
	}
}

// GetCatalog handles GET /api/customizer/catalog?series=lmr-series
// Returns the series list, the connectors, and — when a series is given —
// the cable types available for that series. All lists sorted by name.
func (c *CustomizerController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	seriesSlug := r.URL.Query().Get("series")

	response := struct {
		Series     []models.CableSeries `json:"series"`
		CableTypes []models.CableType   `json:"cableTypes"`
		Connectors []models.Connector   `json:"connectors"`
	}{
		Series:     c.lookup.Series(),
		Connectors: c.lookup.Connectors(),
	}
	if seriesSlug != "" {
		response.CableTypes = c.lookup.TypesForSeries(seriesSlug)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// Price handles POST /api/customizer/price
// Re-prices the in-progress configuration. Called on every selection change,
// so an incomplete configuration is a normal outcome, not an HTTP error.
// Example request:
// {
//   "cableSeriesSlug": "lmr-series",
//   "cableTypeSlug": "lmr-400",
//   "connector1Slug": "n-male",
//   "connector2Slug": "sma-male",
//   "lengthInFeet": 50,
//   "quantity": 2
// }
// Example response:
// {"ok": true, "unitPrice": 86.94, "total": 173.88, "quantity": 2}
func (c *CustomizerController) Price(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var config models.Configuration
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	result := pricing.Validate(&config)
	if !result.OK {
		json.NewEncoder(w).Encode(result)
		return
	}

	unitPrice := c.engine.CalculateUnitPrice(&config)
	// Quantity multiplication happens here at display level, never inside
	// the engine.
	total := utils.RoundToCents(unitPrice * float64(config.Quantity))

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":        true,
		"unitPrice": unitPrice,
		"total":     total,
		"quantity":  config.Quantity,
	})
}

// AddLineItem handles POST /api/customizer/line-item
// Validates and prices the configuration, then returns the cart-ready line
// item. The cart collaborator on the frontend owns persistence from there.
func (c *CustomizerController) AddLineItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var config models.Configuration
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	result := pricing.Validate(&config)
	if !result.OK {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(result)
		return
	}

	cableType, ok := c.lookup.TypeBySlug[config.CableTypeSlug]
	connector1, ok1 := c.lookup.ConnectorBySlug[config.Connector1Slug]
	connector2, ok2 := c.lookup.ConnectorBySlug[config.Connector2Slug]
	if !ok || !ok1 || !ok2 {
		log.Printf("❌ AddLineItem: unresolved selection (cableType=%v, connector1=%v, connector2=%v)", ok, ok1, ok2)
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ValidationResult{
			OK:     false,
			Reason: "Some of the selected options are no longer available. Please rebuild your cable.",
		})
		return
	}

	unitPrice := c.engine.CalculateUnitPrice(&config)
	lineItem := cart.Build(&config, cableType, connector1, connector2, unitPrice)

	log.Printf("🛒 AddLineItem: built %s (%s, qty=%d)", lineItem.ID, lineItem.Name, lineItem.Quantity)

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"lineItem":  lineItem,
		"unitPrice": unitPrice,
	})
}
