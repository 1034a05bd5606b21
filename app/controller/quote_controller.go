package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"coaxdirect/cart"
	"coaxdirect/catalog"
	"coaxdirect/models"
	"coaxdirect/pricing"
	"coaxdirect/service"
)

// QuoteController renders printable quote documents for custom cable
// configurations. The configuration travels as query parameters so the
// render endpoint can be opened directly by headless Chrome.
type QuoteController struct {
	lookup     *catalog.Lookup
	engine     *pricing.Engine
	pdfService *service.QuotePDFService
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(lookup *catalog.Lookup, engine *pricing.Engine, pdfService *service.QuotePDFService) *QuoteController {
	return &QuoteController{
		lookup:     lookup,
		engine:     engine,
		pdfService: pdfService,
	}
}

// configFromQuery rebuilds a Configuration from query parameters.
// Example: ?cableSeriesSlug=lmr-series&cableTypeSlug=lmr-400&connector1Slug=n-male&connector2Slug=sma-male&lengthInFeet=50&quantity=2
func configFromQuery(r *http.Request) models.Configuration {
	q := r.URL.Query()
	lengthInFeet, _ := strconv.Atoi(q.Get("lengthInFeet"))
	quantity, _ := strconv.Atoi(q.Get("quantity"))

	return models.Configuration{
		CableSeriesSlug: q.Get("cableSeriesSlug"),
		CableTypeSlug:   q.Get("cableTypeSlug"),
		Connector1Slug:  q.Get("connector1Slug"),
		Connector2Slug:  q.Get("connector2Slug"),
		LengthInFeet:    lengthInFeet,
		Quantity:        quantity,
	}
}

// buildQuote validates, prices and assembles the line item for a quote.
func (c *QuoteController) buildQuote(config *models.Configuration) (service.QuoteData, *models.ValidationResult) {
	result := pricing.Validate(config)
	if !result.OK {
		return service.QuoteData{}, &result
	}

	cableType, ok := c.lookup.TypeBySlug[config.CableTypeSlug]
	connector1, ok1 := c.lookup.ConnectorBySlug[config.Connector1Slug]
	connector2, ok2 := c.lookup.ConnectorBySlug[config.Connector2Slug]
	if !ok || !ok1 || !ok2 {
		r := models.ValidationResult{
			OK:     false,
			Reason: "Some of the selected options are no longer available. Please rebuild your cable.",
		}
		return service.QuoteData{}, &r
	}

	unitPrice := c.engine.CalculateUnitPrice(config)
	lineItem := cart.Build(config, cableType, connector1, connector2, unitPrice)
	return service.BuildQuoteData(lineItem, unitPrice), nil
}

// RenderQuote handles GET /admin/quote/render
// Returns the quote as an HTML page; this is the page headless Chrome prints.
func (c *QuoteController) RenderQuote(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	config := configFromQuery(r)
	data, vErr := c.buildQuote(&config)
	if vErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(vErr)
		return
	}

	html, err := c.pdfService.RenderQuoteHTML(data)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to render quote: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

// DownloadQuotePDF handles GET /admin/quote/pdf
// Prints the render endpoint with headless Chrome and streams the PDF.
func (c *QuoteController) DownloadQuotePDF(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	// Validate before launching Chrome so bad input fails fast
	config := configFromQuery(r)
	if _, vErr := c.buildQuote(&config); vErr != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(vErr)
		return
	}

	pdf, err := c.pdfService.GeneratePDF(r.Context(), r.URL.Query())
	if err != nil {
		log.Printf("❌ DownloadQuotePDF: %v", err)
		http.Error(w, fmt.Sprintf("Failed to generate quote PDF: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="custom-cable-quote.pdf"`)
	w.Write(pdf)
}
