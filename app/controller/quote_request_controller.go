package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"coaxdirect/models"
	"coaxdirect/repository"
)

// QuoteRequestController handles HTTP requests for customer quote requests
type QuoteRequestController struct {
	repository repository.QuoteRequestRepositoryInterface
}

// NewQuoteRequestController creates a new QuoteRequestController
func NewQuoteRequestController(repo repository.QuoteRequestRepositoryInterface) *QuoteRequestController {
	return &QuoteRequestController{
		repository: repo,
	}
}

// Create handles POST /api/quote-requests
// Example request:
// {
//   "name": "Dana Alvarez",
//   "email": "dana@example.com",
//   "company": "Summit Wireless",
//   "phone": "555-0182",
//   "message": "Need pricing on 25x LMR 400 assemblies, N Male both ends, 75 ft"
// }
func (c *QuoteRequestController) Create(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 CreateQuoteRequest: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateQuoteRequestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ CreateQuoteRequest: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		http.Error(w, "message is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	quoteRequest, err := c.repository.Create(ctx, &req)
	if err != nil {
		log.Printf("❌ CreateQuoteRequest: Error creating quote request: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "required") || strings.Contains(errMsg, "invalid") {
			http.Error(w, errMsg, http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to create quote request: %v", err), http.StatusInternalServerError)
		return
	}

	log.Printf("✅ CreateQuoteRequest: Successfully created quote request id=%d", quoteRequest.ID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(quoteRequest); err != nil {
		log.Printf("❌ CreateQuoteRequest: Error encoding response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// List handles GET /admin/quote-requests
// Returns all quote requests, newest first
func (c *QuoteRequestController) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx := context.Background()
	quoteRequests, err := c.repository.List(ctx)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to list quote requests: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(quoteRequests); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
