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

// NewsletterController handles HTTP requests for newsletter signups
type NewsletterController struct {
	repository repository.NewsletterRepositoryInterface
}

// NewNewsletterController creates a new NewsletterController
func NewNewsletterController(repo repository.NewsletterRepositoryInterface) *NewsletterController {
	return &NewsletterController{
		repository: repo,
	}
}

// Subscribe handles POST /api/newsletter
// Example request: {"email": "dana@example.com"}
func (c *NewsletterController) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.CreateNewsletterSignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ Subscribe: Failed to decode request body: %v", err)
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Email) == "" {
		http.Error(w, "email is required", http.StatusBadRequest)
		return
	}

	ctx := context.Background()
	signup, err := c.repository.Subscribe(ctx, req.Email)
	if err != nil {
		log.Printf("❌ Subscribe: Error creating newsletter signup: %v", err)
		errMsg := err.Error()
		if strings.Contains(errMsg, "required") || strings.Contains(errMsg, "invalid") {
			http.Error(w, errMsg, http.StatusBadRequest)
			return
		}
		http.Error(w, fmt.Sprintf("Failed to subscribe: %v", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(signup); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
