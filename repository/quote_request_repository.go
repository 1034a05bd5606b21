package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"coaxdirect/db"
	"coaxdirect/models"
)

// QuoteRequestRepository handles database operations for customer quote requests
type QuoteRequestRepository struct{}

// NewQuoteRequestRepository creates a new QuoteRequestRepository
func NewQuoteRequestRepository() *QuoteRequestRepository {
	return &QuoteRequestRepository{}
}

// Ensure QuoteRequestRepository implements QuoteRequestRepositoryInterface
var _ QuoteRequestRepositoryInterface = (*QuoteRequestRepository)(nil)

// Create creates a new quote request
func (r *QuoteRequestRepository) Create(ctx context.Context, req *models.CreateQuoteRequestRequest) (*models.QuoteRequest, error) {
	log.Printf("📨 CreateQuoteRequest: name=%s, email=%s", req.Name, req.Email)

	// Validate name
	if strings.TrimSpace(req.Name) == "" {
		log.Printf("❌ CreateQuoteRequest: Name is required")
		return nil, fmt.Errorf("name is required")
	}

	// Validate email
	if strings.TrimSpace(req.Email) == "" {
		log.Printf("❌ CreateQuoteRequest: Email is required")
		return nil, fmt.Errorf("email is required")
	}

	// Validate message
	if strings.TrimSpace(req.Message) == "" {
		log.Printf("❌ CreateQuoteRequest: Message is required")
		return nil, fmt.Errorf("message is required")
	}

	queryInsert := `
		INSERT INTO quote_requests (name, email, company, phone, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, name, email, company, phone, message, created_at
	`

	var quoteRequest models.QuoteRequest
	var company, phone sql.NullString

	err := db.DB.QueryRowContext(ctx, queryInsert,
		req.Name,
		req.Email,
		sql.NullString{String: req.Company, Valid: req.Company != ""},
		sql.NullString{String: req.Phone, Valid: req.Phone != ""},
		req.Message,
	).Scan(
		&quoteRequest.ID,
		&quoteRequest.Name,
		&quoteRequest.Email,
		&company,
		&phone,
		&quoteRequest.Message,
		&quoteRequest.CreatedAt,
	)

	if err != nil {
		log.Printf("❌ CreateQuoteRequest: Error inserting quote request: %v", err)
		return nil, fmt.Errorf("failed to insert quote request: %w", err)
	}

	if company.Valid {
		quoteRequest.Company = company.String
	}
	if phone.Valid {
		quoteRequest.Phone = phone.String
	}

	log.Printf("✅ CreateQuoteRequest: Successfully created quote request id=%d", quoteRequest.ID)
	return &quoteRequest, nil
}

// List returns all quote requests, newest first
func (r *QuoteRequestRepository) List(ctx context.Context) ([]models.QuoteRequest, error) {
	query := `
		SELECT id, name, email, company, phone, message, created_at
		FROM quote_requests
		ORDER BY created_at DESC
	`

	rows, err := db.DB.QueryContext(ctx, query)
	if err != nil {
		log.Printf("❌ ListQuoteRequests: Error querying quote requests: %v", err)
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	defer rows.Close()

	var quoteRequests []models.QuoteRequest
	for rows.Next() {
		var qr models.QuoteRequest
		var company, phone sql.NullString

		if err := rows.Scan(&qr.ID, &qr.Name, &qr.Email, &company, &phone, &qr.Message, &qr.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan quote request: %w", err)
		}

		if company.Valid {
			qr.Company = company.String
		}
		if phone.Valid {
			qr.Phone = phone.String
		}

		quoteRequests = append(quoteRequests, qr)
	}

	return quoteRequests, rows.Err()
}
