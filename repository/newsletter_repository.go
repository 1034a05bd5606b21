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

// NewsletterRepository handles database operations for newsletter signups
type NewsletterRepository struct{}

// NewNewsletterRepository creates a new NewsletterRepository
func NewNewsletterRepository() *NewsletterRepository {
	return &NewsletterRepository{}
}

// Ensure NewsletterRepository implements NewsletterRepositoryInterface
var _ NewsletterRepositoryInterface = (*NewsletterRepository)(nil)

// Subscribe inserts a newsletter signup. Subscribing an already-subscribed
// email is not an error; the existing row is returned instead.
func (r *NewsletterRepository) Subscribe(ctx context.Context, email string) (*models.NewsletterSignup, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		log.Printf("❌ Subscribe: Email is required")
		return nil, fmt.Errorf("email is required")
	}
	if !strings.Contains(email, "@") {
		log.Printf("❌ Subscribe: Invalid email: %s", email)
		return nil, fmt.Errorf("invalid email address")
	}

	queryInsert := `
		INSERT INTO newsletter_signups (email)
		VALUES ($1)
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, created_at
	`

	var signup models.NewsletterSignup
	err := db.DB.QueryRowContext(ctx, queryInsert, email).Scan(
		&signup.ID,
		&signup.Email,
		&signup.CreatedAt,
	)

	if err == sql.ErrNoRows {
		// Already subscribed; fetch the existing row
		log.Printf("⏭️  Subscribe: %s is already subscribed", email)
		querySelect := `SELECT id, email, created_at FROM newsletter_signups WHERE email = $1`
		err = db.DB.QueryRowContext(ctx, querySelect, email).Scan(
			&signup.ID,
			&signup.Email,
			&signup.CreatedAt,
		)
	}

	if err != nil {
		log.Printf("❌ Subscribe: Error inserting newsletter signup: %v", err)
		return nil, fmt.Errorf("failed to insert newsletter signup: %w", err)
	}

	log.Printf("✅ Subscribe: Newsletter signup id=%d email=%s", signup.ID, signup.Email)
	return &signup, nil
}
