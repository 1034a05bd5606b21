package models

// NewsletterSignup represents a newsletter subscription stored in the database
type NewsletterSignup struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// CreateNewsletterSignupRequest represents the request body for subscribing
// Example: {"email": "dana@example.com"}
type CreateNewsletterSignupRequest struct {
	Email string `json:"email"`
}
