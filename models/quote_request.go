package models

// QuoteRequest represents a customer quote request stored in the database
type QuoteRequest struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	CreatedAt string `json:"createdAt"`
}

// CreateQuoteRequestRequest represents the request body for creating a quote request
// Example: {
//   "name": "Dana Alvarez",
//   "email": "dana@example.com",
//   "company": "Summit Wireless",
//   "phone": "555-0182",
//   "message": "Need pricing on 25x LMR 400 assemblies, N Male both ends, 75 ft"
// }
type CreateQuoteRequestRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
}
