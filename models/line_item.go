package models

// LineItem is a priced, named, metadata-bearing unit ready for the cart
// collaborator. Price is in minor currency units (cents). The engine never
// persists line items; ownership moves to the cart on handoff.
// Example: {
//   "id": "custom-cable-1756640000123-9f3a2b1c",
//   "name": "Custom Cable: N Male to SMA Male, 50 ft LMR 400",
//   "price": 8694,
//   "currency": "usd",
//   "image": "https://cdn.example.com/images/lmr-400.jpg",
//   "quantity": 2,
//   "metadata": {"isCustom": true, "cableTypeSlug": "lmr-400", ...}
// }
type LineItem struct {
	ID       string                 `json:"id"`
	Name     string                 `json:"name"`
	Price    int64                  `json:"price"` // minor units (cents)
	Currency string                 `json:"currency"`
	Image    string                 `json:"image,omitempty"`
	Quantity int                    `json:"quantity"`
	Metadata map[string]interface{} `json:"metadata"`
}
