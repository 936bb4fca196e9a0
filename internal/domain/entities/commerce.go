package entities

import "time"

// Address holds the customer address fields the gateway payload needs.
type Address struct {
	FirstName  string `json:"first_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Address1   string `json:"address_1,omitempty"`
	City       string `json:"city,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country_code,omitempty"`
}

// CartSnapshot is the read-model of a storefront cart as returned by the
// commerce backend. The cart itself is owned by the commerce framework; this
// core only reads it. CompletedAt being set means the cart has already been
// turned into an order (at most once, enforced upstream).
type CartSnapshot struct {
	ID              string                 `json:"id"`
	Email           string                 `json:"email,omitempty"`
	CompletedAt     *time.Time             `json:"completed_at,omitempty"`
	ShippingAddress *Address               `json:"shipping_address,omitempty"`
	BillingAddress  *Address               `json:"billing_address,omitempty"`
	Metadata        map[string]interface{} `json:"metadata,omitempty"`
}

// OrderID returns the order id embedded on the cart metadata when the
// completing side recorded it there. Empty when unknown.
func (c CartSnapshot) OrderID() string {
	if c.Metadata == nil {
		return ""
	}
	if v, ok := c.Metadata["order_id"].(string); ok {
		return v
	}
	return ""
}

// OrderSummary is the slice of an order this core cares about when matching
// a completed cart to its order.
type OrderSummary struct {
	ID        string    `json:"id"`
	DisplayID int       `json:"display_id,omitempty"`
	Email     string    `json:"email,omitempty"`
	CartID    string    `json:"cart_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CartCompletionResult is what the commerce backend's cart-completion
// operation yields: either an order, or the (still open) cart plus an error
// message when completion could not produce one.
type CartCompletionResult struct {
	Type  string        `json:"type"`
	Order *OrderSummary `json:"order,omitempty"`
	Error string        `json:"error,omitempty"`
}

const CompletionTypeOrder = "order"
