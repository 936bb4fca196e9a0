package entities

import (
	"encoding/json"
	"time"
)

// TransactionRecord is the durable audit row persisted per payment session.
//
// Storage model (DynamoDB):
//   - PK: id (the session/tran id)
//   - GSI1 (cart_id-index): cart_id
//
// The Redis session cache expires after an hour; this record is what is left
// for the pass-through query endpoints and manual investigation. Writes are
// best-effort and never block the payment flow.

type TransactionRecord struct {
	ID           string        `json:"id"`
	CartID       string        `json:"cart_id,omitempty"`
	Amount       string        `json:"amount"`
	CurrencyCode string        `json:"currency_code"`
	Status       SessionStatus `json:"status"`

	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	LastValidation  json.RawMessage `json:"last_validation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
