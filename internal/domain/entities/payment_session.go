package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// SessionStatus represents the lifecycle of an SSLCommerz payment session.
//
// Transitions are one-way: pending -> authorized (success) or
// pending -> canceled (failure/cancel). Never set directly from request
// input; always derived from the gateway status vocabulary via
// MapGatewayStatus.

type SessionStatus string

const (
	SessionStatusPending    SessionStatus = "pending"
	SessionStatusAuthorized SessionStatus = "authorized"
	SessionStatusCanceled   SessionStatus = "canceled"
)

// MapGatewayStatus folds the gateway's transaction status vocabulary into the
// session vocabulary, case-insensitively. Unknown or absent statuses stay
// pending so out-of-band polling can pick them up later.
func MapGatewayStatus(status string) SessionStatus {
	switch strings.ToUpper(strings.TrimSpace(status)) {
	case "VALID", "VALIDATED", "AUTHORIZED", "COMPLETED", "PAID":
		return SessionStatusAuthorized
	case "FAILED", "CANCELLED", "CANCELED", "INVALID":
		return SessionStatusCanceled
	default:
		return SessionStatusPending
	}
}

// PaymentSession is one attempt to pay for a cart through SSLCommerz.
//
// Cache model (Redis, 1h TTL):
//   - primary key: session id (doubles as the gateway tran_id)
//   - secondary index: cart id -> session id
//
// Payload representation:
//   - GatewayPayload is the form request sent on init; immutable after creation.
//   - GatewayResponse keeps the raw init response for traceability.
//   - LastValidation is overwritten on every transactionQuery and is only
//     populated once the session has left pending.

type PaymentSession struct {
	SessionID    string        `json:"session_id"`
	CartID       string        `json:"cart_id,omitempty"`
	Amount       string        `json:"amount"`
	CurrencyCode string        `json:"currency_code"`
	Status       SessionStatus `json:"status"`

	GatewayPayload  map[string]string `json:"gateway_payload,omitempty"`
	GatewayResponse json.RawMessage   `json:"gateway_response,omitempty"`
	LastValidation  json.RawMessage   `json:"last_validation,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// WithValidation returns a copy moved to the given status carrying the raw
// validation snapshot. Keeps the "validation only exists off-pending"
// invariant in one place instead of scattering field writes.
func (s PaymentSession) WithValidation(status SessionStatus, validation json.RawMessage, at time.Time) PaymentSession {
	s.Status = status
	s.LastValidation = validation
	s.UpdatedAt = at
	return s
}

// BankTranID digs the bank transaction id out of the last validation
// snapshot. Empty when the session was never validated or the gateway
// response did not carry one.
func (s PaymentSession) BankTranID() string {
	if len(s.LastValidation) == 0 {
		return ""
	}
	var parsed map[string]interface{}
	if err := json.Unmarshal(s.LastValidation, &parsed); err != nil {
		return ""
	}
	if v, ok := parsed["bank_tran_id"].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	// transactionQuery responses nest per-transaction fields under element[].
	if elems, ok := parsed["element"].([]interface{}); ok && len(elems) > 0 {
		if first, ok := elems[0].(map[string]interface{}); ok {
			if v, ok := first["bank_tran_id"].(string); ok {
				return strings.TrimSpace(v)
			}
		}
	}
	return ""
}
