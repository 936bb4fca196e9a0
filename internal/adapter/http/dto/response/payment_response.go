package response

import (
	"encoding/json"
	"time"

	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase"
)

// InitPaymentResponse carries the gateway redirect target plus the raw
// gateway response for clients that want the vendor fields.
type InitPaymentResponse struct {
	TranID     string          `json:"tran_id"`
	CartID     string          `json:"cart_id,omitempty"`
	Status     string          `json:"status"`
	GatewayURL string          `json:"gateway_url"`
	Response   json.RawMessage `json:"response,omitempty"`
}

func FromInitiateResult(r usecase.InitiateResult) InitPaymentResponse {
	return InitPaymentResponse{
		TranID:     r.ID,
		CartID:     r.Session.CartID,
		Status:     string(r.Status),
		GatewayURL: r.GatewayURL,
		Response:   r.Session.GatewayResponse,
	}
}

// IPNResponse acknowledges an instant payment notification.
type IPNResponse struct {
	Status string `json:"status"`
	TranID string `json:"tran_id"`
}

// TransactionRecordResponse is the audit-trail view served by the
// transaction lookup endpoints.
type TransactionRecordResponse struct {
	ID              string          `json:"id"`
	CartID          string          `json:"cart_id,omitempty"`
	Amount          string          `json:"amount"`
	CurrencyCode    string          `json:"currency_code"`
	Status          string          `json:"status"`
	GatewayResponse json.RawMessage `json:"gateway_response,omitempty"`
	LastValidation  json.RawMessage `json:"last_validation,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func FromTransactionRecord(rec entities.TransactionRecord) TransactionRecordResponse {
	return TransactionRecordResponse{
		ID:              rec.ID,
		CartID:          rec.CartID,
		Amount:          rec.Amount,
		CurrencyCode:    rec.CurrencyCode,
		Status:          string(rec.Status),
		GatewayResponse: rec.GatewayResponse,
		LastValidation:  rec.LastValidation,
		CreatedAt:       rec.CreatedAt,
		UpdatedAt:       rec.UpdatedAt,
	}
}
