package interfaces

import (
	"context"
	"encoding/json"
	"errors"

	"dokan_payments/internal/domain/entities"
)

// Validation failures the client raises before any network call.
var (
	ErrInvalidGatewayAmount = errors.New("amount must be a positive number with cents precision")
	ErrMissingIdentifier    = errors.New("missing required identifier field")
)

// IGatewayClient abstracts the SSLCommerz REST API.
//
// Inputs pass through to the vendor; the client owns only fail-fast
// validation (positive cents-precision amount, required identifier fields).
// Retries belong to callers, never here.
type IGatewayClient interface {
	Init(ctx context.Context, payload map[string]string) (entities.GatewayInitResult, error)
	Validate(ctx context.Context, valID string) (json.RawMessage, error)
	QueryByTranID(ctx context.Context, tranID string) (entities.GatewayQueryResult, error)
	QueryBySessionKey(ctx context.Context, sessionKey string) (entities.GatewayQueryResult, error)
	InitiateRefund(ctx context.Context, bankTranID, amount, remarks string) (json.RawMessage, error)
	RefundQuery(ctx context.Context, refundRefID string) (json.RawMessage, error)
}
