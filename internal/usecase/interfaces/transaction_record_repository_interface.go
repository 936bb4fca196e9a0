package interfaces

import (
	"context"
	"encoding/json"

	"dokan_payments/internal/domain/entities"
)

// ITransactionRecordRepository abstracts DynamoDB persistence for the
// durable per-session audit trail.

type ITransactionRecordRepository interface {
	Create(ctx context.Context, r entities.TransactionRecord) (entities.TransactionRecord, error)
	GetByID(ctx context.Context, id string) (entities.TransactionRecord, error)
	ListByCartID(ctx context.Context, cartID string) ([]entities.TransactionRecord, error)
	UpdateStatus(ctx context.Context, id string, status entities.SessionStatus, validation json.RawMessage) (entities.TransactionRecord, error)
}
