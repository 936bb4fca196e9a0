package interfaces

import (
	"context"
	"errors"

	"dokan_payments/internal/domain/entities"
)

// ErrCartCompletionConflict signals the commerce backend rejected a
// duplicate completion attempt (HTTP 409 / "already being completed").
// The reconciler treats it as a race to recover from, not a failure.
var ErrCartCompletionConflict = errors.New("cart is already being completed")

// ICommerceClient abstracts the storefront commerce backend (Medusa-style
// REST). The backend owns carts and orders; this core only reads carts,
// triggers completion, and looks orders up. Cart completion upstream is the
// sole arbiter of exactly-once semantics.
type ICommerceClient interface {
	GetCart(ctx context.Context, cartID string) (entities.CartSnapshot, error)
	CompleteCart(ctx context.Context, cartID string) (entities.CartCompletionResult, error)
	GetOrder(ctx context.Context, orderID string) (entities.OrderSummary, error)
	ListRecentOrders(ctx context.Context, email string, limit int) ([]entities.OrderSummary, error)
}
