package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase/interfaces"
	"dokan_payments/pkg/retry"
)

var (
	ErrCartNotResolvable = errors.New("no cart id could be resolved")
	ErrCartUnavailable   = errors.New("cart could not be retrieved")
	ErrCompletionFailed  = errors.New("cart completion did not produce an order")
)

// CompletionConfig tunes the reconciler's waits. Order creation is an
// asynchronous side effect of payment authorization upstream, so every delay
// here is a deployment-specific latency heuristic, not a correctness bound.
type CompletionConfig struct {
	// SettleDelay runs before completing (or before reading the order off an
	// already-completed cart) to let authorization side effects land.
	SettleDelay time.Duration
	// ConflictDelay runs after the backend rejects a duplicate completion.
	ConflictDelay time.Duration
	// LookupInterval and MaxLookupAttempts bound the recent-order polling.
	LookupInterval    time.Duration
	MaxLookupAttempts int
	// MatchWindow is how far back an order may have been created and still be
	// matched to this cart by email.
	MatchWindow time.Duration
}

func NewCompletionConfigFromEnv() CompletionConfig {
	return CompletionConfig{
		SettleDelay:       time.Duration(getenvInt("COMPLETION_SETTLE_MS", 1500)) * time.Millisecond,
		ConflictDelay:     time.Duration(getenvInt("COMPLETION_CONFLICT_WAIT_MS", 3000)) * time.Millisecond,
		LookupInterval:    time.Duration(getenvInt("COMPLETION_LOOKUP_INTERVAL_MS", 3000)) * time.Millisecond,
		MaxLookupAttempts: getenvInt("COMPLETION_MAX_ATTEMPTS", 4),
		MatchWindow:       time.Duration(getenvInt("ORDER_MATCH_WINDOW_SECONDS", 180)) * time.Second,
	}
}

// CompletionInput comes from the storefront callback page: the cart id when
// its cookies survived the gateway round trip, else just the transaction id.
type CompletionInput struct {
	CartID string
	TranID string
}

// CompletionOutcome distinguishes "here is your order" from the soft success
// where a concurrent completion produced an order this caller cannot see
// (guest checkout with no way to list orders). The UI still shows a generic
// success state for the latter.
type CompletionOutcome struct {
	Success          bool                   `json:"success"`
	AlreadyCompleted bool                   `json:"already_completed"`
	Order            *entities.OrderSummary `json:"order,omitempty"`
	Message          string                 `json:"message,omitempty"`
}

// IOrderCompletionUseCase finalizes the order after the browser lands back
// from the gateway with a successful status.

type IOrderCompletionUseCase interface {
	Complete(ctx context.Context, in CompletionInput) (CompletionOutcome, error)
}

// OrderCompletionUseCase tolerates both "order not yet created" and "order
// created by a concurrent caller" (the IPN webhook racing the browser
// redirect) without duplicating the order or reporting false failure. The
// commerce backend's completion call is the sole arbiter of exactly-once.
type OrderCompletionUseCase struct {
	commerce interfaces.ICommerceClient
	sessions interfaces.ISessionStore
	cfg      CompletionConfig
}

var _ IOrderCompletionUseCase = (*OrderCompletionUseCase)(nil)

func NewOrderCompletionUseCase(commerce interfaces.ICommerceClient, sessions interfaces.ISessionStore, cfg CompletionConfig) *OrderCompletionUseCase {
	if cfg.MaxLookupAttempts < 1 {
		cfg.MaxLookupAttempts = 1
	}
	return &OrderCompletionUseCase{commerce: commerce, sessions: sessions, cfg: cfg}
}

func (u *OrderCompletionUseCase) Complete(ctx context.Context, in CompletionInput) (CompletionOutcome, error) {
	if u.commerce == nil {
		return CompletionOutcome{}, errors.New("commerce client not configured")
	}
	cartID := u.resolveCartID(ctx, in)
	if cartID == "" {
		log.Printf("[completion][usecase] no cart id resolvable tran_id=%s", in.TranID)
		return CompletionOutcome{}, ErrCartNotResolvable
	}
	log.Printf("[completion][usecase] start cart_id=%s tran_id=%s", cartID, in.TranID)

	cart, err := u.commerce.GetCart(ctx, cartID)
	if err != nil {
		log.Printf("[completion][usecase] cart retrieve failed cart_id=%s err=%v", cartID, err)
		return CompletionOutcome{}, err
	}
	if cart.ID == "" {
		return CompletionOutcome{}, ErrCartUnavailable
	}

	if cart.CompletedAt != nil {
		log.Printf("[completion][usecase] cart already completed cart_id=%s completed_at=%s", cartID, cart.CompletedAt.Format(time.RFC3339))
		return u.resolveCompletedCart(ctx, cart, in.TranID)
	}

	// Let payment-authorization side effects settle before completing.
	if err := retry.Sleep(ctx, u.cfg.SettleDelay); err != nil {
		return CompletionOutcome{}, err
	}

	result, err := u.commerce.CompleteCart(ctx, cartID)
	if errors.Is(err, interfaces.ErrCartCompletionConflict) {
		// Someone else (usually the IPN path) is completing the same cart.
		log.Printf("[completion][usecase] completion race detected cart_id=%s", cartID)
		if err := retry.Sleep(ctx, u.cfg.ConflictDelay); err != nil {
			return CompletionOutcome{}, err
		}
		if order, ok := u.lookupRecentOrder(ctx, cart, 1); ok {
			u.cleanupSession(ctx, cartID, in.TranID)
			return CompletionOutcome{Success: true, AlreadyCompleted: true, Order: &order}, nil
		}
		return CompletionOutcome{Success: true, AlreadyCompleted: true, Message: "alreadyCompleted"}, nil
	}
	if err != nil {
		log.Printf("[completion][usecase] completion call failed cart_id=%s err=%v", cartID, err)
		return CompletionOutcome{}, err
	}
	if result.Type != entities.CompletionTypeOrder || result.Order == nil {
		log.Printf("[completion][usecase] completion returned no order cart_id=%s type=%s err=%s", cartID, result.Type, result.Error)
		return CompletionOutcome{}, ErrCompletionFailed
	}

	u.cleanupSession(ctx, cartID, in.TranID)
	log.Printf("[completion][usecase] success cart_id=%s order_id=%s", cartID, result.Order.ID)
	return CompletionOutcome{Success: true, Order: result.Order}, nil
}

// resolveCartID walks the resolution chain: explicit input, then the cached
// session addressed by transaction id. The browser-side tiers (local storage,
// cookie) collapse into the explicit input by the time the request gets here.
func (u *OrderCompletionUseCase) resolveCartID(ctx context.Context, in CompletionInput) string {
	if cartID := strings.TrimSpace(in.CartID); cartID != "" {
		return cartID
	}
	tranID := strings.TrimSpace(in.TranID)
	if tranID == "" {
		return ""
	}
	raw, ok := u.sessions.Get(ctx, sessionKey(tranID))
	if !ok {
		return ""
	}
	var session entities.PaymentSession
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Printf("[completion][usecase] cached session unmarshal failed tran_id=%s err=%v", tranID, err)
		return ""
	}
	return session.CartID
}

// resolveCompletedCart handles the race loser: a concurrent caller already
// completed the cart, so find the order it produced, or settle for a soft
// success when it cannot be seen from here.
func (u *OrderCompletionUseCase) resolveCompletedCart(ctx context.Context, cart entities.CartSnapshot, tranID string) (CompletionOutcome, error) {
	if err := retry.Sleep(ctx, u.cfg.SettleDelay); err != nil {
		return CompletionOutcome{}, err
	}

	if orderID := cart.OrderID(); orderID != "" {
		order, err := u.commerce.GetOrder(ctx, orderID)
		if err == nil && order.ID != "" {
			u.cleanupSession(ctx, cart.ID, tranID)
			return CompletionOutcome{Success: true, AlreadyCompleted: true, Order: &order}, nil
		}
		log.Printf("[completion][usecase] embedded order fetch failed cart_id=%s order_id=%s err=%v", cart.ID, orderID, err)
	}

	if order, ok := u.lookupRecentOrder(ctx, cart, u.cfg.MaxLookupAttempts); ok {
		u.cleanupSession(ctx, cart.ID, tranID)
		return CompletionOutcome{Success: true, AlreadyCompleted: true, Order: &order}, nil
	}

	// Guest checkout with no listable orders is a success without detail,
	// not a failure; the payment went through.
	log.Printf("[completion][usecase] completed cart has no resolvable order cart_id=%s", cart.ID)
	return CompletionOutcome{Success: true, AlreadyCompleted: true, Message: "alreadyCompleted"}, nil
}

// lookupRecentOrder polls the customer's recent orders for one created
// within the match window, preferring an exact cart-id match.
func (u *OrderCompletionUseCase) lookupRecentOrder(ctx context.Context, cart entities.CartSnapshot, attempts int) (entities.OrderSummary, bool) {
	email := strings.TrimSpace(cart.Email)
	if email == "" {
		return entities.OrderSummary{}, false
	}

	var found entities.OrderSummary
	policy := retry.Policy{MaxAttempts: attempts, Interval: u.cfg.LookupInterval}
	err := policy.Do(ctx, func(ctx context.Context) error {
		orders, err := u.commerce.ListRecentOrders(ctx, email, 10)
		if err != nil {
			return err
		}
		cutoff := time.Now().Add(-u.cfg.MatchWindow)
		for _, order := range orders {
			if order.CartID == cart.ID {
				found = order
				return nil
			}
		}
		for _, order := range orders {
			if order.CreatedAt.After(cutoff) {
				found = order
				return nil
			}
		}
		return errors.New("no matching order yet")
	})
	if err != nil {
		log.Printf("[completion][usecase] recent order lookup gave up cart_id=%s email=%s err=%v", cart.ID, email, err)
		return entities.OrderSummary{}, false
	}
	return found, true
}

// cleanupSession drops the cached session and cart index once the order is
// settled. Best-effort; leftover entries expire on their own.
func (u *OrderCompletionUseCase) cleanupSession(ctx context.Context, cartID, tranID string) {
	if tranID == "" {
		if raw, ok := u.sessions.Get(ctx, cartKey(cartID)); ok {
			tranID = string(raw)
		}
	}
	if tranID != "" {
		u.sessions.Delete(ctx, sessionKey(tranID))
	}
	if cartID != "" {
		u.sessions.Delete(ctx, cartKey(cartID))
	}
}
