package commerce

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingBackendURL = errors.New("missing COMMERCE_BACKEND_URL")

// StorefrontClient talks to the commerce backend's store REST API. The
// backend owns carts and orders; completion exactly-once is enforced there,
// this client only reports its verdicts (including the 409 duplicate case).

type StorefrontClient struct {
	http           *resty.Client
	publishableKey string
}

var _ interfaces.ICommerceClient = (*StorefrontClient)(nil)

func NewStorefrontClient(baseURL, publishableKey string) (*StorefrontClient, error) {
	if strings.TrimSpace(baseURL) == "" {
		log.Printf("[commerce][client] missing backend url")
		return nil, ErrMissingBackendURL
	}
	log.Printf("[commerce][client] initialized base_url=%s", baseURL)
	return &StorefrontClient{
		http:           resty.New().SetBaseURL(baseURL),
		publishableKey: publishableKey,
	}, nil
}

func (c *StorefrontClient) GetCart(ctx context.Context, cartID string) (entities.CartSnapshot, error) {
	var out struct {
		Cart entities.CartSnapshot `json:"cart"`
	}
	resp, err := c.request(ctx).SetResult(&out).Get("/store/carts/" + cartID)
	if err != nil {
		return entities.CartSnapshot{}, err
	}
	if resp.IsError() {
		return entities.CartSnapshot{}, fmt.Errorf("cart retrieve failed cart_id=%s status=%d", cartID, resp.StatusCode())
	}
	return out.Cart, nil
}

func (c *StorefrontClient) CompleteCart(ctx context.Context, cartID string) (entities.CartCompletionResult, error) {
	var out entities.CartCompletionResult
	resp, err := c.request(ctx).SetResult(&out).Post("/store/carts/" + cartID + "/complete")
	if err != nil {
		return entities.CartCompletionResult{}, err
	}
	if resp.StatusCode() == http.StatusConflict || strings.Contains(strings.ToLower(string(resp.Body())), "already being completed") {
		log.Printf("[commerce][client] completion conflict cart_id=%s", cartID)
		return entities.CartCompletionResult{}, interfaces.ErrCartCompletionConflict
	}
	if resp.IsError() {
		return entities.CartCompletionResult{}, fmt.Errorf("cart completion failed cart_id=%s status=%d", cartID, resp.StatusCode())
	}
	return out, nil
}

func (c *StorefrontClient) GetOrder(ctx context.Context, orderID string) (entities.OrderSummary, error) {
	var out struct {
		Order entities.OrderSummary `json:"order"`
	}
	resp, err := c.request(ctx).SetResult(&out).Get("/store/orders/" + orderID)
	if err != nil {
		return entities.OrderSummary{}, err
	}
	if resp.IsError() {
		return entities.OrderSummary{}, fmt.Errorf("order retrieve failed order_id=%s status=%d", orderID, resp.StatusCode())
	}
	return out.Order, nil
}

func (c *StorefrontClient) ListRecentOrders(ctx context.Context, email string, limit int) ([]entities.OrderSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	var out struct {
		Orders []entities.OrderSummary `json:"orders"`
	}
	resp, err := c.request(ctx).
		SetQueryParam("email", email).
		SetQueryParam("limit", fmt.Sprintf("%d", limit)).
		SetQueryParam("order", "-created_at").
		SetResult(&out).
		Get("/store/orders")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("order list failed status=%d", resp.StatusCode())
	}
	return out.Orders, nil
}

func (c *StorefrontClient) request(ctx context.Context) *resty.Request {
	r := c.http.R().SetContext(ctx).SetHeader("Content-Type", "application/json")
	if c.publishableKey != "" {
		r.SetHeader("x-publishable-api-key", c.publishableKey)
	}
	return r
}
