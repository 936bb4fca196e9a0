package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

var ErrMissingStoreCredentials = errors.New("missing SSLCOMMERZ_STORE_ID or SSLCOMMERZ_STORE_PASSWORD")

const (
	sandboxBaseURL = "https://sandbox.sslcommerz.com"
	liveBaseURL    = "https://securepay.sslcommerz.com"

	initPath      = "/gwprocess/v4/api.php"
	validatorPath = "/validator/api/validationserverAPI.php"
	queryPath     = "/validator/api/merchantTransIDvalidationAPI.php"
)

// SSLCommerzGateway issues the four SSLCommerz REST operations. It owns no
// retry logic and no status interpretation; both belong to callers.

type SSLCommerzGateway struct {
	http          *resty.Client
	storeID       string
	storePassword string
}

var _ interfaces.IGatewayClient = (*SSLCommerzGateway)(nil)

// NewSSLCommerzGateway validates credentials up front: a payment operation
// against an unconfigured gateway is fatal, not retryable.
func NewSSLCommerzGateway(storeID, storePassword, mode string) (*SSLCommerzGateway, error) {
	if strings.TrimSpace(storeID) == "" || strings.TrimSpace(storePassword) == "" {
		log.Printf("[gateway][sslcommerz] missing store credentials")
		return nil, ErrMissingStoreCredentials
	}

	baseURL := sandboxBaseURL
	if strings.EqualFold(strings.TrimSpace(mode), "live") {
		baseURL = liveBaseURL
	}
	log.Printf("[gateway][sslcommerz] client initialized base_url=%s", baseURL)

	return &SSLCommerzGateway{
		http:          resty.New().SetBaseURL(baseURL),
		storeID:       storeID,
		storePassword: storePassword,
	}, nil
}

// Init creates a gateway payment session. The payload is pass-through except
// for credentials and the amount check.
func (g *SSLCommerzGateway) Init(ctx context.Context, payload map[string]string) (entities.GatewayInitResult, error) {
	if err := validateAmount(payload["total_amount"]); err != nil {
		log.Printf("[gateway][sslcommerz] init rejected total_amount=%q err=%v", payload["total_amount"], err)
		return entities.GatewayInitResult{}, err
	}
	if strings.TrimSpace(payload["tran_id"]) == "" {
		log.Printf("[gateway][sslcommerz] init rejected: missing tran_id")
		return entities.GatewayInitResult{}, fmt.Errorf("%w: tran_id", interfaces.ErrMissingIdentifier)
	}

	form := make(map[string]string, len(payload)+2)
	for k, v := range payload {
		form[k] = v
	}
	form["store_id"] = g.storeID
	form["store_passwd"] = g.storePassword

	log.Printf("[gateway][sslcommerz] init start tran_id=%s amount=%s", payload["tran_id"], payload["total_amount"])
	resp, err := g.http.R().SetContext(ctx).SetFormData(form).Post(initPath)
	if err != nil {
		log.Printf("[gateway][sslcommerz] init request failed tran_id=%s err=%v", payload["tran_id"], err)
		return entities.GatewayInitResult{}, err
	}

	var parsed struct {
		Status         string `json:"status"`
		FailedReason   string `json:"failedreason"`
		SessionKey     string `json:"sessionkey"`
		GatewayPageURL string `json:"GatewayPageURL"`
	}
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		log.Printf("[gateway][sslcommerz] init response unmarshal failed tran_id=%s err=%v", payload["tran_id"], err)
		return entities.GatewayInitResult{}, err
	}
	log.Printf("[gateway][sslcommerz] init done tran_id=%s status=%s", payload["tran_id"], parsed.Status)

	return entities.GatewayInitResult{
		GatewayURL: parsed.GatewayPageURL,
		SessionKey: parsed.SessionKey,
		Raw:        json.RawMessage(resp.Body()),
	}, nil
}

// Validate re-checks a payment against the validator API by val_id.
func (g *SSLCommerzGateway) Validate(ctx context.Context, valID string) (json.RawMessage, error) {
	if strings.TrimSpace(valID) == "" {
		return nil, fmt.Errorf("%w: val_id", interfaces.ErrMissingIdentifier)
	}
	return g.getRaw(ctx, validatorPath, map[string]string{"val_id": valID})
}

func (g *SSLCommerzGateway) QueryByTranID(ctx context.Context, tranID string) (entities.GatewayQueryResult, error) {
	if strings.TrimSpace(tranID) == "" {
		return entities.GatewayQueryResult{}, fmt.Errorf("%w: tran_id", interfaces.ErrMissingIdentifier)
	}
	return g.query(ctx, map[string]string{"tran_id": tranID})
}

func (g *SSLCommerzGateway) QueryBySessionKey(ctx context.Context, sessionKey string) (entities.GatewayQueryResult, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return entities.GatewayQueryResult{}, fmt.Errorf("%w: sessionkey", interfaces.ErrMissingIdentifier)
	}
	return g.query(ctx, map[string]string{"sessionkey": sessionKey})
}

// InitiateRefund triggers a refund against a settled bank transaction.
func (g *SSLCommerzGateway) InitiateRefund(ctx context.Context, bankTranID, amount, remarks string) (json.RawMessage, error) {
	if strings.TrimSpace(bankTranID) == "" {
		return nil, fmt.Errorf("%w: bank_tran_id", interfaces.ErrMissingIdentifier)
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}
	return g.getRaw(ctx, queryPath, map[string]string{
		"bank_tran_id":   bankTranID,
		"refund_amount":  amount,
		"refund_remarks": remarks,
	})
}

func (g *SSLCommerzGateway) RefundQuery(ctx context.Context, refundRefID string) (json.RawMessage, error) {
	if strings.TrimSpace(refundRefID) == "" {
		return nil, fmt.Errorf("%w: refund_ref_id", interfaces.ErrMissingIdentifier)
	}
	return g.getRaw(ctx, queryPath, map[string]string{"refund_ref_id": refundRefID})
}

func (g *SSLCommerzGateway) query(ctx context.Context, params map[string]string) (entities.GatewayQueryResult, error) {
	raw, err := g.getRaw(ctx, queryPath, params)
	if err != nil {
		return entities.GatewayQueryResult{}, err
	}
	return parseQueryResult(raw)
}

func (g *SSLCommerzGateway) getRaw(ctx context.Context, path string, params map[string]string) (json.RawMessage, error) {
	query := map[string]string{
		"store_id":     g.storeID,
		"store_passwd": g.storePassword,
		"format":       "json",
	}
	for k, v := range params {
		query[k] = v
	}

	resp, err := g.http.R().SetContext(ctx).SetQueryParams(query).Get(path)
	if err != nil {
		log.Printf("[gateway][sslcommerz] request failed path=%s err=%v", path, err)
		return nil, err
	}
	return json.RawMessage(resp.Body()), nil
}

// parseQueryResult normalizes the two response shapes of the transaction
// query API: a flat object for a single match, or an element list when
// multiple transactions share the identifier.
func parseQueryResult(raw json.RawMessage) (entities.GatewayQueryResult, error) {
	var envelope map[string]interface{}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return entities.GatewayQueryResult{}, err
	}

	var elements []map[string]interface{}
	if list, ok := envelope["element"].([]interface{}); ok {
		for _, item := range list {
			if m, ok := item.(map[string]interface{}); ok {
				elements = append(elements, m)
			}
		}
	} else if _, ok := envelope["status"]; ok {
		elements = append(elements, envelope)
	}

	status := ""
	if len(elements) > 0 {
		if s, ok := elements[0]["status"].(string); ok {
			status = s
		}
	}

	return entities.GatewayQueryResult{Status: status, Elements: elements, Raw: raw}, nil
}

func validateAmount(amount string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return interfaces.ErrInvalidGatewayAmount
	}
	if !d.IsPositive() || d.Exponent() < -2 {
		return interfaces.ErrInvalidGatewayAmount
	}
	return nil
}
