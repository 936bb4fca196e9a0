package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"dokan_payments/internal/adapter/http/dto/request"
	"dokan_payments/internal/adapter/http/dto/response"
	"dokan_payments/internal/usecase"
	"dokan_payments/internal/usecase/interfaces"
	"dokan_payments/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles checkout initiation, the gateway pass-through
// endpoints, and the transaction audit lookups.

type PaymentHandler struct {
	provider usecase.IPaymentProviderUseCase
	gateway  interfaces.IGatewayClient
	records  interfaces.ITransactionRecordRepository
}

func NewPaymentHandler(provider usecase.IPaymentProviderUseCase, gateway interfaces.IGatewayClient, records interfaces.ITransactionRecordRepository) *PaymentHandler {
	return &PaymentHandler{provider: provider, gateway: gateway, records: records}
}

// InitPayment creates a gateway payment session and returns the redirect URL.
func (h *PaymentHandler) InitPayment(c *gin.Context) {
	req := readInitRequest(c)
	tranID := req.ResolveTranID()
	log.Printf("[payment][handler] init start tran_id=%s cart_id=%s", tranID, req.CartID)

	if tranID == "" || req.TotalAmount == nil {
		log.Printf("[payment][handler] init rejected: missing tran_id or total_amount")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "tran_id and total_amount are required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.provider.InitiatePayment(c.Request.Context(), req.TotalAmount, req.Currency, usecase.PaymentContext{
		IdempotencyKey: tranID,
		CartID:         req.CartID,
		Email:          req.CustomerEmail,
		CustomerName:   req.CustomerName,
		CustomerPhone:  req.CustomerPhone,
	})
	if err != nil {
		log.Printf("[payment][handler] init failed tran_id=%s err=%v", tranID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] init success tran_id=%s", result.ID)

	c.JSON(http.StatusOK, response.FromInitiateResult(result))
}

// ValidateTransaction proxies the gateway validator API.
func (h *PaymentHandler) ValidateTransaction(c *gin.Context) {
	h.passthrough(c, "val_id", func(req request.IdentifierRequest) (interface{}, error) {
		if strings.TrimSpace(req.ValID) == "" {
			return nil, interfaces.ErrMissingIdentifier
		}
		return h.gateway.Validate(c.Request.Context(), req.ValID)
	})
}

// RefundQuery proxies a refund status lookup.
func (h *PaymentHandler) RefundQuery(c *gin.Context) {
	h.passthrough(c, "refund_ref_id", func(req request.IdentifierRequest) (interface{}, error) {
		if strings.TrimSpace(req.RefundRefID) == "" {
			return nil, interfaces.ErrMissingIdentifier
		}
		return h.gateway.RefundQuery(c.Request.Context(), req.RefundRefID)
	})
}

// InitiateRefund triggers a refund against a bank transaction id.
func (h *PaymentHandler) InitiateRefund(c *gin.Context) {
	var req request.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if strings.TrimSpace(req.BankTranID) == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_IDENTIFIER", "bank_tran_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	amount, err := usecase.NormalizeAmount(req.RefundAmount)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	raw, err := h.gateway.InitiateRefund(c.Request.Context(), req.BankTranID, amount, req.Remarks)
	if err != nil {
		log.Printf("[payment][handler] refund initiate failed bank_tran_id=%s err=%v", req.BankTranID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// QueryBySessionKey proxies the transaction query API by session key.
func (h *PaymentHandler) QueryBySessionKey(c *gin.Context) {
	h.passthrough(c, "sessionkey", func(req request.IdentifierRequest) (interface{}, error) {
		if strings.TrimSpace(req.SessionKey) == "" {
			return nil, interfaces.ErrMissingIdentifier
		}
		return h.gateway.QueryBySessionKey(c.Request.Context(), req.SessionKey)
	})
}

// QueryByTranID proxies the transaction query API by transaction id.
func (h *PaymentHandler) QueryByTranID(c *gin.Context) {
	h.passthrough(c, "tran_id", func(req request.IdentifierRequest) (interface{}, error) {
		if strings.TrimSpace(req.TranID) == "" {
			return nil, interfaces.ErrMissingIdentifier
		}
		return h.gateway.QueryByTranID(c.Request.Context(), req.TranID)
	})
}

// GetTransaction serves the durable audit record by session id.
func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	id := c.Param("id")
	rec, err := h.records.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] transaction lookup failed id=%s err=%v", id, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if rec.ID == "" {
		appErr := pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransactionRecord(rec))
}

// ListTransactionsByCart serves the audit records for a cart.
func (h *PaymentHandler) ListTransactionsByCart(c *gin.Context) {
	cartID := strings.TrimSpace(c.Query("cart_id"))
	if cartID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_IDENTIFIER", "cart_id is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	recs, err := h.records.ListByCartID(c.Request.Context(), cartID)
	if err != nil {
		log.Printf("[payment][handler] transaction list failed cart_id=%s err=%v", cartID, err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.TransactionRecordResponse, 0, len(recs))
	for _, rec := range recs {
		out = append(out, response.FromTransactionRecord(rec))
	}
	c.JSON(http.StatusOK, gin.H{"transactions": out})
}

func (h *PaymentHandler) passthrough(c *gin.Context, field string, call func(request.IdentifierRequest) (interface{}, error)) {
	var req request.IdentifierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out, err := call(req)
	if err != nil {
		if errors.Is(err, interfaces.ErrMissingIdentifier) {
			appErr := pkg.NewDomainErrorSimple("MISSING_IDENTIFIER", field+" is required", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Printf("[payment][handler] passthrough failed field=%s err=%v", field, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, out)
}

// readInitRequest accepts JSON bodies, form posts, and plain query params;
// query values fill whatever the body left empty.
func readInitRequest(c *gin.Context) request.InitPaymentRequest {
	var req request.InitPaymentRequest
	if c.Request.Method == http.MethodPost {
		if strings.Contains(c.ContentType(), "json") {
			_ = c.ShouldBindJSON(&req)
		} else {
			req.TranID = c.PostForm("tran_id")
			if v := c.PostForm("total_amount"); v != "" {
				req.TotalAmount = v
			}
			req.Currency = c.PostForm("currency")
			req.CartID = c.PostForm("cart_id")
			req.CustomerName = c.PostForm("cus_name")
			req.CustomerEmail = c.PostForm("cus_email")
			req.CustomerPhone = c.PostForm("cus_phone")
		}
	}

	if req.TranID == "" {
		req.TranID = c.Query("tran_id")
	}
	if req.TotalAmount == nil {
		if v := c.Query("total_amount"); v != "" {
			req.TotalAmount = v
		}
	}
	if req.Currency == "" {
		req.Currency = c.Query("currency")
	}
	if req.CartID == "" {
		req.CartID = c.Query("cart_id")
	}
	if req.CustomerName == "" {
		req.CustomerName = c.Query("cus_name")
	}
	if req.CustomerEmail == "" {
		req.CustomerEmail = c.Query("cus_email")
	}
	if req.CustomerPhone == "" {
		req.CustomerPhone = c.Query("cus_phone")
	}
	return req
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, interfaces.ErrInvalidGatewayAmount),
		errors.Is(err, interfaces.ErrMissingIdentifier), errors.Is(err, usecase.ErrMissingSessionTranID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingGatewayURL):
		return pkg.NewDomainErrorSimple("GATEWAY_NO_REDIRECT", "Payment gateway did not return a redirect URL", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
