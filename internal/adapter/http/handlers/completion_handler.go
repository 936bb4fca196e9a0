package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"dokan_payments/internal/adapter/http/dto/request"
	"dokan_payments/internal/usecase"
	"dokan_payments/pkg"

	"github.com/gin-gonic/gin"
)

const cartCookieName = "_dokan_cart_id"

// CompletionHandler is the storefront-facing surface of the order
// completion reconciler.

type CompletionHandler struct {
	usecase usecase.IOrderCompletionUseCase
}

func NewCompletionHandler(uc usecase.IOrderCompletionUseCase) *CompletionHandler {
	return &CompletionHandler{usecase: uc}
}

// Complete finalizes the order for a cart after a successful gateway
// redirect. The cart id falls back to the same-site cookie when the request
// body lacks it; the reconciler itself has the server-side session lookup as
// the last resort.
func (h *CompletionHandler) Complete(c *gin.Context) {
	var req request.CompleteOrderRequest
	// Query params are an accepted alternative to a JSON body.
	_ = c.ShouldBindJSON(&req)
	if req.CartID == "" {
		req.CartID = c.Query("cart_id")
	}
	if req.TranID == "" {
		req.TranID = c.Query("tran_id")
	}
	if req.CartID == "" {
		if v, err := c.Cookie(cartCookieName); err == nil {
			req.CartID = v
		}
	}
	log.Printf("[completion][handler] start cart_id=%s tran_id=%s", req.CartID, req.TranID)

	outcome, err := h.usecase.Complete(c.Request.Context(), usecase.CompletionInput{
		CartID: strings.TrimSpace(req.CartID),
		TranID: strings.TrimSpace(req.TranID),
	})
	if err != nil {
		log.Printf("[completion][handler] failed cart_id=%s tran_id=%s err=%v", req.CartID, req.TranID, err)
		appErr := mapCompletionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[completion][handler] done cart_id=%s already_completed=%t has_order=%t", req.CartID, outcome.AlreadyCompleted, outcome.Order != nil)

	c.JSON(http.StatusOK, outcome)
}

// ClearCart expires the httpOnly cart cookie server-side; browser JS cannot
// clear it directly after order completion.
func (h *CompletionHandler) ClearCart(c *gin.Context) {
	c.SetCookie(cartCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

func mapCompletionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCartNotResolvable):
		return pkg.NewDomainErrorSimple("CART_NOT_RESOLVABLE", "No cart could be resolved for this payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCartUnavailable):
		return pkg.NewDomainErrorSimple("CART_UNAVAILABLE", "Cart could not be retrieved", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCompletionFailed):
		return pkg.NewDomainErrorSimple("COMPLETION_FAILED", "Cart completion did not produce an order", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
