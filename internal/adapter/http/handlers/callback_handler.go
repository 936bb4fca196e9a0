package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strings"

	"dokan_payments/internal/adapter/http/dto/response"
	"dokan_payments/internal/domain/entities"
	"dokan_payments/internal/usecase"
	"dokan_payments/pkg"

	"github.com/gin-gonic/gin"
)

const storefrontCallbackPath = "/checkout/sslcommerz-callback"

// CallbackHandler receives the gateway's redirect callbacks (success, fail,
// cancel) and the server-to-server IPN. The redirect endpoints send the
// browser back to the storefront callback route carrying enough identifiers
// for it to recover cart context even when its cookies were lost across the
// gateway domain round trip.

type CallbackHandler struct {
	provider      usecase.IPaymentProviderUseCase
	storefrontURL string
}

func NewCallbackHandler(provider usecase.IPaymentProviderUseCase, storefrontURL string) *CallbackHandler {
	return &CallbackHandler{provider: provider, storefrontURL: strings.TrimRight(storefrontURL, "/")}
}

// Success handles the gateway redirect after a payment the gateway believes
// succeeded. The posted status is never trusted: the session is authorized
// by re-querying the gateway, and only an authorized verdict sends the
// browser to a success state.
func (h *CallbackHandler) Success(c *gin.Context) {
	tranID := extractCallbackTranID(c)
	if tranID == "" {
		log.Printf("[callback][handler] success without transaction id")
		appErr := pkg.NewDomainErrorSimple("MISSING_TRAN_ID", "No transaction id in callback", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] success callback tran_id=%s", tranID)

	status, session, err := h.authorize(c, tranID)
	if err != nil {
		// The browser must not land on a success page for a payment that
		// could not be verified.
		log.Printf("[callback][handler] authorization failed tran_id=%s err=%v", tranID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "AUTHORIZATION_FAILED",
			"message": "Payment could not be verified",
			"tran_id": tranID,
		})
		return
	}

	sslStatus := "failed"
	if status == entities.SessionStatusAuthorized {
		sslStatus = "success"
	}
	h.redirect(c, sslStatus, tranID, session.CartID)
}

// Fail handles the gateway redirect for a failed payment.
func (h *CallbackHandler) Fail(c *gin.Context) {
	h.terminalRedirect(c, "failed")
}

// Cancel handles the gateway redirect for a customer-canceled payment.
func (h *CallbackHandler) Cancel(c *gin.Context) {
	h.terminalRedirect(c, "cancelled")
}

// IPN handles the gateway's asynchronous server-to-server notification. It
// runs the same authorize path as Success; ordering against the browser
// redirect is not guaranteed and both must be safe to run.
func (h *CallbackHandler) IPN(c *gin.Context) {
	tranID := extractCallbackTranID(c)
	if tranID == "" {
		log.Printf("[callback][handler] ipn without transaction id")
		appErr := pkg.NewDomainErrorSimple("MISSING_TRAN_ID", "No transaction id in notification", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] ipn received tran_id=%s", tranID)

	if _, _, err := h.authorize(c, tranID); err != nil {
		log.Printf("[callback][handler] ipn authorization failed tran_id=%s err=%v", tranID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"code":    "AUTHORIZATION_FAILED",
			"message": "Payment could not be verified",
			"tran_id": tranID,
		})
		return
	}

	c.JSON(http.StatusOK, response.IPNResponse{Status: "ipn_received", TranID: tranID})
}

func (h *CallbackHandler) terminalRedirect(c *gin.Context, sslStatus string) {
	tranID := extractCallbackTranID(c)
	if tranID == "" {
		appErr := pkg.NewDomainErrorSimple("MISSING_TRAN_ID", "No transaction id in callback", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[callback][handler] %s callback tran_id=%s", sslStatus, tranID)

	cartID := ""
	if session, ok := h.provider.ResolveSession(c.Request.Context(), tranID); ok {
		cartID = session.CartID
	}
	h.redirect(c, sslStatus, tranID, cartID)
}

func (h *CallbackHandler) authorize(c *gin.Context, tranID string) (entities.SessionStatus, entities.PaymentSession, error) {
	session, ok := h.provider.ResolveSession(c.Request.Context(), tranID)
	if !ok {
		// Cache miss (expiry, restart); authorize works from the id alone.
		session = entities.PaymentSession{SessionID: tranID}
	}
	return h.provider.AuthorizePayment(c.Request.Context(), session)
}

func (h *CallbackHandler) redirect(c *gin.Context, sslStatus, tranID, cartID string) {
	q := url.Values{}
	q.Set("ssl_status", sslStatus)
	q.Set("ssl_tran_id", tranID)
	q.Set("session_id", tranID)
	if cartID != "" {
		q.Set("cart_id", cartID)
	}
	c.Redirect(http.StatusFound, h.storefrontURL+storefrontCallbackPath+"?"+q.Encode())
}

// extractCallbackTranID checks the identifier aliases in fixed order, body
// fields before query params. The gateway posts form-encoded bodies.
func extractCallbackTranID(c *gin.Context) string {
	keys := []string{"tran_id", "tranId", "session_id", "sessionId"}
	if c.Request.Method == http.MethodPost {
		for _, k := range keys {
			if v := strings.TrimSpace(c.PostForm(k)); v != "" {
				return v
			}
		}
	}
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}
