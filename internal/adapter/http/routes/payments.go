package routes

import (
	"os"

	"dokan_payments/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathSSLCommerz = "/store/sslcommerz"
)

func addPaymentRoutes(r *gin.Engine, paymentHandler *handlers.PaymentHandler, callbackHandler *handlers.CallbackHandler, completionHandler *handlers.CompletionHandler) {
	store := r.Group(PathSSLCommerz, publishableKeyInjector(os.Getenv("COMMERCE_PUBLISHABLE_KEY")))
	{
		// The gateway hits init/success/fail/cancel with both verbs
		// depending on merchant panel configuration.
		store.POST("/init", paymentHandler.InitPayment)
		store.GET("/init", paymentHandler.InitPayment)

		store.POST("/success", callbackHandler.Success)
		store.GET("/success", callbackHandler.Success)
		store.POST("/fail", callbackHandler.Fail)
		store.GET("/fail", callbackHandler.Fail)
		store.POST("/cancel", callbackHandler.Cancel)
		store.GET("/cancel", callbackHandler.Cancel)
		store.POST("/ipn", callbackHandler.IPN)

		store.POST("/validate", paymentHandler.ValidateTransaction)
		store.POST("/refund-query", paymentHandler.RefundQuery)
		store.POST("/initiate-refund", paymentHandler.InitiateRefund)
		store.POST("/transaction-query-by-session", paymentHandler.QueryBySessionKey)
		store.POST("/transaction-query-by-tran", paymentHandler.QueryByTranID)

		store.POST("/complete", completionHandler.Complete)

		store.GET("/transactions/:id", paymentHandler.GetTransaction)
		store.GET("/transactions", paymentHandler.ListTransactionsByCart)
	}

	api := r.Group("/api")
	{
		api.POST("/clear-cart", completionHandler.ClearCart)
	}
}
