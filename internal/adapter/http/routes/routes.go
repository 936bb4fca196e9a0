package routes

import (
	"log"
	"os"
	"strconv"

	_ "dokan_payments/docs" // This will be auto-generated
	"dokan_payments/internal/adapter/http/handlers"
	repository2 "dokan_payments/internal/adapter/persistence/repository"
	"dokan_payments/internal/infrastructure/cache"
	"dokan_payments/internal/infrastructure/commerce"
	"dokan_payments/internal/infrastructure/database"
	"dokan_payments/internal/infrastructure/payments"
	"dokan_payments/internal/usecase"
	"dokan_payments/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	sessionStore := cache.NewSessionStoreFromEnv()

	ddb := database.ConnectDynamoDB()
	recordRepo := repository2.NewTransactionRecordDynamoRepository(ddb)

	var gateway interfaces.IGatewayClient
	sslcz, err := payments.NewSSLCommerzGateway(
		os.Getenv("SSLCOMMERZ_STORE_ID"),
		os.Getenv("SSLCOMMERZ_STORE_PASSWORD"),
		os.Getenv("SSLCOMMERZ_MODE"),
	)
	if err != nil {
		log.Printf("SSLCommerz gateway not configured: %v", err)
	} else {
		gateway = sslcz
	}

	providerCfg, err := usecase.NewProviderConfigFromEnv()
	if err != nil {
		// A session the customer cannot return from is unusable; refuse to start.
		log.Fatalf("payment provider misconfigured: %v", err)
	}
	provider := usecase.NewPaymentProviderUseCase(gateway, sessionStore, recordRepo, providerCfg)

	var commerceClient interfaces.ICommerceClient
	storefront, err := commerce.NewStorefrontClient(
		os.Getenv("COMMERCE_BACKEND_URL"),
		os.Getenv("COMMERCE_PUBLISHABLE_KEY"),
	)
	if err != nil {
		log.Printf("Commerce backend not configured: %v", err)
	} else {
		commerceClient = storefront
	}
	completion := usecase.NewOrderCompletionUseCase(commerceClient, sessionStore, usecase.NewCompletionConfigFromEnv())

	paymentHandler := handlers.NewPaymentHandler(provider, gateway, recordRepo)
	callbackHandler := handlers.NewCallbackHandler(provider, os.Getenv("STOREFRONT_URL"))
	completionHandler := handlers.NewCompletionHandler(completion)

	addPingRoutes(router.Group("/"))
	addPaymentRoutes(router, paymentHandler, callbackHandler, completionHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// publishableKeyInjector sets the publishable-key header the storefront
// framework's request validation expects. The gateway's server-to-server
// callbacks do not carry it, so it is injected from configuration before
// anything downstream runs.
func publishableKeyInjector(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key != "" && c.GetHeader("x-publishable-api-key") == "" {
			c.Request.Header.Set("x-publishable-api-key", key)
		}
		c.Next()
	}
}
