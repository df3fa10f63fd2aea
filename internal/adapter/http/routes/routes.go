package routes

import (
	"log"
	"os"
	"strconv"

	_ "payflow/docs" // swag-generated swagger definitions
	"payflow/internal/adapter/http/handlers"
	"payflow/internal/adapter/persistence/repository"
	"payflow/internal/infrastructure/database"
	"payflow/internal/infrastructure/gateways"
	"payflow/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// PaymentRoutePrefix is where resume endpoints live; token target URLs point
// into this group.
const PaymentRoutePrefix = "payment"

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
	ddb := database.ConnectDynamoDB()

	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	tokenRepo := repository.NewTokenDynamoRepository(ddb)
	stash := repository.NewSessionStashDynamoRepository(ddb)

	baseURL := getenvDefault("BASE_URL", "http://localhost:8080")
	tokenFactory := usecase.NewTokenFactory(tokenRepo, baseURL, PaymentRoutePrefix)
	verifier := usecase.NewRequestVerifier(tokenRepo)

	registry := gateways.NewRegistry()
	registry.Register("offline", gateways.NewOfflineGateway())
	if mpGateway, err := gateways.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		registry.Register("mercadopago", mpGateway)
	}
	log.Printf("[flow][routes] gateways registered: %v", registry.Names())

	flowUseCase := usecase.NewPaymentFlowUseCase(registry, paymentRepo, tokenFactory, verifier, stash, usecase.NewReplyConverter())
	flowHandler := handlers.NewPaymentFlowHandler(flowUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPrepareRoutes(v1, flowHandler)

	resume := router.Group("/" + PaymentRoutePrefix)
	addResumeRoutes(resume, flowHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
