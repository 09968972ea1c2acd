package routes

import (
	"log"
	"os"
	"strconv"

	_ "unimarket/docs" // This will be auto-generated
	"unimarket/internal/adapter/http/handlers"
	repository2 "unimarket/internal/adapter/persistence/repository"
	"unimarket/internal/infrastructure/database"
	"unimarket/internal/infrastructure/payments"
	"unimarket/internal/infrastructure/storage"
	"unimarket/internal/usecase"
	"unimarket/internal/usecase/interfaces"

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
	db := database.ConnectPostgres()

	listingRepo := repository2.NewListingPostgresRepository(db)
	messageRepo := repository2.NewMessagePostgresRepository(db)
	accountRepo := repository2.NewConnectedAccountPostgresRepository(db)
	chargeRepo := repository2.NewDirectChargePostgresRepository(db)
	analyticsRepo := repository2.NewAnalyticsPostgresRepository(db)
	profileRepo := repository2.NewProfilePostgresRepository(db)

	var paymentGateway interfaces.IPaymentGateway
	stripeGateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"))
	if err != nil {
		log.Printf("Stripe gateway not configured: %v", err)
	} else {
		paymentGateway = stripeGateway
	}

	fileStorage := storage.NewS3FileStorage(storage.ConnectS3())

	listingUseCase := usecase.NewListingUseCase(listingRepo)
	messageUseCase := usecase.NewMessageUseCase(messageRepo)
	connectUseCase := usecase.NewConnectAccountUseCase(accountRepo, chargeRepo, paymentGateway)
	checkoutUseCase := usecase.NewCheckoutUseCase(chargeRepo, listingRepo, paymentGateway)
	analyticsUseCase := usecase.NewAnalyticsUseCase(analyticsRepo, chargeRepo)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)

	listingHandler := handlers.NewListingHandler(listingUseCase)
	messageHandler := handlers.NewMessageHandler(messageUseCase)
	connectHandler := handlers.NewConnectAccountHandler(connectUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	uploadHandler := handlers.NewUploadHandler(fileStorage)
	adminHandler := handlers.NewAdminHandler(listingUseCase, analyticsUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, listingHandler, messageHandler, uploadHandler)
	addPaymentRoutes(v1, connectHandler, checkoutHandler)
	addAnalyticsRoutes(v1, analyticsHandler, adminHandler)
	addProfileRoutes(v1, profileHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
