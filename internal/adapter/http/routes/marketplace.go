package routes

import (
	"net/http"

	"unimarket/internal/adapter/http/handlers"
	"unimarket/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

const (
	PathListings = "/listings"
	PathMessages = "/messages"
	PathConnect  = "/connect"
	PathCheckout = "/checkout-session"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func addMarketplaceRoutes(rg *gin.RouterGroup, listingHandler *handlers.ListingHandler, messageHandler *handlers.MessageHandler, uploadHandler *handlers.UploadHandler) {
	listings := rg.Group(PathListings)
	{
		listings.POST("", listingHandler.CreateListing)
		listings.GET("", listingHandler.ListListings)
		listings.GET("/:id", listingHandler.GetListing)
		listings.PUT("/:id", listingHandler.UpdateListing)
		listings.DELETE("/:id", listingHandler.DeleteListing)
		listings.POST("/:id/sold", listingHandler.MarkListingSold)
	}

	messages := rg.Group(PathMessages)
	{
		messages.POST("", messageHandler.SendMessage)
		messages.GET("", messageHandler.ListMessages)
	}

	rg.POST("/upload", uploadHandler.Upload)
}

func addPaymentRoutes(rg *gin.RouterGroup, connectHandler *handlers.ConnectAccountHandler, checkoutHandler *handlers.CheckoutHandler) {
	connect := rg.Group(PathConnect)
	connect.Use(middleware.OptionalAuth())
	{
		connect.POST("/accounts", connectHandler.CreateAccount)
		connect.GET("/accounts/status", connectHandler.GetStatus)
		connect.DELETE("/accounts/:accountId", connectHandler.Disconnect)
		connect.POST("/accounts/:accountId/link", connectHandler.RefreshLink)
		connect.POST("/sync", connectHandler.SyncTransactions)
	}

	checkout := rg.Group(PathCheckout)
	{
		checkout.POST("", checkoutHandler.CreateSession)
		checkout.GET("/:sessionId", checkoutHandler.GetSession)
	}
}

func addAnalyticsRoutes(rg *gin.RouterGroup, analyticsHandler *handlers.AnalyticsHandler, adminHandler *handlers.AdminHandler) {
	analytics := rg.Group("/analytics")
	{
		analytics.GET("", analyticsHandler.Get)
		analytics.POST("", analyticsHandler.Post)
		analytics.POST("/refresh-views", analyticsHandler.RefreshViews)
	}

	admin := rg.Group("/admin")
	{
		admin.POST("/backfill-accounts", adminHandler.BackfillAccounts)
		admin.POST("/link-transaction", adminHandler.LinkTransaction)
	}
}

func addProfileRoutes(rg *gin.RouterGroup, profileHandler *handlers.ProfileHandler) {
	profile := rg.Group("/profile")
	profile.Use(middleware.RequireAuth())
	{
		profile.PUT("", profileHandler.UpdateProfile)
	}
}
