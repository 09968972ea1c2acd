package handlers

import (
	"errors"
	"log"
	"net/http"

	request "unimarket/internal/adapter/http/dto/request"
	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler exposes the marketplace reporting surface. Reads are
// dispatched on the action query parameter to mirror the dashboard client.

type AnalyticsHandler struct {
	usecase usecase.IAnalyticsUseCase
}

func NewAnalyticsHandler(uc usecase.IAnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{usecase: uc}
}

// Get serves summary/analytics/sellers/categories/sync based on ?action=.
// An empty action defaults to summary.
func (h *AnalyticsHandler) Get(c *gin.Context) {
	action := c.DefaultQuery("action", "summary")
	ctx := c.Request.Context()

	switch action {
	case "summary":
		summary, err := h.usecase.GetTransactionSummary(ctx)
		if err != nil {
			log.Printf("[analytics][handler] summary failed err=%v", err)
			appErr := mapAnalyticsError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSummary(summary))
	case "analytics":
		rows, err := h.usecase.GetMarketplaceAnalytics(ctx)
		if err != nil {
			log.Printf("[analytics][handler] analytics failed err=%v", err)
			appErr := mapAnalyticsError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromMarketplaceAnalytics(rows))
	case "sellers":
		rows, err := h.usecase.GetSellerPerformance(ctx)
		if err != nil {
			log.Printf("[analytics][handler] sellers failed err=%v", err)
			appErr := mapAnalyticsError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromSellerPerformance(rows))
	case "categories":
		rows, err := h.usecase.GetCategoryPerformance(ctx)
		if err != nil {
			log.Printf("[analytics][handler] categories failed err=%v", err)
			appErr := mapAnalyticsError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.FromCategoryPerformance(rows))
	case "sync":
		if err := h.usecase.SyncCharges(ctx); err != nil {
			log.Printf("[analytics][handler] sync failed err=%v", err)
			appErr := mapAnalyticsError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.JSON(http.StatusOK, response.NewActionResponse("Charges synced"))
	default:
		log.Printf("[analytics][handler] unknown action=%s", action)
		appErr := pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown analytics action", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

// Post handles write actions; create_test_transaction is the only one.
func (h *AnalyticsHandler) Post(c *gin.Context) {
	var req request.AnalyticsActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[analytics][handler] post invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if req.Action != "create_test_transaction" {
		log.Printf("[analytics][handler] unknown post action=%s", req.Action)
		appErr := pkg.NewDomainErrorSimple("INVALID_ACTION", "Unknown analytics action", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateTestTransaction(c.Request.Context(), req.ToTestTransactionInput())
	if err != nil {
		log.Printf("[analytics][handler] test transaction failed err=%v", err)
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[analytics][handler] test transaction created charge_id=%s", created.ID)

	c.JSON(http.StatusCreated, gin.H{"success": true, "transaction": created})
}

// RefreshViews recreates the analytics views.
func (h *AnalyticsHandler) RefreshViews(c *gin.Context) {
	if err := h.usecase.RefreshViews(c.Request.Context()); err != nil {
		log.Printf("[analytics][handler] refresh-views failed err=%v", err)
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewActionResponse("Analytics views refreshed"))
}

func mapAnalyticsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAnalyticsAction):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
