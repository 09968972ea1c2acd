package handlers

import (
	"fmt"
	"log"
	"net/http"

	request "unimarket/internal/adapter/http/dto/request"
	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes one-off maintenance actions.

type AdminHandler struct {
	listings  usecase.IListingUseCase
	analytics usecase.IAnalyticsUseCase
}

func NewAdminHandler(listings usecase.IListingUseCase, analytics usecase.IAnalyticsUseCase) *AdminHandler {
	return &AdminHandler{listings: listings, analytics: analytics}
}

// BackfillAccounts assigns seller account ids to listings created before
// payment onboarding existed.
func (h *AdminHandler) BackfillAccounts(c *gin.Context) {
	updated, err := h.listings.BackfillSellerAccounts(c.Request.Context())
	if err != nil {
		log.Printf("[admin][handler] backfill failed updated=%d err=%v", updated, err)
		appErr := pkg.NewDomainError("BACKFILL_FAILED", "Failed to backfill seller accounts", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] backfill success updated=%d", updated)

	c.JSON(http.StatusOK, response.BackfillResponse{
		Success: true,
		Updated: updated,
		Message: fmt.Sprintf("Assigned seller accounts to %d listings", updated),
	})
}

// LinkTransaction attaches a listing to an existing charge record.
func (h *AdminHandler) LinkTransaction(c *gin.Context) {
	var req request.LinkTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin][handler] link invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	linked, err := h.analytics.LinkTransaction(c.Request.Context(), req.TransactionID, req.ListingID)
	if err != nil {
		log.Printf("[admin][handler] link failed transaction_id=%s err=%v", req.TransactionID, err)
		appErr := mapAnalyticsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[admin][handler] link success transaction_id=%s listing_id=%s", linked.ID, req.ListingID)

	c.JSON(http.StatusOK, gin.H{"success": true, "transaction": linked})
}
