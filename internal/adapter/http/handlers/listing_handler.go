package handlers

import (
	"errors"
	"log"
	"net/http"

	request "unimarket/internal/adapter/http/dto/request"
	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/domain/entities"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

// ListingHandler handles HTTP requests for marketplace listings.

type ListingHandler struct {
	usecase usecase.IListingUseCase
}

func NewListingHandler(uc usecase.IListingUseCase) *ListingHandler {
	return &ListingHandler{usecase: uc}
}

// CreateListing creates a new listing for a seller.
func (h *ListingHandler) CreateListing(c *gin.Context) {
	var req request.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[listing][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateListing(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[listing][handler] create failed err=%v", err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[listing][handler] create success listing_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromListing(created))
}

// GetListing returns a single listing by id.
func (h *ListingHandler) GetListing(c *gin.Context) {
	id := c.Param("id")

	l, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[listing][handler] get failed listing_id=%s err=%v", id, err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListing(l))
}

// ListListings returns listings filtered by category, search term or seller email.
func (h *ListingHandler) ListListings(c *gin.Context) {
	filter := entities.ListingFilter{
		Category:    c.Query("category"),
		Search:      c.Query("search"),
		SellerEmail: c.Query("seller_email"),
	}

	listings, err := h.usecase.ListListings(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[listing][handler] list failed err=%v", err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromListings(listings))
}

// UpdateListing applies a full edit to an existing listing.
func (h *ListingHandler) UpdateListing(c *gin.Context) {
	id := c.Param("id")
	var req request.UpdateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[listing][handler] update invalid payload listing_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateListing(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		log.Printf("[listing][handler] update failed listing_id=%s err=%v", id, err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[listing][handler] update success listing_id=%s", updated.ID)

	c.JSON(http.StatusOK, response.FromListing(updated))
}

// DeleteListing removes a listing.
func (h *ListingHandler) DeleteListing(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.DeleteListing(c.Request.Context(), id); err != nil {
		log.Printf("[listing][handler] delete failed listing_id=%s err=%v", id, err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[listing][handler] delete success listing_id=%s", id)

	c.Status(http.StatusNoContent)
}

// MarkListingSold flips a listing to sold without going through checkout.
func (h *ListingHandler) MarkListingSold(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.MarkSold(c.Request.Context(), id); err != nil {
		log.Printf("[listing][handler] mark-sold failed listing_id=%s err=%v", id, err)
		appErr := mapListingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[listing][handler] mark-sold success listing_id=%s", id)

	c.JSON(http.StatusOK, response.NewActionResponse("Listing marked as sold"))
}

func mapListingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidListingID), errors.Is(err, usecase.ErrMissingListingFields), errors.Is(err, usecase.ErrInvalidListingPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrListingNotFound):
		return pkg.NewDomainErrorSimple("LISTING_NOT_FOUND", "Listing not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
