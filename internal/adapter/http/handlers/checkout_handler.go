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

// CheckoutHandler handles checkout session creation and completion.

type CheckoutHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewCheckoutHandler(uc usecase.ICheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateSession opens a provider-hosted checkout session for a listing and
// returns its redirect URL.
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req request.CreateCheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[checkout][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create start account_id=%s amount=%d post_id=%s",
		req.AccountID, req.Amount, req.ProductInfo.PostID)

	session, err := h.usecase.CreateSession(c.Request.Context(), req.ToInput())
	if err != nil {
		log.Printf("[checkout][handler] create failed account_id=%s err=%v", req.AccountID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] create success session_id=%s", session.ID)

	c.JSON(http.StatusOK, response.FromCheckoutSessionCreated(session))
}

// GetSession retrieves a session from the provider and, when payment has
// settled, finalizes the local charge and marks the listing sold.
func (h *CheckoutHandler) GetSession(c *gin.Context) {
	sessionID := c.Param("sessionId")

	session, err := h.usecase.CompleteSession(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[checkout][handler] get failed session_id=%s err=%v", sessionID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] get success session_id=%s payment_status=%s", session.ID, session.PaymentStatus)

	c.JSON(http.StatusOK, response.FromCheckoutSessionDetail(session))
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingConnectedAccount), errors.Is(err, usecase.ErrAmountBelowMinimum), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidConnectedAccount):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_READY", "Seller account is not properly set up for payments", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Checkout session not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
