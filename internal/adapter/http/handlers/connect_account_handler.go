package handlers

import (
	"errors"
	"log"
	"net/http"

	response "unimarket/internal/adapter/http/dto/response"
	"unimarket/internal/usecase"
	"unimarket/pkg"

	"github.com/gin-gonic/gin"
)

// ConnectAccountHandler handles payment onboarding for sellers.

type ConnectAccountHandler struct {
	usecase usecase.IConnectAccountUseCase
}

func NewConnectAccountHandler(uc usecase.IConnectAccountUseCase) *ConnectAccountHandler {
	return &ConnectAccountHandler{usecase: uc}
}

// CreateAccount provisions a provider sub-account for the authenticated user
// and returns the hosted onboarding URL.
func (h *ConnectAccountHandler) CreateAccount(c *gin.Context) {
	userID := currentUserID(c)
	log.Printf("[connect][handler] create start user_id=%s", userID)

	result, err := h.usecase.CreateConnectAccount(c.Request.Context(), userID)
	if err != nil {
		log.Printf("[connect][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapConnectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[connect][handler] create success user_id=%s account_id=%s", userID, result.AccountID)

	c.JSON(http.StatusOK, response.FromOnboardingResult(result))
}

// GetStatus reconciles the provider account state with the local record and
// returns the derived status. Missing account or user is a valid empty state.
func (h *ConnectAccountHandler) GetStatus(c *gin.Context) {
	accountID := c.Query("account_id")
	userID := currentUserID(c)

	status, err := h.usecase.GetConnectStatus(c.Request.Context(), accountID, userID)
	if err != nil {
		log.Printf("[connect][handler] status failed user_id=%s account_id=%s err=%v", userID, accountID, err)
		appErr := mapConnectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromConnectStatus(status))
}

// Disconnect removes the local account record. The provider sub-account is
// left in place.
func (h *ConnectAccountHandler) Disconnect(c *gin.Context) {
	accountID := c.Param("accountId")
	log.Printf("[connect][handler] disconnect start account_id=%s", accountID)

	if err := h.usecase.DisconnectAccount(c.Request.Context(), accountID); err != nil {
		log.Printf("[connect][handler] disconnect failed account_id=%s err=%v", accountID, err)
		appErr := mapConnectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[connect][handler] disconnect success account_id=%s", accountID)

	c.JSON(http.StatusOK, response.NewActionResponse("Account disconnected"))
}

// RefreshLink issues a fresh onboarding link for an account that abandoned or
// expired its previous one.
func (h *ConnectAccountHandler) RefreshLink(c *gin.Context) {
	accountID := c.Param("accountId")

	url, err := h.usecase.RefreshAccountLink(c.Request.Context(), accountID)
	if err != nil {
		log.Printf("[connect][handler] refresh-link failed account_id=%s err=%v", accountID, err)
		appErr := mapConnectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AccountLinkResponse{Success: true, URL: url})
}

// SyncTransactions pulls provider charges into the local transaction table.
func (h *ConnectAccountHandler) SyncTransactions(c *gin.Context) {
	if err := h.usecase.SyncTransactions(c.Request.Context()); err != nil {
		log.Printf("[connect][handler] sync failed err=%v", err)
		appErr := mapConnectError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NewActionResponse("Transactions synced"))
}

// currentUserID resolves the caller identity set by the auth middleware,
// falling back to an explicit query parameter for unauthenticated reads.
func currentUserID(c *gin.Context) string {
	if id := c.GetString("userID"); id != "" {
		return id
	}
	return c.Query("user_id")
}

func mapConnectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "User not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidAccountID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDisconnectFailed):
		return pkg.NewDomainErrorSimple("DISCONNECT_FAILED", "Failed to disconnect account", http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
