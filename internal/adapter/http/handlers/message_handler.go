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

// MessageHandler handles HTTP requests for buyer/seller messages.

type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

// SendMessage records a message between a buyer and a seller about a listing.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req request.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[message][handler] send invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.SendMessage(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[message][handler] send failed listing_id=%s err=%v", req.ListingID, err)
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[message][handler] send success message_id=%s listing_id=%s", created.ID, created.ListingID)

	c.JSON(http.StatusCreated, response.FromMessage(created))
}

// ListMessages returns every message where the given email is buyer or seller.
// An empty email yields an empty list, not an error.
func (h *MessageHandler) ListMessages(c *gin.Context) {
	email := c.Query("user_email")

	messages, err := h.usecase.ListForUser(c.Request.Context(), email)
	if err != nil {
		log.Printf("[message][handler] list failed email=%s err=%v", email, err)
		appErr := mapMessageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMessages(messages))
}

func mapMessageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingMessageFields):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
