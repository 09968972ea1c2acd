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

// ProfileHandler handles user profile updates.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// UpdateProfile upserts the authenticated user's profile.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := currentUserID(c)
	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[profile][handler] update invalid payload user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	profile, err := h.usecase.UpdateProfile(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		log.Printf("[profile][handler] update failed user_id=%s err=%v", userID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[profile][handler] update success user_id=%s", userID)

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		return pkg.NewDomainErrorSimple("NOT_AUTHENTICATED", "User not authenticated", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidProfilePayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Internal server error", err, http.StatusInternalServerError)
	}
}
