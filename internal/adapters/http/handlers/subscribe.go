package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/adapters/http/dto"
	"github.com/lifestore/lifestore-api/internal/app"
	"github.com/lifestore/lifestore-api/internal/domain"
)

// SubscribeHandler handles the mailing list HTTP endpoints.
//
// Unlike the quote endpoints, this surface uses a plain {message} body for
// both success and failure: the subscription form renders the message
// directly.
type SubscribeHandler struct {
	service *app.SubscriptionService
}

// NewSubscribeHandler creates a new subscription handler.
func NewSubscribeHandler(service *app.SubscriptionService) *SubscribeHandler {
	return &SubscribeHandler{
		service: service,
	}
}

// Subscribe handles POST /subscribe and POST /api/subscribe.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" {
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})
		return
	}

	err := h.service.Subscribe(c.Request.Context(), req.Email)

	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.MessageResponse{Message: "Subscription successful!"})

	case domain.IsValidation(err):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: "Email is required"})

	default:
		c.JSON(http.StatusInternalServerError, dto.MessageResponse{
			Message: "An error occurred. Please try again.",
		})
	}
}
