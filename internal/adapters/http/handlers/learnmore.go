package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/adapters/http/dto"
	"github.com/lifestore/lifestore-api/internal/app"
)

// LearnMoreHandler handles the quote explanation HTTP endpoints.
type LearnMoreHandler struct {
	service *app.QuoteService
}

// NewLearnMoreHandler creates a new learn-more handler.
func NewLearnMoreHandler(service *app.QuoteService) *LearnMoreHandler {
	return &LearnMoreHandler{
		service: service,
	}
}

// Explain handles POST /learn-more and POST /api/learn-more.
// Returns HTML-formatted background on a previously generated quote: the
// author, the work, and how the quote relates to the user's question.
func (h *LearnMoreHandler) Explain(c *gin.Context) {
	var req dto.LearnMoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.HandleBadRequest(c, dto.MessageMissingFields, "invalid JSON body: "+err.Error())
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		dto.HandleBadRequest(c, dto.MessageMissingFields,
			"missing required fields: "+strings.Join(missing, ", "))
		return
	}

	content, err := h.service.ExplainQuote(c.Request.Context(), app.LearnMoreInput{
		Quote:        req.Quote,
		Philosopher:  req.Philosopher,
		Source:       req.Source,
		Year:         req.Year,
		AuthorInfo:   req.AuthorInfo,
		UserQuestion: req.UserQuestion,
	})
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ContentResponse{Content: content})
}
