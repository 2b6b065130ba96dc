// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lifestore/lifestore-api/internal/adapters/http/dto"
	"github.com/lifestore/lifestore-api/internal/app"
)

// QuoteHandler handles quote generation HTTP endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{
		service: service,
	}
}

// GenerateQuote handles POST /quote and POST /api/quote.
// Returns a single validated quote for the question in the request body.
func (h *QuoteHandler) GenerateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBadRequest(c, dto.MessageMissingFields, err.Error())
		return
	}

	quote, err := h.service.GenerateQuote(c.Request.Context(), req.Query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteResponse{Quote: quote})
}

// GenerateQuoteList handles POST /api/quotes.
// Returns up to a handful of validated quotes, dropping malformed lines.
func (h *QuoteHandler) GenerateQuoteList(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBadRequest(c, dto.MessageMissingFields, err.Error())
		return
	}

	quotes, err := h.service.GenerateQuoteList(c.Request.Context(), req.Query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{Quotes: quotes})
}

// GenerateStructuredQuotes handles POST /api/quotes/structured.
// Returns quote records constrained to the book catalog.
func (h *QuoteHandler) GenerateStructuredQuotes(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBadRequest(c, dto.MessageMissingFields, err.Error())
		return
	}

	records, err := h.service.GenerateStructuredQuotes(c.Request.Context(), req.Query)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.QuoteListResponse{Quotes: records})
}
