package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/attriflow/backend/internal/domain"
	"github.com/attriflow/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	extractionService *usecase.ExtractionService
}

// NewHandler creates a new HTTP handler
func NewHandler(extractionService *usecase.ExtractionService) *Handler {
	return &Handler{
		extractionService: extractionService,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "attriflow-backend",
		"version": "1.0.0",
	})
}

// ExtractAttributes handles attribute extraction requests
func (h *Handler) ExtractAttributes(c *gin.Context) {
	var request domain.ExtractionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "text, division, and category are expected as JSON",
		})
		return
	}

	result, err := h.extractionService.ExtractAttributes(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Chat handles chat messages about previously extracted attributes
func (h *Handler) Chat(c *gin.Context) {
	var request domain.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	response, err := h.extractionService.Chat(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": response})
}

// UpdateAttributes asks the assistant to revise the attribute list
func (h *Handler) UpdateAttributes(c *gin.Context) {
	var request domain.UpdateAttributesRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	updated, err := h.extractionService.UpdateAttributes(c.Request.Context(), &request)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedAttributes": updated})
}

// respondError maps domain errors to HTTP responses. Internal detail never
// reaches the client; the extraction core fails closed, so anything here is
// either bad input or a collaborator failure.
func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingText), errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("[HTTP] request failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process request"})
	}
}
