package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/grocermatch/backend/internal/domain"
)

const defaultSemanticLimit = 10

// QueryService is the orchestration dependency of the HTTP layer
type QueryService interface {
	HandleQuery(ctx context.Context, rawQuery []string) (*domain.QueryResponse, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	queries  QueryService
	semantic domain.SemanticSearcher
}

// NewHandler creates a new HTTP handler
func NewHandler(queries QueryService, semantic domain.SemanticSearcher) *Handler {
	return &Handler{
		queries:  queries,
		semantic: semantic,
	}
}

// Home confirms the server is running
func (h *Handler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Product matching server is running")
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "grocermatch-backend",
		"version": "1.0.0",
	})
}

// Query handles token-matching requests. Malformed payloads (missing query
// field or elements that are not strings) are rejected with 400 instead of
// being treated as an empty query; data-source failures surface as 500 with
// the error's description and no partial results.
func (h *Handler) Query(c *gin.Context) {
	var request domain.QueryRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%v: %v", domain.ErrMalformedRequest, err),
		})
		return
	}
	if request.Query == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%v: query must be a list of strings", domain.ErrMalformedRequest),
		})
		return
	}

	response, err := h.queries.HandleQuery(c.Request.Context(), request.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// SemanticSearch runs a ranked similarity query against the semantic index
func (h *Handler) SemanticSearch(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("%v: missing q parameter", domain.ErrMalformedRequest),
		})
		return
	}

	limit := defaultSemanticLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": fmt.Sprintf("%v: limit must be a positive integer", domain.ErrMalformedRequest),
			})
			return
		}
		limit = parsed
	}

	hits, err := h.semantic.Query(c.Request.Context(), query, limit)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrIndexUnavailable) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": hits})
}
