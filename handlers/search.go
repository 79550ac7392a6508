package handlers

import (
	"net/http"

	"oficio/services/search"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SearchHandler serves the free-text marketplace search.
type SearchHandler struct {
	SearchSvc search.SearchService
	Logger    *zap.Logger
}

func NewSearchHandler(svc search.SearchService, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{SearchSvc: svc, Logger: logger}
}

// Search handles GET /api/search?q=<query>.
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.SearchSvc.Search(c.Request.Context(), query)
	if err != nil {
		h.Logger.Error("Search: query failed", zap.String("query", query), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "search failed",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	})
}
