package handlers

import (
	"net/http"

	"oficio/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// QuoteHandler serves quote previews for the lead form.
type QuoteHandler struct {
	QuoteSvc pricing.QuoteService
	Logger   *zap.Logger
}

func NewQuoteHandler(svc pricing.QuoteService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{QuoteSvc: svc, Logger: logger}
}

// PreviewQuoteHandler handles POST /api/quotes/preview. The client calls this
// on every form change, so the response carries the full itemized breakdown.
func (h *QuoteHandler) PreviewQuoteHandler(c *gin.Context) {
	var body struct {
		ServiceID string         `json:"service_id" binding:"required"`
		FormData  map[string]any `json:"form_data"`
		Immediate bool           `json:"immediate"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("PreviewQuote: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	quote, svc, err := h.QuoteSvc.PreviewQuote(c.Request.Context(), body.ServiceID, body.FormData, body.Immediate)
	if err != nil {
		h.Logger.Error("PreviewQuote: failed to compute quote", zap.String("serviceID", body.ServiceID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "service not found or pricing error",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quote":   quote,
		"service": svc,
	})
}
