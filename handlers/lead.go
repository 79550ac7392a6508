package handlers

import (
	"errors"
	"net/http"

	"oficio/models"
	"oficio/services/lead"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LeadHandler serves lead submission and lifecycle endpoints.
type LeadHandler struct {
	LeadSvc lead.LeadService
	Logger  *zap.Logger
}

func NewLeadHandler(svc lead.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{LeadSvc: svc, Logger: logger}
}

// CreateLeadHandler handles POST /api/leads.
func (h *LeadHandler) CreateLeadHandler(c *gin.Context) {
	var input models.LeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("CreateLead: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	created, err := h.LeadSvc.CreateLead(c.Request.Context(), input)
	if err != nil {
		var vErr *lead.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":      "lead validation failed",
				"validation": vErr.State,
			})
			return
		}
		h.Logger.Error("CreateLead: failed to create lead", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to create lead",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetLeadHandler handles GET /api/leads/:id.
func (h *LeadHandler) GetLeadHandler(c *gin.Context) {
	id := c.Param("id")

	found, err := h.LeadSvc.GetLead(c.Request.Context(), id)
	if err != nil {
		h.Logger.Error("GetLead: failed to fetch lead", zap.String("leadID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "lead not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, found)
}

// ListClientLeadsHandler handles GET /api/leads/client/:clientId.
func (h *LeadHandler) ListClientLeadsHandler(c *gin.Context) {
	clientID := c.Param("clientId")

	leads, err := h.LeadSvc.ListClientLeads(c.Request.Context(), clientID)
	if err != nil {
		h.Logger.Error("ListClientLeads: failed to fetch leads", zap.String("clientID", clientID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch leads",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, leads)
}

// UpdateLeadStatusHandler handles PATCH /api/leads/:id/status.
func (h *LeadHandler) UpdateLeadStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	updated, err := h.LeadSvc.UpdateLeadStatus(c.Request.Context(), id, body.Status)
	if err != nil {
		var sErr *lead.StatusError
		if errors.As(err, &sErr) {
			c.JSON(http.StatusConflict, gin.H{
				"error":   "invalid status transition",
				"message": sErr.Message,
			})
			return
		}
		h.Logger.Error("UpdateLeadStatus: failed to update lead", zap.String("leadID", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "lead not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, updated)
}
