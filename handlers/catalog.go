package handlers

import (
	"net/http"
	"strings"

	catalogRepo "oficio/database/repository/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves catalog browse and detail endpoints.
type CatalogHandler struct {
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewCatalogHandler(repo catalogRepo.CatalogRepository, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: repo, Logger: logger}
}

// ListServicesHandler handles GET /api/catalog/services/:discipline.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	discipline := strings.ToLower(c.Param("discipline"))
	if discipline == "all" {
		discipline = ""
	}

	services, err := h.Catalog.ListByDiscipline(c.Request.Context(), discipline)
	if err != nil {
		h.Logger.Error("ListServices: failed to fetch services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch services",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, services)
}

// GetServiceByIDHandler handles POST /api/catalog/service-details.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	var body struct {
		ID string `json:"id" binding:"required"`
	}

	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("GetServiceByID: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	svc, err := h.Catalog.GetByID(c.Request.Context(), body.ID)
	if err != nil {
		h.Logger.Error("GetServiceByID: failed to fetch service", zap.String("serviceID", body.ID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "service not found",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, svc)
}
