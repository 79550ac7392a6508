package handlers

import (
	"net/http"

	"oficio/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles GET /health.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
