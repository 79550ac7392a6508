package routes

import (
	"net/http"
	"time"

	"oficio/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers catalog browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services/:discipline", hb.ListServicesHandler)
		api.POST("/service-details", hb.GetServiceByIDHandler)
	}
}

// RegisterQuoteRoutes registers the quote preview endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("/preview", hb.PreviewQuoteHandler)
	}
}

// RegisterSearchRoutes registers the hybrid search endpoint.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/search")
	{
		api.GET("", hb.SearchHandler)
	}
}

// RegisterLeadRoutes registers lead submission and lifecycle endpoints.
func RegisterLeadRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/leads")
	{
		api.POST("", hb.CreateLeadHandler)
		api.GET("/:id", hb.GetLeadHandler)
		api.GET("/client/:clientId", hb.ListClientLeadsHandler)
		api.PATCH("/:id/status", hb.UpdateLeadStatusHandler)
	}
}

// RegisterRoutes wires CORS, health and every API group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", handlers.HealthHandler)
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	RegisterCatalogRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterSearchRoutes(r, hb)
	RegisterLeadRoutes(r, hb)
}
