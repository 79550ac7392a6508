package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler wired in main.
type HandlerBundle struct {
	// Catalog endpoints.
	ListServicesHandler   gin.HandlerFunc
	GetServiceByIDHandler gin.HandlerFunc

	// Quote endpoints.
	PreviewQuoteHandler gin.HandlerFunc

	// Search endpoints.
	SearchHandler gin.HandlerFunc

	// Lead endpoints.
	CreateLeadHandler       gin.HandlerFunc
	GetLeadHandler          gin.HandlerFunc
	ListClientLeadsHandler  gin.HandlerFunc
	UpdateLeadStatusHandler gin.HandlerFunc
}
