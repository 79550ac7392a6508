// File: oficio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"oficio/config"
	"oficio/cron"
	"oficio/database"
	catalogRepo "oficio/database/repository/catalog"
	leadRepoPkg "oficio/database/repository/lead"
	professionalRepo "oficio/database/repository/professional"
	"oficio/handlers"
	"oficio/middleware"
	"oficio/routes"
	"oficio/services/lead"
	"oficio/services/notification"
	"oficio/services/pricing"
	"oficio/services/search"
	"oficio/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catRepo := catalogRepo.NewMongoCatalogRepo()
	proRepo := professionalRepo.NewMongoProfessionalRepo()
	leadRepo := leadRepoPkg.NewMongoLeadRepo()

	if err := catRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure catalog indexes: %v", err)
	}

	// services.
	quoteService := &pricing.DefaultQuoteService{
		Catalog: catRepo,
	}

	searchService := &search.DefaultSearchService{
		Catalog:       catRepo,
		Professionals: proRepo,
		Embedder:      search.NewGeminiEmbedder(config.AppConfig.GeminiAPIKey),
		Cache:         search.NewRedisEmbeddingCache(utils.GetCacheClient()),
		Logger:        logger,
	}

	reminderClient := cron.NewReminderClient()
	leadService := &lead.DefaultLeadService{
		Repo:     leadRepo,
		Catalog:  catRepo,
		Enqueuer: reminderClient,
		Logger:   logger,
	}

	notifier := &notification.LogNotifier{Logger: logger}
	cron.InitReminderWorker(notifier)

	catalogHandler := handlers.NewCatalogHandler(catRepo, logger)
	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger)
	leadHandler := handlers.NewLeadHandler(leadService, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServicesHandler:   catalogHandler.ListServicesHandler,
		GetServiceByIDHandler: catalogHandler.GetServiceByIDHandler,

		// Quote endpoints.
		PreviewQuoteHandler: quoteHandler.PreviewQuoteHandler,

		// Search endpoints.
		SearchHandler: searchHandler.Search,

		// Lead endpoints.
		CreateLeadHandler:       leadHandler.CreateLeadHandler,
		GetLeadHandler:          leadHandler.GetLeadHandler,
		ListClientLeadsHandler:  leadHandler.ListClientLeadsHandler,
		UpdateLeadStatusHandler: leadHandler.UpdateLeadStatusHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	if err := reminderClient.Close(); err != nil {
		logger.Sugar().Warnf("main: failed to close reminder client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
