// File: wayfare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wayfare/config"
	"wayfare/cron"
	"wayfare/database"
	tripRepo "wayfare/database/repository/trip"
	"wayfare/handlers"
	"wayfare/middleware"
	"wayfare/routes"
	"wayfare/services/hotels"
	"wayfare/services/itinerary"
	"wayfare/services/places"
	"wayfare/services/planning"
	"wayfare/services/transit"
	"wayfare/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	tripRepository := tripRepo.NewMongoTripRepo()

	// services.
	placesService := places.NewDefaultPlacesService()
	hotelService := hotels.NewDefaultHotelService()
	transitService := transit.NewDefaultTransitService()

	planningService := &planning.DefaultPlanningService{
		Repo:    tripRepository,
		Places:  placesService,
		Hotels:  hotelService,
		Transit: transitService,
		Engine:  itinerary.NewDefaultEngine(),
	}

	// Background rebuild worker consuming hotel/date change events.
	cron.InitRebuildWorker(planningService)
	queueClient := cron.NewQueueClient()
	defer queueClient.Close()

	tripHandler := handlers.NewTripHandler(tripRepository, planningService, queueClient, logger)

	// Register routes.
	routes.RegisterRoutes(router, tripHandler)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
