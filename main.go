// File: shebacare/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shebacare/config"
	"shebacare/database"
	bookingRepo "shebacare/database/repository/booking"
	caregiverRepo "shebacare/database/repository/caregiver"
	seniorRepo "shebacare/database/repository/senior"
	"shebacare/handlers"
	"shebacare/middleware"
	"shebacare/routes"
	"shebacare/services/matching"
	"shebacare/utils"

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
	routes.SetupCORS(router)

	// repositories.
	seniors := seniorRepo.NewMongoSeniorRepo()
	caregivers := caregiverRepo.NewMongoCaregiverRepo()
	bookings := bookingRepo.NewMongoBookingRepo()

	// Build the matching dataset snapshot once at startup.
	dataset, err := matching.LoadDataset(seniors, caregivers, bookings)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load matching dataset: %v", err)
	}

	matchingService := matching.NewMatchingService(dataset, config.AppConfig.ConditionServices, matching.Defaults{
		StartTime:   config.AppConfig.DefaultStartTime,
		DurationHrs: config.AppConfig.DefaultDurationHrs,
		TopN:        config.AppConfig.DefaultTopN,
	})

	matchingHandler := handlers.NewMatchingHandler(matchingService, utils.GetCacheClient(), logger)
	caregiverHandler := handlers.NewCaregiverHandler(caregivers)

	routes.RegisterHealthRoute(router)
	routes.RegisterMatchingRoutes(router, matchingHandler)
	routes.RegisterCaregiverRoutes(router, caregiverHandler)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
}
