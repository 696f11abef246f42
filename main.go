// File: slotify/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"slotify/config"
	"slotify/cron"
	"slotify/database"
	availabilityRepo "slotify/database/repository/availability"
	bookingRepo "slotify/database/repository/booking"
	eventTypeRepo "slotify/database/repository/eventtype"
	hostRepo "slotify/database/repository/host"
	"slotify/handlers"
	"slotify/middleware"
	"slotify/routes"
	"slotify/services/availability"
	bookingSvc "slotify/services/booking"
	"slotify/services/eventtype"
	"slotify/services/host"
	"slotify/services/notification"
	"slotify/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitLockCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	etRepo := eventTypeRepo.NewMongoEventTypeRepo()
	bkRepo := bookingRepo.NewMongoBookingRepo()
	hRepo := hostRepo.NewMongoHostRepo()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Sender: notification.NewSMTPSender(),
	}

	handlers.HostService = &host.DefaultHostService{Repo: hRepo}
	handlers.AvailabilityService = &availability.DefaultAvailabilityService{Repo: availRepo}
	handlers.EventTypeService = &eventtype.DefaultEventTypeService{Repo: etRepo}
	handlers.BookingService = &bookingSvc.DefaultBookingService{
		Bookings:     bkRepo,
		EventTypes:   etRepo,
		Availability: availRepo,
		Hosts:        hRepo,
		Notifier:     notificationService,
		Locker:       bookingSvc.RedisHostLocker{},
	}

	// Background reminder worker and dependency health monitor.
	cron.InitReminderWorker(notificationService, bkRepo)
	utils.StartHealthMonitor(
		map[string]*redis.Client{
			"cache": utils.GetCacheClient(),
			"locks": utils.GetLockClient(),
		},
		database.MongoClient,
	)

	routes.RegisterRoutes(router)

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
