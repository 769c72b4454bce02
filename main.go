// File: staygrid/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staygrid/config"
	"staygrid/cron"
	"staygrid/database"
	adminRepo "staygrid/database/repository/admin"
	blockedRepo "staygrid/database/repository/blocked"
	bookingRepo "staygrid/database/repository/booking"
	roomRepo "staygrid/database/repository/room"
	"staygrid/handlers"
	"staygrid/middleware"
	"staygrid/routes"
	"staygrid/services/admin"
	"staygrid/services/availability"
	"staygrid/services/booking"
	"staygrid/services/grid"
	"staygrid/services/notification"
	"staygrid/services/room"
	"staygrid/utils"

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
	rooms := roomRepo.NewMongoRoomRepo()
	blocked := blockedRepo.NewMongoBlockedRepo()
	bookings := bookingRepo.NewMongoBookingRepo()
	admins := adminRepo.NewMongoAdminRepo()

	for name, ensure := range map[string]func() error{
		"rooms":    rooms.EnsureIndexes,
		"blocked":  blocked.EnsureIndexes,
		"bookings": bookings.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	availabilitySvc := &availability.DefaultAvailabilityService{
		Rooms:    rooms,
		Blocked:  blocked,
		Bookings: bookings,
		Cache:    utils.GetCacheClient(),
		CacheTTL: 30 * time.Second,
		Logger:   logger,
	}

	notificationSvc := &notification.DefaultNotificationService{
		Client: utils.GetNotifyClient(),
		Logger: logger,
	}

	sessionTTL := time.Duration(config.AppConfig.GridSessionTTLMin) * time.Minute
	gridSvc := &grid.DefaultGridSessionService{
		Store:        grid.NewRedisSessionStore(utils.GetGridSessionClient(), sessionTTL),
		Availability: availabilitySvc,
		Dispatcher:   &grid.RepoBlockDispatcher{Blocked: blocked},
		Notifier:     notificationSvc,
		Logger:       logger,
	}

	roomSvc := &room.DefaultRoomService{Repo: rooms}

	bookingSvc := &booking.DefaultBookingService{
		Rooms:    rooms,
		Blocked:  blocked,
		Bookings: bookings,
		Logger:   logger,
	}

	adminSvc := &admin.DefaultAdminService{Repo: admins}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Auth:         handlers.NewAuthHandler(adminSvc, logger),
		Availability: handlers.NewAvailabilityHandler(availabilitySvc),
		Grid:         handlers.NewGridHandler(gridSvc, logger),
		Room:         handlers.NewRoomHandler(roomSvc, logger),
		Booking:      handlers.NewBookingHandler(bookingSvc, logger),
		Notification: handlers.NewNotificationHandler(notificationSvc, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background workers and monitors.
	cron.InitPurgeWorker(blocked)
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetGridSessionClient(), utils.GetNotifyClient()},
		database.MongoClient,
	)

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
