package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/cargolink/cargolink/internal/pkg/config"
	"github.com/cargolink/cargolink/internal/pkg/database"
	"github.com/cargolink/cargolink/internal/pkg/health"
	"github.com/cargolink/cargolink/internal/pkg/logger"
	"github.com/cargolink/cargolink/internal/pkg/middleware"
	nsqpkg "github.com/cargolink/cargolink/internal/pkg/nsq"
	bookinggateway "github.com/cargolink/cargolink/services/booking/gateway"
	bookinghandler "github.com/cargolink/cargolink/services/booking/handler/http"
	bookingrepository "github.com/cargolink/cargolink/services/booking/repository"
	bookingusecase "github.com/cargolink/cargolink/services/booking/usecase"
	matchhandler "github.com/cargolink/cargolink/services/match/handler/http"
	matchrepository "github.com/cargolink/cargolink/services/match/repository"
	matchusecase "github.com/cargolink/cargolink/services/match/usecase"
	notificationhandler "github.com/cargolink/cargolink/services/notification/handler/http"
	notificationconsumer "github.com/cargolink/cargolink/services/notification/handler/nsq"
	notificationrepository "github.com/cargolink/cargolink/services/notification/repository"
	notificationusecase "github.com/cargolink/cargolink/services/notification/usecase"
	ratinggateway "github.com/cargolink/cargolink/services/rating/gateway"
	ratinghandler "github.com/cargolink/cargolink/services/rating/handler/http"
	ratingrepository "github.com/cargolink/cargolink/services/rating/repository"
	ratingusecase "github.com/cargolink/cargolink/services/rating/usecase"
	shipmenthandler "github.com/cargolink/cargolink/services/shipment/handler/http"
	shipmentrepository "github.com/cargolink/cargolink/services/shipment/repository"
	shipmentusecase "github.com/cargolink/cargolink/services/shipment/usecase"
	tripgateway "github.com/cargolink/cargolink/services/trip/gateway"
	triphandler "github.com/cargolink/cargolink/services/trip/handler/http"
	triprepository "github.com/cargolink/cargolink/services/trip/repository"
	tripusecase "github.com/cargolink/cargolink/services/trip/usecase"
	truckhandler "github.com/cargolink/cargolink/services/truck/handler/http"
	truckrepository "github.com/cargolink/cargolink/services/truck/repository"
	truckusecase "github.com/cargolink/cargolink/services/truck/usecase"
	userhandler "github.com/cargolink/cargolink/services/user/handler/http"
	userrepository "github.com/cargolink/cargolink/services/user/repository"
	userusecase "github.com/cargolink/cargolink/services/user/usecase"
)

func main() {
	appName := "marketplace"
	configPath := "config/marketplace.env"
	configs := config.InitConfig(configPath)

	// Initialize logger
	zapLogger, err := logger.InitFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	// Initialize PostgreSQL database connection
	postgresClient, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer postgresClient.Close()
	db := postgresClient.GetDB()

	// Initialize Redis client
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()

	// Initialize NSQ producer
	producer, err := nsqpkg.NewProducer(configs.NSQ.Address)
	if err != nil {
		log.Fatalf("Failed to connect to NSQ: %v", err)
	}
	defer producer.Stop()

	// Initialize repositories
	userRepo := userrepository.NewUserRepository(configs, db)
	shipmentRepo := shipmentrepository.NewShipmentRepository(configs, db)
	truckRepo := truckrepository.NewTruckRepository(configs, db)
	matchRepo := matchrepository.NewMatchRepository(configs, db, redisClient)
	bookingRepo := bookingrepository.NewBookingRepository(configs, db)
	tripRepo := triprepository.NewTripRepository(configs, db)
	ratingRepo := ratingrepository.NewRatingRepository(configs, db, redisClient)
	notificationRepo := notificationrepository.NewNotificationRepository(configs, db)

	// Initialize gateways
	bookingGW := bookinggateway.NewBookingGW(producer)
	tripGW := tripgateway.NewTripGW(producer)
	ratingGW := ratinggateway.NewRatingGW(producer)

	// Initialize usecases
	userUC := userusecase.NewUserUC(configs, userRepo)
	shipmentUC := shipmentusecase.NewShipmentUC(configs, shipmentRepo)
	truckUC := truckusecase.NewTruckUC(configs, truckRepo)
	matchUC := matchusecase.NewMatchUC(configs, matchRepo)
	bookingUC := bookingusecase.NewBookingUC(configs, bookingRepo, bookingGW)
	tripUC := tripusecase.NewTripUC(configs, tripRepo, tripGW)
	ratingUC := ratingusecase.NewRatingUC(configs, ratingRepo, ratingGW)
	notificationUC := notificationusecase.NewNotificationUC(configs, notificationRepo)

	// Initialize NSQ consumers
	notificationConsumer, err := notificationconsumer.NewNotificationConsumer(configs, notificationUC)
	if err != nil {
		log.Fatalf("Failed to initialize NSQ consumers: %v", err)
	}
	defer notificationConsumer.Stop()

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true
	e.Use(logger.EchoMiddleware(zapLogger))
	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))

	// Register health endpoints
	health.RegisterHealthEndpoints(e, appName,
		health.NewPostgresChecker(postgresClient),
		health.NewRedisChecker(redisClient),
	)

	// Public and authenticated route groups
	public := e.Group("/api/v1/auth")
	authenticated := e.Group("/api/v1")
	authenticated.Use(middleware.JWTAuthMiddleware(configs.JWT))

	// Register service routes
	userhandler.NewUserHandler(userUC).RegisterRoutes(public, authenticated)
	shipmenthandler.NewShipmentHandler(shipmentUC).RegisterRoutes(authenticated)
	truckhandler.NewTruckHandler(truckUC).RegisterRoutes(authenticated)
	matchhandler.NewMatchHandler(matchUC).RegisterRoutes(authenticated)
	bookinghandler.NewBookingHandler(bookingUC).RegisterRoutes(authenticated)
	triphandler.NewTripHandler(tripUC).RegisterRoutes(authenticated)
	ratinghandler.NewRatingHandler(ratingUC).RegisterRoutes(authenticated)
	notificationhandler.NewNotificationHandler(notificationUC).RegisterRoutes(authenticated)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", configs.Server.Port)
		logger.Info("starting server",
			logger.String("service", appName),
			logger.String("addr", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start %s: %v", appName, err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownTimeout := time.Duration(configs.Server.ShutdownTimeout) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down server", logger.String("service", appName))
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", logger.Err(err))
	}
}
