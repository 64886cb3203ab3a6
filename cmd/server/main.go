package main

import (
	"context"
	"log"

	"go-seat-reservation/config"
	"go-seat-reservation/internal/cache"
	"go-seat-reservation/internal/database"
	"go-seat-reservation/internal/handler"
	"go-seat-reservation/internal/repository"
	"go-seat-reservation/internal/service"
	"go-seat-reservation/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// optional .env for local development
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	eventRepo := repository.NewEventRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	holdStore := cache.NewHoldStore(rdb)

	bookingService := service.NewBookingService(bookingRepo, seatRepo)
	reservationService := service.NewReservationService(pool, eventRepo, bookingRepo, holdStore, bookingService, cfg.Hold.TTL)
	eventService := service.NewEventService(pool, eventRepo, seatRepo, bookingRepo, holdStore)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	expiryWorker := worker.NewHoldExpiryWorker(holdStore)
	if err := expiryWorker.Start(ctx); err != nil {
		log.Fatalf("Failed to start hold expiry worker: %v", err)
	}

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService).RegisterRoutes(router)
	handler.NewReservationHandler(reservationService).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
