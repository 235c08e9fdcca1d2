package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"hotelier/internal/config"
	"hotelier/internal/database"
	"hotelier/internal/middleware"
	"hotelier/internal/modules/booking"
	"hotelier/internal/modules/events"
	"hotelier/internal/modules/payment"
	"hotelier/internal/modules/room"
	jwtsvc "hotelier/internal/pkg/jwt"
	"hotelier/internal/repository"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	discountRepo := repository.NewDiscountRepository(db)
	historyRepo := repository.NewStatusHistoryRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)
	hub := events.NewHub()

	bookingService := booking.NewService(bookingRepo, roomRepo, discountRepo, hub)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, hub)
	paymentHandler := payment.NewHandler(paymentService)

	roomService := room.NewService(roomRepo, historyRepo)
	roomHandler := room.NewHandler(roomService)

	eventsHandler := events.NewHandler(hub, j)

	r := gin.Default()
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		eventsHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			roomHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
