package main

import (
	"log"

	"github.com/kasemsan/travelstay/config"
	"github.com/kasemsan/travelstay/internal/auth"
	"github.com/kasemsan/travelstay/internal/handler"
	"github.com/kasemsan/travelstay/internal/mailer"
	"github.com/kasemsan/travelstay/internal/middleware"
	"github.com/kasemsan/travelstay/internal/repository"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/kasemsan/travelstay/pkg/database"
	"github.com/kasemsan/travelstay/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	// RabbitMQ is optional: without it booking confirmations simply skip
	// the notification pipeline.
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer pub.Close()
		publisher = pub

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		mailer.New().Start(msgs)
	} else {
		log.Println("RABBIT_URL not set, booking notifications disabled")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// Services
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := service.NewUserService(userRepo, issuer)
	listingSvc := service.NewListingService(listingRepo, reviewRepo)
	bookingSvc := service.NewBookingService(bookingRepo, listingRepo, publisher)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, bookingRepo, listingRepo, publisher)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = handler.NewValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "travelstay"})
	})

	requireAuth := middleware.RequireAuth(issuer)
	handler.NewAuthHandler(userSvc).RegisterRoutes(e)
	handler.NewListingHandler(listingSvc).RegisterRoutes(e, requireAuth)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(e, requireAuth)
	handler.NewReviewHandler(reviewSvc).RegisterRoutes(e, requireAuth)
	handler.NewPaymentHandler(paymentSvc, bookingSvc, listingSvc).RegisterRoutes(e, requireAuth)

	log.Printf("Travelstay starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
