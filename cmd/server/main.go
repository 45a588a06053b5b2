package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gofiber/contrib/otelfiber/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/raghuvanshmani-code/MentorLink/internal/api"
	"github.com/raghuvanshmani-code/MentorLink/internal/config"
	"github.com/raghuvanshmani-code/MentorLink/internal/events"
	"github.com/raghuvanshmani-code/MentorLink/internal/repository"
	"github.com/raghuvanshmani-code/MentorLink/internal/service"
	"github.com/raghuvanshmani-code/MentorLink/internal/tracing"
)

func main() {
	if err := godotenv.Load(".env.dev"); err != nil {
		fmt.Println("No .env.dev file found, reading from environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	api.SetupGlobalHandler(os.Stdout, cfg.ServiceName)

	shutdownTracer, err := tracing.InitTracerProvider(cfg.ServiceName, cfg.OtelEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize OpenTelemetry: %v", err)
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Printf("Error shutting down tracer provider: %v", err)
		}
	}()

	mentorRepo := repository.NewMemoryMentorRepository(repository.SeedMentors())
	sessionRepo := repository.NewMemorySessionRepository(repository.SeedSessions())

	eventPublisher := events.NewNoopPublisher()
	if cfg.NatsURL != "" {
		eventPublisher, err = events.NewNatsPublisher(cfg.NatsURL)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		log.Println("Successfully connected to NATS.")

		// Status transitions (paid/completed/cancelled) arrive from the
		// payment/admin path over the bus.
		if _, err := events.NewLifecycleSubscriber(cfg.NatsURL, sessionRepo); err != nil {
			log.Printf("WARNING: Failed to start lifecycle subscriber: %v", err)
		}
	} else {
		log.Println("NATS_URL not set, session events disabled.")
	}

	mentorService := service.NewMentorService(mentorRepo)
	sessionService := service.NewSessionService(sessionRepo, mentorRepo, eventPublisher)
	ratingService := service.NewRatingService(sessionRepo, mentorRepo, eventPublisher)

	authHandler := api.NewAuthHandler(repository.DemoUser())
	mentorHandler := api.NewMentorHandler(mentorService)
	sessionHandler := api.NewSessionHandler(sessionService)
	ratingHandler := api.NewRatingHandler(ratingService)

	app := fiber.New()
	app.Use(otelfiber.Middleware())
	app.Use(api.PrometheusMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.ServiceName})
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	v1.Post("/auth/login", authHandler.Login)
	v1.Get("/mentors", mentorHandler.ListMentors)

	userRoutes := v1.Group("/users")
	userRoutes.Use(api.AuthMiddleware())
	userRoutes.Get("/me", authHandler.Me)

	sessionsRoutes := v1.Group("/sessions")
	sessionsRoutes.Use(api.AuthMiddleware())
	sessionsRoutes.Get("/", sessionHandler.ListMySessions)
	sessionsRoutes.Get("/:id", sessionHandler.GetSession)
	sessionsRoutes.Post("/", sessionHandler.CreateSession)
	sessionsRoutes.Post("/:id/rate", ratingHandler.RateSession)

	log.Printf("Listening %s on port %s", cfg.ServiceName, cfg.AppPort)
	log.Fatal(app.Listen(":" + cfg.AppPort))
}
