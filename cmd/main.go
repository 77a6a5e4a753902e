package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/pgangayi/farmstead-auth/config"
	"github.com/pgangayi/farmstead-auth/db"
	"github.com/pgangayi/farmstead-auth/internal/auth/domain"
	"github.com/pgangayi/farmstead-auth/internal/auth/handler"
	"github.com/pgangayi/farmstead-auth/internal/auth/publisher"
	repo "github.com/pgangayi/farmstead-auth/internal/auth/repository/postgres"
	"github.com/pgangayi/farmstead-auth/internal/auth/repository/redisledger"
	"github.com/pgangayi/farmstead-auth/internal/auth/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	authRepo := repo.NewPostgresRepository(pool)

	var ledger domain.RevocationLedger = repo.NewPostgresLedger(pool)
	if cfg.RedisURL != "" {
		redisClient, err := db.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		ledger = redisledger.New(redisClient, ledger)
	}

	var eventPublisher service.EventPublisher
	if cfg.AMQPURL != "" {
		conn, err := amqp.Dial(cfg.AMQPURL)
		if err != nil {
			log.Fatalf("Failed to connect to AMQP broker: %v", err)
		}
		defer conn.Close()

		pub, err := publisher.NewAMQPPublisher(conn, publisher.DefaultExchange)
		if err != nil {
			log.Fatalf("Failed to set up AMQP publisher: %v", err)
		}
		defer pub.Close()
		eventPublisher = pub
	}

	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.AccessTokenTTL(), cfg.RefreshTokenTTL())
	limiter := service.NewLoginLimiter(authRepo, cfg.Lockout)
	recorder := service.NewSecurityRecorder(authRepo, eventPublisher)
	sessions := service.NewSessionService(authRepo, authRepo, ledger, limiter, tokenService, recorder, cfg)
	authHandler := handler.NewAuthHandler(sessions, pool)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	if err := app.Shutdown(); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
