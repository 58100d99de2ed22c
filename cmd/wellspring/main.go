package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wellspring-health/wellspring/internal/advisor"
	"github.com/wellspring-health/wellspring/internal/api"
	"github.com/wellspring-health/wellspring/internal/db"
	"github.com/wellspring-health/wellspring/internal/services"
)

func main() {
	location := mustLoadLocation(getEnv("TZ", "UTC"))
	time.Local = location

	secretKey := getEnv("SECRET_KEY", "change_me_in_production")
	dbPath := getEnv("DB_PATH", filepath.Join("data", "wellspring.db"))
	port := getEnv("PORT", "8080")
	advisorURL := os.Getenv("ADVISOR_URL")
	corsOrigins := getEnv("CORS_ORIGINS", "http://127.0.0.1:5500")
	sessionTTL := getEnvHours("SESSION_TTL_HOURS", services.DefaultSessionTTL)

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	var healthAdvisor advisor.Advisor
	if advisorURL != "" {
		healthAdvisor = advisor.NewClient(advisorURL, 15*time.Second)
	} else {
		log.Println("ADVISOR_URL not set: prediction endpoints will report unavailable")
	}

	handler := api.NewHandler(database, api.Config{
		SecretKey:    secretKey,
		CookieSecure: getEnv("COOKIE_SECURE", "0") == "1",
		SessionTTL:   sessionTTL,
		Advisor:      healthAdvisor,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Wellspring",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowCredentials: true,
	}))

	api.RegisterRoutes(app, handler)

	sweeper := services.NewSessionSweeper(
		services.NewSessionService(db.NewRepositories(database).Sessions, sessionTTL),
		time.Hour,
	)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	sweeper.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Wellspring listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, dbPath, location.String())
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid TZ %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvHours(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		log.Printf("invalid %s %q, using default", key, raw)
		return fallback
	}
	return time.Duration(hours) * time.Hour
}
