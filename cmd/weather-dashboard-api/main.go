package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/ngmaloney/weather-terminal/internal/api/http"
	"github.com/ngmaloney/weather-terminal/internal/config"
	"github.com/ngmaloney/weather-terminal/internal/weatherapi"
)

func main() {
	configPath := flag.String("config", "", "Path to a config file (default: ./config.yaml if present)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// stderr; there is no TUI competing for the terminal here
	zl, err := config.NewLogger("")
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer zl.Sync()

	client := weatherapi.NewClient(
		weatherapi.WithBaseURL(cfg.BaseURL),
		weatherapi.WithTimeout(cfg.HTTPTimeout),
		weatherapi.WithLogger(zl),
	)

	app := httpapi.NewApp(client, logger.New(), recover.New())

	go func() {
		zl.Infow("listening", "port", cfg.ServerPort)
		if err := app.Listen(":" + cfg.ServerPort); err != nil {
			zl.Errorw("fiber server stopped", "error", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zl.Errorw("error during shutdown", "error", err)
	}
}
