package main

import (
	"log"

	"github.com/joho/godotenv"

	"oceandash/internal"
	"oceandash/internal/config"
	"oceandash/ui"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()
	logger.Info("data directory: %s", cfg.Data.Dir)

	app, err := ui.NewApp(ui.Config{
		Port:    cfg.Server.Port,
		DataDir: cfg.Data.Dir,
	})
	if err != nil {
		log.Fatalf("Failed to initialize UI: %v", err)
	}

	if err := app.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
