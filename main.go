package main

import (
	"context"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"fieldcorr/adapters/postgres"
	"fieldcorr/app"
	"fieldcorr/domain/core"
	"fieldcorr/internal"
	"fieldcorr/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger := internal.NewDefaultLogger()

	ctx := context.Background()

	// The run ledger is optional; without DATABASE_URL the correlator is a
	// pure file-in/file-out tool.
	var ledger app.RunLedger
	if cfg.Database.URL != "" {
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewRunRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure ledger schema: %v", err)
		}
		ledger = repo
	}

	service := app.NewCorrelatorService(cfg, logger, ledger)
	summary, err := service.Run(ctx)
	if err != nil {
		if core.IsInputMissing(err) {
			logger.Error("field data not found at %s", cfg.Working.DataFile)
			os.Exit(1)
		}
		log.Fatalf("Correlator run failed: %v", err)
	}

	logger.Info("correlator complete: %d rows, %d features, %d insights, %d images copied",
		summary.Rows, summary.Features, summary.Insights, summary.ImagesCopied)
	logger.Info("outputs in %s", cfg.Working.Dir)
}
