package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"linkedlist-backend/internal/config"
	"linkedlist-backend/internal/database"
	"linkedlist-backend/internal/database/seed"
	applogger "linkedlist-backend/internal/logger"
	"linkedlist-backend/internal/repository"

	"github.com/docopt/docopt-go"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const usage = `Load a bookmark data set into Postgres.

Usage:
  load_initial_data [--retries=<n>] [<seed-file>]
  load_initial_data -h | --help

Without <seed-file> the embedded demo data set is loaded.

Options:
  --retries=<n>  Connection attempts while Postgres starts [default: 60].
  -h --help      Show this screen.
`

func main() {
	log.Println("🚀 Loading initial data...")

	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Failed to parse arguments: %v", err)
	}
	retries, err := opts.Int("--retries")
	if err != nil || retries < 1 {
		log.Fatalf("Invalid --retries value: %v", opts["--retries"])
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	applogger.Setup(cfg.LogLevel)
	if !cfg.HasValidDatabaseURL() {
		log.Fatal("DATABASE_URL must point at a Postgres database")
	}

	ds, err := loadDataSet(opts)
	if err != nil {
		log.Fatalf("Failed to read data set: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(ctx, cfg.DatabaseURL, retries, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	store := repository.NewPostgresStore(db)
	defer store.Close()

	result, err := repository.Import(ctx, store, ds)
	if err != nil {
		log.Fatalf("Failed to import data set: %v", err)
	}

	log.Printf("Users: %d created, %d total", result.Users, len(ds.Users))
	log.Printf("Labels: %d created, %d total", result.Labels, len(ds.Labels))
	log.Printf("Links: %d created, %d total", result.Links, len(ds.Links))
	log.Printf("Notes: %d created, %d total", result.Notes, len(ds.Notes))
	log.Printf("Link labels: %d created, %d total", result.LinkLabels, len(ds.LinkLabels))
	log.Println("✅ Initial data loaded successfully!")
}

func loadDataSet(opts docopt.Opts) (*seed.DataSet, error) {
	path, _ := opts.String("<seed-file>")
	if path == "" {
		return seed.Demo()
	}
	return seed.LoadFile(path)
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(ctx context.Context, dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(ctx, dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}
