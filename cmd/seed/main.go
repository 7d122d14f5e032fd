package main

import (
	"context"
	"log"
	"os"
	"time"

	"career-compass/internal/config"
	dbpostgres "career-compass/internal/database/postgres"
	"career-compass/internal/database/seeder"
)

func main() {
	logger := log.New(os.Stdout, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Printf("close error: %v", err)
		}
	}()

	runner := seeder.Runner{Seeders: seeder.Defaults()}
	if err := runner.Run(ctx, db); err != nil {
		logger.Fatalf("seed failed: %v", err)
	}

	logger.Println("seed complete")
}
