package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"raahi/internal/config"
	"raahi/internal/infra"
	"raahi/internal/repositories"
	"raahi/internal/services"
)

func main() {
	out := flag.String("out", "exports", "directory to write CSV files into")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := infra.InitPostgresql(cfg.DB.DSN, false)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer infra.ClosePostgresql(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dataService := services.NewDataService(
		repositories.NewWeatherRepository(db),
		repositories.NewCrowdRepository(db),
		repositories.NewCurrencyRepository(db),
		repositories.NewHotelRepository(db),
		repositories.NewPOIRepository(db),
	)

	paths, err := services.NewExportService(dataService).ExportAll(ctx, *out)
	if err != nil {
		log.Printf("Export failed: %v", err)
		stop()
		infra.ClosePostgresql(db)
		os.Exit(1)
	}
	log.Printf("Exported %d datasets to %s", len(paths), *out)
}
