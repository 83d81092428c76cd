package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/brianvoe/gofakeit/v7"

	"raahi/internal/config"
	"raahi/internal/infra"
	"raahi/internal/repositories"
	"raahi/internal/services"
)

func main() {
	count := flag.Int("count", services.DefaultSeedCount, "rows to generate per random dataset")
	seed := flag.Uint64("seed", 0, "faker seed, 0 picks a random one")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := infra.InitPostgresql(cfg.DB.DSN, true)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer infra.ClosePostgresql(db)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seedService := services.NewSeedService(
		repositories.NewWeatherRepository(db),
		repositories.NewCrowdRepository(db),
		repositories.NewCurrencyRepository(db),
		repositories.NewHotelRepository(db),
		repositories.NewPOIRepository(db),
		gofakeit.New(*seed),
		*count,
	)

	summary, err := seedService.Seed(ctx)
	if err != nil {
		log.Printf("Seed failed: %v", err)
		stop()
		infra.ClosePostgresql(db)
		os.Exit(1)
	}
	log.Printf("Seeded %d weather, %d crowd, %d currency, %d hotels, %d pois",
		summary.Weather, summary.Crowd, summary.Currency, summary.Hotels, summary.POIs)
}
