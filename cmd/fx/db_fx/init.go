package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"raahi/internal/api/controllers"
	"raahi/internal/config"
	"raahi/internal/infra"
)

var Module = fx.Provide(
	provideDB, provideHealthCheck)

func provideDB(lc fx.Lifecycle, cfg config.Config) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg.DB.DSN, cfg.DB.AutoMigrate)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db, nil
}

func provideHealthCheck(db *gorm.DB) controllers.HealthCheck {
	return func(ctx context.Context) error {
		return infra.PingPostgresql(ctx, db)
	}
}
