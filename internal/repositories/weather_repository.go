package repositories

import (
	"context"

	"gorm.io/gorm"

	"raahi/internal/models/db_models"
)

type WeatherRepository interface {
	List(ctx context.Context) ([]db_models.Weather, error)
	InsertMany(ctx context.Context, rows []db_models.Weather) error
	DeleteAll(ctx context.Context) error
}

type weatherRepository struct {
	db *gorm.DB
}

func NewWeatherRepository(db *gorm.DB) WeatherRepository {
	return &weatherRepository{db: db}
}

func (r *weatherRepository) List(ctx context.Context) ([]db_models.Weather, error) {
	return listAll[db_models.Weather](ctx, r.db)
}

func (r *weatherRepository) InsertMany(ctx context.Context, rows []db_models.Weather) error {
	return insertAll(ctx, r.db, rows)
}

func (r *weatherRepository) DeleteAll(ctx context.Context) error {
	return deleteAll[db_models.Weather](ctx, r.db)
}
