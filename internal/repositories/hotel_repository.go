package repositories

import (
	"context"

	"gorm.io/gorm"

	"raahi/internal/models/db_models"
)

type HotelRepository interface {
	List(ctx context.Context) ([]db_models.Hotel, error)
	InsertMany(ctx context.Context, rows []db_models.Hotel) error
	DeleteAll(ctx context.Context) error
}

type hotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) List(ctx context.Context) ([]db_models.Hotel, error) {
	return listAll[db_models.Hotel](ctx, r.db)
}

func (r *hotelRepository) InsertMany(ctx context.Context, rows []db_models.Hotel) error {
	return insertAll(ctx, r.db, rows)
}

func (r *hotelRepository) DeleteAll(ctx context.Context) error {
	return deleteAll[db_models.Hotel](ctx, r.db)
}
