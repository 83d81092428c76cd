package repositories

import (
	"context"

	"gorm.io/gorm"

	"raahi/internal/models/db_models"
)

type CurrencyRepository interface {
	List(ctx context.Context) ([]db_models.Currency, error)
	InsertMany(ctx context.Context, rows []db_models.Currency) error
	DeleteAll(ctx context.Context) error
}

type currencyRepository struct {
	db *gorm.DB
}

func NewCurrencyRepository(db *gorm.DB) CurrencyRepository {
	return &currencyRepository{db: db}
}

func (r *currencyRepository) List(ctx context.Context) ([]db_models.Currency, error) {
	return listAll[db_models.Currency](ctx, r.db)
}

func (r *currencyRepository) InsertMany(ctx context.Context, rows []db_models.Currency) error {
	return insertAll(ctx, r.db, rows)
}

func (r *currencyRepository) DeleteAll(ctx context.Context) error {
	return deleteAll[db_models.Currency](ctx, r.db)
}
