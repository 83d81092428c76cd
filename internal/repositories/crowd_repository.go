package repositories

import (
	"context"

	"gorm.io/gorm"

	"raahi/internal/models/db_models"
)

type CrowdRepository interface {
	List(ctx context.Context) ([]db_models.Crowd, error)
	InsertMany(ctx context.Context, rows []db_models.Crowd) error
	DeleteAll(ctx context.Context) error
}

type crowdRepository struct {
	db *gorm.DB
}

func NewCrowdRepository(db *gorm.DB) CrowdRepository {
	return &crowdRepository{db: db}
}

func (r *crowdRepository) List(ctx context.Context) ([]db_models.Crowd, error) {
	return listAll[db_models.Crowd](ctx, r.db)
}

func (r *crowdRepository) InsertMany(ctx context.Context, rows []db_models.Crowd) error {
	return insertAll(ctx, r.db, rows)
}

func (r *crowdRepository) DeleteAll(ctx context.Context) error {
	return deleteAll[db_models.Crowd](ctx, r.db)
}
