package repositories

import (
	"context"

	"gorm.io/gorm"

	"raahi/internal/models/db_models"
)

type POIRepository interface {
	List(ctx context.Context) ([]db_models.POI, error)
	InsertMany(ctx context.Context, rows []db_models.POI) error
	DeleteAll(ctx context.Context) error
	// ListByCity matches city as a case-insensitive substring.
	ListByCity(ctx context.Context, city string) ([]db_models.POI, error)
}

type poiRepository struct {
	db *gorm.DB
}

func NewPOIRepository(db *gorm.DB) POIRepository {
	return &poiRepository{db: db}
}

func (r *poiRepository) List(ctx context.Context) ([]db_models.POI, error) {
	return listAll[db_models.POI](ctx, r.db)
}

func (r *poiRepository) ListByCity(ctx context.Context, city string) ([]db_models.POI, error) {
	var pois []db_models.POI
	err := r.db.WithContext(ctx).
		Where("city ILIKE ?", containsPattern(city)).
		Order(storeOrder).
		Find(&pois).Error
	if err != nil {
		return nil, err
	}
	return pois, nil
}

func (r *poiRepository) InsertMany(ctx context.Context, rows []db_models.POI) error {
	return insertAll(ctx, r.db, rows)
}

func (r *poiRepository) DeleteAll(ctx context.Context) error {
	return deleteAll[db_models.POI](ctx, r.db)
}
