package services

import (
	"context"
	"log"
	"strings"

	"raahi/internal/models/db_models"
	"raahi/internal/repositories"
	"raahi/pkg/utils"
)

type DataServiceInterface interface {
	ListWeather(ctx context.Context) ([]db_models.Weather, error)
	ListCrowd(ctx context.Context) ([]db_models.Crowd, error)
	ListCurrency(ctx context.Context) ([]db_models.Currency, error)
	ListHotels(ctx context.Context) ([]db_models.Hotel, error)
	ListPOIs(ctx context.Context) ([]db_models.POI, error)
	ListPOIsByCity(ctx context.Context, city string) ([]db_models.POI, error)
}

type DataService struct {
	weatherRepo  repositories.WeatherRepository
	crowdRepo    repositories.CrowdRepository
	currencyRepo repositories.CurrencyRepository
	hotelRepo    repositories.HotelRepository
	poiRepo      repositories.POIRepository
}

func NewDataService(
	weatherRepo repositories.WeatherRepository,
	crowdRepo repositories.CrowdRepository,
	currencyRepo repositories.CurrencyRepository,
	hotelRepo repositories.HotelRepository,
	poiRepo repositories.POIRepository,
) DataServiceInterface {
	return &DataService{
		weatherRepo:  weatherRepo,
		crowdRepo:    crowdRepo,
		currencyRepo: currencyRepo,
		hotelRepo:    hotelRepo,
		poiRepo:      poiRepo,
	}
}

func (d *DataService) ListWeather(ctx context.Context) ([]db_models.Weather, error) {
	return emptyOnNil(d.weatherRepo.List(ctx))
}

func (d *DataService) ListCrowd(ctx context.Context) ([]db_models.Crowd, error) {
	return emptyOnNil(d.crowdRepo.List(ctx))
}

func (d *DataService) ListCurrency(ctx context.Context) ([]db_models.Currency, error) {
	return emptyOnNil(d.currencyRepo.List(ctx))
}

func (d *DataService) ListHotels(ctx context.Context) ([]db_models.Hotel, error) {
	return emptyOnNil(d.hotelRepo.List(ctx))
}

func (d *DataService) ListPOIs(ctx context.Context) ([]db_models.POI, error) {
	return emptyOnNil(d.poiRepo.List(ctx))
}

func (d *DataService) ListPOIsByCity(ctx context.Context, city string) ([]db_models.POI, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, utils.ErrInvalidInput
	}
	return emptyOnNil(d.poiRepo.ListByCity(ctx, city))
}

func emptyOnNil[T any](rows []T, err error) ([]T, error) {
	if err != nil {
		log.Printf("Error listing records: %v", err)
		return nil, utils.ErrDatabaseError
	}
	if rows == nil {
		return []T{}, nil
	}
	return rows, nil
}
