package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"raahi/internal/models/db_models"
	"raahi/internal/repositories"
)

// ContextBundle is the read-only snapshot of stored data used to plan a trip
// to one city. Weather and Crowd are nil when no record matches the city.
type ContextBundle struct {
	Weather *db_models.Weather
	Crowd   *db_models.Crowd
	Hotels  []db_models.Hotel
	POIs    []db_models.POI
}

type ContextServiceInterface interface {
	Aggregate(ctx context.Context, city string) (ContextBundle, error)
}

type ContextService struct {
	weatherRepo repositories.WeatherRepository
	crowdRepo   repositories.CrowdRepository
	hotelRepo   repositories.HotelRepository
	poiRepo     repositories.POIRepository
}

func NewContextService(
	weatherRepo repositories.WeatherRepository,
	crowdRepo repositories.CrowdRepository,
	hotelRepo repositories.HotelRepository,
	poiRepo repositories.POIRepository,
) ContextServiceInterface {
	return &ContextService{
		weatherRepo: weatherRepo,
		crowdRepo:   crowdRepo,
		hotelRepo:   hotelRepo,
		poiRepo:     poiRepo,
	}
}

// Aggregate runs the four store lookups concurrently and joins them. Weather
// and crowd pick the first record whose city/place equals city ignoring case;
// POIs are matched by substring in the store.
func (s *ContextService) Aggregate(ctx context.Context, city string) (ContextBundle, error) {
	var (
		weatherList []db_models.Weather
		crowdList   []db_models.Crowd
		bundle      ContextBundle
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		list, err := s.weatherRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("load weather: %w", err)
		}
		weatherList = list
		return nil
	})
	g.Go(func() error {
		list, err := s.crowdRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("load crowd: %w", err)
		}
		crowdList = list
		return nil
	})
	g.Go(func() error {
		hotels, err := s.hotelRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("load hotels: %w", err)
		}
		bundle.Hotels = hotels
		return nil
	})
	g.Go(func() error {
		pois, err := s.poiRepo.ListByCity(gctx, city)
		if err != nil {
			return fmt.Errorf("load pois: %w", err)
		}
		bundle.POIs = pois
		return nil
	})
	if err := g.Wait(); err != nil {
		return ContextBundle{}, err
	}

	for i := range weatherList {
		if strings.EqualFold(weatherList[i].City, city) {
			bundle.Weather = &weatherList[i]
			break
		}
	}
	for i := range crowdList {
		if strings.EqualFold(crowdList[i].Place, city) {
			bundle.Crowd = &crowdList[i]
			break
		}
	}
	if bundle.Hotels == nil {
		bundle.Hotels = []db_models.Hotel{}
	}
	if bundle.POIs == nil {
		bundle.POIs = []db_models.POI{}
	}
	return bundle, nil
}
