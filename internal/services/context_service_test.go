package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raahi/internal/models/db_models"
)

func TestAggregate_MatchesCityIgnoringCase(t *testing.T) {
	pois := &fakePOIRepo{rows: []db_models.POI{{Name: "Calangute Beach", City: "Goa"}}}
	svc := NewContextService(
		&fakeWeatherRepo{rows: []db_models.Weather{
			{City: "Delhi", Condition: "Haze"},
			{City: "GOA", Condition: "Rain"},
			{City: "goa", Condition: "Sunny"},
		}},
		&fakeCrowdRepo{rows: []db_models.Crowd{{Place: "Jaipur", CrowdLevel: "Low"}}},
		&fakeHotelRepo{rows: []db_models.Hotel{{Name: "Sea View", Location: "Goa"}}},
		pois,
	)

	bundle, err := svc.Aggregate(context.Background(), "Goa")

	require.NoError(t, err)
	require.NotNil(t, bundle.Weather)
	assert.Equal(t, "Rain", bundle.Weather.Condition)
	assert.Nil(t, bundle.Crowd)
	assert.Len(t, bundle.Hotels, 1)
	assert.Len(t, bundle.POIs, 1)
	assert.Equal(t, []string{"Goa"}, pois.byCities)
}

func TestAggregate_EmptyStore(t *testing.T) {
	svc := NewContextService(&fakeWeatherRepo{}, &fakeCrowdRepo{}, &fakeHotelRepo{}, &fakePOIRepo{})

	bundle, err := svc.Aggregate(context.Background(), "Atlantis")

	require.NoError(t, err)
	assert.Nil(t, bundle.Weather)
	assert.Nil(t, bundle.Crowd)
	assert.NotNil(t, bundle.Hotels)
	assert.NotNil(t, bundle.POIs)
}

func TestAggregate_PropagatesStoreError(t *testing.T) {
	svc := NewContextService(
		&fakeWeatherRepo{},
		&fakeCrowdRepo{},
		&fakeHotelRepo{err: errors.New("relation \"hotels\" does not exist")},
		&fakePOIRepo{},
	)

	_, err := svc.Aggregate(context.Background(), "Goa")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load hotels")
}
