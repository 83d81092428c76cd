package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"raahi/internal/models/db_models"
	"raahi/internal/models/request_models"
)

func jaipurBundle() ContextBundle {
	return ContextBundle{
		Weather: &db_models.Weather{City: "Jaipur", Temperature: 34, Condition: "Sunny"},
		Crowd:   &db_models.Crowd{Place: "Jaipur", CrowdLevel: "High", Percent: 80},
		Hotels: []db_models.Hotel{
			{Name: "Pink Haveli", Location: "Jaipur, Rajasthan", Price: 1000, Available: boolPtr(true)},
			{Name: "Amber Palace Stay", Location: "Jaipur", Price: 1500, Available: boolPtr(true)},
			{Name: "Delhi Inn", Location: "Delhi", Price: 500, Available: boolPtr(true)},
			{Name: "Closed Courtyard", Location: "Jaipur", Price: 800, Available: boolPtr(false)},
			{Name: "Hawa Rooms", Location: "Old Jaipur", Price: 1200},
		},
		POIs: []db_models.POI{
			{Name: "Hawa Mahal", City: "Jaipur"},
			{Name: "Amber Fort", City: "Jaipur"},
		},
	}
}

func TestDeterministicPlan_JaipurSummerShopping(t *testing.T) {
	req := request_models.TripRequest{
		City:      "Jaipur",
		Days:      3,
		Budget:    floatPtr(9000),
		Interests: []string{request_models.InterestShopping},
		Season:    request_models.SeasonSummer,
	}

	plan := DeterministicPlan(req, jaipurBundle())

	require.Len(t, plan.Days, 3)
	assert.Equal(t, "A 3-day plan for Jaipur with daily budget ~₹3000. Weather: Sunny, 34°C.", plan.Summary)
	assert.Equal(t, "Bazaar & handicrafts", plan.Days[0].Evening)
	for i, d := range plan.Days {
		assert.Equal(t, i+1, d.Day)
		assert.Contains(t, d.Tips, "Carry water and start early.")
		assert.Contains(t, d.Tips, "Crowd: High")
		assert.Equal(t, "Cabs + walking", d.Transport)
	}

	names := make([]string, 0, len(plan.Hotels))
	for _, h := range plan.Hotels {
		assert.LessOrEqual(t, h.Price, 1200.0)
		assert.Contains(t, h.Location, "Jaipur")
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"Pink Haveli", "Hawa Rooms"}, names)
	assert.Empty(t, plan.Warnings)
	assert.NotNil(t, plan.Warnings)
}

func TestDeterministicPlan_RotatesPOIs(t *testing.T) {
	req := request_models.TripRequest{City: "Jaipur", Days: 3}

	plan := DeterministicPlan(req, jaipurBundle())

	assert.Equal(t, []string{"Hawa Mahal", "Amber Fort", "Hawa Mahal"},
		[]string{plan.Days[0].Morning, plan.Days[1].Morning, plan.Days[2].Morning})
	assert.Equal(t, []string{"Amber Fort", "Hawa Mahal", "Amber Fort"},
		[]string{plan.Days[0].Afternoon, plan.Days[1].Afternoon, plan.Days[2].Afternoon})
	assert.Equal(t, "Sunset point", plan.Days[0].Evening)
}

func TestDeterministicPlan_EmptyContext(t *testing.T) {
	req := request_models.TripRequest{City: "Shimla", Days: 2, Interests: []string{request_models.InterestFood}, Season: request_models.SeasonMonsoon}

	plan := DeterministicPlan(req, ContextBundle{})

	require.Len(t, plan.Days, 2)
	assert.Equal(t, "City walk", plan.Days[0].Morning)
	assert.Equal(t, "Local food tour", plan.Days[0].Afternoon)
	assert.Equal(t, []string{"Keep rain protection handy."}, plan.Days[1].Tips)
	assert.Empty(t, plan.Hotels)
	assert.NotNil(t, plan.Hotels)
	assert.Equal(t, "A 2-day plan for Shimla with daily budget ~₹7500. Weather: N/A.", plan.Summary)
}

func TestDeterministicPlan_CapsHotelsInStoreOrder(t *testing.T) {
	bundle := ContextBundle{}
	for i := 0; i < 8; i++ {
		bundle.Hotels = append(bundle.Hotels, db_models.Hotel{
			Name:     fmt.Sprintf("Hotel %d", i),
			Location: "Goa",
			Price:    float64(100 * (8 - i)),
		})
	}

	plan := DeterministicPlan(request_models.TripRequest{City: "goa", Days: 1}, bundle)

	require.Len(t, plan.Hotels, maxSuggestedHotels)
	for i, h := range plan.Hotels {
		assert.Equal(t, fmt.Sprintf("Hotel %d", i), h.Name)
	}
	assert.Equal(t, "Scooter + cabs", plan.Days[0].Transport)
}

func TestDeterministicPlan_CrowdPercentTip(t *testing.T) {
	bundle := ContextBundle{Crowd: &db_models.Crowd{Place: "Delhi", Percent: 65}}

	plan := DeterministicPlan(request_models.TripRequest{City: "Delhi", Days: 1}, bundle)

	assert.Equal(t, []string{"Crowd: 65%"}, plan.Days[0].Tips)
	assert.Equal(t, "Metro + cabs", plan.Days[0].Transport)
}

func TestDeterministicPlan_IsStable(t *testing.T) {
	req := request_models.TripRequest{City: "Jaipur", Days: 4, Budget: floatPtr(20000)}
	bundle := jaipurBundle()

	assert.Equal(t, DeterministicPlan(req, bundle), DeterministicPlan(req, bundle))
}

func TestDailyBudget(t *testing.T) {
	tests := []struct {
		budget float64
		days   int
		want   int
	}{
		{9000, 3, 3000},
		{1000, 3, 333},
		{10, 4, 3},
		{0, 2, 1},
		{100, 0, 100},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v/%d", tt.budget, tt.days), func(t *testing.T) {
			assert.Equal(t, tt.want, DailyBudget(tt.budget, tt.days))
		})
	}
}
