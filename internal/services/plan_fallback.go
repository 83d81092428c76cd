package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
)

const (
	maxSuggestedHotels = 5
	// share of the daily budget a suggested hotel may cost per night
	hotelBudgetShare = 0.4
)

const (
	defaultMorning   = "City walk"
	defaultAfternoon = "Museum/Cultural spot"
	foodAfternoon    = "Local food tour"
	shoppingEvening  = "Bazaar & handicrafts"
	defaultEvening   = "Sunset point"
	defaultTransport = "Cabs + walking"
)

var cityTransport = map[string]string{
	"delhi": "Metro + cabs",
	"goa":   "Scooter + cabs",
}

// DailyBudget splits budget evenly across days, rounding half up, and never
// returns less than 1.
func DailyBudget(budget float64, days int) int {
	daily := int(math.Floor(budget/float64(max(1, days)) + 0.5))
	return max(1, daily)
}

// DeterministicPlan builds an itinerary from stored context alone. The same
// request and bundle always produce the same plan.
func DeterministicPlan(req request_models.TripRequest, bundle ContextBundle) response_models.PlanResult {
	req = req.Normalize()
	days := max(1, req.Days)
	dailyBudget := DailyBudget(req.BudgetOrDefault(), days)

	poiNames := make([]string, 0, len(bundle.POIs))
	for _, p := range bundle.POIs {
		poiNames = append(poiNames, p.Name)
	}
	poiAt := func(i int, fallback string) string {
		if len(poiNames) == 0 || poiNames[i%len(poiNames)] == "" {
			return fallback
		}
		return poiNames[i%len(poiNames)]
	}

	food := req.HasInterest(request_models.InterestFood)
	shopping := req.HasInterest(request_models.InterestShopping)
	tips := dayTips(req.Season, bundle)
	transport := transportFor(req.City)

	items := make([]response_models.DayPlan, 0, days)
	for d := 0; d < days; d++ {
		day := response_models.DayPlan{
			Day:       d + 1,
			Morning:   poiAt(d, defaultMorning),
			Afternoon: poiAt(d+1, defaultAfternoon),
			Evening:   defaultEvening,
			Tips:      append([]string{}, tips...),
			Transport: transport,
		}
		if food {
			day.Afternoon = foodAfternoon
		}
		if shopping {
			day.Evening = shoppingEvening
		}
		items = append(items, day)
	}

	return response_models.PlanResult{
		Summary:  planSummary(req.City, days, dailyBudget, bundle),
		Hotels:   affordableHotels(req.City, dailyBudget, bundle),
		Days:     items,
		Warnings: []string{},
	}
}

func dayTips(season request_models.Season, bundle ContextBundle) []string {
	tips := make([]string, 0, 3)
	switch season {
	case request_models.SeasonSummer:
		tips = append(tips, "Carry water and start early.")
	case request_models.SeasonMonsoon:
		tips = append(tips, "Keep rain protection handy.")
	}
	if c := bundle.Crowd; c != nil {
		level := c.CrowdLevel
		if level == "" {
			level = strconv.FormatFloat(c.Percent, 'f', -1, 64) + "%"
		}
		tips = append(tips, "Crowd: "+level)
	}
	return tips
}

func transportFor(city string) string {
	if t, ok := cityTransport[strings.ToLower(strings.TrimSpace(city))]; ok {
		return t
	}
	return defaultTransport
}

// affordableHotels keeps store order; it does not rank by price or rating.
func affordableHotels(city string, dailyBudget int, bundle ContextBundle) []response_models.HotelSuggestion {
	limit := float64(dailyBudget) * hotelBudgetShare
	needle := strings.ToLower(city)

	out := make([]response_models.HotelSuggestion, 0, maxSuggestedHotels)
	for _, h := range bundle.Hotels {
		if len(out) == maxSuggestedHotels {
			break
		}
		if !strings.Contains(strings.ToLower(h.Location), needle) || !h.IsAvailable() || h.Price > limit {
			continue
		}
		out = append(out, response_models.HotelSuggestion{Name: h.Name, Price: h.Price, Location: h.Location})
	}
	return out
}

func planSummary(city string, days, dailyBudget int, bundle ContextBundle) string {
	weather := "N/A"
	if w := bundle.Weather; w != nil {
		weather = fmt.Sprintf("%s, %s°C", w.Condition, strconv.FormatFloat(w.Temperature, 'f', -1, 64))
	}
	return fmt.Sprintf("A %d-day plan for %s with daily budget ~₹%d. Weather: %s.", days, city, dailyBudget, weather)
}
