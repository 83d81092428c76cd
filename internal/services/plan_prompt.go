package services

import (
	"encoding/json"
	"fmt"

	"raahi/internal/models/db_models"
	"raahi/internal/models/request_models"
)

const PlanSystemPrompt = "You are Raahi, an India-first travel assistant. Reply ONLY in JSON that matches the provided schema. Keep suggestions specific, safe, and budget-conscious."

const (
	maxPromptHotels = 20
	maxPromptPOIs   = 30
)

// planSchema mirrors response_models.PlanResult with type names as values.
const planSchema = `{"summary":"string","hotels":[{"name":"string","price":"number","location":"string"}],"days":[{"day":"number","morning":"string","afternoon":"string","evening":"string","tips":["string"],"transport":"string"}],"warnings":["string"]}`

type promptWeather struct {
	City        string                  `json:"city"`
	Temperature float64                 `json:"temperature"`
	Condition   string                  `json:"condition"`
	Forecast    []db_models.ForecastDay `json:"forecast"`
}

type promptCrowd struct {
	Place      string  `json:"place"`
	CrowdLevel string  `json:"crowd_level"`
	Percent    float64 `json:"percent"`
}

type promptHotel struct {
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	Price     float64 `json:"price"`
	Available bool    `json:"available"`
	Rating    float64 `json:"rating"`
}

type promptPOI struct {
	Name     string `json:"name"`
	City     string `json:"city"`
	Category string `json:"category"`
}

type promptContext struct {
	City        string                `json:"city"`
	StartDate   string                `json:"startDate"`
	Days        int                   `json:"days"`
	Travelers   int                   `json:"travelers"`
	Interests   []string              `json:"interests"`
	Budget      float64               `json:"budget"`
	Constraints []string              `json:"constraints"`
	Season      request_models.Season `json:"season"`
	Weather     *promptWeather        `json:"weather"`
	Crowd       *promptCrowd          `json:"crowd"`
	Hotels      []promptHotel         `json:"hotels"`
	POIs        []promptPOI           `json:"pois"`
}

// BuildPlanPrompt serializes the trip and a bounded slice of its context
// into the instruction sent to the provider.
func BuildPlanPrompt(req request_models.TripRequest, bundle ContextBundle) string {
	req = req.Normalize()
	pc := promptContext{
		City:        req.City,
		StartDate:   req.StartDate,
		Days:        req.Days,
		Travelers:   req.Travelers,
		Interests:   req.Interests,
		Budget:      req.BudgetOrDefault(),
		Constraints: req.Constraints,
		Season:      req.Season,
		Hotels:      make([]promptHotel, 0, min(len(bundle.Hotels), maxPromptHotels)),
		POIs:        make([]promptPOI, 0, min(len(bundle.POIs), maxPromptPOIs)),
	}
	if w := bundle.Weather; w != nil {
		pc.Weather = &promptWeather{City: w.City, Temperature: w.Temperature, Condition: w.Condition, Forecast: w.Forecast}
		if pc.Weather.Forecast == nil {
			pc.Weather.Forecast = []db_models.ForecastDay{}
		}
	}
	if c := bundle.Crowd; c != nil {
		pc.Crowd = &promptCrowd{Place: c.Place, CrowdLevel: c.CrowdLevel, Percent: c.Percent}
	}
	for i, h := range bundle.Hotels {
		if i == maxPromptHotels {
			break
		}
		pc.Hotels = append(pc.Hotels, promptHotel{
			Name:      h.Name,
			Location:  h.Location,
			Price:     h.Price,
			Available: h.IsAvailable(),
			Rating:    h.Rating,
		})
	}
	for i, p := range bundle.POIs {
		if i == maxPromptPOIs {
			break
		}
		pc.POIs = append(pc.POIs, promptPOI{Name: p.Name, City: p.City, Category: p.Category})
	}

	// plain structs and slices only, Marshal cannot fail here
	payload, _ := json.Marshal(pc)

	guidance := fmt.Sprintf("Return ONLY valid JSON (no markdown). Fields must match this schema exactly: %s.", planSchema)
	return fmt.Sprintf("%s\nUse this context to plan:\n%s", guidance, payload)
}
