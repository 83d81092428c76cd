package request_models

import "strings"

type Season string

const (
	SeasonWinter  Season = "Winter"
	SeasonSummer  Season = "Summer"
	SeasonMonsoon Season = "Monsoon"
)

const DefaultTripBudget = 15000

// MaxTripDays caps the itinerary length a single request may ask for.
const MaxTripDays = 30

const (
	InterestFood     = "Food & cafes"
	InterestShopping = "Shopping"
)

type TripRequest struct {
	City        string   `json:"city" binding:"required"`
	StartDate   string   `json:"startDate"`
	Days        int      `json:"days" binding:"required,min=1,max=30"`
	Travelers   int      `json:"travelers"`
	Interests   []string `json:"interests"`
	Budget      *float64 `json:"budget"`
	Constraints []string `json:"constraints"`
	Season      Season   `json:"season"`
}

// BudgetOrDefault returns the requested budget, or DefaultTripBudget when
// none was supplied. An explicit JSON null decodes to nil and counts as
// absent.
func (r TripRequest) BudgetOrDefault() float64 {
	if r.Budget == nil {
		return DefaultTripBudget
	}
	return *r.Budget
}

func (r TripRequest) HasInterest(interest string) bool {
	for _, i := range r.Interests {
		if i == interest {
			return true
		}
	}
	return false
}

// Normalize trims the city and replaces nil slices so the request serializes
// the same way whether or not the client sent the optional lists.
func (r TripRequest) Normalize() TripRequest {
	r.City = strings.TrimSpace(r.City)
	if r.Interests == nil {
		r.Interests = []string{}
	}
	if r.Constraints == nil {
		r.Constraints = []string{}
	}
	return r
}
