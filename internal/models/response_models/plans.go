package response_models

type HotelSuggestion struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Location string  `json:"location"`
}

type DayPlan struct {
	Day       int      `json:"day"`
	Morning   string   `json:"morning"`
	Afternoon string   `json:"afternoon"`
	Evening   string   `json:"evening"`
	Tips      []string `json:"tips"`
	Transport string   `json:"transport"`
}

type PlanResult struct {
	Summary  string            `json:"summary"`
	Hotels   []HotelSuggestion `json:"hotels"`
	Days     []DayPlan         `json:"days"`
	Warnings []string          `json:"warnings"`
}
