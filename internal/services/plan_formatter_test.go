package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"raahi/internal/models/response_models"
)

func TestFormatPlan(t *testing.T) {
	plan := response_models.PlanResult{
		Summary: "A 1-day plan for Goa",
		Hotels:  []response_models.HotelSuggestion{{Name: "Sea View", Price: 1499.5, Location: "Goa"}},
		Days: []response_models.DayPlan{{
			Day:       1,
			Morning:   "Beach",
			Afternoon: "Fort Aguada",
			Evening:   "Sunset point",
			Tips:      []string{"Carry water", "Crowd: Low"},
			Transport: "Scooter + cabs",
		}},
		Warnings: []string{"Heavy rain expected"},
	}

	want := "Summary: A 1-day plan for Goa\n" +
		"\nSuggested Hotels:\n" +
		"- Sea View — ₹1499.5/night, Goa\n" +
		"\nDay 1:\n" +
		"  Morning: Beach\n" +
		"  Afternoon: Fort Aguada\n" +
		"  Evening: Sunset point\n" +
		"  Transport: Scooter + cabs\n" +
		"  Tips: Carry water; Crowd: Low\n" +
		"\nWarnings:\n" +
		"- Heavy rain expected"

	assert.Equal(t, want, FormatPlan(plan))
}

func TestFormatPlan_SkipsEmptySections(t *testing.T) {
	out := FormatPlan(response_models.PlanResult{Days: []response_models.DayPlan{{Day: 1, Morning: "a", Afternoon: "b", Evening: "c"}}})

	assert.NotContains(t, out, "Suggested Hotels")
	assert.NotContains(t, out, "Warnings")
	assert.NotContains(t, out, "Transport")
}
