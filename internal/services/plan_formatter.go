package services

import (
	"fmt"
	"strconv"
	"strings"

	"raahi/internal/models/response_models"
)

// FormatPlan renders a plan as plain text for display.
func FormatPlan(plan response_models.PlanResult) string {
	var lines []string
	if plan.Summary != "" {
		lines = append(lines, "Summary: "+plan.Summary)
	}
	if len(plan.Hotels) > 0 {
		lines = append(lines, "\nSuggested Hotels:")
		for _, h := range plan.Hotels {
			lines = append(lines, fmt.Sprintf("- %s — ₹%s/night, %s", h.Name, formatAmount(h.Price), h.Location))
		}
	}
	for _, d := range plan.Days {
		lines = append(lines,
			fmt.Sprintf("\nDay %d:", d.Day),
			"  Morning: "+d.Morning,
			"  Afternoon: "+d.Afternoon,
			"  Evening: "+d.Evening,
		)
		if d.Transport != "" {
			lines = append(lines, "  Transport: "+d.Transport)
		}
		if len(d.Tips) > 0 {
			lines = append(lines, "  Tips: "+strings.Join(d.Tips, "; "))
		}
	}
	if len(plan.Warnings) > 0 {
		lines = append(lines, "\nWarnings:")
		for _, w := range plan.Warnings {
			lines = append(lines, "- "+w)
		}
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
