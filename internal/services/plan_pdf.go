package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
)

// RenderPlanPDF lays a plan out as a single A4 itinerary document.
func RenderPlanPDF(req request_models.TripRequest, plan response_models.PlanResult, source string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	// core fonts are cp1252; ₹ and ° need translating
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	text := func(s string) string {
		return tr(strings.ReplaceAll(s, "₹", "Rs. "))
	}
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "Raahi", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	subtitle := "Trip Itinerary"
	if source == PlanSourceProvider {
		subtitle = "AI-Powered Trip Itinerary"
	}
	pdf.CellFormat(170, 6, subtitle, "", 1, "L", false, 0, "")
	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+text(title), "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}
	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(40, 7, text(label), "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(130, 7, text(value), "", "L", false)
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", req.City)
	if req.StartDate != "" {
		row("Start", readableDate(req.StartDate))
	}
	row("Duration", fmt.Sprintf("%d day(s)", req.Days))
	if req.Travelers > 0 {
		row("Travelers", fmt.Sprintf("%d", req.Travelers))
	}
	if req.Season != "" {
		row("Season", string(req.Season))
	}
	row("Generated", time.Now().UTC().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(2)
	if plan.Summary != "" {
		pdf.SetFont("Helvetica", "I", 10)
		pdf.MultiCell(170, 5, text(plan.Summary), "", "L", false)
		pdf.Ln(4)
	}

	if len(plan.Hotels) > 0 {
		sectionHeader("Suggested Hotels")
		for _, h := range plan.Hotels {
			row(h.Name, fmt.Sprintf("₹%s/night, %s", formatAmount(h.Price), h.Location))
		}
		pdf.Ln(4)
	}

	for _, d := range plan.Days {
		sectionHeader(fmt.Sprintf("Day %d", d.Day))
		row("Morning", d.Morning)
		row("Afternoon", d.Afternoon)
		row("Evening", d.Evening)
		if d.Transport != "" {
			row("Transport", d.Transport)
		}
		if len(d.Tips) > 0 {
			row("Tips", strings.Join(d.Tips, "; "))
		}
		pdf.Ln(4)
	}

	if len(plan.Warnings) > 0 {
		sectionHeader("Warnings")
		pdf.SetFont("Helvetica", "", 10)
		for _, w := range plan.Warnings {
			pdf.MultiCell(170, 5, text("- "+w), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}

func readableDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006 (Mon)")
}
