package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
	"raahi/internal/services"
	"raahi/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// CreatePlanHandler godoc
// @Summary Generate a trip plan
// @Description Builds an itinerary for a city from stored context, using the configured LLM provider when available
// @Tags AI
// @Accept json
// @Produce json
// @Param request body request_models.TripRequest true "Trip parameters"
// @Param format query string false "text for a plain-text rendering"
// @Success 200 {object} response_models.PlanResult
// @Failure 400 {object} map[string]string
// @Router /api/ai/plan [post]
func (p *PlanController) CreatePlanHandler(c *gin.Context) {
	_, plan, outcome, ok := p.plan(c)
	if !ok {
		return
	}

	c.Header("X-Plan-Source", outcome.Source)
	if c.Query("format") == "text" {
		c.String(http.StatusOK, services.FormatPlan(plan))
		return
	}
	c.JSON(http.StatusOK, plan)
}

// PlanPDFHandler renders the same plan as a downloadable PDF.
func (p *PlanController) PlanPDFHandler(c *gin.Context) {
	req, plan, outcome, ok := p.plan(c)
	if !ok {
		return
	}

	pdf, err := services.RenderPlanPDF(req, plan, outcome.Source)
	if err != nil {
		log.Printf("[%s] render plan pdf: %v", c.GetString("trace_id"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate plan", "error": err.Error()})
		return
	}

	c.Header("X-Plan-Source", outcome.Source)
	c.Header("Content-Disposition", "attachment; filename=raahi-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// plan validates the request and runs the pipeline, writing the error
// response itself when it returns ok == false.
func (p *PlanController) plan(c *gin.Context) (request_models.TripRequest, response_models.PlanResult, services.PlanOutcome, bool) {
	var req request_models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		status, message := tripBindError(err)
		c.JSON(status, gin.H{"message": message})
		return req, response_models.PlanResult{}, services.PlanOutcome{}, false
	}
	if strings.TrimSpace(req.City) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgCityDaysRequired})
		return req, response_models.PlanResult{}, services.PlanOutcome{}, false
	}
	req = req.Normalize()

	plan, outcome, err := p.planService.CreatePlan(c.Request.Context(), req)
	if errors.Is(err, utils.ErrInvalidInput) {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return req, response_models.PlanResult{}, services.PlanOutcome{}, false
	}
	if err != nil {
		log.Printf("[%s] planTrip error: %v", utils.TraceIDFromContext(c.Request.Context()), err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to generate plan", "error": err.Error()})
		return req, response_models.PlanResult{}, services.PlanOutcome{}, false
	}
	return req, plan, outcome, true
}

const msgCityDaysRequired = "city and days are required"

// tripBindError maps a TripRequest binding failure to a status and message.
// Missing or malformed city and days keep the generic required message;
// problems with any other field report the decoder's own text.
func tripBindError(err error) (int, string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return http.StatusRequestEntityTooLarge, fmt.Sprintf("request body exceeds %d bytes", maxBytesErr.Limit)
	}
	if errors.Is(err, io.EOF) {
		return http.StatusBadRequest, msgCityDaysRequired
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			if fe.Field() == "Days" && fe.Tag() == "max" {
				return http.StatusBadRequest, fmt.Sprintf("days must be at most %d", request_models.MaxTripDays)
			}
		}
		return http.StatusBadRequest, msgCityDaysRequired
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && (typeErr.Field == "city" || typeErr.Field == "days") {
		return http.StatusBadRequest, msgCityDaysRequired
	}
	return http.StatusBadRequest, err.Error()
}
