package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"raahi/internal/models/request_models"
	"raahi/internal/models/response_models"
	"raahi/pkg/metrics"
	"raahi/pkg/utils"
)

const (
	PlanSourceProvider = "provider"
	PlanSourceFallback = "fallback"
)

const (
	reasonEmptyContent   = "empty_content"
	reasonParseError     = "parse_error"
	reasonSchemaMismatch = "schema_mismatch"
)

// PlanOutcome records where a plan came from. Reason is empty for provider
// plans and names the cause of the fallback otherwise.
type PlanOutcome struct {
	Source string
	Reason string
}

type PlanServiceInterface interface {
	CreatePlan(ctx context.Context, req request_models.TripRequest) (response_models.PlanResult, PlanOutcome, error)
}

type PlanService struct {
	contextService ContextServiceInterface
	gateway        utils.LLMGatewayInterface
}

func NewPlanService(contextService ContextServiceInterface, gateway utils.LLMGatewayInterface) PlanServiceInterface {
	return &PlanService{
		contextService: contextService,
		gateway:        gateway,
	}
}

// CreatePlan aggregates context, asks the provider for a plan and falls back
// to DeterministicPlan when the provider gives nothing usable. The only error
// returned comes from loading context.
func (p *PlanService) CreatePlan(ctx context.Context, req request_models.TripRequest) (response_models.PlanResult, PlanOutcome, error) {
	startTime := time.Now()
	req = req.Normalize()
	if req.City == "" || req.Days < 1 {
		return response_models.PlanResult{}, PlanOutcome{}, utils.ErrInvalidInput
	}
	if req.Days > request_models.MaxTripDays {
		return response_models.PlanResult{}, PlanOutcome{}, fmt.Errorf("%w: days must be at most %d", utils.ErrInvalidInput, request_models.MaxTripDays)
	}

	bundle, err := p.contextService.Aggregate(ctx, req.City)
	if err != nil {
		return response_models.PlanResult{}, PlanOutcome{}, fmt.Errorf("aggregate context for %q: %w", req.City, err)
	}

	prompt := BuildPlanPrompt(req, bundle)
	raw, reason := p.tryProvider(ctx, prompt)
	plan, outcome := ResolvePlan(raw, reason, req, bundle)

	metrics.PlanRequests.WithLabelValues(outcome.Source, outcome.Reason).Inc()
	metrics.PlanDuration.Observe(float64(time.Since(startTime).Milliseconds()))
	log.Printf("[%s] plan city=%q days=%d source=%s reason=%s took=%s",
		utils.TraceIDFromContext(ctx), req.City, req.Days, outcome.Source, outcome.Reason, time.Since(startTime))

	return plan, outcome, nil
}

// tryProvider returns the raw provider text, or an empty string together
// with the reason nothing usable came back.
func (p *PlanService) tryProvider(ctx context.Context, prompt string) (string, string) {
	result := p.gateway.Call(ctx, prompt, PlanSystemPrompt)

	status := "ok"
	if !result.OK {
		status = result.Reason
	}
	if result.Reason != utils.ReasonProviderOff {
		metrics.LLMCalls.WithLabelValues(result.Provider.String(), status).Inc()
	}

	if !result.OK {
		if result.Details != "" {
			log.Printf("[%s] llm %s failed: %s (%s)", utils.TraceIDFromContext(ctx), result.Provider, result.Reason, result.Details)
		}
		return "", result.Reason
	}
	if strings.TrimSpace(result.Content) == "" {
		return "", reasonEmptyContent
	}
	return result.Content, ""
}

// ResolvePlan turns provider output into a plan. Anything that does not parse
// into a plan with exactly req.Days days is replaced by DeterministicPlan.
func ResolvePlan(raw, reason string, req request_models.TripRequest, bundle ContextBundle) (response_models.PlanResult, PlanOutcome) {
	if raw == "" {
		if reason == "" {
			reason = reasonEmptyContent
		}
		return DeterministicPlan(req, bundle), PlanOutcome{Source: PlanSourceFallback, Reason: reason}
	}

	plan, err := ParsePlan(raw, req.Days)
	if err != nil {
		reason = reasonParseError
		if errors.Is(err, errPlanSchema) {
			reason = reasonSchemaMismatch
		}
		return DeterministicPlan(req, bundle), PlanOutcome{Source: PlanSourceFallback, Reason: reason}
	}
	return plan, PlanOutcome{Source: PlanSourceProvider}
}

var errPlanSchema = errors.New("plan does not match schema")

// ParsePlan decodes provider text into a PlanResult. Markdown code fences are
// tolerated; the plan must cover exactly days days.
func ParsePlan(raw string, days int) (response_models.PlanResult, error) {
	var plan response_models.PlanResult
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &plan); err != nil {
		return response_models.PlanResult{}, err
	}
	if len(plan.Days) != days {
		return response_models.PlanResult{}, fmt.Errorf("%w: got %d days, want %d", errPlanSchema, len(plan.Days), days)
	}

	if plan.Hotels == nil {
		plan.Hotels = []response_models.HotelSuggestion{}
	}
	if len(plan.Hotels) > maxSuggestedHotels {
		plan.Hotels = plan.Hotels[:maxSuggestedHotels]
	}
	if plan.Warnings == nil {
		plan.Warnings = []string{}
	}
	for i := range plan.Days {
		if plan.Days[i].Day == 0 {
			plan.Days[i].Day = i + 1
		}
		if plan.Days[i].Tips == nil {
			plan.Days[i].Tips = []string{}
		}
	}
	return plan, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		// drop the language tag line, e.g. ```json
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
