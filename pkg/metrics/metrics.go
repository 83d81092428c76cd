// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	PlanRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahi_plan_requests_total",
			Help: "Trip plans served, by plan source and the reason a fallback was used",
		},
		[]string{"source", "reason"},
	)
	LLMCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "raahi_llm_calls_total",
			Help: "Outbound LLM provider calls, by provider and outcome",
		},
		[]string{"provider", "status"},
	)
	PlanDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "raahi_plan_duration_milliseconds",
			Help:    "End-to-end plan generation time in milliseconds",
			Buckets: []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
		},
	)
)

func init() {
	prometheus.MustRegister(PlanRequests)
	prometheus.MustRegister(LLMCalls)
	prometheus.MustRegister(PlanDuration)
}
