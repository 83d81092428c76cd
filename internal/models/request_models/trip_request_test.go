package request_models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBudgetOrDefault(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"absent", `{"city":"Goa","days":2}`, DefaultTripBudget},
		{"null", `{"city":"Goa","days":2,"budget":null}`, DefaultTripBudget},
		{"zero", `{"city":"Goa","days":2,"budget":0}`, 0},
		{"given", `{"city":"Goa","days":2,"budget":9000}`, 9000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req TripRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.BudgetOrDefault())
		})
	}
}

func TestNormalize(t *testing.T) {
	req := TripRequest{City: "  Jaipur ", Days: 2}.Normalize()

	assert.Equal(t, "Jaipur", req.City)
	assert.NotNil(t, req.Interests)
	assert.NotNil(t, req.Constraints)
}
