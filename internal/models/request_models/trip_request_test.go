package request_models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validTripRequest() TripRequest {
	return TripRequest{
		Destination: "Kyoto",
		StartDate:   "2026-04-01",
		EndDate:     "2026-04-03",
		BudgetMin:   500,
		BudgetMax:   2000,
		Currency:    "USD",
		TripType:    "historical_places",
		Pace:        "moderate",
		DiningStyle: "local",
		Travelers:   2,
		DaysCount:   3,
	}
}

func TestTripRequestValidate_Valid(t *testing.T) {
	req := validTripRequest()
	assert.Empty(t, req.Validate())
}

func TestTripRequestValidate_AcceptsDateWithTimeComponent(t *testing.T) {
	req := validTripRequest()
	req.StartDate = "2026-04-01T00:00:00Z"
	req.EndDate = "2026-04-03T00:00:00Z"
	assert.Empty(t, req.Validate())
}

func TestTripRequestValidate_SameDayTrip(t *testing.T) {
	req := validTripRequest()
	req.EndDate = req.StartDate
	req.DaysCount = 1
	assert.Empty(t, req.Validate())
}

func TestTripRequestValidate_BudgetInverted(t *testing.T) {
	req := validTripRequest()
	req.BudgetMin = 5000
	req.BudgetMax = 1000

	details := req.Validate()
	assert.Len(t, details, 1)
	assert.Contains(t, strings.ToLower(details[0]), "budget")
}

func TestTripRequestValidate_EndBeforeStart(t *testing.T) {
	req := validTripRequest()
	req.StartDate = "2026-04-10"
	req.EndDate = "2026-04-05"

	details := req.Validate()
	assert.Contains(t, details, "End date must be after start date")
}

func TestTripRequestValidate_CollectsEveryViolation(t *testing.T) {
	req := TripRequest{
		Destination: "",
		StartDate:   "not-a-date",
		EndDate:     "also-bad",
		BudgetMin:   -1,
		BudgetMax:   20_000_000,
		Currency:    "",
		TripType:    "space_travel",
		Pace:        "sprint",
		DiningStyle: "molecular",
		Travelers:   0,
		DaysCount:   100,
	}

	details := req.Validate()
	assert.GreaterOrEqual(t, len(details), 9)
}

func TestTripRequestValidate_EnumBounds(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TripRequest)
		want   string
	}{
		{"bad trip type", func(r *TripRequest) { r.TripType = "shopping" }, "trip type"},
		{"bad pace", func(r *TripRequest) { r.Pace = "turbo" }, "pace"},
		{"bad dining", func(r *TripRequest) { r.DiningStyle = "vegan" }, "dining"},
		{"too many travelers", func(r *TripRequest) { r.Travelers = 51 }, "travelers"},
		{"too many days", func(r *TripRequest) { r.DaysCount = 61 }, "too long"},
		{"destination too long", func(r *TripRequest) { r.Destination = strings.Repeat("x", 101) }, "too long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTripRequest()
			tt.mutate(&req)

			details := req.Validate()
			assert.Len(t, details, 1)
			assert.Contains(t, strings.ToLower(details[0]), tt.want)
		})
	}
}
