package request_models

import (
	"fmt"
	"time"
)

const (
	maxDestinationLength = 100
	maxBudget            = 10_000_000
	maxTravelers         = 50
	maxDaysCount         = 60
)

var (
	validTripTypes = map[string]bool{
		"landmarks":         true,
		"historical_places": true,
		"nature":            true,
		"entertainment":     true,
	}
	validPaces = map[string]bool{
		"relaxed":    true,
		"moderate":   true,
		"fast_paced": true,
	}
	validDiningStyles = map[string]bool{
		"local":       true,
		"mixed":       true,
		"fine_dining": true,
	}
)

// TripRequest is the validated itinerary-generation input. Validate runs
// before any retrieval work; an invalid request never triggers a network call.
type TripRequest struct {
	Destination     string  `json:"destination"`
	StartDate       string  `json:"startDate"`
	EndDate         string  `json:"endDate"`
	BudgetMin       float64 `json:"budgetMin"`
	BudgetMax       float64 `json:"budgetMax"`
	Currency        string  `json:"currency"`
	TripType        string  `json:"tripType"`
	Pace            string  `json:"pace"`
	DiningStyle     string  `json:"diningStyle"`
	Travelers       int     `json:"travelers"`
	DaysCount       int     `json:"daysCount"`
	PredictedRegion string  `json:"predictedRegion,omitempty"`
}

// Validate returns one message per violated constraint, empty when valid.
func (r *TripRequest) Validate() []string {
	var details []string

	if r.Destination == "" {
		details = append(details, "Destination is required")
	} else if len(r.Destination) > maxDestinationLength {
		details = append(details, "Destination too long")
	}

	startDate, startErr := parseISODate(r.StartDate)
	if startErr != nil {
		details = append(details, "Invalid start date format")
	}
	endDate, endErr := parseISODate(r.EndDate)
	if endErr != nil {
		details = append(details, "Invalid end date format")
	}
	if startErr == nil && endErr == nil && endDate.Before(startDate) {
		details = append(details, "End date must be after start date")
	}

	if r.BudgetMin < 0 || r.BudgetMax < 0 {
		details = append(details, "Budget must be positive")
	}
	if r.BudgetMax > maxBudget {
		details = append(details, "Budget too high")
	}
	if r.BudgetMax < r.BudgetMin {
		details = append(details, "Maximum budget must be greater than or equal to minimum budget")
	}

	if r.Currency == "" || len(r.Currency) > 10 {
		details = append(details, "Currency code is required")
	}

	if !validTripTypes[r.TripType] {
		details = append(details, fmt.Sprintf("Invalid trip type: %q", r.TripType))
	}
	if !validPaces[r.Pace] {
		details = append(details, fmt.Sprintf("Invalid pace: %q", r.Pace))
	}
	if !validDiningStyles[r.DiningStyle] {
		details = append(details, fmt.Sprintf("Invalid dining style: %q", r.DiningStyle))
	}

	if r.Travelers < 1 {
		details = append(details, "At least 1 traveler")
	} else if r.Travelers > maxTravelers {
		details = append(details, "Too many travelers")
	}

	if r.DaysCount < 1 {
		details = append(details, "At least 1 day")
	} else if r.DaysCount > maxDaysCount {
		details = append(details, "Trip too long")
	}

	return details
}

// parseISODate accepts YYYY-MM-DD, optionally followed by a time component.
func parseISODate(value string) (time.Time, error) {
	if len(value) >= 10 {
		if t, err := time.Parse("2006-01-02", value[:10]); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", value)
}
