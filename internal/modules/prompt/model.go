package prompt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRequest is returned when a trip request fails field validation.
var ErrInvalidRequest = errors.New("invalid trip request")

// Companions describes who the traveller is going with.
type Companions string

const (
	CompanionsSolo       Companions = "solo"
	CompanionsFamily     Companions = "family"
	CompanionsCouple     Companions = "couple"
	CompanionsFriends    Companions = "friends"
	CompanionsColleagues Companions = "colleagues"
	CompanionsSurprise   Companions = "surprise"
)

// Intensity is how packed each day of the trip should be.
type Intensity string

const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Budget tiers. A positive number is also accepted as a custom budget.
const (
	BudgetCheap    = "budget"
	BudgetModerate = "moderate"
	BudgetLuxury   = "luxury"
)

const (
	MinDays = 1
	MaxDays = 30
)

// Request is one trip generation request as submitted by a user.
type Request struct {
	Destination   string     `json:"destination"`
	Days          int        `json:"days"`
	TravelingWith Companions `json:"travelingWith"`
	Budget        string     `json:"budget"`
	Intensity     Intensity  `json:"intensity,omitempty"`
}

// Normalize trims free-text fields, lower-cases the enums and applies the default intensity.
func (r Request) Normalize() Request {
	r.Destination = strings.TrimSpace(r.Destination)
	r.TravelingWith = Companions(strings.ToLower(strings.TrimSpace(string(r.TravelingWith))))
	r.Budget = strings.ToLower(strings.TrimSpace(r.Budget))
	r.Intensity = Intensity(strings.ToLower(strings.TrimSpace(string(r.Intensity))))
	if r.Intensity == "" {
		r.Intensity = IntensityModerate
	}
	return r
}

// Validate checks the request after normalization.
func (r Request) Validate() error {
	if r.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if r.Days < MinDays || r.Days > MaxDays {
		return fmt.Errorf("%w: days must be between %d and %d", ErrInvalidRequest, MinDays, MaxDays)
	}
	switch r.TravelingWith {
	case CompanionsSolo, CompanionsFamily, CompanionsCouple, CompanionsFriends, CompanionsColleagues, CompanionsSurprise:
	default:
		return fmt.Errorf("%w: unknown travelingWith %q", ErrInvalidRequest, r.TravelingWith)
	}
	if !validBudget(r.Budget) {
		return fmt.Errorf("%w: unknown budget %q", ErrInvalidRequest, r.Budget)
	}
	switch r.Intensity {
	case IntensityLight, IntensityModerate, IntensityIntense:
	default:
		return fmt.Errorf("%w: unknown intensity %q", ErrInvalidRequest, r.Intensity)
	}
	return nil
}

func validBudget(v string) bool {
	switch v {
	case BudgetCheap, BudgetModerate, BudgetLuxury:
		return true
	}
	n, err := strconv.ParseFloat(v, 64)
	return err == nil && n > 0
}
