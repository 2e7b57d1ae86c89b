package tripplan

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Reasons reported by an invalid Outcome, in check order.
const (
	ReasonParse               = "parse error"
	ReasonDestinationMismatch = "destination mismatch"
	ReasonNoHotels            = "no hotels"
	ReasonNoItinerary         = "no itinerary"
)

const (
	DefaultPlaceholderImage = "https://images.unsplash.com/photo-1469474968028-56623f02e42e"
	DefaultConcurrency      = 8
	destinationTypeCity     = "city"
)

var errNotObject = errors.New("trip plan is not a JSON object")

// Known-bad references the model produces instead of real images.
var badImagePatterns = []string{"google.com/maps", "google.com/search"}

// ImageChecker reports whether url points at a retrievable image.
// Implementations must be safe for concurrent use.
type ImageChecker interface {
	Check(ctx context.Context, url string) bool
}

// Outcome is the result of Validate. Trip is set only when Reason is empty.
type Outcome struct {
	Trip           *Plan
	Reason         string
	ImagesReplaced int
}

// Valid reports whether the plan passed every required check.
func (o Outcome) Valid() bool { return o.Reason == "" }

func invalid(reason string) Outcome { return Outcome{Reason: reason} }

// Validator turns raw model output into a checked Plan.
type Validator struct {
	checker     ImageChecker
	placeholder string
	concurrency int
}

// NewValidator creates a Validator. A nil checker limits image checks to the
// known-bad patterns. Empty placeholder and non-positive concurrency use defaults.
func NewValidator(checker ImageChecker, placeholder string, concurrency int) *Validator {
	if placeholder == "" {
		placeholder = DefaultPlaceholderImage
	}
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Validator{checker: checker, placeholder: placeholder, concurrency: concurrency}
}

// Validate parses raw, runs the required checks in order and repairs image
// references. placeID may be empty.
func (v *Validator) Validate(ctx context.Context, raw, destination, placeID string) Outcome {
	plan, err := parsePlan(raw)
	if err != nil {
		log.Printf("tripplan: parse failed: %v", err)
		return invalid(ReasonParse)
	}

	if !strings.Contains(strings.ToLower(plan.TripSummary), strings.ToLower(destination)) {
		return invalid(ReasonDestinationMismatch)
	}
	if len(plan.Hotels) == 0 {
		return invalid(ReasonNoHotels)
	}
	if len(plan.Itinerary) == 0 {
		return invalid(ReasonNoItinerary)
	}

	dest := &Destination{Name: destination, Type: destinationTypeCity}
	if placeID != "" {
		dest.Coordinates = &placeID
	}
	plan.Destination = dest

	replaced := v.repairImages(ctx, plan)
	return Outcome{Trip: plan, ImagesReplaced: replaced}
}

// repairImages checks every hotel and activity image concurrently and swaps
// unusable ones for the placeholder. Each goroutine owns one field. Entries
// that are not objects carry no image and are left as they are.
func (v *Validator) repairImages(ctx context.Context, plan *Plan) int {
	var fields []*string
	for i := range plan.Hotels {
		if plan.Hotels[i].object() {
			fields = append(fields, &plan.Hotels[i].ImageURL)
		}
	}
	for d := range plan.Itinerary {
		for a := range plan.Itinerary[d].Activities {
			if plan.Itinerary[d].Activities[a].object() {
				fields = append(fields, &plan.Itinerary[d].Activities[a].ImageURL)
			}
		}
	}

	var (
		g        errgroup.Group
		replaced atomic.Int32
	)
	g.SetLimit(v.concurrency)
	for _, field := range fields {
		g.Go(func() error {
			if !v.usable(ctx, *field) {
				*field = v.placeholder
				replaced.Add(1)
			}
			return nil
		})
	}
	_ = g.Wait()
	return int(replaced.Load())
}

func (v *Validator) usable(ctx context.Context, url string) (ok bool) {
	if strings.TrimSpace(url) == "" {
		return false
	}
	for _, p := range badImagePatterns {
		if strings.Contains(url, p) {
			return false
		}
	}
	if v.checker == nil {
		return true
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("tripplan: image check panic url=%s: %v", url, r)
			ok = false
		}
	}()
	return v.checker.Check(ctx, url)
}

// parsePlan decodes the model reply. Only text that is not a JSON object fails;
// members of an unexpected shape, including non-array hotels, itinerary or
// activities, read as absent and are kept unchanged for storage.
func parsePlan(raw string) (*Plan, error) {
	var plan Plan
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
