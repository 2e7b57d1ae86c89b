package service

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"tripgen/internal/ai"
	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
)

// TestGenerateLiveGemini runs one real generation end to end.
// Set TRIPGEN_TEST_GEMINI_KEY to enable it.
func TestGenerateLiveGemini(t *testing.T) {
	key := strings.TrimSpace(os.Getenv("TRIPGEN_TEST_GEMINI_KEY"))
	if key == "" {
		t.Skip("TRIPGEN_TEST_GEMINI_KEY not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gen, err := ai.NewGeminiProvider(ctx, key, ai.DefaultGeminiOptions(os.Getenv("TRIPGEN_GEMINI_MODEL")))
	if err != nil {
		t.Fatalf("gemini init: %v", err)
	}
	defer gen.Close()

	planner := NewTripPlanner(
		ai.NewDispatcher(gen, ai.DefaultSeedHistory()),
		tripplan.NewValidator(tripplan.NewHTTPImageChecker(tripplan.DefaultProbeTimeout), "", 0),
		trips.NewMemoryStore(),
		nil,
		nil,
	)

	trip, err := planner.Generate(ctx, trips.Owner{UID: "live"}, GenerateInput{
		Request: prompt.Request{Destination: "Lisbon", Days: 2, TravelingWith: prompt.CompanionsFriends, Budget: prompt.BudgetCheap},
	})
	if err != nil {
		// High traffic is outside our control; everything else is a failure.
		if gerr, ok := err.(*GenerationError); ok && gerr.Kind == KindOverloaded {
			t.Skipf("backend overloaded: %v", err)
		}
		t.Fatalf("generate: %v", err)
	}
	if len(trip.Plan.Hotels) == 0 || len(trip.Plan.Itinerary) == 0 {
		t.Fatalf("expected hotels and itinerary, got %d/%d", len(trip.Plan.Hotels), len(trip.Plan.Itinerary))
	}
	if !strings.Contains(strings.ToLower(trip.Plan.TripSummary), "lisbon") {
		t.Fatalf("summary does not mention Lisbon: %q", trip.Plan.TripSummary)
	}
}
