package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"tripgen/internal/ai"
	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
	"tripgen/internal/service"
)

func main() {
	_ = godotenv.Load()

	destination := flag.String("destination", "Paris", "destination name")
	days := flag.Int("days", 3, "trip length in days")
	with := flag.String("with", string(prompt.CompanionsCouple), "solo, family, couple, friends, colleagues or surprise")
	budget := flag.String("budget", prompt.BudgetModerate, "budget, moderate, luxury or a custom amount")
	intensity := flag.String("intensity", string(prompt.IntensityModerate), "light, moderate or intense")
	provider := flag.String("provider", "gemini", "gemini or openai")
	probe := flag.Bool("probe-images", true, "check image urls over http")
	timeout := flag.Duration("timeout", 90*time.Second, "overall generation timeout")
	backoff := flag.Duration("backoff", ai.DefaultBackoffUnit, "base wait between attempts when the model is overloaded")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	gen, closeGen, err := ai.NewGenerator(ctx, ai.GeneratorConfig{
		Provider:    *provider,
		GeminiKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel: os.Getenv("TRIPGEN_GEMINI_MODEL"),
		OpenAIKey:   os.Getenv("OPENAI_API_KEY"),
		OpenAIModel: os.Getenv("TRIPGEN_OPENAI_MODEL"),
		OpenAIBase:  os.Getenv("TRIPGEN_OPENAI_BASE_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize AI provider: %v", err)
	}
	defer closeGen()

	var checker tripplan.ImageChecker
	if *probe {
		checker = tripplan.NewHTTPImageChecker(tripplan.DefaultProbeTimeout)
	}

	planner := service.NewTripPlanner(
		ai.NewDispatcher(gen, ai.DefaultSeedHistory(), ai.WithBackoffUnit(*backoff)),
		tripplan.NewValidator(checker, "", 0),
		trips.NewMemoryStore(),
		nil,
		nil,
	)

	trip, err := planner.Generate(ctx, trips.Owner{UID: "demo"}, service.GenerateInput{
		Request: prompt.Request{
			Destination:   *destination,
			Days:          *days,
			TravelingWith: prompt.Companions(*with),
			Budget:        *budget,
			Intensity:     prompt.Intensity(*intensity),
		},
	})
	if err != nil {
		var gerr *service.GenerationError
		if errors.As(err, &gerr) {
			fmt.Fprintf(os.Stderr, "%s [%s]\n", gerr.Error(), gerr.Kind)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(trip.Plan); err != nil {
		log.Fatal(err)
	}
}
