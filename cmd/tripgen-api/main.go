// README: Entry point; loads config, wires the trip planner and its backends, starts the HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/joho/godotenv/autoload"

	"tripgen/internal/ai"
	"tripgen/internal/config"
	httptransport "tripgen/internal/http"
	"tripgen/internal/http/handlers"
	"tripgen/internal/infra"
	"tripgen/internal/maps"
	"tripgen/internal/modules/aiusage"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
	"tripgen/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := infra.NewFirebaseApp(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		log.Fatalf("firebase init: %v", err)
	}
	verifier, err := infra.NewFirebaseVerifier(ctx, app)
	if err != nil {
		log.Fatalf("firebase auth init: %v", err)
	}

	var dbPool *pgxpool.Pool
	if cfg.DB.DSN != "" {
		dbPool, err = infra.NewDB(ctx, cfg.DB.DSN)
		if err != nil {
			log.Fatal(err)
		}
		defer dbPool.Close()
		if cfg.DB.AutoMigrate {
			if err := infra.ApplyMigrations(ctx, dbPool, cfg.DB.MigrationsDir); err != nil {
				log.Fatalf("migrate: %v", err)
			}
		}
	}

	var store trips.Store
	switch cfg.Store {
	case "postgres":
		store = trips.NewPGStore(dbPool)
	case "firestore":
		fs, err := infra.NewFirestore(ctx, app)
		if err != nil {
			log.Fatalf("firestore init: %v", err)
		}
		defer fs.Close()
		store = trips.NewFirestoreStore(fs)
	default:
		store = trips.NewMemoryStore()
	}
	if cfg.Redis.Addr != "" {
		rdb := infra.NewRedis(cfg.Redis.Addr)
		defer rdb.Close()
		store = trips.NewCachedStore(store, rdb, cfg.Redis.CacheTTL)
	}

	gen, closeGen, err := ai.NewGenerator(ctx, ai.GeneratorConfig{
		Provider:    cfg.AI.Provider,
		GeminiKey:   cfg.AI.GeminiKey,
		GeminiModel: cfg.AI.GeminiModel,
		OpenAIKey:   cfg.AI.OpenAIKey,
		OpenAIModel: cfg.AI.OpenAIModel,
		OpenAIBase:  cfg.AI.OpenAIBaseURL,
	})
	if err != nil {
		log.Fatalf("ai init: %v", err)
	}
	defer closeGen()
	dispatcher := ai.NewDispatcher(gen, ai.DefaultSeedHistory(), ai.WithBackoffUnit(cfg.AI.RetryBackoff))

	checker := tripplan.NewHTTPImageChecker(cfg.Images.ProbeTimeout)
	validator := tripplan.NewValidator(checker, cfg.Images.Placeholder, cfg.Images.Concurrency)

	var places service.PlaceResolver
	if cfg.Maps.APIKey != "" {
		ps, err := maps.NewPlacesService(cfg.Maps.APIKey, cfg.Maps.CacheTTL)
		if err != nil {
			log.Fatalf("maps init: %v", err)
		}
		places = ps
	}

	var (
		quota       service.QuotaGuard
		quotaReader handlers.QuotaReader
	)
	if dbPool != nil {
		usage := aiusage.NewService(aiusage.NewStore(dbPool), cfg.Quota.Monthly)
		quota, quotaReader = usage, usage
	}

	planner := service.NewTripPlanner(dispatcher, validator, store, places, quota)

	gin.SetMode(gin.ReleaseMode)
	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Trips:           planner,
		Quota:           quotaReader,
		Verifier:        verifier,
		CORSOrigins:     cfg.HTTP.CORSOrigins,
		RateLimit:       cfg.HTTP.RateLimit,
		GenerateTimeout: cfg.AI.GenerateTimeout,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("tripgen api listening addr=%s store=%s provider=%s quota=%t places=%t",
		cfg.HTTP.Addr, cfg.Store, cfg.AI.Provider, quota != nil, places != nil)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
