package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/iumatch/coursematch-backend/internal/config"
	"github.com/iumatch/coursematch-backend/internal/database"
	"github.com/iumatch/coursematch-backend/internal/handler"
	"github.com/iumatch/coursematch-backend/internal/logger"
	"github.com/iumatch/coursematch-backend/internal/progress"
	"github.com/iumatch/coursematch-backend/internal/repository"
	"github.com/iumatch/coursematch-backend/internal/router"
	"github.com/iumatch/coursematch-backend/internal/scoring"
	"github.com/iumatch/coursematch-backend/internal/service"
	"github.com/iumatch/coursematch-backend/internal/validator"
	"github.com/iumatch/coursematch-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting CourseMatch Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Load Scoring Configuration ────────────────────────────────────
	scoringCfg, err := scoring.LoadConfig(cfg.ScoringConfigPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load scoring configuration")
	}
	engine := scoring.NewEngine(scoringCfg)

	// ─── Connect to PostgreSQL (Optional) ──────────────────────────────
	// Without a DATABASE_URL the catalog serves from built-in fixtures.
	var courseRepo repository.CourseRepository
	if cfg.DatabaseURL != "" {
		pool, err := database.NewPostgresPool(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("PostgreSQL unavailable, catalog will use fixtures")
		} else {
			defer pool.Close()
			courseRepo = repository.NewCourseRepository(pool)
		}
	}

	// ─── Connect to Redis (Optional) ───────────────────────────────────
	// Without a REDIS_URL sessions live in process memory.
	var sessionStore repository.SessionStore
	if cfg.RedisURL != "" {
		rdb, err := database.NewRedisClient(ctx, cfg, log)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, sessions will be in-memory")
		} else {
			defer rdb.Close()
			sessionStore = repository.NewRedisSessionStore(rdb)
		}
	}
	if sessionStore == nil {
		sessionStore = repository.NewMemorySessionStore()
		log.Info().Msg("Using in-memory session store")
	}

	// ─── Load Catalog ──────────────────────────────────────────────────
	catalogService := service.NewCatalogService(courseRepo, log)
	catalogService.Load(ctx)

	// ─── Initialize Services ──────────────────────────────────────────
	tokenService := service.NewTokenService(cfg)
	recommendService := service.NewRecommendService(engine, catalogService)
	swipeService := service.NewSwipeService(
		sessionStore, recommendService, cfg.SessionTTL,
		scoringCfg.Recommendation.CreditCap, log,
	)
	plannerService := service.NewPlannerService(progress.NewAggregator(scoringCfg))

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Session: handler.NewSessionHandler(swipeService, tokenService, log),
		Deck:    handler.NewDeckHandler(swipeService, recommendService, log),
		Planner: handler.NewPlannerHandler(swipeService, plannerService, log),
		Catalog: handler.NewCatalogHandler(catalogService),
		WS:      handler.NewWSHandler(swipeService, log, cfg.AllowedOrigins),
		System:  handler.NewSystemHandler(log),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	if sweeper, ok := sessionStore.(worker.Sweeper); ok {
		janitor := worker.NewSessionJanitor(sweeper, 10*time.Minute, log)
		go janitor.Start(workerCtx)
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(tokenService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	workerCancel()

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
