package main

import (
	"context"
	"fmt"
	"time"

	"github.com/iumatch/coursematch-backend/internal/catalog"
	"github.com/iumatch/coursematch-backend/internal/config"
	"github.com/iumatch/coursematch-backend/internal/database"
	"github.com/iumatch/coursematch-backend/internal/logger"
	"github.com/iumatch/coursematch-backend/internal/repository"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if cfg.DatabaseURL == "" {
		log.Fatal().Msg("DATABASE_URL is not set")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	courseRepo := repository.NewCourseRepository(pool)

	fmt.Println("=== Seeding Course Catalog ===")

	courses := catalog.Fixtures()
	for _, course := range courses {
		if err := courseRepo.Upsert(ctx, &course); err != nil {
			log.Fatal().Err(err).Str("course_id", course.ID).Msg("Upsert failed")
		}
		fmt.Printf("Seeded %s (%s)\n", course.ID, course.Title)
	}

	count, err := courseRepo.Count(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Count failed")
	}
	fmt.Printf("Done. %d courses in catalog.\n", count)
}
