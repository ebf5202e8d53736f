package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iumatch/coursematch-backend/internal/catalog"
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/repository"
)

// CatalogService serves the course catalog. It loads once from the
// database when one is configured, and falls back to the built-in
// fixtures when the database is absent, empty or failing. After Load the
// catalog is immutable, so reads need no locking.
type CatalogService struct {
	repo repository.CourseRepository
	log  zerolog.Logger

	once    sync.Once
	courses []model.Course
	source  string
}

// NewCatalogService creates a CatalogService. repo may be nil when no
// database is configured.
func NewCatalogService(repo repository.CourseRepository, log zerolog.Logger) *CatalogService {
	return &CatalogService{repo: repo, log: log}
}

// Load populates the catalog. Safe to call more than once; only the
// first call does work.
func (s *CatalogService) Load(ctx context.Context) {
	s.once.Do(func() {
		if s.repo != nil {
			courses, err := s.repo.GetAll(ctx)
			if err != nil {
				s.log.Warn().Err(err).Msg("catalog load from database failed, using fixtures")
			} else if len(courses) == 0 {
				s.log.Warn().Msg("course table is empty, using fixtures")
			} else {
				s.courses = courses
				s.source = "database"
				s.log.Info().Int("courses", len(courses)).Msg("catalog loaded from database")
				return
			}
		}

		s.courses = catalog.Fixtures()
		s.source = "fixtures"
		s.log.Info().Int("courses", len(s.courses)).Msg("catalog loaded from fixtures")
	})
}

// Courses returns the full catalog in stable order.
func (s *CatalogService) Courses() []model.Course {
	return s.courses
}

// Course looks up one course by ID.
func (s *CatalogService) Course(id string) (model.Course, bool) {
	for _, c := range s.courses {
		if c.ID == id {
			return c, true
		}
	}
	return model.Course{}, false
}

// Majors returns the selectable majors grouped by school.
func (s *CatalogService) Majors() map[string][]string {
	return catalog.Majors()
}

// Source reports where the catalog came from ("database" or "fixtures").
func (s *CatalogService) Source() string {
	return s.source
}
