package service

import (
	"github.com/iumatch/coursematch-backend/internal/metrics"
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/scoring"
)

// RecommendService builds ranked decks from the catalog and exposes
// per-course score breakdowns.
type RecommendService struct {
	engine  *scoring.Engine
	catalog *CatalogService
}

// NewRecommendService creates a RecommendService.
func NewRecommendService(engine *scoring.Engine, catalog *CatalogService) *RecommendService {
	return &RecommendService{engine: engine, catalog: catalog}
}

// BuildDeck ranks the catalog for the session's current state. An empty
// result means the student has seen or is blocked from everything.
func (s *RecommendService) BuildDeck(profile model.StudentProfile, accepted []model.Course, rejected []string) []model.ScoredCourse {
	deck := s.engine.Rank(s.catalog.Courses(), profile, accepted, rejected)

	metrics.DeckRebuildsTotal.Inc()
	for _, card := range deck {
		metrics.DeckScoreHistogram.Observe(float64(card.Score))
	}
	return deck
}

// Breakdown explains one course's score for the session's current state.
// The second return is false when the course ID is not in the catalog.
func (s *RecommendService) Breakdown(courseID string, profile model.StudentProfile, accepted []model.Course, rejected []string) (scoring.Breakdown, bool) {
	course, ok := s.catalog.Course(courseID)
	if !ok {
		return scoring.Breakdown{}, false
	}
	return s.engine.ScoreBreakdown(course, profile, accepted, rejected), true
}

// School classifies a declared major.
func (s *RecommendService) School(major string) model.School {
	return s.engine.SchoolForMajor(major)
}
