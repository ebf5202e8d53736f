package service

import (
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/progress"
	"github.com/iumatch/coursematch-backend/internal/schedule"
)

// PlannerService derives the weekly schedule grid and the degree-progress
// report from a session's accepted courses.
type PlannerService struct {
	aggregator *progress.Aggregator
}

// NewPlannerService creates a PlannerService.
func NewPlannerService(aggregator *progress.Aggregator) *PlannerService {
	return &PlannerService{aggregator: aggregator}
}

// WeekGrid places the accepted courses on the Monday-Friday hourly grid.
func (s *PlannerService) WeekGrid(session *model.SwipeSession) schedule.WeekGrid {
	return schedule.BuildWeekGrid(session.Accepted)
}

// Progress builds the degree-progress report for the session.
func (s *PlannerService) Progress(session *model.SwipeSession) model.ProgressReport {
	return s.aggregator.Report(session.Profile, session.Accepted)
}
