// Package progress aggregates degree-progress reports: requirement
// buckets, credit totals and school-specific milestone metrics, driven by
// the same configuration the scoring engine uses.
package progress

import (
	"strings"

	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/scoring"
)

// Aggregator computes ProgressReports from a profile and the courses
// scheduled this session. Stateless; safe for concurrent use.
type Aggregator struct {
	cfg *scoring.Config
	eng *scoring.Engine
}

// NewAggregator builds an Aggregator over the shared scoring config.
func NewAggregator(cfg *scoring.Config) *Aggregator {
	if cfg == nil {
		cfg = scoring.Default()
	}
	return &Aggregator{cfg: cfg, eng: scoring.NewEngine(cfg)}
}

// Report assembles the full degree-progress view. Completed courses are
// assumed to carry the configured per-course credit value since the
// profile stores only IDs; scheduled credits come from the accepted
// courses themselves. The percentage is clamped to 100.
func (a *Aggregator) Report(profile model.StudentProfile, scheduled []model.Course) model.ProgressReport {
	p := a.cfg.Progress

	completedCredits := len(profile.CompletedCourses) * p.AssumedCompletedCredits
	scheduledCredits := 0
	for _, c := range scheduled {
		credits := c.Credits
		if credits <= 0 {
			credits = p.AssumedCompletedCredits
		}
		scheduledCredits += credits
	}

	earned := completedCredits + scheduledCredits
	pct := float64(earned) / float64(p.TotalRequiredCredits) * 100
	if pct > 100 {
		pct = 100
	}
	remaining := p.TotalRequiredCredits - earned
	if remaining < 0 {
		remaining = 0
	}

	report := model.ProgressReport{
		Percentage:       pct,
		CompletedCredits: completedCredits,
		ScheduledCredits: scheduledCredits,
		TotalCredits:     p.TotalRequiredCredits,
		RemainingCredits: remaining,
	}

	for _, bucket := range p.Buckets {
		status := a.bucketStatus(bucket, profile, scheduled)
		switch bucket.Group {
		case "icore":
			report.ICorePrerequisites = append(report.ICorePrerequisites, status)
		case "gened":
			report.GeneralEducation = append(report.GeneralEducation, status)
		default:
			report.OtherRequired = append(report.OtherRequired, status)
		}
	}

	switch a.school(profile.Major) {
	case model.SchoolLuddy:
		report.Luddy = a.luddyProgress(profile, scheduled)
	default:
		report.Kelley = a.kelleyProgress(profile, scheduled)
	}

	return report
}

func (a *Aggregator) school(major string) model.School {
	return a.eng.SchoolForMajor(major)
}

// bucketStatus counts completed and scheduled matches for one bucket.
// A bucket matches a course by explicit course list, by fulfills tag, or
// by subject prefix, in that order of preference. Credit-based buckets
// count credits instead of courses.
func (a *Aggregator) bucketStatus(bucket scoring.Bucket, profile model.StudentProfile, scheduled []model.Course) model.BucketStatus {
	status := model.BucketStatus{
		Name:        bucket.Name,
		Required:    bucket.Required,
		CreditBased: bucket.CreditBased,
		Courses:     bucket.Courses,
	}

	for _, id := range profile.CompletedCourses {
		if bucketMatchesID(bucket, id) {
			status.Completed += a.bucketUnit(bucket, model.Course{ID: id})
		}
	}
	for _, c := range scheduled {
		if bucketMatchesCourse(bucket, c) {
			status.Scheduled += a.bucketUnit(bucket, c)
		}
	}

	status.Satisfied = status.Completed+status.Scheduled >= bucket.Required
	return status
}

// bucketUnit is 1 for count-based buckets and the course's credit value
// for credit-based ones. Completed courses only carry an ID, so they fall
// back to the assumed per-course credit value.
func (a *Aggregator) bucketUnit(bucket scoring.Bucket, c model.Course) int {
	if !bucket.CreditBased {
		return 1
	}
	if c.Credits > 0 {
		return c.Credits
	}
	return a.cfg.Progress.AssumedCompletedCredits
}

func bucketMatchesID(bucket scoring.Bucket, id string) bool {
	upper := strings.ToUpper(id)
	for _, want := range bucket.Courses {
		if strings.EqualFold(want, id) {
			return true
		}
	}
	for _, prefix := range bucket.Prefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}

func bucketMatchesCourse(bucket scoring.Bucket, c model.Course) bool {
	if bucketMatchesID(bucket, c.ID) {
		return true
	}
	if bucket.Fulfills == "" {
		return false
	}
	for _, f := range c.Fulfills {
		if strings.Contains(strings.ToLower(f), strings.ToLower(bucket.Fulfills)) {
			return true
		}
	}
	return false
}

// kelleyProgress reports I-Core eligibility and accumulated business
// credits. Eligibility requires every configured prerequisite to appear,
// as a loose substring match on the course number, among completed or
// scheduled courses.
func (a *Aggregator) kelleyProgress(profile model.StudentProfile, scheduled []model.Course) *model.KelleyProgress {
	ids := allIDs(profile, scheduled)

	eligible := true
	for _, prereq := range a.cfg.Progress.ICorePrereqs {
		if !anyContains(ids, prereq) {
			eligible = false
			break
		}
	}

	credits := 0
	for _, id := range profile.CompletedCourses {
		if strings.HasPrefix(strings.ToUpper(id), "BUS") {
			credits += a.cfg.Progress.AssumedCompletedCredits
		}
	}
	for _, c := range scheduled {
		if strings.HasPrefix(strings.ToUpper(c.ID), "BUS") {
			credits += creditsOrAssumed(c, a.cfg.Progress.AssumedCompletedCredits)
		}
	}

	return &model.KelleyProgress{ICoreEligible: eligible, BusinessCredits: credits}
}

// luddyProgress reports major-subject credits and capstone completion for
// Luddy students, using the per-major prefix table.
func (a *Aggregator) luddyProgress(profile model.StudentProfile, scheduled []model.Course) *model.LuddyProgress {
	major := strings.ToLower(profile.Major)
	var prefixes []string
	for key, list := range a.cfg.Progress.LuddyMajorPrefixes {
		if strings.Contains(major, key) {
			prefixes = list
			break
		}
	}

	credits := 0
	for _, id := range profile.CompletedCourses {
		if startsWithAnyFold(id, prefixes) {
			credits += a.cfg.Progress.AssumedCompletedCredits
		}
	}
	for _, c := range scheduled {
		if startsWithAnyFold(c.ID, prefixes) {
			credits += creditsOrAssumed(c, a.cfg.Progress.AssumedCompletedCredits)
		}
	}

	capstone := false
	ids := allIDs(profile, scheduled)
	for _, pattern := range a.cfg.Progress.CapstonePatterns {
		if anyContains(ids, pattern) {
			capstone = true
			break
		}
	}

	return &model.LuddyProgress{MajorCredits: credits, CapstoneComplete: capstone}
}

func allIDs(profile model.StudentProfile, scheduled []model.Course) []string {
	ids := make([]string, 0, len(profile.CompletedCourses)+len(scheduled))
	ids = append(ids, profile.CompletedCourses...)
	for _, c := range scheduled {
		ids = append(ids, c.ID)
	}
	return ids
}

func anyContains(ids []string, needle string) bool {
	n := strings.ToLower(needle)
	for _, id := range ids {
		if strings.Contains(strings.ToLower(id), n) {
			return true
		}
	}
	return false
}

func startsWithAnyFold(id string, prefixes []string) bool {
	upper := strings.ToUpper(id)
	for _, p := range prefixes {
		if strings.HasPrefix(upper, strings.ToUpper(p)) {
			return true
		}
	}
	return false
}

func creditsOrAssumed(c model.Course, assumed int) int {
	if c.Credits > 0 {
		return c.Credits
	}
	return assumed
}
