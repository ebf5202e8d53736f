// Package scoring implements the multi-factor course recommendation
// engine: a pure, deterministic scoring pipeline over the in-memory
// catalog. Every weight and lookup table comes from Config.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/schedule"
)

// Engine scores and ranks courses against a student profile and the
// current selection state. Stateless apart from its configuration; safe
// for concurrent use.
type Engine struct {
	cfg *Config
}

// NewEngine creates an Engine from a scoring configuration.
func NewEngine(cfg *Config) *Engine {
	if cfg == nil {
		cfg = Default()
	}
	return &Engine{cfg: cfg}
}

// Config exposes the engine's configuration for consumers that share its
// tables (progress aggregation, session credit cap).
func (e *Engine) Config() *Config {
	return e.cfg
}

// Breakdown is the per-factor decomposition of a score, surfaced so the
// client can explain why a card ranks where it does.
type Breakdown struct {
	GPAFitness             int `json:"gpa_fitness"`
	LevelProgression       int `json:"level_progression"`
	Prerequisites          int `json:"prerequisites"`
	MajorAlignment         int `json:"major_alignment"`
	RequirementFulfillment int `json:"requirement_fulfillment"`
	CourseLoad             int `json:"course_load"`
	TimeConflict           int `json:"time_conflict"`
	Diversity              int `json:"diversity"`
	SchoolBonus            int `json:"school_bonus"`
	Total                  int `json:"total"`
}

// Score produces a recommendation score in [0, 100] for one course given
// the full selection context. Pure and deterministic: same inputs, same
// score. Courses that fail a hard gate score exactly 0.
func (e *Engine) Score(course model.Course, profile model.StudentProfile, accepted []model.Course, rejected []string) int {
	return e.ScoreBreakdown(course, profile, accepted, rejected).Total
}

// ScoreBreakdown computes the score along with its factor decomposition.
func (e *Engine) ScoreBreakdown(course model.Course, profile model.StudentProfile, accepted []model.Course, rejected []string) Breakdown {
	if e.gated(course, profile, accepted, rejected) {
		return Breakdown{}
	}

	b := Breakdown{
		GPAFitness:             e.gpaFitness(course, profile),
		LevelProgression:       e.levelProgression(course, profile),
		Prerequisites:          e.prerequisiteCoverage(course, profile),
		MajorAlignment:         e.majorAlignment(course, profile),
		RequirementFulfillment: e.requirementFulfillment(course),
		CourseLoad:             e.courseLoad(course, accepted),
		TimeConflict:           e.timeConflict(course, accepted),
		Diversity:              e.diversity(course, accepted),
		SchoolBonus:            e.schoolBonus(course, profile),
	}

	w := e.cfg.Weights
	sum := float64(b.SchoolBonus) +
		float64(b.GPAFitness)*w.GPAFitness +
		float64(b.LevelProgression)*w.LevelProgression +
		float64(b.Prerequisites)*w.Prerequisites +
		float64(b.MajorAlignment)*w.MajorAlignment +
		float64(b.RequirementFulfillment)*w.RequirementFulfillment +
		float64(b.CourseLoad)*w.CourseLoad +
		float64(b.TimeConflict)*w.TimeConflict +
		float64(b.Diversity)*w.Diversity

	b.Total = clamp(int(math.Round(sum)), 0, 100)
	return b
}

// Rank scores the whole catalog, drops zero-score courses, sorts
// descending (stable, so ties keep catalog order) and truncates to the
// configured deck limit.
func (e *Engine) Rank(catalog []model.Course, profile model.StudentProfile, accepted []model.Course, rejected []string) []model.ScoredCourse {
	ranked := make([]model.ScoredCourse, 0, len(catalog))
	for _, course := range catalog {
		score := e.Score(course, profile, accepted, rejected)
		if score == 0 {
			continue
		}
		ranked = append(ranked, model.ScoredCourse{Course: course, Score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if limit := e.cfg.Recommendation.Limit; len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// gated applies the hard pre-checks: cross-school mismatch and any course
// already completed, accepted, or rejected this session.
func (e *Engine) gated(course model.Course, profile model.StudentProfile, accepted []model.Course, rejected []string) bool {
	if !schoolEligible(e.SchoolForMajor(profile.Major), course.School) {
		return true
	}
	if profile.HasCompleted(course.ID) {
		return true
	}
	for _, a := range accepted {
		if strings.EqualFold(a.ID, course.ID) {
			return true
		}
	}
	for _, id := range rejected {
		if strings.EqualFold(id, course.ID) {
			return true
		}
	}
	return false
}

func (e *Engine) schoolBonus(course model.Course, profile model.StudentProfile) int {
	switch {
	case course.School == e.SchoolForMajor(profile.Major):
		return e.cfg.School.SameSchoolBonus
	case course.School == model.SchoolGeneral:
		return e.cfg.School.GeneralBonus
	}
	return 0
}

// gpaFitness maps the course's historical GPA, clamped to [2.5, 3.9],
// linearly onto [30, 95], with a flat +10 for students with six or more
// completed courses as a proxy for being able to handle rigor.
func (e *Engine) gpaFitness(course model.Course, profile model.StudentProfile) int {
	gpa := course.AvgGPA
	if gpa <= 0 {
		gpa = model.DefaultGPA
	}
	clamped := math.Max(2.5, math.Min(3.9, gpa))
	base := 30 + (clamped-2.5)/(3.9-2.5)*65

	rigorBoost := 0.0
	if len(profile.CompletedCourses) >= 6 {
		rigorBoost = 10
	}

	return clamp(int(math.Round(base+rigorBoost)), 0, 100)
}

// levelProgression buckets students by completed-course count and rewards
// courses at or near the appropriate level. The tier table lives in the
// configuration alongside the other lookup tables.
func (e *Engine) levelProgression(course model.Course, profile model.StudentProfile) int {
	completed := len(profile.CompletedCourses)

	for _, tier := range e.cfg.LevelProgression.Tiers {
		if tier.MaxCompleted > 0 && completed > tier.MaxCompleted {
			continue
		}
		for _, band := range tier.Bands {
			if course.Level <= band.MaxLevel {
				return band.Score
			}
		}
		return tier.Fallback
	}
	return 0
}

// prerequisiteCoverage scores 85 for courses with no prerequisites, else
// 30 plus 70x the satisfied fraction. Matching is the documented loose
// heuristic: a prerequisite counts as satisfied when it appears as a
// case-insensitive substring of any completed course ID.
func (e *Engine) prerequisiteCoverage(course model.Course, profile model.StudentProfile) int {
	if len(course.Prerequisites) == 0 {
		return 85
	}

	satisfied := 0
	for _, prereq := range course.Prerequisites {
		p := strings.ToLower(prereq)
		for _, done := range profile.CompletedCourses {
			if strings.Contains(strings.ToLower(done), p) {
				satisfied++
				break
			}
		}
	}

	ratio := float64(satisfied) / float64(len(course.Prerequisites))
	return int(math.Round(30 + ratio*70))
}

// majorAlignment scores how closely the course tracks the declared major:
// fulfills-tag hit on the major or a core keyword (95), subject-prefix
// table hit (85, or 80 via the keyword fallbacks), generic requirement
// words (65), otherwise 35. An empty major is neutral (50).
func (e *Engine) majorAlignment(course model.Course, profile model.StudentProfile) int {
	major := strings.ToLower(profile.Major)
	if major == "" {
		return 50
	}

	subject := course.Subject()
	fulfills := lowerAll(course.Fulfills)

	for _, f := range fulfills {
		if strings.Contains(f, major) {
			return 95
		}
		for _, kw := range e.cfg.MajorAlignment.CoreKeywords {
			if strings.Contains(f, kw) {
				return 95
			}
		}
	}

	prefixes := e.cfg.MajorAlignment.SubjectPrefixes
	matched := false
	for key, list := range prefixes {
		if strings.Contains(major, key) {
			matched = true
			if startsWithAny(subject, list) {
				return 85
			}
		}
	}
	if !matched {
		// Shorthand majors like "CS (B.S.)" still deserve a prefix check.
		switch {
		case strings.Contains(major, "computer") || strings.Contains(major, "cs"):
			if startsWithAny(subject, prefixes["computer science"]) {
				return 85
			}
		case strings.Contains(major, "data"):
			if startsWithAny(subject, prefixes["data science"]) {
				return 80
			}
		case strings.Contains(major, "informatic"):
			if startsWithAny(subject, prefixes["informatics"]) {
				return 80
			}
		case strings.Contains(major, "engineering"):
			if startsWithAny(subject, prefixes["intelligent systems engineering"]) {
				return 80
			}
		}
	}

	for _, f := range fulfills {
		for _, kw := range e.cfg.MajorAlignment.GenericKeywords {
			if strings.Contains(f, kw) {
				return 65
			}
		}
	}

	return 35
}

// requirementFulfillment bumps courses that hit a critical requirement
// bucket to 100, any tagged course to 70, untagged to 30.
func (e *Engine) requirementFulfillment(course model.Course) int {
	if len(course.Fulfills) == 0 {
		return 30
	}
	for _, f := range lowerAll(course.Fulfills) {
		for _, crit := range e.cfg.Requirement.CriticalKeywords {
			if strings.Contains(f, crit) {
				return 100
			}
		}
	}
	return 70
}

// courseLoad soft-caps around 15 credits: the score drops as the running
// total (existing selections plus the candidate) climbs.
func (e *Engine) courseLoad(course model.Course, accepted []model.Course) int {
	total := creditsOrDefault(course)
	for _, a := range accepted {
		total += creditsOrDefault(a)
	}
	switch {
	case total <= 12:
		return 90
	case total <= 15:
		return 85
	case total <= e.cfg.Recommendation.CreditCap:
		return 65
	}
	return 45
}

// timeConflict is a best-effort day/time overlap check: 90 when clear,
// 40 on any overlap with an accepted course, 80 when the candidate has no
// meeting data to compare. Accepted courses without meeting data are
// skipped rather than penalized.
func (e *Engine) timeConflict(course model.Course, accepted []model.Course) int {
	if course.MeetingTimes == nil || len(course.MeetingTimes.Days) == 0 {
		return 80
	}
	for _, a := range accepted {
		if schedule.Overlaps(course.MeetingTimes, a.MeetingTimes) {
			return 40
		}
	}
	return 90
}

// diversity discourages stacking the same subject: it counts how many of
// the last four accepted courses share the candidate's subject prefix.
func (e *Engine) diversity(course model.Course, accepted []model.Course) int {
	subject := course.Subject()
	prefix := subject
	if len(prefix) > 4 {
		prefix = prefix[:4]
	}

	recent := accepted
	if len(recent) > 4 {
		recent = recent[len(recent)-4:]
	}

	same := 0
	for _, a := range recent {
		if strings.HasPrefix(a.Subject(), prefix) {
			same++
		}
	}

	scores := [4]int{100, 85, 70, 55}
	if same > 3 {
		same = 3
	}
	return scores[same]
}

func startsWithAny(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func creditsOrDefault(c model.Course) int {
	if c.Credits <= 0 {
		return 3
	}
	return c.Credits
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
