package model

import "strings"

// DefaultGPA is assumed when a profile omits or mistypes its GPA.
const DefaultGPA = 3.0

// StudentProfile is created at onboarding and mutated only by explicit
// user edits. CompletedCourses is an unordered unique set of course IDs.
type StudentProfile struct {
	Name             string   `json:"name"`
	Major            string   `json:"major"`
	GPA              float64  `json:"gpa"`
	CompletedCourses []string `json:"completed_courses"`
}

// Normalize fills defensive defaults and deduplicates completed courses.
func (p *StudentProfile) Normalize() {
	if p.GPA <= 0 || p.GPA > 4.0 {
		p.GPA = DefaultGPA
	}
	p.CompletedCourses = dedupeIDs(p.CompletedCourses)
}

// HasCompleted reports whether the profile lists the course ID as
// completed (case-insensitive exact match).
func (p StudentProfile) HasCompleted(courseID string) bool {
	for _, c := range p.CompletedCourses {
		if strings.EqualFold(c, courseID) {
			return true
		}
	}
	return false
}

// CreateSessionRequest is the payload for starting a swipe session.
type CreateSessionRequest struct {
	Name             string   `json:"name" binding:"required,min=1,max=100"`
	Major            string   `json:"major" binding:"required,min=2,max=100"`
	GPA              float64  `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	CompletedCourses []string `json:"completed_courses" binding:"omitempty,dive,course_id"`
}

// UpdateProfileRequest is the payload for editing an existing profile.
// The same validation rules apply as at onboarding.
type UpdateProfileRequest struct {
	Name             string   `json:"name" binding:"required,min=1,max=100"`
	Major            string   `json:"major" binding:"required,min=2,max=100"`
	GPA              float64  `json:"gpa" binding:"omitempty,gte=0,lte=4"`
	CompletedCourses []string `json:"completed_courses" binding:"omitempty,dive,course_id"`
}

func dedupeIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		key := strings.ToUpper(strings.TrimSpace(id))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, strings.TrimSpace(id))
	}
	return out
}
