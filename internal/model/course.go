package model

import "strings"

// School is the top-level academic unit a course belongs to. It acts as a
// hard eligibility filter: students only see courses from their own school
// plus university-wide ("general") offerings.
type School string

const (
	SchoolLuddy   School = "luddy"
	SchoolKelley  School = "kelley"
	SchoolGeneral School = "general"
)

// Difficulty is a derived label based on course level and historical GPA.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// MeetingTimes describes when and where a course section meets.
// Times are clock strings like "8:00 AM"; parsing happens at the edges.
type MeetingTimes struct {
	Days      []string `json:"days"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Location  string   `json:"location"`
}

// Course is one catalog entry. Records are loaded once at startup and
// treated as immutable for the life of the process.
type Course struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Credits       int           `json:"credits"`
	AvgGPA        float64       `json:"avg_gpa"`
	Difficulty    Difficulty    `json:"difficulty"`
	Instructor    string        `json:"instructor"`
	Fulfills      []string      `json:"fulfills"`
	Prerequisites []string      `json:"prerequisites"`
	Level         int           `json:"level"`
	Term          string        `json:"term"`
	School        School        `json:"school"`
	MeetingTimes  *MeetingTimes `json:"meeting_times,omitempty"`
}

// Subject returns the lowercase subject code of the course ID: everything
// before the catalog number, e.g. "BUS-K303" -> "bus-k", "CSCI-C211" ->
// "csci-c". Used for prefix lookups in major alignment and diversity.
func (c Course) Subject() string {
	id := strings.ToLower(strings.ReplaceAll(c.ID, " ", ""))
	for i, r := range id {
		if r >= '0' && r <= '9' {
			return id[:i]
		}
	}
	return id
}

// DeriveDifficulty maps course level and average GPA onto a difficulty
// label. Luddy thresholds are stricter since CS and engineering sections
// grade lower overall.
func DeriveDifficulty(level int, avgGPA float64, school School) Difficulty {
	if school == SchoolLuddy {
		switch {
		case level >= 300 || avgGPA < 2.9:
			return DifficultyAdvanced
		case level >= 200 || avgGPA < 3.1:
			return DifficultyIntermediate
		}
		return DifficultyBeginner
	}
	switch {
	case level >= 300 || avgGPA < 2.8:
		return DifficultyAdvanced
	case level >= 200 || avgGPA < 3.2:
		return DifficultyIntermediate
	}
	return DifficultyBeginner
}

// ScoredCourse pairs a course with its recommendation score for deck output.
type ScoredCourse struct {
	Course Course `json:"course"`
	Score  int    `json:"score"`
}
