package scoring

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Weights are the per-factor multipliers of the weighted sum. They are kept
// in configuration rather than code so tuning never silently drifts between
// deployments.
type Weights struct {
	GPAFitness             float64 `toml:"gpa_fitness"`
	LevelProgression       float64 `toml:"level_progression"`
	Prerequisites          float64 `toml:"prerequisites"`
	MajorAlignment         float64 `toml:"major_alignment"`
	RequirementFulfillment float64 `toml:"requirement_fulfillment"`
	CourseLoad             float64 `toml:"course_load"`
	TimeConflict           float64 `toml:"time_conflict"`
	Diversity              float64 `toml:"diversity"`
}

// SchoolConfig drives the major classifier and the school alignment bonus.
type SchoolConfig struct {
	LuddyMajorKeywords []string `toml:"luddy_major_keywords"`
	SameSchoolBonus    int      `toml:"same_school_bonus"`
	GeneralBonus       int      `toml:"general_bonus"`
}

// MajorAlignmentConfig holds the keyword and subject-prefix lookup tables
// of the major-alignment subfactor.
type MajorAlignmentConfig struct {
	CoreKeywords    []string            `toml:"core_keywords"`
	GenericKeywords []string            `toml:"generic_keywords"`
	SubjectPrefixes map[string][]string `toml:"subject_prefixes"`
}

// RequirementConfig lists fulfills-tag tokens treated as critical
// requirement buckets.
type RequirementConfig struct {
	CriticalKeywords []string `toml:"critical_keywords"`
}

// RecommendationConfig bounds the ranked deck.
type RecommendationConfig struct {
	Limit     int `toml:"limit"`
	CreditCap int `toml:"credit_cap"`
}

// LevelBand maps course levels up to MaxLevel (inclusive) to a score.
type LevelBand struct {
	MaxLevel int `toml:"max_level"`
	Score    int `toml:"score"`
}

// LevelTier scores course levels for students with up to MaxCompleted
// completed courses. A zero MaxCompleted makes the tier the catch-all for
// everyone beyond the bounded tiers. Bands are checked in order; Fallback
// applies past the last band.
type LevelTier struct {
	MaxCompleted int         `toml:"max_completed"`
	Bands        []LevelBand `toml:"bands"`
	Fallback     int         `toml:"fallback"`
}

// LevelProgressionConfig is the tier table of the level-progression
// subfactor.
type LevelProgressionConfig struct {
	Tiers []LevelTier `toml:"tiers"`
}

// Bucket defines one degree-requirement bucket. Exactly one of Courses,
// Fulfills, or Prefixes selects the matching mode.
type Bucket struct {
	Group       string   `toml:"group"`
	Name        string   `toml:"name"`
	Required    int      `toml:"required"`
	CreditBased bool     `toml:"credit_based"`
	Courses     []string `toml:"courses"`
	Fulfills    string   `toml:"fulfills"`
	Prefixes    []string `toml:"prefixes"`
}

// ProgressConfig drives the degree-progress aggregator.
type ProgressConfig struct {
	TotalRequiredCredits    int                 `toml:"total_required_credits"`
	AssumedCompletedCredits int                 `toml:"assumed_completed_credits"`
	ICorePrereqs            []string            `toml:"icore_prereqs"`
	CapstonePatterns        []string            `toml:"capstone_patterns"`
	LuddyMajorPrefixes      map[string][]string `toml:"luddy_major_prefixes"`
	Buckets                 []Bucket            `toml:"buckets"`
}

// Config is the full versioned scoring + requirements configuration.
type Config struct {
	Version          int                    `toml:"version"`
	Weights          Weights                `toml:"weights"`
	Recommendation   RecommendationConfig   `toml:"recommendation"`
	LevelProgression LevelProgressionConfig `toml:"level_progression"`
	School           SchoolConfig           `toml:"school"`
	MajorAlignment   MajorAlignmentConfig   `toml:"major_alignment"`
	Requirement      RequirementConfig      `toml:"requirement"`
	Progress         ProgressConfig         `toml:"progress"`
}

// Default returns the compiled-in configuration, matching the shipped
// configs/scoring.toml. It is the fallback when no config file is given.
func Default() *Config {
	return &Config{
		Version: 1,
		Weights: Weights{
			GPAFitness:             0.25,
			LevelProgression:       0.15,
			Prerequisites:          0.15,
			MajorAlignment:         0.20,
			RequirementFulfillment: 0.15,
			CourseLoad:             0.05,
			TimeConflict:           0.03,
			Diversity:              0.02,
		},
		Recommendation: RecommendationConfig{
			Limit:     10,
			CreditCap: 18,
		},
		LevelProgression: LevelProgressionConfig{
			Tiers: []LevelTier{
				{MaxCompleted: 4, Fallback: 35, Bands: []LevelBand{
					{MaxLevel: 100, Score: 95},
					{MaxLevel: 200, Score: 80},
					{MaxLevel: 300, Score: 55},
				}},
				{MaxCompleted: 10, Fallback: 60, Bands: []LevelBand{
					{MaxLevel: 200, Score: 75},
					{MaxLevel: 300, Score: 85},
				}},
				{Fallback: 90, Bands: []LevelBand{
					{MaxLevel: 199, Score: 65},
					{MaxLevel: 299, Score: 75},
				}},
			},
		},
		School: SchoolConfig{
			LuddyMajorKeywords: []string{
				"computer science", "cs",
				"data science",
				"informatics",
				"intelligent systems engineering", "ise",
				"cybersecurity",
				"media arts",
				"library science",
				"human-computer interaction",
				"complex systems",
			},
			SameSchoolBonus: 30,
			GeneralBonus:    10,
		},
		MajorAlignment: MajorAlignmentConfig{
			CoreKeywords: []string{
				"major core", "core", "foundation", "prereq", "icore",
				"cs core", "informatics core", "data science core", "engineering core",
			},
			GenericKeywords: []string{"general", "prereq", "core", "major"},
			SubjectPrefixes: map[string][]string{
				// Kelley
				"accounting":              {"bus-a", "acct", "accounting"},
				"finance":                 {"bus-f", "fin", "finance", "econ"},
				"marketing":               {"bus-m", "mkt", "marketing"},
				"management":              {"bus-z", "bus-w", "mgmt", "management", "org"},
				"information systems":     {"bus-s", "bus-k", "info systems", "is", "k"},
				"supply chain management": {"bus-p", "ops", "supply", "logistics"},
				"business analytics":      {"bus-k", "k", "stat", "analytics", "ds"},
				// Luddy
				"computer science":                {"csci", "c", "p"},
				"data science":                    {"dsci", "stat", "csci", "info-i"},
				"informatics":                     {"info-i", "info"},
				"intelligent systems engineering": {"engr-e", "engr"},
			},
		},
		Requirement: RequirementConfig{
			CriticalKeywords: []string{
				"icore prerequisites", "major core", "general education",
				"cs core", "informatics core", "data science core", "engineering core",
			},
		},
		Progress: ProgressConfig{
			TotalRequiredCredits:    120,
			AssumedCompletedCredits: 3,
			ICorePrereqs: []string{
				"ENG-W131", "BUS-C104", "BUS-T175", "MATH-M119", "ECON-E370",
			},
			CapstonePatterns: []string{
				"Y399", "Y499", "D498", "D499", "I494", "I495", "E490", "E491",
			},
			LuddyMajorPrefixes: map[string][]string{
				"computer science":                {"CSCI", "MATH-M", "MATH-T"},
				"data science":                    {"DSCI", "CSCI", "STAT", "MATH-E"},
				"informatics":                     {"INFO"},
				"intelligent systems engineering": {"ENGR", "MATH-M", "PHYS"},
			},
			Buckets: []Bucket{
				{Group: "icore", Name: "English Composition", Required: 1,
					Courses: []string{"ENG-W131", "CMLT-C110", "ENG-W170", "ENG-W171"}},
				{Group: "icore", Name: "Math for Business", Required: 1,
					Courses: []string{"MATH-B110", "MATH-M119", "MATH-M211", "MATH-S211"}},
				{Group: "icore", Name: "Statistics for Business", Required: 1,
					Courses: []string{"ECON-E370", "STAT-S301", "ECON-S370", "MATH-M365"}},
				{Group: "icore", Name: "Business Foundation", Required: 2,
					Courses: []string{"BUS-T175", "BUS-C104"}},
				{Group: "gened", Name: "Natural & Mathematical Sciences", Required: 5,
					CreditBased: true, Fulfills: "Natural Science"},
				{Group: "gened", Name: "Arts & Humanities", Required: 6,
					CreditBased: true, Fulfills: "Arts & Humanities"},
				{Group: "gened", Name: "Social & Historical Studies", Required: 6,
					CreditBased: true, Fulfills: "Social & Historical Studies"},
				{Group: "gened", Name: "World Language & Culture", Required: 1,
					Courses: []string{"SPAN-S100", "FREN-F100", "GER-G100"}},
				{Group: "gened", Name: "Health & Wellness", Required: 1,
					Courses: []string{"HPER-P150"}},
				{Group: "other", Name: "Economics", Required: 2,
					Courses: []string{"ECON-B251", "ECON-B252"}},
			},
		},
	}
}

// LoadConfig reads a TOML scoring configuration from path. An empty path
// returns the compiled-in defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scoring config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse scoring config %s: %w", path, err)
	}

	if cfg.Recommendation.Limit <= 0 {
		return nil, fmt.Errorf("scoring config: recommendation limit must be positive")
	}
	if cfg.Recommendation.CreditCap <= 0 {
		return nil, fmt.Errorf("scoring config: credit cap must be positive")
	}
	if len(cfg.LevelProgression.Tiers) == 0 {
		return nil, fmt.Errorf("scoring config: level progression needs at least one tier")
	}

	return cfg, nil
}
