package scoring

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scoring.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadConfig_OverridesMergeOntoDefaults(t *testing.T) {
	path := writeConfig(t, `
[recommendation]
limit = 25

[weights]
gpa_fitness = 0.5
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Recommendation.Limit)
	assert.Equal(t, 0.5, cfg.Weights.GPAFitness)

	defaults := Default()
	assert.Equal(t, defaults.Recommendation.CreditCap, cfg.Recommendation.CreditCap,
		"untouched fields keep their defaults")
	assert.Equal(t, defaults.School.SameSchoolBonus, cfg.School.SameSchoolBonus)
	assert.Equal(t, defaults.LevelProgression, cfg.LevelProgression)
}

func TestLoadConfig_LevelProgressionOverride(t *testing.T) {
	path := writeConfig(t, `
[[level_progression.tiers]]
fallback = 50
bands = [{ max_level = 200, score = 70 }]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Len(t, cfg.LevelProgression.Tiers, 1)
	assert.Equal(t, 50, cfg.LevelProgression.Tiers[0].Fallback)

	eng := NewEngine(cfg)
	profile := kelleyProfile()
	assert.Equal(t, 70, eng.levelProgression(course("BUS-A100", "kelley", 100, 3.2, 1), profile))
	assert.Equal(t, 50, eng.levelProgression(course("BUS-K303", "kelley", 300, 3.1, 3), profile))
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name     string
		contents string
	}{
		{"zero limit", "[recommendation]\nlimit = 0\n"},
		{"negative credit cap", "[recommendation]\ncredit_cap = -3\n"},
		{"no level tiers", "[level_progression]\ntiers = []\n"},
		{"malformed toml", "weights = [broken\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tc.contents))
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
