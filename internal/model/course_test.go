package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	testCases := []struct {
		name     string
		id       string
		expected string
	}{
		{"business course", "BUS-K303", "bus-k"},
		{"cs course", "CSCI-C211", "csci-c"},
		{"english course", "ENG-W131", "eng-w"},
		{"spaces stripped", "BUS - K303", "bus-k"},
		{"no number", "BUS", "bus"},
		{"empty", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Course{ID: tc.id}.Subject())
		})
	}
}

func TestDeriveDifficulty(t *testing.T) {
	testCases := []struct {
		name     string
		level    int
		avgGPA   float64
		school   School
		expected Difficulty
	}{
		{"intro with high gpa", 100, 3.5, SchoolKelley, DifficultyBeginner},
		{"intro with low gpa", 100, 2.7, SchoolKelley, DifficultyAdvanced},
		{"200 level", 200, 3.5, SchoolKelley, DifficultyIntermediate},
		{"300 level", 300, 3.8, SchoolKelley, DifficultyAdvanced},
		{"kelley gpa below 3.2", 100, 3.1, SchoolKelley, DifficultyIntermediate},
		{"luddy tolerates 3.1", 100, 3.1, SchoolLuddy, DifficultyBeginner},
		{"luddy gpa below 2.9", 100, 2.85, SchoolLuddy, DifficultyAdvanced},
		{"general follows kelley thresholds", 100, 3.3, SchoolGeneral, DifficultyBeginner},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveDifficulty(tc.level, tc.avgGPA, tc.school))
		})
	}
}
