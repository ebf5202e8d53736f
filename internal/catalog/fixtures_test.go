package catalog

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iumatch/coursematch-backend/internal/model"
)

var idPattern = regexp.MustCompile(`^[A-Z]{2,5}-[A-Z][0-9]{3}$`)

func TestFixtures_WellFormed(t *testing.T) {
	courses := Fixtures()
	require.NotEmpty(t, courses)

	seen := make(map[string]bool)
	for _, c := range courses {
		assert.Regexp(t, idPattern, c.ID)
		assert.False(t, seen[c.ID], "duplicate course %s", c.ID)
		seen[c.ID] = true

		assert.NotEmpty(t, c.Title, "%s missing title", c.ID)
		assert.Positive(t, c.Credits, "%s missing credits", c.ID)
		assert.Greater(t, c.AvgGPA, 0.0, "%s missing avg gpa", c.ID)
		assert.Positive(t, c.Level, "%s missing level", c.ID)
		assert.Contains(t,
			[]model.School{model.SchoolGeneral, model.SchoolLuddy, model.SchoolKelley},
			c.School, "%s has unknown school", c.ID)
		assert.NotEmpty(t, c.Difficulty, "%s difficulty not derived", c.ID)

		if mt := c.MeetingTimes; mt != nil {
			assert.NotEmpty(t, mt.Days, "%s has meeting times without days", c.ID)
			assert.NotEmpty(t, mt.StartTime, "%s has meeting times without start", c.ID)
			assert.NotEmpty(t, mt.EndTime, "%s has meeting times without end", c.ID)
		}
	}
}

func TestFixtures_PrerequisitesResolvable(t *testing.T) {
	courses := Fixtures()
	ids := make(map[string]bool, len(courses))
	for _, c := range courses {
		ids[c.ID] = true
	}

	// Prerequisites may reference courses outside the fixture set (the
	// engine treats them as unmet) but must at least look like IDs.
	for _, c := range courses {
		for _, p := range c.Prerequisites {
			assert.Regexp(t, idPattern, p, "%s has malformed prerequisite %q", c.ID, p)
		}
	}
}

func TestFixtures_EverySchoolRepresented(t *testing.T) {
	bySchool := make(map[model.School]int)
	for _, c := range Fixtures() {
		bySchool[c.School]++
	}
	assert.Positive(t, bySchool[model.SchoolKelley])
	assert.Positive(t, bySchool[model.SchoolLuddy])
	assert.Positive(t, bySchool[model.SchoolGeneral])
}

func TestMajors_CoverBothSchools(t *testing.T) {
	majors := Majors()
	require.Contains(t, majors, "luddy")
	require.Contains(t, majors, "kelley")
	assert.NotEmpty(t, majors["luddy"])
	assert.NotEmpty(t, majors["kelley"])
}
