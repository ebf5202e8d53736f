package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcceptedCredits(t *testing.T) {
	s := SwipeSession{}
	assert.Zero(t, s.AcceptedCredits())

	s.Accepted = []Course{{ID: "A", Credits: 3}, {ID: "B", Credits: 1}, {ID: "C", Credits: 4}}
	assert.Equal(t, 8, s.AcceptedCredits())

	// A listing without credits counts as 3, same as at accept time.
	s.Accepted = append(s.Accepted, Course{ID: "D"})
	assert.Equal(t, 11, s.AcceptedCredits())
}

func TestCurrentCard(t *testing.T) {
	deck := []ScoredCourse{
		{Course: Course{ID: "A"}, Score: 90},
		{Course: Course{ID: "B"}, Score: 80},
	}

	s := SwipeSession{State: StateBrowsing, Deck: deck}
	require.NotNil(t, s.CurrentCard())
	assert.Equal(t, "A", s.CurrentCard().Course.ID)

	s.Cursor = 1
	assert.Equal(t, "B", s.CurrentCard().Course.ID)

	s.Cursor = 2
	assert.Nil(t, s.CurrentCard(), "cursor past the end")

	s = SwipeSession{State: StateExhausted, Deck: deck}
	assert.Nil(t, s.CurrentCard(), "exhausted sessions have no card")
}

func TestHasAcceptedAndRejected(t *testing.T) {
	s := SwipeSession{
		Accepted: []Course{{ID: "BUS-T175"}},
		Rejected: []string{"ENG-W131"},
	}

	assert.True(t, s.HasAccepted("bus-t175"))
	assert.False(t, s.HasAccepted("BUS-C104"))
	assert.True(t, s.HasRejected("eng-w131"))
	assert.False(t, s.HasRejected("MATH-M119"))
}

func TestProfileNormalize(t *testing.T) {
	p := StudentProfile{
		Name:  "Jordan",
		Major: "Finance (B.S.)",
		GPA:   4.7,
		CompletedCourses: []string{
			"BUS-T175", "bus-t175", " BUS-C104 ", "", "BUS-C104",
		},
	}
	p.Normalize()

	assert.Equal(t, DefaultGPA, p.GPA, "out-of-range GPA falls back to the default")
	assert.Equal(t, []string{"BUS-T175", "BUS-C104"}, p.CompletedCourses)
}
