package model

import (
	"strings"
	"time"
)

// SessionState tracks where in the swipe flow a session is.
type SessionState string

const (
	// StateBrowsing means the cursor points at a card in the current deck.
	StateBrowsing SessionState = "browsing"
	// StateExhausted means a deck rebuild produced zero rankable courses.
	// Terminal until the profile changes or rejections are cleared.
	StateExhausted SessionState = "exhausted"
)

// SwipeSession is the per-user selection state: profile, accepted courses
// (ordered by acceptance), rejected IDs, and the current ranked deck with
// its browsing cursor. Session-scoped only, never persisted past its TTL.
type SwipeSession struct {
	ID        string         `json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	Profile   StudentProfile `json:"profile"`
	Accepted  []Course       `json:"accepted"`
	Rejected  []string       `json:"rejected"`
	Deck      []ScoredCourse `json:"deck"`
	Cursor    int            `json:"cursor"`
	State     SessionState   `json:"state"`
}

// AcceptedCredits sums the credits of all accepted courses. Listings
// without a credit value count as the standard 3, matching the credit-cap
// gate at accept time.
func (s *SwipeSession) AcceptedCredits() int {
	total := 0
	for _, c := range s.Accepted {
		credits := c.Credits
		if credits <= 0 {
			credits = 3
		}
		total += credits
	}
	return total
}

// Clone returns a copy that shares no slice backing arrays with the
// receiver, so the store and its callers can mutate independently. Course
// contents are catalog data and never modified in place, so they stay
// shared.
func (s *SwipeSession) Clone() *SwipeSession {
	copied := *s
	copied.Accepted = append([]Course(nil), s.Accepted...)
	copied.Rejected = append([]string(nil), s.Rejected...)
	copied.Deck = append([]ScoredCourse(nil), s.Deck...)
	return &copied
}

// HasAccepted reports whether the course ID is already on the schedule.
func (s *SwipeSession) HasAccepted(courseID string) bool {
	for _, c := range s.Accepted {
		if strings.EqualFold(c.ID, courseID) {
			return true
		}
	}
	return false
}

// HasRejected reports whether the course ID was swiped left this session.
func (s *SwipeSession) HasRejected(courseID string) bool {
	for _, id := range s.Rejected {
		if strings.EqualFold(id, courseID) {
			return true
		}
	}
	return false
}

// CurrentCard returns the card under the cursor, or nil when the deck is
// exhausted or the cursor has run past the end.
func (s *SwipeSession) CurrentCard() *ScoredCourse {
	if s.State == StateExhausted {
		return nil
	}
	if s.Cursor < 0 || s.Cursor >= len(s.Deck) {
		return nil
	}
	card := s.Deck[s.Cursor]
	return &card
}
