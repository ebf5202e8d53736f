package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/iumatch/coursematch-backend/internal/metrics"
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/repository"
)

// Swipe flow errors.
var (
	// ErrCreditLimitExceeded means accepting the card would push the
	// schedule past the credit cap. The card stays current.
	ErrCreditLimitExceeded = errors.New("credit limit exceeded")
	// ErrDeckExhausted means there is no card to act on.
	ErrDeckExhausted = errors.New("deck exhausted")
)

// SwipeService owns the session lifecycle and the swipe state machine:
// create, browse, accept, reject, reset, profile edits, end.
type SwipeService struct {
	store      repository.SessionStore
	recommends *RecommendService
	sessionTTL time.Duration
	creditCap  int
	log        zerolog.Logger
}

// NewSwipeService creates a SwipeService.
func NewSwipeService(store repository.SessionStore, recommends *RecommendService, sessionTTL time.Duration, creditCap int, log zerolog.Logger) *SwipeService {
	return &SwipeService{
		store:      store,
		recommends: recommends,
		sessionTTL: sessionTTL,
		creditCap:  creditCap,
		log:        log,
	}
}

// Create starts a session from an onboarding profile and builds its
// first deck.
func (s *SwipeService) Create(ctx context.Context, req model.CreateSessionRequest) (*model.SwipeSession, error) {
	profile := model.StudentProfile{
		Name:             req.Name,
		Major:            req.Major,
		GPA:              req.GPA,
		CompletedCourses: req.CompletedCourses,
	}
	profile.Normalize()

	session := &model.SwipeSession{
		ID:        uuid.New().String(),
		CreatedAt: time.Now(),
		Profile:   profile,
		Accepted:  []model.Course{},
		Rejected:  []string{},
	}
	s.rebuildDeck(session)

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	metrics.SessionsCreatedTotal.Inc()
	s.log.Info().
		Str("session_id", session.ID).
		Str("major", profile.Major).
		Str("school", string(s.recommends.School(profile.Major))).
		Int("deck_size", len(session.Deck)).
		Msg("swipe session created")

	return session, nil
}

// Get loads a session by ID.
func (s *SwipeService) Get(ctx context.Context, id string) (*model.SwipeSession, error) {
	return s.store.Get(ctx, id)
}

// Accept swipes right on the card under the cursor. The course joins the
// schedule unless it would break the credit cap, then the deck is rebuilt
// so load, conflict and diversity factors see the new schedule.
func (s *SwipeService) Accept(ctx context.Context, id string) (*model.SwipeSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	card := session.CurrentCard()
	if card == nil {
		return nil, ErrDeckExhausted
	}

	credits := card.Course.Credits
	if credits <= 0 {
		credits = 3
	}
	if session.AcceptedCredits()+credits > s.creditCap {
		return nil, ErrCreditLimitExceeded
	}

	session.Accepted = append(session.Accepted, card.Course)
	s.rebuildDeck(session)

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.SwipesTotal.WithLabelValues("accept").Inc()
	s.log.Debug().
		Str("session_id", session.ID).
		Str("course_id", card.Course.ID).
		Int("credits_total", session.AcceptedCredits()).
		Msg("course accepted")

	return session, nil
}

// Reject swipes left on the card under the cursor and advances. Running
// past the end of the deck triggers a rebuild.
func (s *SwipeService) Reject(ctx context.Context, id string) (*model.SwipeSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	card := session.CurrentCard()
	if card == nil {
		return nil, ErrDeckExhausted
	}

	session.Rejected = append(session.Rejected, card.Course.ID)
	session.Cursor++
	if session.Cursor >= len(session.Deck) {
		s.rebuildDeck(session)
	}

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	metrics.SwipesTotal.WithLabelValues("reject").Inc()
	return session, nil
}

// ResetRejections clears the rejected list so those courses can come
// around again, and rebuilds the deck.
func (s *SwipeService) ResetRejections(ctx context.Context, id string) (*model.SwipeSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Rejected = []string{}
	s.rebuildDeck(session)

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	return session, nil
}

// UpdateProfile replaces the profile and rebuilds the deck from scratch.
// Accepted and rejected courses survive the edit.
func (s *SwipeService) UpdateProfile(ctx context.Context, id string, req model.UpdateProfileRequest) (*model.SwipeSession, error) {
	session, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	session.Profile = model.StudentProfile{
		Name:             req.Name,
		Major:            req.Major,
		GPA:              req.GPA,
		CompletedCourses: req.CompletedCourses,
	}
	session.Profile.Normalize()
	s.rebuildDeck(session)

	if err := s.store.Save(ctx, session, s.sessionTTL); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().
		Str("session_id", session.ID).
		Str("major", session.Profile.Major).
		Msg("profile updated")

	return session, nil
}

// End deletes a session.
func (s *SwipeService) End(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// rebuildDeck reranks the catalog against the session state and resets
// the cursor. An empty deck flips the session to exhausted; any non-empty
// rebuild flips it back to browsing.
func (s *SwipeService) rebuildDeck(session *model.SwipeSession) {
	session.Deck = s.recommends.BuildDeck(session.Profile, session.Accepted, session.Rejected)
	session.Cursor = 0

	if len(session.Deck) == 0 {
		session.State = model.StateExhausted
		metrics.DeckExhaustedTotal.Inc()
		return
	}
	session.State = model.StateBrowsing
}
