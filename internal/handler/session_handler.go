package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/iumatch/coursematch-backend/internal/middleware"
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/repository"
	"github.com/iumatch/coursematch-backend/internal/response"
	"github.com/iumatch/coursematch-backend/internal/service"
	"github.com/iumatch/coursematch-backend/internal/validator"
)

// SessionHandler handles the session lifecycle: onboarding, profile
// reads and edits, and ending a session.
type SessionHandler struct {
	swipes *service.SwipeService
	tokens *service.TokenService
	log    zerolog.Logger
}

func NewSessionHandler(swipes *service.SwipeService, tokens *service.TokenService, log zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		swipes: swipes,
		tokens: tokens,
		log:    log.With().Str("component", "session_handler").Logger(),
	}
}

// sessionView is the session as returned to clients. The full deck stays
// server-side; clients browse one card at a time.
type sessionView struct {
	ID              string               `json:"id"`
	State           model.SessionState   `json:"state"`
	Profile         model.StudentProfile `json:"profile"`
	Accepted        []model.Course       `json:"accepted"`
	AcceptedCredits int                  `json:"accepted_credits"`
	RejectedCount   int                  `json:"rejected_count"`
	DeckSize        int                  `json:"deck_size"`
	CurrentCard     *model.ScoredCourse  `json:"current_card"`
}

func viewOf(s *model.SwipeSession) sessionView {
	return sessionView{
		ID:              s.ID,
		State:           s.State,
		Profile:         s.Profile,
		Accepted:        s.Accepted,
		AcceptedCredits: s.AcceptedCredits(),
		RejectedCount:   len(s.Rejected),
		DeckSize:        len(s.Deck),
		CurrentCard:     s.CurrentCard(),
	}
}

// Create godoc
// POST /api/v1/sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.swipes.Create(c.Request.Context(), req)
	if err != nil {
		h.log.Error().Err(err).Msg("session create failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	token, err := h.tokens.Mint(session.ID)
	if err != nil {
		h.log.Error().Err(err).Msg("token mint failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"session": viewOf(session),
		"token":   token,
	})
}

// GetProfile godoc
// GET /api/v1/session/profile
func (h *SessionHandler) GetProfile(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{"profile": session.Profile})
}

// UpdateProfile godoc
// PUT /api/v1/session/profile
func (h *SessionHandler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	session, err := h.swipes.UpdateProfile(c.Request.Context(), middleware.GetSessionID(c), req)
	if err != nil {
		h.failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": viewOf(session)})
}

// End godoc
// DELETE /api/v1/session
func (h *SessionHandler) End(c *gin.Context) {
	if err := h.swipes.End(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "session ended"})
}

func (h *SessionHandler) load(c *gin.Context) (*model.SwipeSession, bool) {
	session, err := h.swipes.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return nil, false
	}
	return session, true
}

func (h *SessionHandler) failFromErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSessionNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		return
	}
	h.log.Error().Err(err).Msg("session operation failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
