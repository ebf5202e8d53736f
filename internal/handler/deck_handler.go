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
)

// DeckHandler handles deck browsing and swipes.
type DeckHandler struct {
	swipes     *service.SwipeService
	recommends *service.RecommendService
	log        zerolog.Logger
}

func NewDeckHandler(swipes *service.SwipeService, recommends *service.RecommendService, log zerolog.Logger) *DeckHandler {
	return &DeckHandler{
		swipes:     swipes,
		recommends: recommends,
		log:        log.With().Str("component", "deck_handler").Logger(),
	}
}

// GetDeck godoc
// GET /api/v1/session/deck
func (h *DeckHandler) GetDeck(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"state": session.State,
		"deck":  session.Deck,
	})
}

// Current godoc
// GET /api/v1/session/deck/current
func (h *DeckHandler) Current(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}

	card := session.CurrentCard()
	if card == nil {
		response.Fail(c, http.StatusConflict, response.ErrDeckExhausted)
		return
	}

	breakdown, _ := h.recommends.Breakdown(
		card.Course.ID, session.Profile, session.Accepted, session.Rejected)
	response.Success(c, http.StatusOK, gin.H{
		"card":      card,
		"breakdown": breakdown,
	})
}

// Accept godoc
// POST /api/v1/session/deck/accept
func (h *DeckHandler) Accept(c *gin.Context) {
	session, err := h.swipes.Accept(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return
	}
	h.swipeResponse(c, session)
}

// Reject godoc
// POST /api/v1/session/deck/reject
func (h *DeckHandler) Reject(c *gin.Context) {
	session, err := h.swipes.Reject(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return
	}
	h.swipeResponse(c, session)
}

// ResetRejections godoc
// POST /api/v1/session/deck/reset-rejections
func (h *DeckHandler) ResetRejections(c *gin.Context) {
	session, err := h.swipes.ResetRejections(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return
	}
	h.swipeResponse(c, session)
}

// Breakdown godoc
// GET /api/v1/session/deck/breakdown/:course_id
// Explains a course's score for the session's current state.
func (h *DeckHandler) Breakdown(c *gin.Context) {
	session, ok := h.load(c)
	if !ok {
		return
	}

	breakdown, found := h.recommends.Breakdown(
		c.Param("course_id"), session.Profile, session.Accepted, session.Rejected)
	if !found {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"breakdown": breakdown})
}

func (h *DeckHandler) swipeResponse(c *gin.Context, session *model.SwipeSession) {
	response.Success(c, http.StatusOK, gin.H{
		"state":            session.State,
		"current_card":     session.CurrentCard(),
		"accepted_count":   len(session.Accepted),
		"accepted_credits": session.AcceptedCredits(),
		"remaining":        len(session.Deck) - session.Cursor,
	})
}

func (h *DeckHandler) load(c *gin.Context) (*model.SwipeSession, bool) {
	session, err := h.swipes.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return nil, false
	}
	return session, true
}

func (h *DeckHandler) failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repository.ErrSessionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrCreditLimitExceeded):
		response.Fail(c, http.StatusConflict, response.ErrCreditLimitExceeded)
	case errors.Is(err, service.ErrDeckExhausted):
		response.Fail(c, http.StatusConflict, response.ErrDeckExhausted)
	default:
		h.log.Error().Err(err).Msg("deck operation failed")
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
