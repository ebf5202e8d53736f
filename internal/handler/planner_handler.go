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

// PlannerHandler serves the weekly schedule grid and degree progress.
type PlannerHandler struct {
	swipes  *service.SwipeService
	planner *service.PlannerService
	log     zerolog.Logger
}

func NewPlannerHandler(swipes *service.SwipeService, planner *service.PlannerService, log zerolog.Logger) *PlannerHandler {
	return &PlannerHandler{
		swipes:  swipes,
		planner: planner,
		log:     log.With().Str("component", "planner_handler").Logger(),
	}
}

// Schedule godoc
// GET /api/v1/session/schedule
func (h *PlannerHandler) Schedule(c *gin.Context) {
	session, err := h.swipes.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return
	}

	grid := h.planner.WeekGrid(session)

	// The enrolled list is the source of truth; courses whose start time
	// falls outside the grid still show up here.
	enrolled := session.Accepted
	if enrolled == nil {
		enrolled = []model.Course{}
	}

	response.Success(c, http.StatusOK, gin.H{
		"schedule":         grid,
		"courses":          enrolled,
		"accepted_credits": session.AcceptedCredits(),
	})
}

// Progress godoc
// GET /api/v1/session/progress
func (h *PlannerHandler) Progress(c *gin.Context) {
	session, err := h.swipes.Get(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": h.planner.Progress(session)})
}

func (h *PlannerHandler) failFromErr(c *gin.Context, err error) {
	if errors.Is(err, repository.ErrSessionNotFound) {
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
		return
	}
	h.log.Error().Err(err).Msg("planner operation failed")
	response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
}
