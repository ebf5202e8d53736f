package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/iumatch/coursematch-backend/internal/middleware"
	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/repository"
	"github.com/iumatch/coursematch-backend/internal/service"
	ws "github.com/iumatch/coursematch-backend/internal/websocket"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// allowedOrigins comes from config.Config.AllowedOrigins.
// An empty slice permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// WSHandler streams the swipe deck over a WebSocket so clients can swipe
// without a request round-trip per card.
type WSHandler struct {
	swipes   *service.SwipeService
	log      zerolog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler creates a new WSHandler.
func NewWSHandler(swipes *service.SwipeService, log zerolog.Logger, allowedOrigins []string) *WSHandler {
	return &WSHandler{
		swipes:   swipes,
		log:      log.With().Str("component", "ws_handler").Logger(),
		upgrader: buildUpgrader(allowedOrigins),
	}
}

// DeckStream godoc
// WS /ws/v1/deck?token=...
// Upgrades to WebSocket. The server pushes the current card immediately
// and after every accept/reject/reset action.
func (h *WSHandler) DeckStream(c *gin.Context) {
	sessionID := middleware.GetSessionID(c)
	if sessionID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	ctx := c.Request.Context()

	session, err := h.swipes.Get(ctx, sessionID)
	if err != nil {
		ws.WriteError(conn, "session not found or expired")
		return
	}

	wsLog := h.log.With().Str("session_id", sessionID).Logger()
	wsLog.Info().Msg("Deck stream connected")

	// Push the opening card right away.
	h.pushState(conn, session)

	for {
		var msg ws.RequestPayload
		if err := ws.ReadJSON(conn, &msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				wsLog.Warn().Err(err).Msg("Unexpected close")
			} else {
				wsLog.Debug().Msg("Connection closed")
			}
			return
		}

		switch msg.Action {
		case ws.ActionAccept:
			h.handleSwipe(ctx, conn, sessionID, h.swipes.Accept)
		case ws.ActionReject:
			h.handleSwipe(ctx, conn, sessionID, h.swipes.Reject)
		case ws.ActionReset:
			h.handleSwipe(ctx, conn, sessionID, h.swipes.ResetRejections)
		case ws.ActionPing:
			ws.WriteTyped(conn, ws.PongResponse{Event: ws.EventPong})
		default:
			ws.WriteError(conn, "unknown action")
		}
	}
}

func (h *WSHandler) handleSwipe(ctx context.Context, conn *websocket.Conn, sessionID string, op func(context.Context, string) (*model.SwipeSession, error)) {
	session, err := op(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCreditLimitExceeded):
			ws.WriteError(conn, "credit limit exceeded")
		case errors.Is(err, service.ErrDeckExhausted):
			ws.WriteError(conn, "deck exhausted")
		case errors.Is(err, repository.ErrSessionNotFound):
			ws.WriteError(conn, "session not found or expired")
		default:
			h.log.Error().Err(err).Msg("swipe over websocket failed")
			ws.WriteError(conn, "internal error")
		}
		return
	}
	h.pushState(conn, session)
}

func (h *WSHandler) pushState(conn *websocket.Conn, session *model.SwipeSession) {
	card := session.CurrentCard()
	if card == nil {
		ws.WriteTyped(conn, ws.ExhaustedResponse{
			Event:           ws.EventExhausted,
			AcceptedCount:   len(session.Accepted),
			AcceptedCredits: session.AcceptedCredits(),
		})
		return
	}

	ws.WriteTyped(conn, ws.CardResponse{
		Event:           ws.EventCard,
		Card:            card,
		AcceptedCount:   len(session.Accepted),
		AcceptedCredits: session.AcceptedCredits(),
		RemainingInDeck: len(session.Deck) - session.Cursor,
	})
}
