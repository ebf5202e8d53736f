package websocket

import (
	"github.com/iumatch/coursematch-backend/internal/model"
)

// ─── Actions (Client → Server) ──────────────────────────────────────

type Action string

const (
	ActionAccept Action = "accept"
	ActionReject Action = "reject"
	ActionReset  Action = "reset_rejections"
	ActionPing   Action = "ping"
)

// RequestPayload is a client swipe message.
type RequestPayload struct {
	Action Action `json:"action"`
}

// ─── Events (Server → Client) ───────────────────────────────────────

type Event string

const (
	EventCard      Event = "card"
	EventExhausted Event = "exhausted"
	EventError     Event = "error"
	EventPong      Event = "pong"
)

// CardResponse carries the card now under the cursor after a swipe.
type CardResponse struct {
	Event           Event               `json:"event"`
	Card            *model.ScoredCourse `json:"card"`
	AcceptedCount   int                 `json:"accepted_count"`
	AcceptedCredits int                 `json:"accepted_credits"`
	RemainingInDeck int                 `json:"remaining_in_deck"`
}

// ExhaustedResponse signals there is nothing left to recommend.
type ExhaustedResponse struct {
	Event           Event `json:"event"`
	AcceptedCount   int   `json:"accepted_count"`
	AcceptedCredits int   `json:"accepted_credits"`
}

type ErrorResponse struct {
	Event Event  `json:"event"`
	Error string `json:"error"`
}

type PongResponse struct {
	Event Event `json:"event"`
}
