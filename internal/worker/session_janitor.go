package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Sweeper is implemented by session stores that track expiry in-process.
// The Redis store expires keys itself and needs no janitor.
type Sweeper interface {
	Sweep() int
}

// SessionJanitor periodically drops expired sessions from an in-memory
// store.
type SessionJanitor struct {
	store    Sweeper
	interval time.Duration
	log      zerolog.Logger
}

// NewSessionJanitor creates a new SessionJanitor.
func NewSessionJanitor(store Sweeper, interval time.Duration, log zerolog.Logger) *SessionJanitor {
	return &SessionJanitor{
		store:    store,
		interval: interval,
		log:      log.With().Str("component", "session_janitor").Logger(),
	}
}

// Start begins the sweep loop. Call in a goroutine.
func (w *SessionJanitor) Start(ctx context.Context) {
	w.log.Info().Dur("interval", w.interval).Msg("Worker started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Worker stopped")
			return
		case <-ticker.C:
			if removed := w.store.Sweep(); removed > 0 {
				w.log.Debug().Int("removed", removed).Msg("Expired sessions swept")
			}
		}
	}
}
