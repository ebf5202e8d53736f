package repository

import (
	"context"
	"errors"
	"time"

	"github.com/iumatch/coursematch-backend/internal/model"
)

// ErrSessionNotFound is returned when a swipe session does not exist or
// has expired.
var ErrSessionNotFound = errors.New("swipe session not found")

// SessionStore persists swipe sessions. Implementations must be safe for
// concurrent use.
type SessionStore interface {
	Save(ctx context.Context, session *model.SwipeSession, ttl time.Duration) error
	Get(ctx context.Context, id string) (*model.SwipeSession, error)
	Delete(ctx context.Context, id string) error
}
