package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iumatch/coursematch-backend/internal/model"
)

func newSession(id string) *model.SwipeSession {
	return &model.SwipeSession{
		ID:        id,
		CreatedAt: time.Now(),
		Profile:   model.StudentProfile{Name: "Jordan", Major: "Finance (B.S.)", GPA: 3.1},
		State:     model.StateBrowsing,
	}
}

func TestMemorySessionStore_RoundTrip(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := newSession("s-1")
	require.NoError(t, store.Save(ctx, session, time.Hour))

	loaded, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
	assert.Equal(t, session.Profile, loaded.Profile)

	// The store hands out copies, not the stored pointer.
	loaded.Profile.Name = "Someone Else"
	again, err := store.Get(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "Jordan", again.Profile.Name)
}

// Copies must not share slice backing arrays with the store, or two
// concurrent readers of the same session could corrupt each other.
func TestMemorySessionStore_CopiesDoNotAliasSlices(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	session := newSession("s-2")
	session.Rejected = []string{"BUS-A100"}
	session.Deck = []model.ScoredCourse{{Course: model.Course{ID: "ENG-W131"}, Score: 90}}
	session.Accepted = []model.Course{{ID: "BUS-T175", Credits: 1}}
	require.NoError(t, store.Save(ctx, session, time.Hour))

	loaded, err := store.Get(ctx, "s-2")
	require.NoError(t, err)
	loaded.Rejected[0] = "HPER-P150"
	loaded.Deck[0].Score = 1
	loaded.Accepted[0].Credits = 99

	again, err := store.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.Equal(t, "BUS-A100", again.Rejected[0])
	assert.Equal(t, 90, again.Deck[0].Score)
	assert.Equal(t, 1, again.Accepted[0].Credits)

	// The caller's own session is untouched by Save as well.
	session.Rejected[0] = "CMLT-C110"
	final, err := store.Get(ctx, "s-2")
	require.NoError(t, err)
	assert.Equal(t, "BUS-A100", final.Rejected[0])
}

func TestMemorySessionStore_MissingSession(t *testing.T) {
	store := NewMemorySessionStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMemorySessionStore_Expiry(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("s-ttl"), -time.Second))

	_, err := store.Get(ctx, "s-ttl")
	assert.ErrorIs(t, err, ErrSessionNotFound, "expired sessions read as missing")
}

func TestMemorySessionStore_Delete(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("s-del"), time.Hour))
	require.NoError(t, store.Delete(ctx, "s-del"))

	_, err := store.Get(ctx, "s-del")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.NoError(t, store.Delete(ctx, "s-del"), "deleting twice is harmless")
}

func TestMemorySessionStore_Sweep(t *testing.T) {
	store := NewMemorySessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, newSession("live"), time.Hour))
	require.NoError(t, store.Save(ctx, newSession("dead-1"), -time.Second))
	require.NoError(t, store.Save(ctx, newSession("dead-2"), -time.Second))

	sweeper, ok := store.(interface{ Sweep() int })
	require.True(t, ok)
	assert.Equal(t, 2, sweeper.Sweep())
	assert.Zero(t, sweeper.Sweep(), "second pass finds nothing")

	_, err := store.Get(ctx, "live")
	assert.NoError(t, err)
}
