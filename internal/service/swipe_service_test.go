package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/iumatch/coursematch-backend/internal/model"
	"github.com/iumatch/coursematch-backend/internal/repository"
	"github.com/iumatch/coursematch-backend/internal/scoring"
)

// MockCourseRepository feeds the catalog service a controlled course set.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) GetAll(ctx context.Context) ([]model.Course, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Course), args.Error(1)
}

func (m *MockCourseRepository) GetByID(ctx context.Context, id string) (*model.Course, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) Upsert(ctx context.Context, course *model.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func generalCourse(id string, gpa float64) model.Course {
	return model.Course{
		ID:       id,
		Title:    id,
		Credits:  3,
		AvgGPA:   gpa,
		Level:    100,
		School:   model.SchoolGeneral,
		Fulfills: []string{"General Education"},
	}
}

// newSwipeService wires a full stack over an in-memory store and the given
// catalog, with the deck limit left at its default.
func newSwipeService(t *testing.T, courses []model.Course, creditCap int) *SwipeService {
	t.Helper()

	repo := new(MockCourseRepository)
	repo.On("GetAll", mock.Anything).Return(courses, nil)

	log := zerolog.Nop()
	cat := NewCatalogService(repo, log)
	cat.Load(context.Background())

	recommends := NewRecommendService(scoring.NewEngine(scoring.Default()), cat)
	return NewSwipeService(repository.NewMemorySessionStore(), recommends, time.Hour, creditCap, log)
}

func createRequest() model.CreateSessionRequest {
	return model.CreateSessionRequest{
		Name:  "Jordan",
		Major: "Finance (B.S.)",
		GPA:   3.1,
	}
}

func TestCreate_BuildsInitialDeck(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
		generalCourse("GEN-C103", 3.2),
	}
	svc := newSwipeService(t, courses, 18)

	session, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, model.StateBrowsing, session.State)
	assert.Len(t, session.Deck, 3)
	assert.Zero(t, session.Cursor)
	assert.Empty(t, session.Accepted)

	require.NotNil(t, session.CurrentCard())
	assert.Equal(t, "GEN-A101", session.CurrentCard().Course.ID,
		"highest-GPA course ranks first in an otherwise identical set")

	loaded, err := svc.Get(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)
}

func TestCreate_CompletedCoursesExcludedFromDeck(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
	}
	svc := newSwipeService(t, courses, 18)

	req := createRequest()
	req.CompletedCourses = []string{"gen-a101"}

	session, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, session.Deck, 1)
	assert.Equal(t, "GEN-B102", session.Deck[0].Course.ID)
}

func TestAccept(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
		generalCourse("GEN-C103", 3.2),
	}
	svc := newSwipeService(t, courses, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	session, err = svc.Accept(ctx, session.ID)
	require.NoError(t, err)

	require.Len(t, session.Accepted, 1)
	assert.Equal(t, "GEN-A101", session.Accepted[0].ID)
	assert.Equal(t, 3, session.AcceptedCredits())
	assert.Len(t, session.Deck, 2, "accepted course leaves the rebuilt deck")
	assert.Zero(t, session.Cursor, "rebuild resets the cursor")
	assert.Equal(t, model.StateBrowsing, session.State)
}

func TestAccept_CreditLimit(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
		generalCourse("GEN-C103", 3.2),
	}
	svc := newSwipeService(t, courses, 7)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.Accept(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.Accept(ctx, session.ID)
	require.NoError(t, err)

	// 6 of 7 credits used; a third 3-credit course would break the cap.
	_, err = svc.Accept(ctx, session.ID)
	assert.ErrorIs(t, err, ErrCreditLimitExceeded)

	session, err = svc.Get(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, session.Accepted, 2, "failed accept leaves the schedule untouched")
	require.NotNil(t, session.CurrentCard(), "the blocked card stays current")
	assert.Equal(t, model.StateBrowsing, session.State)
}

func TestReject(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
		generalCourse("GEN-C103", 3.2),
	}
	svc := newSwipeService(t, courses, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	session, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, []string{"GEN-A101"}, session.Rejected)
	assert.Equal(t, 1, session.Cursor, "reject advances without a rebuild")
	assert.Len(t, session.Deck, 3)
	require.NotNil(t, session.CurrentCard())
	assert.Equal(t, "GEN-B102", session.CurrentCard().Course.ID)
}

func TestReject_ExhaustsDeck(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
	}
	svc := newSwipeService(t, courses, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)
	session, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, model.StateExhausted, session.State,
		"rejecting everything leaves nothing to rebuild from")
	assert.Nil(t, session.CurrentCard())

	_, err = svc.Accept(ctx, session.ID)
	assert.ErrorIs(t, err, ErrDeckExhausted)
	_, err = svc.Reject(ctx, session.ID)
	assert.ErrorIs(t, err, ErrDeckExhausted)
}

func TestResetRejections(t *testing.T) {
	courses := []model.Course{
		generalCourse("GEN-A101", 3.8),
		generalCourse("GEN-B102", 3.5),
	}
	svc := newSwipeService(t, courses, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	_, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)
	_, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)

	session, err = svc.ResetRejections(ctx, session.ID)
	require.NoError(t, err)

	assert.Empty(t, session.Rejected)
	assert.Equal(t, model.StateBrowsing, session.State)
	assert.Len(t, session.Deck, 2, "rejected courses come back around")
}

func TestUpdateProfile_RebuildsDeckAndKeepsSelections(t *testing.T) {
	kelleyOnly := model.Course{
		ID: "BUS-A100", Title: "BUS-A100", Credits: 3, AvgGPA: 3.4,
		Level: 100, School: model.SchoolKelley, Fulfills: []string{"Business Foundation"},
	}
	luddyOnly := model.Course{
		ID: "CSCI-C211", Title: "CSCI-C211", Credits: 4, AvgGPA: 3.2,
		Level: 200, School: model.SchoolLuddy, Fulfills: []string{"CS Foundation"},
	}
	courses := []model.Course{kelleyOnly, luddyOnly, generalCourse("GEN-A101", 3.8)}

	svc := newSwipeService(t, courses, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	for _, card := range session.Deck {
		assert.NotEqual(t, model.SchoolLuddy, card.Course.School)
	}

	// Swipe once so there is state to survive the edit.
	_, err = svc.Reject(ctx, session.ID)
	require.NoError(t, err)
	session, err = svc.Get(ctx, session.ID)
	require.NoError(t, err)
	rejectedBefore := len(session.Rejected)

	session, err = svc.UpdateProfile(ctx, session.ID, model.UpdateProfileRequest{
		Name:  "Jordan",
		Major: "Computer Science (B.S.)",
		GPA:   3.1,
	})
	require.NoError(t, err)

	assert.Equal(t, "Computer Science (B.S.)", session.Profile.Major)
	assert.Len(t, session.Rejected, rejectedBefore, "rejections survive the profile edit")
	for _, card := range session.Deck {
		assert.NotEqual(t, model.SchoolKelley, card.Course.School,
			"deck reflects the new school after the edit")
	}
}

func TestEnd(t *testing.T) {
	svc := newSwipeService(t, []model.Course{generalCourse("GEN-A101", 3.8)}, 18)
	ctx := context.Background()

	session, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	require.NoError(t, svc.End(ctx, session.ID))

	_, err = svc.Get(ctx, session.ID)
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}

func TestSwipe_UnknownSession(t *testing.T) {
	svc := newSwipeService(t, []model.Course{generalCourse("GEN-A101", 3.8)}, 18)
	ctx := context.Background()

	_, err := svc.Accept(ctx, "no-such-session")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = svc.Reject(ctx, "no-such-session")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
	_, err = svc.Get(ctx, "no-such-session")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound)
}
