package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newMeeting(requester, provider primitive.ObjectID, scheduled time.Time) *models.Meeting {
	return &models.Meeting{
		SwapRequest:    primitive.NewObjectID(),
		Requester:      requester,
		Provider:       provider,
		MeetingID:      fmt.Sprintf("skillswap-%d", time.Now().UnixNano()),
		MeetingLink:    "https://meet.jit.si/skillswap-test",
		ScheduledDate:  scheduled,
		Duration:       60,
		SkillRequested: "guitar",
		SkillOffered:   "cooking",
	}
}

func TestMeetingRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMeetingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "meetings")

	meeting := newMeeting(primitive.NewObjectID(), primitive.NewObjectID(), time.Now().Add(24*time.Hour))
	err := repo.Create(ctx, meeting)

	require.NoError(t, err)
	assert.False(t, meeting.ID.IsZero())
	assert.Equal(t, models.MeetingScheduled, meeting.Status)
	assert.NotZero(t, meeting.CreatedAt)
}

func TestMeetingRepository_FindForParty(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMeetingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "meetings")

	requester := primitive.NewObjectID()
	provider := primitive.NewObjectID()
	meeting := newMeeting(requester, provider, time.Now().Add(24*time.Hour))
	require.NoError(t, repo.Create(ctx, meeting))

	t.Run("finds meeting for either party", func(t *testing.T) {
		for _, party := range []primitive.ObjectID{requester, provider} {
			found, err := repo.FindForParty(ctx, meeting.ID, party)

			require.NoError(t, err)
			assert.Equal(t, meeting.ID, found.ID)
		}
	})

	t.Run("hides meeting from third parties", func(t *testing.T) {
		found, err := repo.FindForParty(ctx, meeting.ID, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrMeetingNotFound, err)
	})
}

func TestMeetingRepository_FindUpcoming(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMeetingRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "meetings")

	user := primitive.NewObjectID()
	now := time.Now()

	soon := newMeeting(user, primitive.NewObjectID(), now.Add(1*time.Hour))
	require.NoError(t, repo.Create(ctx, soon))

	later := newMeeting(primitive.NewObjectID(), user, now.Add(48*time.Hour))
	require.NoError(t, repo.Create(ctx, later))

	past := newMeeting(user, primitive.NewObjectID(), now.Add(-24*time.Hour))
	require.NoError(t, repo.Create(ctx, past))

	done := newMeeting(user, primitive.NewObjectID(), now.Add(2*time.Hour))
	require.NoError(t, repo.Create(ctx, done))
	_, err := repo.UpdateStatus(ctx, done.ID, user, models.MeetingCompleted, now)
	require.NoError(t, err)

	meetings, err := repo.FindUpcoming(ctx, user, now)

	require.NoError(t, err)
	require.Len(t, meetings, 2)
	// Soonest first.
	assert.Equal(t, soon.ID, meetings[0].ID)
	assert.Equal(t, later.ID, meetings[1].ID)
}

func TestMeetingRepository_UpdateStatus(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMeetingRepository(tdb.Database)
	ctx := context.Background()

	requester := primitive.NewObjectID()
	provider := primitive.NewObjectID()

	create := func(t *testing.T) *models.Meeting {
		t.Helper()
		tdb.ClearCollection(t, "meetings")
		meeting := newMeeting(requester, provider, time.Now().Add(time.Hour))
		require.NoError(t, repo.Create(ctx, meeting))
		return meeting
	}

	t.Run("joining stamps actual start time", func(t *testing.T) {
		meeting := create(t)

		updated, err := repo.UpdateStatus(ctx, meeting.ID, requester, models.MeetingInProgress, time.Now())

		require.NoError(t, err)
		assert.Equal(t, models.MeetingInProgress, updated.Status)
		assert.NotNil(t, updated.ActualStartTime)
		assert.Nil(t, updated.ActualEndTime)
	})

	t.Run("completing stamps actual end time", func(t *testing.T) {
		meeting := create(t)

		updated, err := repo.UpdateStatus(ctx, meeting.ID, provider, models.MeetingCompleted, time.Now())

		require.NoError(t, err)
		assert.Equal(t, models.MeetingCompleted, updated.Status)
		assert.NotNil(t, updated.ActualEndTime)
	})

	t.Run("cancelling stamps neither timestamp", func(t *testing.T) {
		meeting := create(t)

		updated, err := repo.UpdateStatus(ctx, meeting.ID, provider, models.MeetingCancelled, time.Now())

		require.NoError(t, err)
		assert.Equal(t, models.MeetingCancelled, updated.Status)
		assert.Nil(t, updated.ActualStartTime)
		assert.Nil(t, updated.ActualEndTime)
	})

	t.Run("third party cannot update", func(t *testing.T) {
		meeting := create(t)

		updated, err := repo.UpdateStatus(ctx, meeting.ID, primitive.NewObjectID(), models.MeetingCancelled, time.Now())

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrMeetingNotFound, err)
	})
}
