package repository

import (
	"context"
	"testing"
	"time"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newSwap(requester, provider primitive.ObjectID) *models.SwapRequest {
	return &models.SwapRequest{
		Requester:      requester,
		Provider:       provider,
		SkillRequested: "guitar",
		SkillOffered:   "cooking",
		Message:        "let's trade",
	}
}

func TestSwapRequestRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	t.Run("creates pending request", func(t *testing.T) {
		tdb.ClearCollection(t, "swap_requests")

		swap := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
		err := repo.Create(ctx, swap)

		require.NoError(t, err)
		assert.False(t, swap.ID.IsZero())
		assert.Equal(t, models.SwapPending, swap.Status)
		assert.NotZero(t, swap.CreatedAt)
	})

	t.Run("rejects duplicate pending tuple via unique index", func(t *testing.T) {
		tdb.ClearCollection(t, "swap_requests")

		requester := primitive.NewObjectID()
		provider := primitive.NewObjectID()

		err := repo.Create(ctx, newSwap(requester, provider))
		require.NoError(t, err)

		err = repo.Create(ctx, newSwap(requester, provider))

		assert.Equal(t, apperrors.ErrDuplicatePending, err)
	})

	t.Run("allows same tuple after the first leaves pending", func(t *testing.T) {
		tdb.ClearCollection(t, "swap_requests")

		requester := primitive.NewObjectID()
		provider := primitive.NewObjectID()

		first := newSwap(requester, provider)
		require.NoError(t, repo.Create(ctx, first))

		_, err := repo.Transition(ctx, first.ID, requester, RoleRequester, models.SwapPending, models.SwapCancelled, nil)
		require.NoError(t, err)

		err = repo.Create(ctx, newSwap(requester, provider))

		assert.NoError(t, err)
	})
}

func TestSwapRequestRepository_FindForParty(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "swap_requests")

	requester := primitive.NewObjectID()
	provider := primitive.NewObjectID()
	swap := newSwap(requester, provider)
	require.NoError(t, repo.Create(ctx, swap))

	t.Run("finds request for requester", func(t *testing.T) {
		found, err := repo.FindForParty(ctx, swap.ID, requester)

		require.NoError(t, err)
		assert.Equal(t, swap.ID, found.ID)
	})

	t.Run("finds request for provider", func(t *testing.T) {
		found, err := repo.FindForParty(ctx, swap.ID, provider)

		require.NoError(t, err)
		assert.Equal(t, swap.ID, found.ID)
	})

	t.Run("hides request from third parties", func(t *testing.T) {
		found, err := repo.FindForParty(ctx, swap.ID, primitive.NewObjectID())

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrSwapNotFound, err)
	})
}

func TestSwapRequestRepository_FindPendingDuplicate(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "swap_requests")

	requester := primitive.NewObjectID()
	provider := primitive.NewObjectID()
	swap := newSwap(requester, provider)
	require.NoError(t, repo.Create(ctx, swap))

	t.Run("finds pending duplicate", func(t *testing.T) {
		found, err := repo.FindPendingDuplicate(ctx, requester, provider, "guitar", "cooking")

		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, swap.ID, found.ID)
	})

	t.Run("returns nil for different skills", func(t *testing.T) {
		found, err := repo.FindPendingDuplicate(ctx, requester, provider, "piano", "cooking")

		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestSwapRequestRepository_ListForUser(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "swap_requests")

	user := primitive.NewObjectID()
	other := primitive.NewObjectID()

	sent := newSwap(user, other)
	require.NoError(t, repo.Create(ctx, sent))

	received := newSwap(other, user)
	received.SkillRequested = "cooking"
	received.SkillOffered = "guitar"
	require.NoError(t, repo.Create(ctx, received))

	unrelated := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, repo.Create(ctx, unrelated))

	t.Run("lists sent requests", func(t *testing.T) {
		swaps, total, err := repo.ListForUser(ctx, user, SwapListFilter{Type: "sent"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, swaps, 1)
		assert.Equal(t, sent.ID, swaps[0].ID)
	})

	t.Run("lists received requests", func(t *testing.T) {
		swaps, total, err := repo.ListForUser(ctx, user, SwapListFilter{Type: "received"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, swaps, 1)
		assert.Equal(t, received.ID, swaps[0].ID)
	})

	t.Run("lists both sides by default", func(t *testing.T) {
		swaps, total, err := repo.ListForUser(ctx, user, SwapListFilter{}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, swaps, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		swaps, total, err := repo.ListForUser(ctx, user, SwapListFilter{Status: models.SwapAccepted}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
		assert.Empty(t, swaps)
	})
}

func TestSwapRequestRepository_Transition(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	requester := primitive.NewObjectID()
	provider := primitive.NewObjectID()

	create := func(t *testing.T) *models.SwapRequest {
		t.Helper()
		tdb.ClearCollection(t, "swap_requests")
		swap := newSwap(requester, provider)
		require.NoError(t, repo.Create(ctx, swap))
		return swap
	}

	t.Run("provider accepts pending request", func(t *testing.T) {
		swap := create(t)
		scheduled := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Millisecond)

		updated, err := repo.Transition(ctx, swap.ID, provider, RoleProvider, models.SwapPending, models.SwapAccepted, bson.M{
			"scheduledDate": scheduled,
		})

		require.NoError(t, err)
		assert.Equal(t, models.SwapAccepted, updated.Status)
		require.NotNil(t, updated.ScheduledDate)
		assert.WithinDuration(t, scheduled, *updated.ScheduledDate, time.Second)
	})

	t.Run("requester cannot accept", func(t *testing.T) {
		swap := create(t)

		updated, err := repo.Transition(ctx, swap.ID, requester, RoleProvider, models.SwapPending, models.SwapAccepted, nil)

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrSwapNotFound, err)

		// Request stays pending after the failed transition.
		found, err := repo.FindByID(ctx, swap.ID)
		require.NoError(t, err)
		assert.Equal(t, models.SwapPending, found.Status)
	})

	t.Run("transition from wrong status is not found", func(t *testing.T) {
		swap := create(t)

		_, err := repo.Transition(ctx, swap.ID, provider, RoleProvider, models.SwapPending, models.SwapRejected, nil)
		require.NoError(t, err)

		updated, err := repo.Transition(ctx, swap.ID, provider, RoleProvider, models.SwapPending, models.SwapAccepted, nil)

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrSwapNotFound, err)
	})

	t.Run("either party completes accepted request", func(t *testing.T) {
		swap := create(t)

		_, err := repo.Transition(ctx, swap.ID, provider, RoleProvider, models.SwapPending, models.SwapAccepted, nil)
		require.NoError(t, err)

		updated, err := repo.Transition(ctx, swap.ID, requester, RoleEither, models.SwapAccepted, models.SwapCompleted, bson.M{
			"completedDate": time.Now(),
		})

		require.NoError(t, err)
		assert.Equal(t, models.SwapCompleted, updated.Status)
		assert.NotNil(t, updated.CompletedDate)
	})
}

func TestSwapRequestRepository_AdminList(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "swap_requests")

	pending := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, repo.Create(ctx, pending))

	rejected := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
	require.NoError(t, repo.Create(ctx, rejected))
	_, err := repo.Transition(ctx, rejected.ID, rejected.Provider, RoleProvider, models.SwapPending, models.SwapRejected, nil)
	require.NoError(t, err)

	t.Run("lists all requests", func(t *testing.T) {
		swaps, total, err := repo.AdminList(ctx, AdminSwapFilter{}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, swaps, 2)
	})

	t.Run("filters by status", func(t *testing.T) {
		swaps, total, err := repo.AdminList(ctx, AdminSwapFilter{Status: models.SwapRejected}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, swaps, 1)
		assert.Equal(t, rejected.ID, swaps[0].ID)
	})
}

func TestSwapRequestRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes existing request", func(t *testing.T) {
		tdb.ClearCollection(t, "swap_requests")

		swap := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, swap))

		err := repo.Delete(ctx, swap.ID)

		require.NoError(t, err)

		found, err := repo.FindByID(ctx, swap.ID)
		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrSwapNotFound, err)
	})

	t.Run("returns error for non-existent request", func(t *testing.T) {
		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrSwapNotFound, err)
	})
}

func TestSwapRequestRepository_Aggregations(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewSwapRequestRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "swap_requests")

	for i := 0; i < 3; i++ {
		swap := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
		require.NoError(t, repo.Create(ctx, swap))
		if i == 0 {
			_, err := repo.Transition(ctx, swap.ID, swap.Provider, RoleProvider, models.SwapPending, models.SwapAccepted, nil)
			require.NoError(t, err)
			_, err = repo.Transition(ctx, swap.ID, swap.Provider, RoleEither, models.SwapAccepted, models.SwapCompleted, nil)
			require.NoError(t, err)
		}
	}

	piano := newSwap(primitive.NewObjectID(), primitive.NewObjectID())
	piano.SkillRequested = "piano"
	require.NoError(t, repo.Create(ctx, piano))

	t.Run("counts by status", func(t *testing.T) {
		count, err := repo.CountByStatus(ctx, models.SwapCompleted)

		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("status breakdown", func(t *testing.T) {
		breakdown, err := repo.StatusBreakdown(ctx)

		require.NoError(t, err)

		counts := make(map[string]int)
		for _, b := range breakdown {
			counts[b.Status] = b.Count
		}
		assert.Equal(t, 3, counts["pending"])
		assert.Equal(t, 1, counts["completed"])
	})

	t.Run("monthly trends include completed sub-count", func(t *testing.T) {
		since := time.Now().AddDate(0, -1, 0)
		trends, err := repo.MonthlyTrends(ctx, since)

		require.NoError(t, err)
		require.NotEmpty(t, trends)

		var total, completed int
		for _, tr := range trends {
			total += tr.Count
			completed += tr.Completed
		}
		assert.Equal(t, 4, total)
		assert.Equal(t, 1, completed)
	})

	t.Run("top requested skills", func(t *testing.T) {
		skills, err := repo.TopSkills(ctx, "skillRequested", 10)

		require.NoError(t, err)
		require.NotEmpty(t, skills)
		assert.Equal(t, "guitar", skills[0].Skill)
		assert.Equal(t, 3, skills[0].Count)
	})

	t.Run("daily report buckets by date and status", func(t *testing.T) {
		report, err := repo.DailyReport(ctx, time.Now().AddDate(0, 0, -1), time.Now().AddDate(0, 0, 1))

		require.NoError(t, err)
		require.NotEmpty(t, report)

		var total int
		for _, r := range report {
			total += r.Count
		}
		assert.Equal(t, 4, total)
	})
}
