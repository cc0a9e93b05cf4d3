package repository

import (
	"context"
	"testing"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewUserRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)

	assert.NotNil(t, repo)
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("successfully creates user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "test@example.com",
			Password: "hashedpassword",
			Name:     "Test User",
		}

		err := repo.Create(ctx, user)

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.NotZero(t, user.CreatedAt)
		assert.NotZero(t, user.UpdatedAt)
	})

	t.Run("returns error for duplicate email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user1 := &models.User{
			Email:    "duplicate@example.com",
			Password: "hashedpassword",
			Name:     "User 1",
		}
		err := repo.Create(ctx, user1)
		require.NoError(t, err)

		user2 := &models.User{
			Email:    "duplicate@example.com",
			Password: "hashedpassword",
			Name:     "User 2",
		}
		err = repo.Create(ctx, user2)

		assert.Equal(t, apperrors.ErrUserAlreadyExists, err)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds user by email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "findbyemail@example.com",
			Password: "hashedpassword",
			Name:     "Find By Email User",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindByEmail(ctx, "findbyemail@example.com")

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, user.Name, found.Name)
	})

	t.Run("returns error for unknown email", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		found, err := repo.FindByEmail(ctx, "nobody@example.com")

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_FindActiveProvider(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("finds active unbanned user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "provider@example.com",
			Password: "hashedpassword",
			Name:     "Provider",
			IsActive: true,
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindActiveProvider(ctx, user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, found.ID)
	})

	t.Run("treats banned user as not found", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "banned@example.com",
			Password: "hashedpassword",
			Name:     "Banned Provider",
			IsActive: true,
			IsBanned: true,
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindActiveProvider(ctx, user.ID)

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrProviderNotFound, err)
	})

	t.Run("treats deactivated user as not found", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "inactive@example.com",
			Password: "hashedpassword",
			Name:     "Inactive Provider",
			IsActive: false,
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		found, err := repo.FindActiveProvider(ctx, user.ID)

		assert.Nil(t, found)
		assert.Equal(t, apperrors.ErrProviderNotFound, err)
	})
}

func TestUserRepository_FindSummaries(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("returns summaries keyed by id", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		alice := &models.User{Email: "alice@example.com", Password: "x", Name: "Alice", AverageRating: 4.5, TotalSwaps: 3}
		bob := &models.User{Email: "bob@example.com", Password: "x", Name: "Bob"}
		require.NoError(t, repo.Create(ctx, alice))
		require.NoError(t, repo.Create(ctx, bob))

		missing := primitive.NewObjectID()
		summaries, err := repo.FindSummaries(ctx, []primitive.ObjectID{alice.ID, bob.ID, missing})

		require.NoError(t, err)
		assert.Len(t, summaries, 2)
		assert.Equal(t, "Alice", summaries[alice.ID].Name)
		assert.Equal(t, 4.5, summaries[alice.ID].AverageRating)
		assert.Equal(t, "Bob", summaries[bob.ID].Name)
		_, ok := summaries[missing]
		assert.False(t, ok)
	})

	t.Run("returns empty map for no ids", func(t *testing.T) {
		summaries, err := repo.FindSummaries(ctx, nil)

		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestUserRepository_UpdateProfile(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("applies update and returns updated user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{
			Email:    "update@example.com",
			Password: "hashedpassword",
			Name:     "Before",
		}
		err := repo.Create(ctx, user)
		require.NoError(t, err)

		updated, err := repo.UpdateProfile(ctx, user.ID, bson.M{
			"name":          "After",
			"location":      "Berlin",
			"skillsOffered": []string{"guitar", "cooking"},
		})

		require.NoError(t, err)
		assert.Equal(t, "After", updated.Name)
		assert.Equal(t, "Berlin", updated.Location)
		assert.Equal(t, []string{"guitar", "cooking"}, updated.SkillsOffered)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		updated, err := repo.UpdateProfile(ctx, primitive.NewObjectID(), bson.M{"name": "Ghost"})

		assert.Nil(t, updated)
		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_Search(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	seed := func(t *testing.T) {
		t.Helper()
		tdb.ClearCollection(t, "users")

		users := []*models.User{
			{Email: "pub1@example.com", Password: "x", Name: "Public Guitarist", IsPublic: true, IsActive: true, SkillsOffered: []string{"guitar"}, Location: "Berlin"},
			{Email: "pub2@example.com", Password: "x", Name: "Public Cook", IsPublic: true, IsActive: true, SkillsOffered: []string{"cooking"}, Location: "Hamburg"},
			{Email: "priv@example.com", Password: "x", Name: "Private Guitarist", IsPublic: false, IsActive: true, SkillsOffered: []string{"guitar"}},
			{Email: "ban@example.com", Password: "x", Name: "Banned Guitarist", IsPublic: true, IsActive: true, IsBanned: true, SkillsOffered: []string{"guitar"}},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(ctx, u))
		}
	}

	t.Run("returns only public active unbanned users", func(t *testing.T) {
		seed(t)

		users, total, err := repo.Search(ctx, UserSearchFilter{}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 2)
	})

	t.Run("filters by offered skill", func(t *testing.T) {
		seed(t)

		users, total, err := repo.Search(ctx, UserSearchFilter{Skill: "guitar"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "Public Guitarist", users[0].Name)
	})

	t.Run("filters by location case-insensitively", func(t *testing.T) {
		seed(t)

		users, total, err := repo.Search(ctx, UserSearchFilter{Location: "hamburg"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "Public Cook", users[0].Name)
	})

	t.Run("paginates results", func(t *testing.T) {
		seed(t)

		users, total, err := repo.Search(ctx, UserSearchFilter{}, 2, 1)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, users, 1)
	})
}

func TestUserRepository_AdminList(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	seed := func(t *testing.T) {
		t.Helper()
		tdb.ClearCollection(t, "users")

		users := []*models.User{
			{Email: "admin@example.com", Password: "x", Name: "Root Admin", Role: models.RoleAdmin, IsActive: true},
			{Email: "active@example.com", Password: "x", Name: "Active User", Role: models.RoleUser, IsActive: true},
			{Email: "banned@example.com", Password: "x", Name: "Banned User", Role: models.RoleUser, IsActive: true, IsBanned: true},
		}
		for _, u := range users {
			require.NoError(t, repo.Create(ctx, u))
		}
	}

	t.Run("lists everyone regardless of visibility", func(t *testing.T) {
		seed(t)

		users, total, err := repo.AdminList(ctx, AdminUserFilter{}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		assert.Len(t, users, 3)
	})

	t.Run("filters by banned status", func(t *testing.T) {
		seed(t)

		users, total, err := repo.AdminList(ctx, AdminUserFilter{Status: "banned"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "Banned User", users[0].Name)
	})

	t.Run("filters by role", func(t *testing.T) {
		seed(t)

		users, total, err := repo.AdminList(ctx, AdminUserFilter{Role: models.RoleAdmin}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "Root Admin", users[0].Name)
	})

	t.Run("searches name and email", func(t *testing.T) {
		seed(t)

		users, total, err := repo.AdminList(ctx, AdminUserFilter{Search: "banned@"}, 1, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, users, 1)
		assert.Equal(t, "banned@example.com", users[0].Email)
	})
}

func TestUserRepository_FindActiveEmails(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "users")

	active := &models.User{Email: "reachable@example.com", Password: "x", Name: "Reachable", IsActive: true}
	banned := &models.User{Email: "blocked@example.com", Password: "x", Name: "Blocked", IsActive: true, IsBanned: true}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, banned))

	users, err := repo.FindActiveEmails(ctx)

	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "reachable@example.com", users[0].Email)
	assert.Equal(t, "Reachable", users[0].Name)
}

func TestUserRepository_SetBanned(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("toggles ban flag", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user := &models.User{Email: "togglable@example.com", Password: "x", Name: "Togglable"}
		require.NoError(t, repo.Create(ctx, user))

		require.NoError(t, repo.SetBanned(ctx, user.ID, true))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.True(t, found.IsBanned)

		require.NoError(t, repo.SetBanned(ctx, user.ID, false))

		found, err = repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.False(t, found.IsBanned)
	})

	t.Run("returns error for non-existent user", func(t *testing.T) {
		err := repo.SetBanned(ctx, primitive.NewObjectID(), true)

		assert.Equal(t, apperrors.ErrUserNotFound, err)
	})
}

func TestUserRepository_IncrementTotalSwaps(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "users")

	requester := &models.User{Email: "req@example.com", Password: "x", Name: "Requester", TotalSwaps: 2}
	provider := &models.User{Email: "prov@example.com", Password: "x", Name: "Provider"}
	require.NoError(t, repo.Create(ctx, requester))
	require.NoError(t, repo.Create(ctx, provider))

	err := repo.IncrementTotalSwaps(ctx, requester.ID, provider.ID)

	require.NoError(t, err)

	found, err := repo.FindByID(ctx, requester.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, found.TotalSwaps)

	found, err = repo.FindByID(ctx, provider.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, found.TotalSwaps)
}

func TestUserRepository_SetRatingAggregate(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "users")

	user := &models.User{Email: "rated@example.com", Password: "x", Name: "Rated"}
	require.NoError(t, repo.Create(ctx, user))

	err := repo.SetRatingAggregate(ctx, user.ID, 4.3, 7)

	require.NoError(t, err)

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.3, found.AverageRating)
	assert.Equal(t, 7, found.TotalRatings)
}

func TestUserRepository_Counts(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "users")

	users := []*models.User{
		{Email: "c1@example.com", Password: "x", Name: "C1", IsActive: true},
		{Email: "c2@example.com", Password: "x", Name: "C2", IsActive: true, IsBanned: true},
		{Email: "c3@example.com", Password: "x", Name: "C3", IsActive: false},
	}
	for _, u := range users {
		require.NoError(t, repo.Create(ctx, u))
	}

	total, err := repo.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	active, err := repo.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), active)
}
