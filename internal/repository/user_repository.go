// Package repository provides data access operations for the application.
package repository

import (
	"context"
	"errors"
	"time"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserSearchFilter holds the discovery filters applied to public profiles.
type UserSearchFilter struct {
	Skill    string
	Location string
}

// AdminUserFilter holds the moderation listing filters.
type AdminUserFilter struct {
	Status string // all | active | inactive | banned | unbanned
	Role   string // all | user | admin
	Search string // case-insensitive name/email substring
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindActiveProvider(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error)
	Search(ctx context.Context, filter UserSearchFilter, page, limit int) ([]models.User, int64, error)
	FindBySkill(ctx context.Context, skill string, page, limit int) ([]models.User, int64, error)
	AdminList(ctx context.Context, filter AdminUserFilter, page, limit int) ([]models.User, int64, error)
	FindActiveEmails(ctx context.Context) ([]models.User, error)
	SetBanned(ctx context.Context, id primitive.ObjectID, banned bool) error
	IncrementTotalSwaps(ctx context.Context, ids ...primitive.ObjectID) error
	SetRatingAggregate(ctx context.Context, id primitive.ObjectID, average float64, total int) error
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyUserReport, error)
}

// userRepository implements UserRepository using MongoDB
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection("users"),
	}
}

// Create inserts a new user into the database
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	// Check if user with email already exists
	existing, _ := r.FindByEmail(ctx, user.Email)
	if existing != nil {
		return apperrors.ErrUserAlreadyExists
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrUserAlreadyExists
		}
		return err
	}

	user.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindByEmail finds a user by their email
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindActiveProvider finds a user that can receive swap requests: active and
// not banned. Missing and ineligible users both surface as not-found.
func (r *userRepository) FindActiveProvider(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User

	err := r.collection.FindOne(ctx, bson.M{
		"_id":      id,
		"isActive": true,
		"isBanned": false,
	}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrProviderNotFound
		}
		return nil, err
	}

	return &user, nil
}

// FindSummaries fetches lightweight summaries for a set of user IDs, keyed
// by ID. Missing users are simply absent from the map.
func (r *userRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) (map[primitive.ObjectID]models.UserSummary, error) {
	summaries := make(map[primitive.ObjectID]models.UserSummary, len(ids))
	if len(ids) == 0 {
		return summaries, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}

	for i := range users {
		summaries[users[i].ID] = users[i].Summary()
	}

	return summaries, nil
}

// UpdateProfile applies a $set update and returns the updated user.
func (r *userRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, update bson.M) (*models.User, error) {
	update["updatedAt"] = time.Now()

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": update},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

// Search returns public, active, unbanned users matching the discovery
// filters, newest first.
func (r *userRepository) Search(ctx context.Context, filter UserSearchFilter, page, limit int) ([]models.User, int64, error) {
	query := bson.M{
		"isPublic": true,
		"isActive": true,
		"isBanned": false,
	}

	if filter.Skill != "" {
		query["skillsOffered"] = bson.M{"$regex": filter.Skill, "$options": "i"}
	}
	if filter.Location != "" {
		query["location"] = bson.M{"$regex": filter.Location, "$options": "i"}
	}

	return r.findPage(ctx, query, page, limit, bson.D{{Key: "createdAt", Value: -1}})
}

// FindBySkill returns public users offering the given skill.
func (r *userRepository) FindBySkill(ctx context.Context, skill string, page, limit int) ([]models.User, int64, error) {
	return r.Search(ctx, UserSearchFilter{Skill: skill}, page, limit)
}

// AdminList returns users for the moderation surface, unrestricted by
// visibility, with the dynamic status/role/search filter.
func (r *userRepository) AdminList(ctx context.Context, filter AdminUserFilter, page, limit int) ([]models.User, int64, error) {
	query := bson.M{}

	switch filter.Status {
	case "active":
		query["isActive"] = true
	case "inactive":
		query["isActive"] = false
	case "banned":
		query["isBanned"] = true
	case "unbanned":
		query["isBanned"] = false
	}

	if filter.Role != "" && filter.Role != "all" {
		query["role"] = filter.Role
	}

	if filter.Search != "" {
		query["$or"] = bson.A{
			bson.M{"name": bson.M{"$regex": filter.Search, "$options": "i"}},
			bson.M{"email": bson.M{"$regex": filter.Search, "$options": "i"}},
		}
	}

	return r.findPage(ctx, query, page, limit, bson.D{{Key: "createdAt", Value: -1}})
}

// FindActiveEmails returns name and email of every active, unbanned user,
// for platform broadcasts.
func (r *userRepository) FindActiveEmails(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx,
		bson.M{"isActive": true, "isBanned": false},
		options.Find().SetProjection(bson.M{"name": 1, "email": 1}),
	)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// SetBanned flips the ban flag on a user.
func (r *userRepository) SetBanned(ctx context.Context, id primitive.ObjectID, banned bool) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isBanned": banned, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// IncrementTotalSwaps bumps the completed-swap counter on each user.
func (r *userRepository) IncrementTotalSwaps(ctx context.Context, ids ...primitive.ObjectID) error {
	_, err := r.collection.UpdateMany(
		ctx,
		bson.M{"_id": bson.M{"$in": ids}},
		bson.M{
			"$inc": bson.M{"totalSwaps": 1},
			"$set": bson.M{"updatedAt": time.Now()},
		},
	)
	return err
}

// SetRatingAggregate overwrites the recomputed rating aggregate on a user.
func (r *userRepository) SetRatingAggregate(ctx context.Context, id primitive.ObjectID, average float64, total int) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"averageRating": average,
			"totalRatings":  total,
			"updatedAt":     time.Now(),
		}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// CountAll returns the total number of users.
func (r *userRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountActive returns the number of active, unbanned users.
func (r *userRepository) CountActive(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"isActive": true, "isBanned": false})
}

// DailyReport buckets signups by day over the given range.
func (r *userRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyUserReport, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"newUsers":    bson.M{"$sum": 1},
			"activeUsers": bson.M{"$sum": bson.M{"$cond": bson.A{"$isActive", 1, 0}}},
			"bannedUsers": bson.M{"$sum": bson.M{"$cond": bson.A{"$isBanned", 1, 0}}},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var report []models.DailyUserReport
	if err := cursor.All(ctx, &report); err != nil {
		return nil, err
	}
	if report == nil {
		report = []models.DailyUserReport{}
	}
	return report, nil
}

// findPage runs the shared count-then-page read used by every user listing.
func (r *userRepository) findPage(ctx context.Context, query bson.M, page, limit int, sort bson.D) ([]models.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(sort).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	if users == nil {
		users = []models.User{}
	}

	return users, total, nil
}
