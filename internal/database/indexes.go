package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes the domain invariants rely on. It is
// idempotent: existing indexes with matching definitions are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	// Users: unique email, discovery filters.
	if err := createIndexes(ctx, db.Collection("users"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "skillsOffered", Value: 1}}},
		{Keys: bson.D{{Key: "isPublic", Value: 1}, {Key: "isActive", Value: 1}, {Key: "isBanned", Value: 1}}},
	}); err != nil {
		return err
	}

	// Swap requests: party/status lookups plus the pending-uniqueness
	// invariant, scoped to pending via a partial filter.
	if err := createIndexes(ctx, db.Collection("swap_requests"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "requester", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "provider", Value: 1}, {Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "createdAt", Value: -1}}},
		{
			Keys: bson.D{
				{Key: "requester", Value: 1},
				{Key: "provider", Value: 1},
				{Key: "skillRequested", Value: 1},
				{Key: "skillOffered", Value: 1},
				{Key: "status", Value: 1},
			},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"status": "pending"}),
		},
	}); err != nil {
		return err
	}

	// Meetings: unique room id, party schedules.
	if err := createIndexes(ctx, db.Collection("meetings"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "meetingId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "requester", Value: 1}, {Key: "scheduledDate", Value: 1}}},
		{Keys: bson.D{{Key: "provider", Value: 1}, {Key: "scheduledDate", Value: 1}}},
		{Keys: bson.D{{Key: "swapRequest", Value: 1}}},
	}); err != nil {
		return err
	}

	// Ratings: one rating per (swapRequest, rater) pair.
	if err := createIndexes(ctx, db.Collection("ratings"), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "swapRequest", Value: 1}, {Key: "rater", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "rated", Value: 1}}},
		{Keys: bson.D{{Key: "rater", Value: 1}}},
	}); err != nil {
		return err
	}

	// Admin messages: active feed and type filters.
	return createIndexes(ctx, db.Collection("admin_messages"), []mongo.IndexModel{
		{Keys: bson.D{{Key: "isActive", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "type", Value: 1}}},
	})
}

func createIndexes(ctx context.Context, coll *mongo.Collection, models []mongo.IndexModel) error {
	_, err := coll.Indexes().CreateMany(ctx, models)
	return err
}
