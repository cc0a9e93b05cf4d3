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

// MeetingRepository defines the interface for meeting data operations.
type MeetingRepository interface {
	Create(ctx context.Context, meeting *models.Meeting) error
	FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.Meeting, error)
	FindUpcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]models.Meeting, error)
	// UpdateStatus transitions a meeting the user is a party to. Joining
	// stamps actualStartTime; completing stamps actualEndTime.
	UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status models.MeetingStatus, now time.Time) (*models.Meeting, error)
}

// meetingRepository implements MeetingRepository using MongoDB.
type meetingRepository struct {
	collection *mongo.Collection
}

// NewMeetingRepository creates a new MeetingRepository.
func NewMeetingRepository(db *mongo.Database) MeetingRepository {
	return &meetingRepository{
		collection: db.Collection("meetings"),
	}
}

// Create inserts a new meeting in the scheduled state.
func (r *meetingRepository) Create(ctx context.Context, meeting *models.Meeting) error {
	now := time.Now()
	meeting.Status = models.MeetingScheduled
	meeting.CreatedAt = now
	meeting.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, meeting)
	if err != nil {
		return err
	}

	meeting.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindForParty finds a meeting the given user is a party to.
func (r *meetingRepository) FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.collection.FindOne(ctx, bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"provider": userID},
		},
	}).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

// FindUpcoming returns the user's scheduled or in-progress meetings with a
// scheduled date at or after now, soonest first.
func (r *meetingRepository) FindUpcoming(ctx context.Context, userID primitive.ObjectID, now time.Time) ([]models.Meeting, error) {
	cursor, err := r.collection.Find(ctx, bson.M{
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"provider": userID},
		},
		"scheduledDate": bson.M{"$gte": now},
		"status":        bson.M{"$in": bson.A{models.MeetingScheduled, models.MeetingInProgress}},
	}, options.Find().SetSort(bson.D{{Key: "scheduledDate", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var meetings []models.Meeting
	if err := cursor.All(ctx, &meetings); err != nil {
		return nil, err
	}
	if meetings == nil {
		meetings = []models.Meeting{}
	}
	return meetings, nil
}

// UpdateStatus transitions a meeting the user is a party to.
func (r *meetingRepository) UpdateStatus(ctx context.Context, id, userID primitive.ObjectID, status models.MeetingStatus, now time.Time) (*models.Meeting, error) {
	set := bson.M{
		"status":    status,
		"updatedAt": now,
	}
	switch status {
	case models.MeetingInProgress:
		set["actualStartTime"] = now
	case models.MeetingCompleted:
		set["actualEndTime"] = now
	}

	var meeting models.Meeting
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{
			"_id": id,
			"$or": bson.A{
				bson.M{"requester": userID},
				bson.M{"provider": userID},
			},
		},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&meeting)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMeetingNotFound
		}
		return nil, err
	}

	return &meeting, nil
}
