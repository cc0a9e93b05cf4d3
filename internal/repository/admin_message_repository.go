package repository

import (
	"context"
	"time"

	"skillswap/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AdminMessageFilter holds the platform-message listing filters.
type AdminMessageFilter struct {
	Type     string
	IsActive *bool
}

// AdminMessageRepository defines the interface for platform message data operations.
type AdminMessageRepository interface {
	Create(ctx context.Context, msg *models.AdminMessage) error
	List(ctx context.Context, filter AdminMessageFilter, page, limit int) ([]models.AdminMessage, int64, error)
}

// adminMessageRepository implements AdminMessageRepository using MongoDB.
type adminMessageRepository struct {
	collection *mongo.Collection
}

// NewAdminMessageRepository creates a new AdminMessageRepository.
func NewAdminMessageRepository(db *mongo.Database) AdminMessageRepository {
	return &adminMessageRepository{
		collection: db.Collection("admin_messages"),
	}
}

// Create inserts a new platform message, active by default.
func (r *adminMessageRepository) Create(ctx context.Context, msg *models.AdminMessage) error {
	now := time.Now()
	msg.IsActive = true
	msg.CreatedAt = now
	msg.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, msg)
	if err != nil {
		return err
	}

	msg.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// List returns platform messages, newest first.
func (r *adminMessageRepository) List(ctx context.Context, filter AdminMessageFilter, page, limit int) ([]models.AdminMessage, int64, error) {
	query := bson.M{}
	if filter.Type != "" {
		query["type"] = filter.Type
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * limit
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var messages []models.AdminMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, 0, err
	}
	if messages == nil {
		messages = []models.AdminMessage{}
	}

	return messages, total, nil
}
