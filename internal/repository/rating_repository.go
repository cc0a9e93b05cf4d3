package repository

import (
	"context"
	"errors"
	"math"
	"time"

	apperrors "skillswap/internal/errors"
	"skillswap/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	FindBySwapAndRater(ctx context.Context, swapID, raterID primitive.ObjectID) (*models.Rating, error)
	FindAllByRated(ctx context.Context, ratedID primitive.ObjectID) ([]models.Rating, error)
	ListByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error)
	ListByRater(ctx context.Context, raterID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error)
	UpdateByRater(ctx context.Context, id, raterID primitive.ObjectID, set bson.M) (*models.Rating, error)
	StatsForUser(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingStatistics, error)
	GlobalAverage(ctx context.Context) (avg float64, total int64, err error)
	DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyRatingReport, error)
}

// ratingRepository implements RatingRepository using MongoDB.
type ratingRepository struct {
	collection *mongo.Collection
}

// NewRatingRepository creates a new RatingRepository.
func NewRatingRepository(db *mongo.Database) RatingRepository {
	return &ratingRepository{
		collection: db.Collection("ratings"),
	}
}

// Create inserts a new rating. The unique (swapRequest, rater) index
// backstops the duplicate pre-check under concurrency.
func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	now := time.Now()
	rating.CreatedAt = now
	rating.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, rating)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrAlreadyRated
		}
		return err
	}

	rating.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindBySwapAndRater looks up the rating one party gave for a swap.
// Returns (nil, nil) when none exists.
func (r *ratingRepository) FindBySwapAndRater(ctx context.Context, swapID, raterID primitive.ObjectID) (*models.Rating, error) {
	var rating models.Rating
	err := r.collection.FindOne(ctx, bson.M{
		"swapRequest": swapID,
		"rater":       raterID,
	}).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &rating, nil
}

// FindAllByRated returns every rating received by a user, for the
// recompute-from-scratch aggregate update.
func (r *ratingRepository) FindAllByRated(ctx context.Context, ratedID primitive.ObjectID) ([]models.Rating, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"rated": ratedID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, err
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}
	return ratings, nil
}

// ListByRated returns the ratings a user received, newest first.
func (r *ratingRepository) ListByRated(ctx context.Context, ratedID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error) {
	return r.findPage(ctx, bson.M{"rated": ratedID}, page, limit)
}

// ListByRater returns the ratings a user gave, newest first.
func (r *ratingRepository) ListByRater(ctx context.Context, raterID primitive.ObjectID, page, limit int) ([]models.Rating, int64, error) {
	return r.findPage(ctx, bson.M{"rater": raterID}, page, limit)
}

// UpdateByRater applies a $set update to a rating, scoped to its rater.
func (r *ratingRepository) UpdateByRater(ctx context.Context, id, raterID primitive.ObjectID, set bson.M) (*models.Rating, error) {
	set["updatedAt"] = time.Now()

	var rating models.Rating
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id, "rater": raterID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&rating)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRatingNotFound
		}
		return nil, err
	}

	return &rating, nil
}

// StatsForUser aggregates the received ratings of a user into a total,
// average, and per-star breakdown.
func (r *ratingRepository) StatsForUser(ctx context.Context, ratedID primitive.ObjectID) (*models.RatingStatistics, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"rated": ratedID}}},
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalRatings":  bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$rating"},
			"values":        bson.M{"$push": "$rating"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		TotalRatings  int     `bson:"totalRatings"`
		AverageRating float64 `bson:"averageRating"`
		Values        []int   `bson:"values"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}

	stats := &models.RatingStatistics{Breakdown: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}}
	if len(results) == 0 {
		return stats, nil
	}

	stats.TotalRatings = results[0].TotalRatings
	stats.AverageRating = roundToTenth(results[0].AverageRating)
	for _, v := range results[0].Values {
		if v >= 1 && v <= 5 {
			stats.Breakdown[v]++
		}
	}
	return stats, nil
}

// GlobalAverage aggregates the platform-wide average rating and count.
func (r *ratingRepository) GlobalAverage(ctx context.Context) (float64, int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"averageRating": bson.M{"$avg": "$rating"},
			"totalRatings":  bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		AverageRating float64 `bson:"averageRating"`
		TotalRatings  int64   `bson:"totalRatings"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].AverageRating, results[0].TotalRatings, nil
}

// DailyReport buckets ratings by day over the given range.
func (r *ratingRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailyRatingReport, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":           bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
			"totalRatings":  bson.M{"$sum": 1},
			"averageRating": bson.M{"$avg": "$rating"},
		}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	return aggregate[models.DailyRatingReport](ctx, r.collection, pipeline)
}

func (r *ratingRepository) findPage(ctx context.Context, query bson.M, page, limit int) ([]models.Rating, int64, error) {
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

	var ratings []models.Rating
	if err := cursor.All(ctx, &ratings); err != nil {
		return nil, 0, err
	}
	if ratings == nil {
		ratings = []models.Rating{}
	}

	return ratings, total, nil
}

// roundToTenth rounds to one decimal place, the precision the aggregate is
// stored and reported at.
func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}
