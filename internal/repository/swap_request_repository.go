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

// SwapRole selects which side of a swap the caller must occupy for a
// status-scoped transition.
type SwapRole string

const (
	// RoleRequester scopes the lookup to the requester field.
	RoleRequester SwapRole = "requester"
	// RoleProvider scopes the lookup to the provider field.
	RoleProvider SwapRole = "provider"
	// RoleEither matches the caller on either side.
	RoleEither SwapRole = "either"
)

// SwapListFilter holds the filters for listing a user's swap requests.
type SwapListFilter struct {
	Type   string // sent | received | all
	Status models.SwapStatus
}

// AdminSwapFilter holds the moderation listing filters.
type AdminSwapFilter struct {
	Status    models.SwapStatus
	SortBy    string
	SortOrder string
}

// SwapRequestRepository defines the interface for swap request data operations.
type SwapRequestRepository interface {
	Create(ctx context.Context, swap *models.SwapRequest) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.SwapRequest, error)
	FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.SwapRequest, error)
	FindPendingDuplicate(ctx context.Context, requester, provider primitive.ObjectID, skillRequested, skillOffered string) (*models.SwapRequest, error)
	ListForUser(ctx context.Context, userID primitive.ObjectID, filter SwapListFilter, page, limit int) ([]models.SwapRequest, int64, error)
	// Transition atomically moves a request from `from` to `to`, scoped to
	// the acting user in the given role. A request in any other state, or
	// one the actor is not a party to, reports ErrSwapNotFound.
	Transition(ctx context.Context, id, actorID primitive.ObjectID, role SwapRole, from, to models.SwapStatus, set bson.M) (*models.SwapRequest, error)
	AdminList(ctx context.Context, filter AdminSwapFilter, page, limit int) ([]models.SwapRequest, int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountByStatus(ctx context.Context, status models.SwapStatus) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	StatusBreakdown(ctx context.Context) ([]models.StatusCount, error)
	MonthlyTrends(ctx context.Context, since time.Time) ([]models.MonthlyTrend, error)
	TopSkills(ctx context.Context, field string, limit int) ([]models.SkillCount, error)
	DailyReport(ctx context.Context, start, end time.Time) ([]models.DailySwapReport, error)
}

// swapRequestRepository implements SwapRequestRepository using MongoDB.
type swapRequestRepository struct {
	collection *mongo.Collection
}

// NewSwapRequestRepository creates a new SwapRequestRepository.
func NewSwapRequestRepository(db *mongo.Database) SwapRequestRepository {
	return &swapRequestRepository{
		collection: db.Collection("swap_requests"),
	}
}

// Create inserts a new pending swap request. The partial unique index on the
// pending tuple backstops the duplicate pre-check under concurrency.
func (r *swapRequestRepository) Create(ctx context.Context, swap *models.SwapRequest) error {
	now := time.Now()
	swap.Status = models.SwapPending
	swap.CreatedAt = now
	swap.UpdatedAt = now

	result, err := r.collection.InsertOne(ctx, swap)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrDuplicatePending
		}
		return err
	}

	swap.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID finds a swap request regardless of party (admin use).
func (r *swapRequestRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&swap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSwapNotFound
		}
		return nil, err
	}
	return &swap, nil
}

// FindForParty finds a swap request the given user is a party to.
func (r *swapRequestRepository) FindForParty(ctx context.Context, id, userID primitive.ObjectID) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	err := r.collection.FindOne(ctx, bson.M{
		"_id": id,
		"$or": bson.A{
			bson.M{"requester": userID},
			bson.M{"provider": userID},
		},
	}).Decode(&swap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSwapNotFound
		}
		return nil, err
	}
	return &swap, nil
}

// FindPendingDuplicate looks up an existing pending request for the same
// (requester, provider, skillRequested, skillOffered) tuple.
func (r *swapRequestRepository) FindPendingDuplicate(ctx context.Context, requester, provider primitive.ObjectID, skillRequested, skillOffered string) (*models.SwapRequest, error) {
	var swap models.SwapRequest
	err := r.collection.FindOne(ctx, bson.M{
		"requester":      requester,
		"provider":       provider,
		"skillRequested": skillRequested,
		"skillOffered":   skillOffered,
		"status":         models.SwapPending,
	}).Decode(&swap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &swap, nil
}

// ListForUser returns the user's swap requests, newest first.
func (r *swapRequestRepository) ListForUser(ctx context.Context, userID primitive.ObjectID, filter SwapListFilter, page, limit int) ([]models.SwapRequest, int64, error) {
	query := bson.M{}

	switch filter.Type {
	case "sent":
		query["requester"] = userID
	case "received":
		query["provider"] = userID
	default:
		query["$or"] = bson.A{
			bson.M{"requester": userID},
			bson.M{"provider": userID},
		}
	}

	if filter.Status != "" {
		query["status"] = filter.Status
	}

	return r.findPage(ctx, query, page, limit, bson.D{{Key: "createdAt", Value: -1}})
}

// Transition performs the status-scoped FindOneAndUpdate that drives the
// swap state machine.
func (r *swapRequestRepository) Transition(ctx context.Context, id, actorID primitive.ObjectID, role SwapRole, from, to models.SwapStatus, set bson.M) (*models.SwapRequest, error) {
	query := bson.M{"_id": id, "status": from}

	switch role {
	case RoleRequester:
		query["requester"] = actorID
	case RoleProvider:
		query["provider"] = actorID
	case RoleEither:
		query["$or"] = bson.A{
			bson.M{"requester": actorID},
			bson.M{"provider": actorID},
		}
	}

	if set == nil {
		set = bson.M{}
	}
	set["status"] = to
	set["updatedAt"] = time.Now()

	var swap models.SwapRequest
	err := r.collection.FindOneAndUpdate(
		ctx,
		query,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&swap)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrSwapNotFound
		}
		return nil, err
	}

	return &swap, nil
}

// AdminList returns all swap requests for the moderation surface.
func (r *swapRequestRepository) AdminList(ctx context.Context, filter AdminSwapFilter, page, limit int) ([]models.SwapRequest, int64, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	order := -1
	if filter.SortOrder == "asc" {
		order = 1
	}

	return r.findPage(ctx, query, page, limit, bson.D{{Key: sortBy, Value: order}})
}

// Delete hard-removes a swap request (admin moderation only).
func (r *swapRequestRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrSwapNotFound
	}
	return nil
}

// CountByStatus counts swap requests in the given status.
func (r *swapRequestRepository) CountByStatus(ctx context.Context, status models.SwapStatus) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{"status": status})
}

// CountAll counts all swap requests.
func (r *swapRequestRepository) CountAll(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// StatusBreakdown groups swap requests by status.
func (r *swapRequestRepository) StatusBreakdown(ctx context.Context) ([]models.StatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$status",
			"count": bson.M{"$sum": 1},
		}}},
	}
	return aggregate[models.StatusCount](ctx, r.collection, pipeline)
}

// MonthlyTrends buckets swap creation by year/month since the given time,
// with a completed sub-count per bucket.
func (r *swapRequestRepository) MonthlyTrends(ctx context.Context, since time.Time) ([]models.MonthlyTrend, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": since},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$createdAt"},
				"month": bson.M{"$month": "$createdAt"},
			},
			"count": bson.M{"$sum": 1},
			"completed": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", "completed"}}, 1, 0},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id.year", Value: 1}, {Key: "_id.month", Value: 1}}}},
		{{Key: "$project", Value: bson.M{
			"_id":       0,
			"year":      "$_id.year",
			"month":     "$_id.month",
			"count":     1,
			"completed": 1,
		}}},
	}
	return aggregate[models.MonthlyTrend](ctx, r.collection, pipeline)
}

// TopSkills groups swap requests by the named skill field and returns the
// most frequent entries. Field must be "skillRequested" or "skillOffered".
func (r *swapRequestRepository) TopSkills(ctx context.Context, field string, limit int) ([]models.SkillCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":   "$" + field,
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"count": -1}}},
		{{Key: "$limit", Value: limit}},
	}
	return aggregate[models.SkillCount](ctx, r.collection, pipeline)
}

// DailyReport buckets swap creation by day and status over the given range.
func (r *swapRequestRepository) DailyReport(ctx context.Context, start, end time.Time) ([]models.DailySwapReport, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"createdAt": bson.M{"$gte": start, "$lte": end},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"date":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
				"status": "$status",
			},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.M{"_id.date": 1}}},
		{{Key: "$project", Value: bson.M{
			"_id":    0,
			"date":   "$_id.date",
			"status": "$_id.status",
			"count":  1,
		}}},
	}
	return aggregate[models.DailySwapReport](ctx, r.collection, pipeline)
}

func (r *swapRequestRepository) findPage(ctx context.Context, query bson.M, page, limit int, sort bson.D) ([]models.SwapRequest, int64, error) {
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

	var swaps []models.SwapRequest
	if err := cursor.All(ctx, &swaps); err != nil {
		return nil, 0, err
	}
	if swaps == nil {
		swaps = []models.SwapRequest{}
	}

	return swaps, total, nil
}

// aggregate runs a pipeline and decodes every result into T.
func aggregate[T any](ctx context.Context, coll *mongo.Collection, pipeline mongo.Pipeline) ([]T, error) {
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []T
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	if results == nil {
		results = []T{}
	}
	return results, nil
}
