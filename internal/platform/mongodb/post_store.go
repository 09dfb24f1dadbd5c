package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// PostStore implements store.PostStore on a MongoDB collection.
type PostStore struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure PostStore implements store.PostStore interface
var _ store.PostStore = (*PostStore)(nil)

// NewPostStore creates a PostStore over coll.
// A zero timeout leaves deadlines to the caller's context.
func NewPostStore(coll *mongo.Collection, timeout time.Duration, logger *slog.Logger) *PostStore {
	if coll == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostStore{
		coll:    coll,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "post_store")),
	}
}

// List implements store.PostStore.List.
func (s *PostStore) List(ctx context.Context, filter store.PostFilter) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	posts, err := findAll(ctx, s.coll, postListFilter(filter))
	if err != nil {
		log.Error("failed to list posts",
			slog.String("error", redact.Error(err)),
			slog.Bool("has_search", filter.Search != ""),
			slog.String("category", filter.Category))
		return nil, store.NewStoreError(s.coll.Name(), "find", "failed to list posts", MapError(err))
	}

	log.Debug("listed posts", slog.Int("count", len(posts)))
	return posts, nil
}

// GetByID implements store.PostStore.GetByID.
func (s *PostStore) GetByID(ctx context.Context, id domain.ID) (domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	var post domain.Document
	err := s.coll.FindOne(ctx, idFilter(id)).Decode(&post)
	if err != nil {
		mapped := MapError(err)
		if store.IsNotFoundError(mapped) {
			log.Debug("post not found", slog.String("post_id", id.Hex()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.String("error", redact.Error(err)),
			slog.String("post_id", id.Hex()))
		return nil, store.NewStoreError(s.coll.Name(), "findOne", "failed to get post", mapped)
	}

	return post, nil
}

// Create implements store.PostStore.Create.
func (s *PostStore) Create(ctx context.Context, post domain.Document) (*store.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return insertOne(ctx, s.coll, post, logger.FromContextOrDefault(ctx, s.logger))
}

// Upsert implements store.PostStore.Upsert.
func (s *PostStore) Upsert(
	ctx context.Context,
	id domain.ID,
	fields domain.Document,
) (*store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, idFilter(id), setUpdate(fields), options.Update().SetUpsert(true))
	if err != nil {
		log.Error("failed to upsert post",
			slog.String("error", redact.Error(err)),
			slog.String("post_id", id.Hex()))
		return nil, store.NewStoreError(s.coll.Name(), "updateOne", "failed to upsert post", MapError(err))
	}

	out := &store.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedCount > 0 {
		upserted := id
		if oid, ok := res.UpsertedID.(primitive.ObjectID); ok {
			upserted = oid
		}
		out.UpsertedID = &upserted
	}

	log.Info("post upserted",
		slog.String("post_id", id.Hex()),
		slog.Int64("matched", res.MatchedCount),
		slog.Int64("upserted", res.UpsertedCount))
	return out, nil
}
