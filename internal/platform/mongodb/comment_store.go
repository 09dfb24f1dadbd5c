package mongodb

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentStore implements store.CommentStore on a MongoDB collection.
type CommentStore struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure CommentStore implements store.CommentStore interface
var _ store.CommentStore = (*CommentStore)(nil)

// NewCommentStore creates a CommentStore over coll.
func NewCommentStore(coll *mongo.Collection, timeout time.Duration, logger *slog.Logger) *CommentStore {
	if coll == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentStore{
		coll:    coll,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "comment_store")),
	}
}

// List implements store.CommentStore.List.
func (s *CommentStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.find(ctx, bson.M{}, "failed to list comments")
}

// ListByBlogID implements store.CommentStore.ListByBlogID.
func (s *CommentStore) ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error) {
	return s.find(ctx, blogIDFilter(blogID), "failed to list comments by post")
}

func (s *CommentStore) find(ctx context.Context, filter bson.M, msg string) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	comments, err := findAll(ctx, s.coll, filter)
	if err != nil {
		log.Error(msg, slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError(s.coll.Name(), "find", msg, MapError(err))
	}
	return comments, nil
}

// Create implements store.CommentStore.Create.
func (s *CommentStore) Create(ctx context.Context, comment domain.Document) (*store.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return insertOne(ctx, s.coll, comment, logger.FromContextOrDefault(ctx, s.logger))
}
