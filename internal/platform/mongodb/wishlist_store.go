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

// WishlistStore implements store.WishlistStore on a MongoDB collection.
type WishlistStore struct {
	coll    *mongo.Collection
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure WishlistStore implements store.WishlistStore interface
var _ store.WishlistStore = (*WishlistStore)(nil)

// NewWishlistStore creates a WishlistStore over coll.
func NewWishlistStore(coll *mongo.Collection, timeout time.Duration, logger *slog.Logger) *WishlistStore {
	if coll == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("collection cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WishlistStore{
		coll:    coll,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "wishlist_store")),
	}
}

// List implements store.WishlistStore.List.
func (s *WishlistStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.find(ctx, bson.M{}, "failed to list wishlist")
}

// ListByEmail implements store.WishlistStore.ListByEmail.
func (s *WishlistStore) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return s.find(ctx, emailFilter(email), "failed to list wishlist by owner")
}

func (s *WishlistStore) find(ctx context.Context, filter bson.M, msg string) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	items, err := findAll(ctx, s.coll, filter)
	if err != nil {
		log.Error(msg, slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError(s.coll.Name(), "find", msg, MapError(err))
	}
	return items, nil
}

// Create implements store.WishlistStore.Create.
func (s *WishlistStore) Create(ctx context.Context, item domain.Document) (*store.InsertResult, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()
	return insertOne(ctx, s.coll, item, logger.FromContextOrDefault(ctx, s.logger))
}

// Delete implements store.WishlistStore.Delete.
func (s *WishlistStore) Delete(ctx context.Context, id domain.ID) (*store.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		log.Error("failed to delete wishlist item",
			slog.String("error", redact.Error(err)),
			slog.String("item_id", id.Hex()))
		return nil, store.NewStoreError(s.coll.Name(), "deleteOne", "failed to delete wishlist item", MapError(err))
	}

	log.Info("wishlist item deleted",
		slog.String("item_id", id.Hex()),
		slog.Int64("deleted", res.DeletedCount))
	return &store.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
