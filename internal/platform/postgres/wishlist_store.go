package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// WishlistStore implements store.WishlistStore on the wishlist table.
type WishlistStore struct {
	table docTable
}

// Ensure WishlistStore implements store.WishlistStore interface
var _ store.WishlistStore = (*WishlistStore)(nil)

// NewWishlistStore creates a WishlistStore over db, which may be a pool or
// a transaction.
func NewWishlistStore(db store.DBTX, timeout time.Duration, logger *slog.Logger) *WishlistStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WishlistStore{table: docTable{
		name:    WishlistTable,
		db:      db,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "wishlist_store")),
	}}
}

// List implements store.WishlistStore.List.
func (s *WishlistStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.table.list(ctx, "TRUE")
}

// ListByEmail implements store.WishlistStore.ListByEmail.
func (s *WishlistStore) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	return s.table.list(ctx, `doc->'email' = to_jsonb($1::text)`, email)
}

// Create implements store.WishlistStore.Create.
func (s *WishlistStore) Create(ctx context.Context, item domain.Document) (*store.InsertResult, error) {
	return s.table.insert(ctx, item)
}

// Delete implements store.WishlistStore.Delete.
// Deleting an id that does not exist reports a zero count.
func (s *WishlistStore) Delete(ctx context.Context, id domain.ID) (*store.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.table.logger)
	ctx, cancel := withTimeout(ctx, s.table.timeout)
	defer cancel()

	res, err := s.table.db.ExecContext(ctx, `DELETE FROM wishlist WHERE id = $1`, id.Hex())
	if err != nil {
		log.Error("failed to delete wishlist item",
			slog.String("error", redact.Error(err)),
			slog.String("item_id", id.Hex()))
		return nil, store.NewStoreError(WishlistTable, "delete", "failed to delete wishlist item", MapError(err))
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return nil, store.NewStoreError(WishlistTable, "delete", "failed to read deleted count", MapError(err))
	}

	log.Info("wishlist item deleted",
		slog.String("item_id", id.Hex()),
		slog.Int64("deleted", deleted))
	return &store.DeleteResult{Acknowledged: true, DeletedCount: deleted}, nil
}
