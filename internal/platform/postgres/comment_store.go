package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// CommentStore implements store.CommentStore on the comments table.
type CommentStore struct {
	table docTable
}

// Ensure CommentStore implements store.CommentStore interface
var _ store.CommentStore = (*CommentStore)(nil)

// NewCommentStore creates a CommentStore over db.
func NewCommentStore(db store.DBTX, timeout time.Duration, logger *slog.Logger) *CommentStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentStore{table: docTable{
		name:    CommentsTable,
		db:      db,
		timeout: timeout,
		logger:  logger.With(slog.String("component", "comment_store")),
	}}
}

// List implements store.CommentStore.List.
func (s *CommentStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.table.list(ctx, "TRUE")
}

// ListByBlogID implements store.CommentStore.ListByBlogID.
// blog_id must be a JSON string equal to blogID; it is never parsed as an
// identifier and numbers are not coerced.
func (s *CommentStore) ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error) {
	return s.table.list(ctx, `doc->'blog_id' = to_jsonb($1::text)`, blogID)
}

// Create implements store.CommentStore.Create.
func (s *CommentStore) Create(ctx context.Context, comment domain.Document) (*store.InsertResult, error) {
	return s.table.insert(ctx, comment)
}
