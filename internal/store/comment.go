package store

import (
	"context"

	"github.com/phrazzld/travel-blog-api/internal/domain"
)

// CommentStore defines the interface for comment persistence.
type CommentStore interface {
	// List returns every comment.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByBlogID returns the comments whose blog_id field equals blogID.
	// The comparison is plain text equality; blogID is never parsed as an ID.
	ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error)

	// Create inserts a new comment.
	Create(ctx context.Context, comment domain.Document) (*InsertResult, error)
}
