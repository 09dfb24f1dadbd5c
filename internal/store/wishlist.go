package store

import (
	"context"

	"github.com/phrazzld/travel-blog-api/internal/domain"
)

// WishlistStore defines the interface for wishlist persistence.
type WishlistStore interface {
	// List returns every wishlist item.
	List(ctx context.Context) ([]domain.Document, error)

	// ListByEmail returns the items whose email field equals email exactly.
	ListByEmail(ctx context.Context, email string) ([]domain.Document, error)

	// Create inserts a new wishlist item.
	Create(ctx context.Context, item domain.Document) (*InsertResult, error)

	// Delete removes the item with the given id.
	Delete(ctx context.Context, id domain.ID) (*DeleteResult, error)
}
