package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/service/auth"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// WishlistService provides wishlist operations.
type WishlistService interface {
	// List returns every wishlist item regardless of owner.
	List(ctx context.Context) ([]domain.Document, error)

	// ListForOwner returns the items owned by email, after checking that the
	// caller identified by claims is that owner. Returns auth.ErrAccessDenied
	// otherwise, without touching the store.
	ListForOwner(ctx context.Context, claims *auth.Claims, email string) ([]domain.Document, error)

	// Create inserts a wishlist item.
	Create(ctx context.Context, item domain.Document) (*store.InsertResult, error)

	// Delete removes an item. Deleting a missing item reports a zero count.
	Delete(ctx context.Context, id domain.ID) (*store.DeleteResult, error)
}

type wishlistServiceImpl struct {
	items  store.WishlistStore
	logger *slog.Logger
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(items store.WishlistStore, logger *slog.Logger) (WishlistService, error) {
	if items == nil {
		return nil, &ServiceError{
			Service:   "wishlist",
			Operation: "create_service",
			Message:   "wishlist store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &wishlistServiceImpl{
		items:  items,
		logger: logger.With(slog.String("component", "wishlist_service")),
	}, nil
}

// List implements WishlistService.List.
func (s *wishlistServiceImpl) List(ctx context.Context) ([]domain.Document, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, NewServiceError("wishlist", "list", "failed to list wishlist", err)
	}
	return items, nil
}

// ListForOwner implements WishlistService.ListForOwner.
func (s *wishlistServiceImpl) ListForOwner(
	ctx context.Context,
	claims *auth.Claims,
	email string,
) ([]domain.Document, error) {
	if err := auth.CheckOwnership(claims, email); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("wishlist ownership check failed")
		return nil, err
	}

	items, err := s.items.ListByEmail(ctx, email)
	if err != nil {
		return nil, NewServiceError("wishlist", "list_for_owner", "failed to list wishlist", err)
	}
	return items, nil
}

// Create implements WishlistService.Create.
func (s *wishlistServiceImpl) Create(ctx context.Context, item domain.Document) (*store.InsertResult, error) {
	res, err := s.items.Create(ctx, item)
	if err != nil {
		return nil, NewServiceError("wishlist", "create", "failed to add wishlist item", err)
	}
	return res, nil
}

// Delete implements WishlistService.Delete.
func (s *wishlistServiceImpl) Delete(ctx context.Context, id domain.ID) (*store.DeleteResult, error) {
	res, err := s.items.Delete(ctx, id)
	if err != nil {
		return nil, NewServiceError("wishlist", "delete", "failed to delete wishlist item", err)
	}
	return res, nil
}
