package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// PostService provides post-related operations.
type PostService interface {
	// List returns the posts matching filter.
	List(ctx context.Context, filter store.PostFilter) ([]domain.Document, error)

	// Featured returns at most domain.FeaturedLimit posts ranked by the word
	// count of their long description, each carrying the derived count.
	Featured(ctx context.Context) ([]domain.Document, error)

	// Get returns one post. Returns ErrPostNotFound when it does not exist.
	Get(ctx context.Context, id domain.ID) (domain.Document, error)

	// Create inserts a new post.
	Create(ctx context.Context, post domain.Document) (*store.InsertResult, error)

	// Upsert sets fields on the post with the given id, creating it when
	// absent. Returns ErrEmptyUpdate when fields has nothing to set.
	Upsert(ctx context.Context, id domain.ID, fields domain.Document) (*store.UpdateResult, error)
}

type postServiceImpl struct {
	posts  store.PostStore
	logger *slog.Logger
}

// NewPostService creates a new PostService.
// It returns an error if the store is nil.
func NewPostService(posts store.PostStore, logger *slog.Logger) (PostService, error) {
	if posts == nil {
		return nil, &ServiceError{
			Service:   "post",
			Operation: "create_service",
			Message:   "posts store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &postServiceImpl{
		posts:  posts,
		logger: logger.With(slog.String("component", "post_service")),
	}, nil
}

// List implements PostService.List.
func (s *postServiceImpl) List(ctx context.Context, filter store.PostFilter) ([]domain.Document, error) {
	posts, err := s.posts.List(ctx, filter)
	if err != nil {
		return nil, NewServiceError("post", "list", "failed to list posts", err)
	}
	return posts, nil
}

// Featured implements PostService.Featured.
// The ranking is recomputed on every call.
func (s *postServiceImpl) Featured(ctx context.Context) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	posts, err := s.posts.List(ctx, store.PostFilter{})
	if err != nil {
		return nil, NewServiceError("post", "featured", "failed to list posts", err)
	}

	featured := domain.RankFeatured(posts, domain.FeaturedLimit)
	log.Debug("ranked featured posts",
		slog.Int("candidates", len(posts)),
		slog.Int("returned", len(featured)))
	return featured, nil
}

// Get implements PostService.Get.
func (s *postServiceImpl) Get(ctx context.Context, id domain.ID) (domain.Document, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			logger.FromContextOrDefault(ctx, s.logger).Error("failed to retrieve post",
				slog.String("error", redact.Error(err)),
				slog.String("post_id", id.Hex()))
		}
		return nil, NewServiceError("post", "get", "failed to retrieve post", err)
	}
	return post, nil
}

// Create implements PostService.Create.
func (s *postServiceImpl) Create(ctx context.Context, post domain.Document) (*store.InsertResult, error) {
	res, err := s.posts.Create(ctx, post)
	if err != nil {
		return nil, NewServiceError("post", "create", "failed to create post", err)
	}
	return res, nil
}

// Upsert implements PostService.Upsert.
func (s *postServiceImpl) Upsert(
	ctx context.Context,
	id domain.ID,
	fields domain.Document,
) (*store.UpdateResult, error) {
	fields = fields.WithoutID()
	if len(fields) == 0 {
		return nil, ErrEmptyUpdate
	}

	res, err := s.posts.Upsert(ctx, id, fields)
	if err != nil {
		return nil, NewServiceError("post", "upsert", "failed to upsert post", err)
	}
	return res, nil
}
