package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// CommentService provides comment operations.
type CommentService interface {
	List(ctx context.Context) ([]domain.Document, error)

	// ListByBlogID returns the comments whose blog_id equals blogID as text.
	ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error)

	Create(ctx context.Context, comment domain.Document) (*store.InsertResult, error)
}

type commentServiceImpl struct {
	comments store.CommentStore
	logger   *slog.Logger
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments store.CommentStore, logger *slog.Logger) (CommentService, error) {
	if comments == nil {
		return nil, &ServiceError{
			Service:   "comment",
			Operation: "create_service",
			Message:   "comments store cannot be nil",
		}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &commentServiceImpl{
		comments: comments,
		logger:   logger.With(slog.String("component", "comment_service")),
	}, nil
}

func (s *commentServiceImpl) List(ctx context.Context) ([]domain.Document, error) {
	comments, err := s.comments.List(ctx)
	if err != nil {
		return nil, NewServiceError("comment", "list", "failed to list comments", err)
	}
	return comments, nil
}

func (s *commentServiceImpl) ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error) {
	comments, err := s.comments.ListByBlogID(ctx, blogID)
	if err != nil {
		return nil, NewServiceError("comment", "list_by_blog", "failed to list comments", err)
	}
	return comments, nil
}

func (s *commentServiceImpl) Create(ctx context.Context, comment domain.Document) (*store.InsertResult, error) {
	res, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, NewServiceError("comment", "create", "failed to add comment", err)
	}
	return res, nil
}
