package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/mocks"
	"github.com/phrazzld/travel-blog-api/internal/service"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentService(t *testing.T) {
	ctx := context.Background()
	comments := &mocks.MockCommentStore{}
	svc, err := service.NewCommentService(comments, nil)
	require.NoError(t, err)

	byBlog := []domain.Document{{"blog_id": "abc", "text": "lovely"}}
	comments.On("ListByBlogID", ctx, "abc").Return(byBlog, nil)
	comments.On("List", ctx).Return(nil, fmt.Errorf("%w: timeout", store.ErrUnavailable))

	got, err := svc.ListByBlogID(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, byBlog, got)

	_, err = svc.List(ctx)
	assert.ErrorIs(t, err, store.ErrUnavailable)
}

func TestNewServiceError(t *testing.T) {
	assert.NoError(t, service.NewServiceError("post", "get", "x", nil))
	assert.Equal(t, service.ErrPostNotFound, service.NewServiceError("post", "get", "x", store.ErrPostNotFound))

	err := service.NewServiceError("comment", "create", "failed to add comment", store.ErrUnavailable)
	assert.EqualError(t, err, "comment service create failed: failed to add comment: store unavailable")
}
