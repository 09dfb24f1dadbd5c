package mocks

import (
	"context"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockPostStore is a mock of store.PostStore for use with testify/mock
type MockPostStore struct {
	mock.Mock
}

var _ store.PostStore = (*MockPostStore)(nil)

// List is a mock implementation of store.PostStore.List
func (m *MockPostStore) List(ctx context.Context, filter store.PostFilter) ([]domain.Document, error) {
	args := m.Called(ctx, filter)
	return documents(args.Get(0)), args.Error(1)
}

// GetByID is a mock implementation of store.PostStore.GetByID
func (m *MockPostStore) GetByID(ctx context.Context, id domain.ID) (domain.Document, error) {
	args := m.Called(ctx, id)
	if doc, ok := args.Get(0).(domain.Document); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

// Create is a mock implementation of store.PostStore.Create
func (m *MockPostStore) Create(ctx context.Context, post domain.Document) (*store.InsertResult, error) {
	args := m.Called(ctx, post)
	return insertResult(args.Get(0)), args.Error(1)
}

// Upsert is a mock implementation of store.PostStore.Upsert
func (m *MockPostStore) Upsert(
	ctx context.Context,
	id domain.ID,
	fields domain.Document,
) (*store.UpdateResult, error) {
	args := m.Called(ctx, id, fields)
	if res, ok := args.Get(0).(*store.UpdateResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockWishlistStore is a mock of store.WishlistStore for use with testify/mock
type MockWishlistStore struct {
	mock.Mock
}

var _ store.WishlistStore = (*MockWishlistStore)(nil)

// List is a mock implementation of store.WishlistStore.List
func (m *MockWishlistStore) List(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	return documents(args.Get(0)), args.Error(1)
}

// ListByEmail is a mock implementation of store.WishlistStore.ListByEmail
func (m *MockWishlistStore) ListByEmail(ctx context.Context, email string) ([]domain.Document, error) {
	args := m.Called(ctx, email)
	return documents(args.Get(0)), args.Error(1)
}

// Create is a mock implementation of store.WishlistStore.Create
func (m *MockWishlistStore) Create(ctx context.Context, item domain.Document) (*store.InsertResult, error) {
	args := m.Called(ctx, item)
	return insertResult(args.Get(0)), args.Error(1)
}

// Delete is a mock implementation of store.WishlistStore.Delete
func (m *MockWishlistStore) Delete(ctx context.Context, id domain.ID) (*store.DeleteResult, error) {
	args := m.Called(ctx, id)
	if res, ok := args.Get(0).(*store.DeleteResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockCommentStore is a mock of store.CommentStore for use with testify/mock
type MockCommentStore struct {
	mock.Mock
}

var _ store.CommentStore = (*MockCommentStore)(nil)

// List is a mock implementation of store.CommentStore.List
func (m *MockCommentStore) List(ctx context.Context) ([]domain.Document, error) {
	args := m.Called(ctx)
	return documents(args.Get(0)), args.Error(1)
}

// ListByBlogID is a mock implementation of store.CommentStore.ListByBlogID
func (m *MockCommentStore) ListByBlogID(ctx context.Context, blogID string) ([]domain.Document, error) {
	args := m.Called(ctx, blogID)
	return documents(args.Get(0)), args.Error(1)
}

// Create is a mock implementation of store.CommentStore.Create
func (m *MockCommentStore) Create(ctx context.Context, comment domain.Document) (*store.InsertResult, error) {
	args := m.Called(ctx, comment)
	return insertResult(args.Get(0)), args.Error(1)
}

func documents(v any) []domain.Document {
	if docs, ok := v.([]domain.Document); ok {
		return docs
	}
	return nil
}

func insertResult(v any) *store.InsertResult {
	if res, ok := v.(*store.InsertResult); ok {
		return res
	}
	return nil
}
