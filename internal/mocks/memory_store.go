package mocks

import (
	"context"
	"reflect"
	"sync"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// MemoryStores holds in-memory implementations of the three document
// stores. Documents keep insertion order. Err, when set, is returned by
// every operation to simulate an unavailable backend.
type MemoryStores struct {
	mu       sync.Mutex
	posts    []domain.Document
	wishlist []domain.Document
	comments []domain.Document

	Err error
}

// NewMemoryStores creates empty in-memory stores.
func NewMemoryStores() *MemoryStores {
	return &MemoryStores{}
}

// Posts returns a store.PostStore view.
func (m *MemoryStores) Posts() store.PostStore { return memoryPosts{m} }

// Wishlist returns a store.WishlistStore view.
func (m *MemoryStores) Wishlist() store.WishlistStore { return memoryWishlist{m} }

// Comments returns a store.CommentStore view.
func (m *MemoryStores) Comments() store.CommentStore { return memoryComments{m} }

// Ping implements store.Pinger.
func (m *MemoryStores) Ping(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Err
}

func (m *MemoryStores) filter(docs []domain.Document, keep func(domain.Document) bool) ([]domain.Document, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		if keep(d) {
			out = append(out, d.Clone())
		}
	}
	return out, nil
}

func (m *MemoryStores) insert(docs *[]domain.Document, doc domain.Document) (*store.InsertResult, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	id := domain.NewID()
	stored := doc.WithoutID()
	stored[domain.FieldID] = id
	*docs = append(*docs, stored)
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

func indexOf(docs []domain.Document, id domain.ID) int {
	for i, d := range docs {
		if d[domain.FieldID] == id {
			return i
		}
	}
	return -1
}

type memoryPosts struct{ m *MemoryStores }

func (p memoryPosts) List(_ context.Context, filter store.PostFilter) ([]domain.Document, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.m.filter(p.m.posts, filter.Matches)
}

func (p memoryPosts) GetByID(_ context.Context, id domain.ID) (domain.Document, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if p.m.Err != nil {
		return nil, p.m.Err
	}
	if i := indexOf(p.m.posts, id); i >= 0 {
		return p.m.posts[i].Clone(), nil
	}
	return nil, store.ErrPostNotFound
}

func (p memoryPosts) Create(_ context.Context, post domain.Document) (*store.InsertResult, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	return p.m.insert(&p.m.posts, post)
}

func (p memoryPosts) Upsert(_ context.Context, id domain.ID, fields domain.Document) (*store.UpdateResult, error) {
	p.m.mu.Lock()
	defer p.m.mu.Unlock()
	if p.m.Err != nil {
		return nil, p.m.Err
	}

	i := indexOf(p.m.posts, id)
	if i < 0 {
		doc := fields.WithoutID()
		doc[domain.FieldID] = id
		p.m.posts = append(p.m.posts, doc)
		upserted := id
		return &store.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: &upserted}, nil
	}

	modified := int64(0)
	for k, v := range fields.WithoutID() {
		if cur, ok := p.m.posts[i][k]; !ok || !reflect.DeepEqual(cur, v) {
			modified = 1
		}
		p.m.posts[i][k] = v
	}
	return &store.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

type memoryWishlist struct{ m *MemoryStores }

func (w memoryWishlist) List(context.Context) ([]domain.Document, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	return w.m.filter(w.m.wishlist, func(domain.Document) bool { return true })
}

func (w memoryWishlist) ListByEmail(_ context.Context, email string) ([]domain.Document, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	return w.m.filter(w.m.wishlist, func(d domain.Document) bool {
		got, ok := d.String(domain.FieldEmail)
		return ok && got == email
	})
}

func (w memoryWishlist) Create(_ context.Context, item domain.Document) (*store.InsertResult, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	return w.m.insert(&w.m.wishlist, item)
}

func (w memoryWishlist) Delete(_ context.Context, id domain.ID) (*store.DeleteResult, error) {
	w.m.mu.Lock()
	defer w.m.mu.Unlock()
	if w.m.Err != nil {
		return nil, w.m.Err
	}
	i := indexOf(w.m.wishlist, id)
	if i < 0 {
		return &store.DeleteResult{Acknowledged: true}, nil
	}
	w.m.wishlist = append(w.m.wishlist[:i], w.m.wishlist[i+1:]...)
	return &store.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

type memoryComments struct{ m *MemoryStores }

func (c memoryComments) List(context.Context) ([]domain.Document, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.m.filter(c.m.comments, func(domain.Document) bool { return true })
}

func (c memoryComments) ListByBlogID(_ context.Context, blogID string) ([]domain.Document, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.m.filter(c.m.comments, func(d domain.Document) bool {
		got, ok := d.String(domain.FieldBlogID)
		return ok && got == blogID
	})
}

func (c memoryComments) Create(_ context.Context, comment domain.Document) (*store.InsertResult, error) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.m.insert(&c.m.comments, comment)
}
