package store

import (
	"context"
	"regexp"
	"strings"

	"github.com/phrazzld/travel-blog-api/internal/domain"
)

// PostFilter narrows a post listing.
// Search is a case-insensitive substring of the title; an empty Search
// matches every title. Category, when non-empty, must match exactly.
// Both conditions are ANDed.
type PostFilter struct {
	Search   string
	Category string
}

// SearchPattern returns the regular expression used for the title match.
// Regex metacharacters in Search are escaped so the match is a literal substring.
func (f PostFilter) SearchPattern() string {
	return regexp.QuoteMeta(f.Search)
}

// Matches reports whether post satisfies the filter. Backends that cannot
// push a filter down, and tests, use it as the reference semantics.
func (f PostFilter) Matches(post domain.Document) bool {
	if f.Search != "" {
		title, _ := post.String(domain.FieldTitle)
		if !strings.Contains(strings.ToLower(title), strings.ToLower(f.Search)) {
			return false
		}
	}
	if f.Category != "" {
		category, ok := post.String(domain.FieldCategory)
		if !ok || category != f.Category {
			return false
		}
	}
	return true
}

// PostStore defines the interface for blog post persistence.
type PostStore interface {
	// List returns every post matching filter.
	List(ctx context.Context, filter PostFilter) ([]domain.Document, error)

	// GetByID retrieves a post by its identifier.
	// Returns ErrPostNotFound if the post does not exist.
	GetByID(ctx context.Context, id domain.ID) (domain.Document, error)

	// Create inserts a new post and returns the generated identifier.
	Create(ctx context.Context, post domain.Document) (*InsertResult, error)

	// Upsert sets the given fields on the post with the given id, creating
	// the post when no document has that id. It never fails because the
	// document is missing.
	Upsert(ctx context.Context, id domain.ID, fields domain.Document) (*UpdateResult, error)
}
