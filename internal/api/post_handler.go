package api

import (
	"net/http"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/phrazzld/travel-blog-api/internal/service"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// Query parameters accepted by ListPosts.
const (
	searchParam   = "search"
	categoryParam = "filter"
)

// PostHandler handles blog post requests.
type PostHandler struct {
	posts service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(posts service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

// ListPosts handles GET /blogs. The optional search parameter matches the
// title case-insensitively; the optional filter parameter must equal the
// category.
func (h *PostHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := store.PostFilter{
		Search:   query.Get(searchParam),
		Category: query.Get(categoryParam),
	}

	posts, err := h.posts.List(r.Context(), filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// FeaturedPosts handles GET /feature.
func (h *PostHandler) FeaturedPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.posts.Featured(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list featured posts")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// GetPost handles GET /unique-blog/{id} and GET /blog-details/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	post, err := h.posts.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, post)
}

// CreatePost handles POST /add-blogs.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	post, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.posts.Create(r.Context(), post)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// UpsertPost handles PUT /unique-blog/{id} and PUT /update-blog/{id}.
// A missing post is created with the given id.
func (h *PostHandler) UpsertPost(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	fields, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.posts.Upsert(r.Context(), id, fields)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update post")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
