package api

import (
	"net/http"

	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/phrazzld/travel-blog-api/internal/service"
)

// CommentHandler handles comment requests.
type CommentHandler struct {
	comments service.CommentService
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments service.CommentService) *CommentHandler {
	return &CommentHandler{comments: comments}
}

// ListComments handles GET /comment.
func (h *CommentHandler) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.comments.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// ListPostComments handles GET /comments/{id}. The decoded id is matched as
// plain text against blog_id and is not parsed as an identifier.
func (h *CommentHandler) ListPostComments(w http.ResponseWriter, r *http.Request) {
	blogID, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	comments, err := h.comments.ListByBlogID(r.Context(), blogID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list comments")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, comments)
}

// AddComment handles POST /add-comment.
func (h *CommentHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	comment, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.comments.Create(r.Context(), comment)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add comment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
