package api

import (
	"net/http"

	"github.com/phrazzld/travel-blog-api/internal/api/middleware"
	"github.com/phrazzld/travel-blog-api/internal/api/shared"
	"github.com/phrazzld/travel-blog-api/internal/service"
	"github.com/phrazzld/travel-blog-api/internal/service/auth"
)

// WishlistHandler handles wishlist requests.
type WishlistHandler struct {
	wishlist service.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlist service.WishlistService) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist}
}

// ListWishlist handles GET /wishlist.
func (h *WishlistHandler) ListWishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.wishlist.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list wishlist")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// ListOwnWishlist handles GET /wishlist/{email}. It must run behind the
// authentication middleware; the caller may only read their own items.
func (h *WishlistHandler) ListOwnWishlist(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaims(r)
	if !ok {
		HandleAPIError(w, r, auth.ErrMissingToken, "")
		return
	}

	email, err := getPathParam(r, "email")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	items, err := h.wishlist.ListForOwner(r.Context(), claims, email)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list wishlist")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, items)
}

// AddWishlistItem handles POST /add-wishlist.
func (h *WishlistHandler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	item, err := shared.DecodeDocument(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.wishlist.Create(r.Context(), item)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add wishlist item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}

// DeleteWishlistItem handles DELETE /delete/{id}.
func (h *WishlistHandler) DeleteWishlistItem(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	res, err := h.wishlist.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete wishlist item")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, res)
}
