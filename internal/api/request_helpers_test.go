package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withURLParam attaches a chi route context carrying one parameter.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestGetPathParam(t *testing.T) {
	tests := []struct {
		name    string
		target  string
		param   string
		want    string
		wantErr bool
	}{
		{
			name:   "plain value",
			target: "/wishlist/a@example.com",
			param:  "a@example.com",
			want:   "a@example.com",
		},
		{
			name:   "escaped value is decoded",
			target: "/wishlist/a%2Bb%40example.com",
			param:  "a%2Bb%40example.com",
			want:   "a+b@example.com",
		},
		{
			name:   "escaped space",
			target: "/comments/my%20trip%2F1",
			param:  "my%20trip%2F1",
			want:   "my trip/1",
		},
		{
			name:   "literal percent without raw path is kept",
			target: "/comments/100%25",
			param:  "100%",
			want:   "100%",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := withURLParam(httptest.NewRequest(http.MethodGet, tt.target, nil), "v", tt.param)

			got, err := getPathParam(req, "v")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("bad escape is a validation error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/comments/x", nil)
		req.URL.RawPath = "/comments/%zz"
		req = withURLParam(req, "id", "%zz")

		_, err := getPathParam(req, "id")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.Equal(t, 400, MapErrorToStatusCode(err))
	})
}

func TestGetPathID(t *testing.T) {
	id := domain.NewID()

	req := withURLParam(httptest.NewRequest(http.MethodGet, "/delete/"+id.Hex(), nil), "id", id.Hex())
	got, err := getPathID(req, "id")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	req = withURLParam(httptest.NewRequest(http.MethodGet, "/delete/xyz", nil), "id", "xyz")
	_, err = getPathID(req, "id")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}
