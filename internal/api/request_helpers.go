package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/travel-blog-api/internal/domain"
)

// getPathParam returns the decoded value of a URL path parameter. chi
// matches against the escaped path when the request has one, so a value
// like a%2Bb%40example.com must be unescaped here. A malformed escape is a
// validation error on the parameter.
func getPathParam(r *http.Request, paramName string) (string, error) {
	raw := chi.URLParam(r, paramName)
	if r.URL.RawPath == "" {
		return raw, nil
	}
	val, err := url.PathUnescape(raw)
	if err != nil {
		return "", domain.NewValidationError(paramName, "has invalid escaping", nil)
	}
	return val, nil
}

// getPathID extracts and parses an identifier from the URL path parameters.
// A missing or malformed value is a validation error wrapping
// domain.ErrInvalidID, which maps to 400.
func getPathID(r *http.Request, paramName string) (domain.ID, error) {
	raw, err := getPathParam(r, paramName)
	if err != nil {
		return domain.ID{}, err
	}
	id, err := domain.ParseID(raw)
	if err != nil {
		return domain.ID{}, err
	}
	return id, nil
}
