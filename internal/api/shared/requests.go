package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/travel-blog-api/internal/domain"
)

// MaxBodyBytes bounds every JSON request body.
const MaxBodyBytes = 1 << 20

var validate = validator.New()

// ErrTrailingData is returned when a body holds more than one JSON value.
var ErrTrailingData = errors.New("request body must contain a single JSON value")

// DecodeJSON decodes the request body into v. Only whitespace may follow
// the first JSON value.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, MaxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}

// DecodeDocument decodes a request body that must be a single JSON object.
// Anything else is reported as a validation error on "body".
func DecodeDocument(r *http.Request) (domain.Document, error) {
	var doc domain.Document
	err := DecodeJSON(r, &doc)

	var typeErr *json.UnmarshalTypeError
	switch {
	case err == nil && doc != nil:
		return doc, nil
	case err == nil, errors.Is(err, io.EOF):
		return nil, domain.NewValidationError("body", "must be a JSON object", nil)
	case errors.As(err, &typeErr):
		return nil, domain.NewValidationError("body", "must be a JSON object", nil)
	default:
		return nil, domain.NewValidationError("body", fmt.Sprintf("is not valid JSON: %v", err), nil)
	}
}

// ValidateRequest validates a request struct using its validate tags, or
// its own Validate method when it has one.
func ValidateRequest(v interface{}) error {
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return validate.Struct(v)
}
