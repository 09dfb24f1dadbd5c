package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/mongo"
)

// Server error codes reported when a document or filter value is rejected.
var invalidDocumentCodes = map[int]bool{
	2:   true, // BadValue
	9:   true, // FailedToParse
	14:  true, // TypeMismatch
	52:  true, // DollarPrefixedFieldName
	121: true, // DocumentValidationFailure
}

// MapError maps a driver error to a store error.
// It wraps the original error to preserve context for logging.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	if errors.Is(err, mongo.ErrNilDocument) {
		return fmt.Errorf("%w: %v", store.ErrInvalidDocument, err)
	}

	var se mongo.ServerError
	if errors.As(err, &se) {
		for code := range invalidDocumentCodes {
			if se.HasErrorCode(code) {
				return fmt.Errorf("%w: %v", store.ErrInvalidDocument, err)
			}
		}
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	// Timeouts, network failures and everything else the server reports
	// surface as an unavailable store.
	return fmt.Errorf("%w: %v", store.ErrUnavailable, err)
}
