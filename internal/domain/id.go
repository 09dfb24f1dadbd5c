package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ID identifies a post, wishlist item or comment. Every backend uses the
// 12-byte ObjectID layout, rendered as 24 lowercase hex characters.
type ID = primitive.ObjectID

// NewID returns a fresh identifier.
func NewID() ID {
	return primitive.NewObjectID()
}

// ParseID parses a client supplied identifier.
// Returns a ValidationError wrapping ErrInvalidID if s is not 24 hex characters.
func ParseID(s string) (ID, error) {
	if s == "" {
		return primitive.NilObjectID, NewValidationError("id", "is required", ErrInvalidID)
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, NewValidationError("id", "has invalid format", ErrInvalidID)
	}
	return id, nil
}
