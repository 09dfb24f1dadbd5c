package store

import "github.com/phrazzld/travel-blog-api/internal/domain"

// InsertResult reports the outcome of a single document insert.
type InsertResult struct {
	Acknowledged bool      `json:"acknowledged"`
	InsertedID   domain.ID `json:"insertedId"`
}

// UpdateResult reports the outcome of an upsert.
// UpsertedID is set only when the upsert created a new document.
type UpdateResult struct {
	Acknowledged  bool       `json:"acknowledged"`
	MatchedCount  int64      `json:"matchedCount"`
	ModifiedCount int64      `json:"modifiedCount"`
	UpsertedCount int64      `json:"upsertedCount"`
	UpsertedID    *domain.ID `json:"upsertedId"`
}

// DeleteResult reports the outcome of a delete.
// A DeletedCount of zero is not an error.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
