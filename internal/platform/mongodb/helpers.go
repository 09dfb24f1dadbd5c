package mongodb

import (
	"context"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// findAll runs filter against coll and decodes every result.
// The returned slice is never nil.
func findAll(ctx context.Context, coll *mongo.Collection, filter bson.M) ([]domain.Document, error) {
	cursor, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}

	docs := make([]domain.Document, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// insertOne stores doc under a freshly generated identifier. Any _id in
// doc is discarded.
func insertOne(
	ctx context.Context,
	coll *mongo.Collection,
	doc domain.Document,
	log *slog.Logger,
) (*store.InsertResult, error) {
	id := domain.NewID()
	toInsert := doc.WithoutID()
	toInsert[domain.FieldID] = id

	if _, err := coll.InsertOne(ctx, bson.M(toInsert)); err != nil {
		log.Error("failed to insert document",
			slog.String("collection", coll.Name()),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError(coll.Name(), "insertOne", "failed to insert document", MapError(err))
	}

	log.Info("document inserted",
		slog.String("collection", coll.Name()),
		slog.String("id", id.Hex()))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}
