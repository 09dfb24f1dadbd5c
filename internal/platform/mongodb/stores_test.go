package mongodb

import (
	"context"
	"testing"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

const testNamespace = "Blogs-collection.test"

func newMockT(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func TestPostStore(t *testing.T) {
	mt := newMockT(t)

	mt.Run("List decodes every document", func(mt *mtest.T) {
		id1, id2 := domain.NewID(), domain.NewID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id1}, {Key: "title", Value: "Paris"}},
			bson.D{{Key: "_id", Value: id2}, {Key: "title", Value: "Rome"}},
		))

		posts, err := NewPostStore(mt.Coll, 0, nil).List(context.Background(), store.PostFilter{Search: "r"})
		require.NoError(mt, err)
		require.Len(mt, posts, 2)
		assert.Equal(mt, id1, posts[0]["_id"])
		assert.Equal(mt, "Rome", posts[1]["title"])
	})

	mt.Run("List returns empty slice when nothing matches", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		posts, err := NewPostStore(mt.Coll, 0, nil).List(context.Background(), store.PostFilter{})
		require.NoError(mt, err)
		assert.NotNil(mt, posts)
		assert.Empty(mt, posts)
	})

	mt.Run("List maps server failures to unavailable", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    6,
			Name:    "HostUnreachable",
			Message: "connection refused",
		}))

		_, err := NewPostStore(mt.Coll, 0, nil).List(context.Background(), store.PostFilter{})
		require.Error(mt, err)
		assert.ErrorIs(mt, err, store.ErrUnavailable)

		var storeErr *store.StoreError
		assert.ErrorAs(mt, err, &storeErr)
	})

	mt.Run("GetByID returns the post", func(mt *mtest.T) {
		id := domain.NewID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "title", Value: "Lisbon"}},
		))

		post, err := NewPostStore(mt.Coll, 0, nil).GetByID(context.Background(), id)
		require.NoError(mt, err)
		assert.Equal(mt, "Lisbon", post["title"])
	})

	mt.Run("GetByID reports missing post", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch))

		_, err := NewPostStore(mt.Coll, 0, nil).GetByID(context.Background(), domain.NewID())
		assert.ErrorIs(mt, err, store.ErrPostNotFound)
		assert.ErrorIs(mt, err, store.ErrNotFound)
	})

	mt.Run("Create generates an identifier", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		res, err := NewPostStore(mt.Coll, 0, nil).Create(context.Background(), domain.Document{
			"_id":   "client-chosen",
			"title": "Kyoto",
		})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.False(mt, res.InsertedID.IsZero())
	})

	mt.Run("Upsert of a new document reports the upserted id", func(mt *mtest.T) {
		id := domain.NewID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 0},
			bson.E{Key: "upserted", Value: bson.A{
				bson.D{{Key: "index", Value: 0}, {Key: "_id", Value: id}},
			}},
		))

		res, err := NewPostStore(mt.Coll, 0, nil).Upsert(context.Background(), id, domain.Document{"title": "Oslo"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.MatchedCount)
		assert.Equal(mt, int64(1), res.UpsertedCount)
		require.NotNil(mt, res.UpsertedID)
		assert.Equal(mt, id, *res.UpsertedID)
	})

	mt.Run("Upsert of an existing document", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := NewPostStore(mt.Coll, 0, nil).Upsert(context.Background(), domain.NewID(), domain.Document{"title": "Oslo"})
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
		assert.Nil(mt, res.UpsertedID)
	})
}

func TestWishlistStore(t *testing.T) {
	mt := newMockT(t)

	mt.Run("ListByEmail returns owner items", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: domain.NewID()}, {Key: "email", Value: "a@example.com"}},
		))

		items, err := NewWishlistStore(mt.Coll, 0, nil).ListByEmail(context.Background(), "a@example.com")
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, "a@example.com", items[0]["email"])
	})

	mt.Run("Delete reports the deleted count", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		res, err := NewWishlistStore(mt.Coll, 0, nil).Delete(context.Background(), domain.NewID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.DeletedCount)
	})

	mt.Run("Delete of a missing item is not an error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		res, err := NewWishlistStore(mt.Coll, 0, nil).Delete(context.Background(), domain.NewID())
		require.NoError(mt, err)
		assert.Equal(mt, int64(0), res.DeletedCount)
	})
}

func TestCommentStore(t *testing.T) {
	mt := newMockT(t)

	mt.Run("ListByBlogID filters on text blog_id", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, testNamespace, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: domain.NewID()}, {Key: "blog_id", Value: "abc"}},
		))

		comments, err := NewCommentStore(mt.Coll, 0, nil).ListByBlogID(context.Background(), "abc")
		require.NoError(mt, err)
		require.Len(mt, comments, 1)
		assert.Equal(mt, "abc", comments[0]["blog_id"])
	})

	mt.Run("Create rejects invalid documents", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    121,
			Message: "Document failed validation",
		}))

		_, err := NewCommentStore(mt.Coll, 0, nil).Create(context.Background(), domain.Document{"text": "hi"})
		assert.ErrorIs(mt, err, store.ErrInvalidDocument)
	})
}
