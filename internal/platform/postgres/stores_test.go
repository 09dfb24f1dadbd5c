package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockClient(t *testing.T) (*Client, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewClient(db, 0, nil), mock
}

func docRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "doc"})
}

func TestPostStore_List(t *testing.T) {
	t.Run("passes escaped search and category", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()

		mock.ExpectQuery(`SELECT id, doc FROM posts WHERE .*doc->'category' = to_jsonb\(\$2::text\)`).
			WithArgs(`a\.b`, "Europe").
			WillReturnRows(docRows().AddRow(id.Hex(), []byte(`{"title":"a.b","category":"Europe"}`)))

		posts, err := client.Posts().List(context.Background(), store.PostFilter{Search: "a.b", Category: "Europe"})
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, id, posts[0]["_id"])
		assert.Equal(t, "a.b", posts[0]["title"])
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectQuery(`SELECT id, doc FROM posts WHERE`).
			WithArgs("", "").
			WillReturnRows(docRows())

		posts, err := client.Posts().List(context.Background(), store.PostFilter{})
		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("connection failure is unavailable", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectQuery(`SELECT id, doc FROM posts WHERE`).
			WillReturnError(&pgconn.PgError{Code: "08006", Message: "connection failure"})

		_, err := client.Posts().List(context.Background(), store.PostFilter{})
		assert.ErrorIs(t, err, store.ErrUnavailable)
	})
}

func TestPostStore_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()
		mock.ExpectQuery(`SELECT doc FROM posts WHERE id = \$1`).
			WithArgs(id.Hex()).
			WillReturnRows(sqlmock.NewRows([]string{"doc"}).AddRow([]byte(`{"title":"Lisbon"}`)))

		post, err := client.Posts().GetByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "Lisbon", post["title"])
		assert.Equal(t, id, post["_id"])
	})

	t.Run("missing", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectQuery(`SELECT doc FROM posts WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"doc"}))

		_, err := client.Posts().GetByID(context.Background(), domain.NewID())
		assert.ErrorIs(t, err, store.ErrPostNotFound)
	})
}

func TestPostStore_Create(t *testing.T) {
	client, mock := newMockClient(t)
	mock.ExpectExec(`INSERT INTO posts \(id, doc\) VALUES \(\$1, \$2\)`).
		WithArgs(sqlmock.AnyArg(), `{"title":"Kyoto"}`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	res, err := client.Posts().Create(context.Background(), domain.Document{"_id": "mine", "title": "Kyoto"})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.False(t, res.InsertedID.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostStore_Upsert(t *testing.T) {
	fields := domain.Document{"title": "Oslo"}
	const raw = `{"title":"Oslo"}`

	t.Run("existing post is merged", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM posts WHERE id = \$1 FOR UPDATE`).
			WithArgs(id.Hex()).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectExec(`(?s)UPDATE posts\s+SET doc = doc \|\| \$2::jsonb.*WHERE id = \$1 AND doc IS DISTINCT FROM doc \|\| \$2::jsonb`).
			WithArgs(id.Hex(), raw).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := client.Posts().Upsert(context.Background(), id, fields)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Equal(t, int64(1), res.ModifiedCount)
		assert.Zero(t, res.UpsertedCount)
		assert.Nil(t, res.UpsertedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unchanged post is matched but not modified", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM posts`).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
		mock.ExpectExec(`UPDATE posts`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		res, err := client.Posts().Upsert(context.Background(), id, fields)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
		assert.Zero(t, res.ModifiedCount)
	})

	t.Run("missing post is inserted", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM posts`).
			WithArgs(id.Hex()).
			WillReturnRows(sqlmock.NewRows([]string{"?column?"}))
		mock.ExpectQuery(`INSERT INTO posts`).
			WithArgs(id.Hex(), raw).
			WillReturnRows(sqlmock.NewRows([]string{"inserted"}).AddRow(true))
		mock.ExpectCommit()

		res, err := client.Posts().Upsert(context.Background(), id, fields)
		require.NoError(t, err)
		assert.Zero(t, res.MatchedCount)
		assert.Equal(t, int64(1), res.UpsertedCount)
		require.NotNil(t, res.UpsertedID)
		assert.Equal(t, id, *res.UpsertedID)
	})

	t.Run("failure rolls back", func(t *testing.T) {
		client, mock := newMockClient(t)

		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT 1 FROM posts`).
			WillReturnError(errors.New("connection reset by peer"))
		mock.ExpectRollback()

		_, err := client.Posts().Upsert(context.Background(), domain.NewID(), fields)
		assert.ErrorIs(t, err, store.ErrUnavailable)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestWishlistStore(t *testing.T) {
	t.Run("ListByEmail filters on owner", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectQuery(`SELECT id, doc FROM wishlist WHERE doc->'email' = to_jsonb\(\$1::text\)`).
			WithArgs("a@example.com").
			WillReturnRows(docRows().AddRow(domain.NewID().Hex(), []byte(`{"email":"a@example.com"}`)))

		items, err := client.Wishlist().ListByEmail(context.Background(), "a@example.com")
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "a@example.com", items[0]["email"])
	})

	t.Run("Delete reports count", func(t *testing.T) {
		client, mock := newMockClient(t)
		id := domain.NewID()
		mock.ExpectExec(`DELETE FROM wishlist WHERE id = \$1`).
			WithArgs(id.Hex()).
			WillReturnResult(sqlmock.NewResult(0, 1))

		res, err := client.Wishlist().Delete(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.DeletedCount)
	})

	t.Run("Delete of missing item reports zero", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectExec(`DELETE FROM wishlist`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		res, err := client.Wishlist().Delete(context.Background(), domain.NewID())
		require.NoError(t, err)
		assert.Zero(t, res.DeletedCount)
	})
}

func TestCommentStore(t *testing.T) {
	t.Run("ListByBlogID compares JSON strings", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectQuery(`SELECT id, doc FROM comments WHERE doc->'blog_id' = to_jsonb\(\$1::text\)`).
			WithArgs("not-an-object-id").
			WillReturnRows(docRows())

		comments, err := client.Comments().ListByBlogID(context.Background(), "not-an-object-id")
		require.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("Create maps constraint violation", func(t *testing.T) {
		client, mock := newMockClient(t)
		mock.ExpectExec(`INSERT INTO comments`).
			WillReturnError(&pgconn.PgError{Code: checkViolationCode})

		_, err := client.Comments().Create(context.Background(), domain.Document{"text": "hi"})
		assert.ErrorIs(t, err, store.ErrInvalidDocument)
	})
}

func TestDecodeDoc_RejectsCorruptRows(t *testing.T) {
	_, err := decodeDoc(domain.NewID().Hex(), []byte(`not json`))
	assert.Error(t, err)

	_, err = decodeDoc("short", []byte(`{}`))
	assert.Error(t, err)
}

func TestClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectPing().WillReturnError(sql.ErrConnDone)

	err = NewClient(db, 0, nil).Ping(context.Background())
	assert.ErrorIs(t, err, store.ErrUnavailable)
}
