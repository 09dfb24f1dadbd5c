package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// Post queries. The title match uses a case-insensitive POSIX regex over
// the escaped search text; an empty parameter disables its condition.
// Category must be a JSON string equal to the parameter.
const (
	postListWhere = `($1 = '' OR doc->>'title' ~* $1) AND ($2 = '' OR doc->'category' = to_jsonb($2::text))`

	postLockQuery = `SELECT 1 FROM posts WHERE id = $1 FOR UPDATE`

	postMergeQuery = `
		UPDATE posts
		SET doc = doc || $2::jsonb, updated_at = NOW()
		WHERE id = $1 AND doc IS DISTINCT FROM doc || $2::jsonb
	`

	postInsertOrMergeQuery = `
		INSERT INTO posts (id, doc)
		VALUES ($1, $2::jsonb)
		ON CONFLICT (id) DO UPDATE
		SET doc = posts.doc || EXCLUDED.doc, updated_at = NOW()
		RETURNING (xmax = 0) AS inserted
	`
)

// PostStore implements store.PostStore on the posts table.
type PostStore struct {
	table docTable
	db    *sql.DB
}

// Ensure PostStore implements store.PostStore interface
var _ store.PostStore = (*PostStore)(nil)

// NewPostStore creates a PostStore. Upserts need their own transaction,
// so it takes the pool rather than a DBTX.
func NewPostStore(db *sql.DB, timeout time.Duration, logger *slog.Logger) *PostStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PostStore{
		table: docTable{
			name:    PostsTable,
			db:      db,
			timeout: timeout,
			logger:  logger.With(slog.String("component", "post_store")),
		},
		db: db,
	}
}

// List implements store.PostStore.List.
func (s *PostStore) List(ctx context.Context, filter store.PostFilter) ([]domain.Document, error) {
	search := ""
	if filter.Search != "" {
		search = filter.SearchPattern()
	}
	return s.table.list(ctx, postListWhere, search, filter.Category)
}

// GetByID implements store.PostStore.GetByID.
func (s *PostStore) GetByID(ctx context.Context, id domain.ID) (domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, s.table.logger)

	post, err := s.table.get(ctx, id)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("post not found", slog.String("post_id", id.Hex()))
			return nil, store.ErrPostNotFound
		}
		log.Error("failed to get post",
			slog.String("error", redact.Error(err)),
			slog.String("post_id", id.Hex()))
		return nil, store.NewStoreError(PostsTable, "select", "failed to get post", err)
	}
	return post, nil
}

// Create implements store.PostStore.Create.
func (s *PostStore) Create(ctx context.Context, post domain.Document) (*store.InsertResult, error) {
	return s.table.insert(ctx, post)
}

// Upsert implements store.PostStore.Upsert.
// The row is locked first so the reported counts reflect what happened:
// a new row is upserted, an existing row is matched and only counted as
// modified when the merge changes it.
func (s *PostStore) Upsert(
	ctx context.Context,
	id domain.ID,
	fields domain.Document,
) (*store.UpdateResult, error) {
	log := logger.FromContextOrDefault(ctx, s.table.logger)
	ctx, cancel := withTimeout(ctx, s.table.timeout)
	defer cancel()

	raw, err := encodeDoc(fields)
	if err != nil {
		return nil, store.NewStoreError(PostsTable, "upsert", "failed to encode document", err)
	}

	result := &store.UpdateResult{Acknowledged: true}
	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		var one int
		lockErr := tx.QueryRowContext(ctx, postLockQuery, id.Hex()).Scan(&one)
		switch {
		case lockErr == nil:
			res, err := tx.ExecContext(ctx, postMergeQuery, id.Hex(), raw)
			if err != nil {
				return err
			}
			modified, err := res.RowsAffected()
			if err != nil {
				return err
			}
			result.MatchedCount = 1
			result.ModifiedCount = modified
			return nil

		case errors.Is(lockErr, sql.ErrNoRows):
			// A concurrent insert can win the race; the conflict clause
			// then merges into its row.
			var inserted bool
			if err := tx.QueryRowContext(ctx, postInsertOrMergeQuery, id.Hex(), raw).Scan(&inserted); err != nil {
				return err
			}
			if inserted {
				upserted := id
				result.UpsertedCount = 1
				result.UpsertedID = &upserted
			} else {
				result.MatchedCount = 1
				result.ModifiedCount = 1
			}
			return nil

		default:
			return lockErr
		}
	})
	if err != nil {
		log.Error("failed to upsert post",
			slog.String("error", redact.Error(err)),
			slog.String("post_id", id.Hex()))
		return nil, store.NewStoreError(PostsTable, "upsert", "failed to upsert post", MapError(err))
	}

	log.Info("post upserted",
		slog.String("post_id", id.Hex()),
		slog.Int64("matched", result.MatchedCount),
		slog.Int64("upserted", result.UpsertedCount))
	return result, nil
}
