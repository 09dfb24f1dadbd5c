package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/domain"
	"github.com/phrazzld/travel-blog-api/internal/platform/logger"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// docTable is the shared access path for an (id, doc) table.
// The table name is a trusted constant and is interpolated into queries.
type docTable struct {
	name    string
	db      store.DBTX
	timeout time.Duration
	logger  *slog.Logger
}

// list scans the rows matching where (a SQL boolean expression over doc)
// in insertion order. The result is never nil.
func (t *docTable) list(ctx context.Context, where string, args ...any) ([]domain.Document, error) {
	log := logger.FromContextOrDefault(ctx, t.logger)
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	query := fmt.Sprintf(`SELECT id, doc FROM %s WHERE %s ORDER BY created_at, id`, t.name, where)
	rows, err := t.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query documents",
			slog.String("table", t.name),
			slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError(t.name, "select", "failed to query documents", MapError(err))
	}
	defer func() { _ = rows.Close() }()

	docs := make([]domain.Document, 0)
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, store.NewStoreError(t.name, "select", "failed to scan document", MapError(err))
		}
		doc, err := decodeDoc(id, raw)
		if err != nil {
			log.Error("stored document is corrupt",
				slog.String("table", t.name),
				slog.String("id", id),
				slog.String("error", err.Error()))
			return nil, store.NewStoreError(t.name, "select", "failed to decode document", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, store.NewStoreError(t.name, "select", "failed to iterate documents", MapError(err))
	}

	return docs, nil
}

// get returns the row with the given id, or an error wrapping
// store.ErrNotFound.
func (t *docTable) get(ctx context.Context, id domain.ID) (domain.Document, error) {
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	var raw []byte
	query := fmt.Sprintf(`SELECT doc FROM %s WHERE id = $1`, t.name)
	if err := t.db.QueryRowContext(ctx, query, id.Hex()).Scan(&raw); err != nil {
		return nil, MapError(err)
	}
	return decodeDoc(id.Hex(), raw)
}

// insert stores doc under a new identifier. Any _id in doc is discarded.
func (t *docTable) insert(ctx context.Context, doc domain.Document) (*store.InsertResult, error) {
	log := logger.FromContextOrDefault(ctx, t.logger)
	ctx, cancel := withTimeout(ctx, t.timeout)
	defer cancel()

	raw, err := encodeDoc(doc)
	if err != nil {
		return nil, store.NewStoreError(t.name, "insert", "failed to encode document", err)
	}

	id := domain.NewID()
	query := fmt.Sprintf(`INSERT INTO %s (id, doc) VALUES ($1, $2)`, t.name)
	if _, err := t.db.ExecContext(ctx, query, id.Hex(), raw); err != nil {
		if IsCheckConstraintViolation(err) {
			log.Warn("document rejected by table constraint",
				slog.String("table", t.name),
				slog.String("error", redact.Error(err)))
		} else {
			log.Error("failed to insert document",
				slog.String("table", t.name),
				slog.String("error", redact.Error(err)))
		}
		return nil, store.NewStoreError(t.name, "insert", "failed to insert document", MapError(err))
	}

	log.Info("document inserted",
		slog.String("table", t.name),
		slog.String("id", id.Hex()))
	return &store.InsertResult{Acknowledged: true, InsertedID: id}, nil
}

// encodeDoc serialises doc without its _id; the id lives in its own column.
func encodeDoc(doc domain.Document) (string, error) {
	b, err := json.Marshal(doc.WithoutID())
	if err != nil {
		return "", fmt.Errorf("%w: %v", store.ErrInvalidDocument, err)
	}
	return string(b), nil
}

// decodeDoc rebuilds a document from its row, restoring _id as an ObjectID.
func decodeDoc(id string, raw []byte) (domain.Document, error) {
	var doc domain.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid stored document: %w", err)
	}
	if doc == nil {
		doc = domain.Document{}
	}

	oid, err := domain.ParseID(id)
	if err != nil {
		return nil, fmt.Errorf("invalid stored id %q: %w", id, err)
	}
	doc[domain.FieldID] = oid
	return doc, nil
}

// withTimeout applies d to ctx unless d is zero.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
