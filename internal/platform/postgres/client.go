package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver
	"github.com/phrazzld/travel-blog-api/internal/config"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"github.com/pressly/goose/v3"
)

// Table names.
const (
	PostsTable    = "posts"
	WishlistTable = "wishlist"
	CommentsTable = "comments"
)

const pingTimeout = 5 * time.Second

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Client owns the connection pool and hands out the three table-backed
// stores.
type Client struct {
	db      *sql.DB
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure Client implements store.Pinger
var _ store.Pinger = (*Client)(nil)

// Open opens a pgx connection pool and verifies it with a ping.
func Open(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "postgres"))

	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", MapError(err))
	}

	logger.Info("database connection established")
	return NewClient(db, cfg.OperationTimeout(), logger), nil
}

// NewClient wraps an existing pool. Tests pass a sqlmock connection.
func NewClient(db *sql.DB, timeout time.Duration, logger *slog.Logger) *Client {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{db: db, timeout: timeout, logger: logger}
}

// Migrate applies every embedded migration that has not run yet.
func (c *Client) Migrate(ctx context.Context) error {
	log := c.logger.With(
		slog.String("correlation_id", uuid.New().String()),
		slog.String("component", "migrations"),
	)
	start := time.Now()

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(&slogGooseLogger{logger: log})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, c.db, "migrations"); err != nil {
		log.Error("migrations failed", slog.String("error", redact.Error(err)))
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersionContext(ctx, c.db)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	log.Info("migrations applied",
		slog.Int64("version", version),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return nil
}

// Posts returns the post store.
func (c *Client) Posts() *PostStore {
	return NewPostStore(c.db, c.timeout, c.logger)
}

// Wishlist returns the wishlist store.
func (c *Client) Wishlist() *WishlistStore {
	return NewWishlistStore(c.db, c.timeout, c.logger)
}

// Comments returns the comment store.
func (c *Client) Comments() *CommentStore {
	return NewCommentStore(c.db, c.timeout, c.logger)
}

// Ping implements store.Pinger.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.db.PingContext(ctx); err != nil {
		c.logger.Warn("database ping failed", slog.String("error", redact.Error(err)))
		return MapError(err)
	}
	return nil
}

// Close closes the pool.
func (c *Client) Close(context.Context) error {
	return c.db.Close()
}

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct {
	logger *slog.Logger
}

// Printf implements goose.Logger.
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(fmt.Sprintf(format, v...))
}

// Fatalf implements goose.Logger. It does not exit; the error is returned
// to the caller instead.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
