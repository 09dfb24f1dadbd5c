package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/travel-blog-api/internal/config"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names.
const (
	PostsCollection    = "Blogs"
	WishlistCollection = "wishlist"
	CommentsCollection = "comments"
)

// connectTimeout bounds the initial connect and ping at startup.
const connectTimeout = 10 * time.Second

// Client owns the process-wide driver client and hands out the three
// collection-backed stores.
type Client struct {
	client  *mongo.Client
	db      *mongo.Database
	timeout time.Duration
	logger  *slog.Logger
}

// Ensure Client implements store.Pinger
var _ store.Pinger = (*Client)(nil)

// ClientOptions returns the driver options used for every connection:
// Stable API v1 (strict) and embedded documents decoded as maps so they
// serialise to JSON objects.
func ClientOptions(uri string) *options.ClientOptions {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	return options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(serverAPI).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
}

// Connect dials MongoDB and verifies the deployment with a ping.
func Connect(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(slog.String("component", "mongodb"))

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, ClientOptions(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", MapError(err))
	}

	if err := client.Database("admin").RunCommand(connectCtx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", MapError(err))
	}

	logger.Info("Pinged your deployment. Connected to MongoDB",
		slog.String("database", cfg.Name))

	return &Client{
		client:  client,
		db:      client.Database(cfg.Name),
		timeout: cfg.OperationTimeout(),
		logger:  logger,
	}, nil
}

// Posts returns the post store.
func (c *Client) Posts() *PostStore {
	return NewPostStore(c.db.Collection(PostsCollection), c.timeout, c.logger)
}

// Wishlist returns the wishlist store.
func (c *Client) Wishlist() *WishlistStore {
	return NewWishlistStore(c.db.Collection(WishlistCollection), c.timeout, c.logger)
}

// Comments returns the comment store.
func (c *Client) Comments() *CommentStore {
	return NewCommentStore(c.db.Collection(CommentsCollection), c.timeout, c.logger)
}

// Ping implements store.Pinger.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := withTimeout(ctx, c.timeout)
	defer cancel()
	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		c.logger.Warn("mongodb ping failed", slog.String("error", redact.Error(err)))
		return MapError(err)
	}
	return nil
}

// Close disconnects the driver client.
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

// withTimeout applies d to ctx unless d is zero.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
