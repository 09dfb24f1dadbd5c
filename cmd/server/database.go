package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/config"
	"github.com/phrazzld/travel-blog-api/internal/platform/mongodb"
	"github.com/phrazzld/travel-blog-api/internal/platform/postgres"
	"github.com/phrazzld/travel-blog-api/internal/store"
)

// backend bundles the three document stores with the connection that
// serves them.
type backend struct {
	posts    store.PostStore
	wishlist store.WishlistStore
	comments store.CommentStore

	pinger store.Pinger
	close  func(context.Context) error
}

// openBackend connects to the configured document store. The PostgreSQL
// backend has its schema migrated before it is returned.
func openBackend(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		client, err := mongodb.Connect(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		return &backend{
			posts:    client.Posts(),
			wishlist: client.Wishlist(),
			comments: client.Comments(),
			pinger:   client,
			close:    client.Close,
		}, nil

	case config.DriverPostgres:
		client, err := postgres.Open(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := client.Migrate(ctx); err != nil {
			_ = client.Close(ctx)
			return nil, err
		}
		return &backend{
			posts:    client.Posts(),
			wishlist: client.Wishlist(),
			comments: client.Comments(),
			pinger:   client,
			close:    client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}
