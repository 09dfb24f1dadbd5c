package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/travel-blog-api/internal/config"
	"github.com/phrazzld/travel-blog-api/internal/redact"
	"github.com/phrazzld/travel-blog-api/internal/service"
	"github.com/phrazzld/travel-blog-api/internal/service/auth"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	backend *backend

	jwtService      auth.JWTService
	postService     service.PostService
	wishlistService service.WishlistService
	commentService  service.CommentService
}

// newApplication wires services on top of an opened backend. On error the
// returned application is still safe to clean up.
func newApplication(cfg *config.Config, logger *slog.Logger, b *backend) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		backend: b,
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return app, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))

	app.postService, err = service.NewPostService(b.posts, logger)
	if err != nil {
		return app, fmt.Errorf("failed to create post service: %w", err)
	}

	app.wishlistService, err = service.NewWishlistService(b.wishlist, logger)
	if err != nil {
		return app, fmt.Errorf("failed to create wishlist service: %w", err)
	}

	app.commentService, err = service.NewCommentService(b.comments, logger)
	if err != nil {
		return app, fmt.Errorf("failed to create comment service: %w", err)
	}

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is canceled, then shuts down and releases the
// backend.
func (app *application) Run(ctx context.Context) error {
	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup handles graceful shutdown of application resources.
func (app *application) cleanup() {
	if app == nil {
		return
	}
	if app.backend != nil && app.backend.close != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.backend.close(ctx); err != nil {
			app.logger.Error("Error closing database connection",
				slog.String("error", redact.Error(err)))
		}
	}

	app.logger.Info("Application shutdown completed")
}
