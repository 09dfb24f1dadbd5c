package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/travel-blog-api/internal/api"
	apiMiddleware "github.com/phrazzld/travel-blog-api/internal/api/middleware"
	"github.com/phrazzld/travel-blog-api/internal/api/shared"
)

const rootMessage = "Travel blog server!"

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(apiMiddleware.RequestLogger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(apiMiddleware.RateLimit(app.config.Server.RateLimitRPS, app.config.Server.RateLimitBurst))

	authHandler := api.NewAuthHandler(app.jwtService, api.CookieOptions{
		Production: app.config.Server.IsProduction(),
	})
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	postHandler := api.NewPostHandler(app.postService)
	wishlistHandler := api.NewWishlistHandler(app.wishlistService)
	commentHandler := api.NewCommentHandler(app.commentService)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		shared.RespondWithText(w, http.StatusOK, rootMessage)
	})
	r.Get("/health", app.healthCheck)

	// Session
	r.Post("/jwt", authHandler.IssueToken)
	r.Post("/signOut", authHandler.SignOut)

	// Posts
	r.Get("/blogs", postHandler.ListPosts)
	r.Get("/feature", postHandler.FeaturedPosts)
	r.Get("/unique-blog/{id}", postHandler.GetPost)
	r.Get("/blog-details/{id}", postHandler.GetPost)

	// Wishlist
	r.Get("/wishlist", wishlistHandler.ListWishlist)
	r.Post("/add-wishlist", wishlistHandler.AddWishlistItem)
	r.Delete("/delete/{id}", wishlistHandler.DeleteWishlistItem)

	// Comments
	r.Get("/comment", commentHandler.ListComments)
	r.Get("/comments/{id}", commentHandler.ListPostComments)
	r.Post("/add-comment", commentHandler.AddComment)

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/add-blogs", postHandler.CreatePost)
		r.Put("/unique-blog/{id}", postHandler.UpsertPost)
		r.Put("/update-blog/{id}", postHandler.UpsertPost)
		r.Get("/wishlist/{email}", wishlistHandler.ListOwnWishlist)
	})

	return r
}

// healthCheck reports whether the document store answers a ping.
func (app *application) healthCheck(w http.ResponseWriter, r *http.Request) {
	if err := app.backend.pinger.Ping(r.Context()); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable, "Service temporarily unavailable", err)
		return
	}
	shared.RespondWithText(w, http.StatusOK, "OK")
}
