package routes

import (
	"net/http"

	"blogcomments/app/controllers"
	"blogcomments/app/metrics"
	"blogcomments/app/middleware"
	"blogcomments/app/repositories"
	"blogcomments/app/response"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Dependencies are the long lived objects the routes are built from.
type Dependencies struct {
	Store   *repositories.Store
	Tokens  middleware.TokenValidator
	Logger  zerolog.Logger
	Metrics *metrics.HTTPMetrics
}

// SetupRoutes defines the application's routes and returns a router.
func SetupRoutes(deps Dependencies) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(deps.Logger))
	router.Use(middleware.Recoverer)
	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = response.Send(w, response.Options{Msg: "Not found", Status: http.StatusNotFound})
	})

	blogController := controllers.NewBlogControllerWithStore(deps.Store)
	commentController := controllers.NewCommentControllerWithStore(deps.Store)
	healthController := controllers.NewHealthController(deps.Store)

	requireAuth := middleware.Auth(deps.Tokens)
	protected := func(h http.HandlerFunc) http.Handler {
		return requireAuth(h)
	}

	router.HandleFunc("/healthz", healthController.Show).Methods("GET")
	if deps.Metrics != nil {
		router.Handle("/metrics", deps.Metrics.Handler()).Methods("GET")
	}

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)

	// Blogs API endpoints
	api.Handle("/blogs", protected(blogController.Create)).Methods("POST")
	api.HandleFunc("/blogs/{blogId}", blogController.Show).Methods("GET")
	api.HandleFunc("/blogs/{blogId}/comments", commentController.Index).Methods("GET")

	// Comments API endpoints
	api.Handle("/comments", protected(commentController.Create)).Methods("POST")
	api.Handle("/comments/{commentId}", protected(commentController.Update)).Methods("PATCH", "PUT")
	api.Handle("/comments/{commentId}", protected(commentController.Delete)).Methods("DELETE")

	return router
}
