package routes

import (
	"net/http"

	"blognest/app/auth"
	"blognest/app/config"
	"blognest/app/controllers"
	"blognest/app/middleware"
	"blognest/app/policy"
	"blognest/app/repositories"
	"blognest/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// SetupRoutes wires repositories, services and controllers onto a router,
// using the provided Badger DB.
func SetupRoutes(db *badger.DB, cfg *config.Config) *mux.Router {
	postRepo := repositories.NewBadgerPostRepository(db)
	commentRepo := repositories.NewBadgerCommentRepository(db)
	userRepo := repositories.NewBadgerUserRepository(db)

	pol := policy.New(cfg.ReadOpen)
	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	postService := services.NewPostService(postRepo, commentRepo, pol)
	commentService := services.NewCommentService(commentRepo, postRepo, pol)
	userService := services.NewUserService(userRepo, pol)

	return SetupRouter(
		controllers.NewPostController(postService),
		controllers.NewCommentController(commentService),
		controllers.NewUserController(userService),
		controllers.NewTokenController(userService, tokens),
		tokens,
		userRepo,
	)
}

// SetupRouter assembles the route table from already-built controllers.
// Split out so tests can inject mock-backed controllers.
func SetupRouter(
	postController *controllers.PostController,
	commentController *controllers.CommentController,
	userController *controllers.UserController,
	tokenController *controllers.TokenController,
	tokens *auth.TokenService,
	userRepo repositories.UserRepository,
) *mux.Router {
	router := mux.NewRouter()

	// Apply global middleware
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// Token endpoint, outside the API prefix like the upstream OAuth2 mount
	router.HandleFunc("/o/token", tokenController.Create).Methods("POST")

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.Use(middleware.ContentTypeJSON)
	api.Use(auth.Authenticate(tokens, userRepo))

	// Users endpoints
	users := api.PathPrefix("/users").Subrouter()
	users.HandleFunc("", userController.Index).Methods("GET")
	users.HandleFunc("", userController.Create).Methods("POST")
	users.HandleFunc("/{id}", userController.Show).Methods("GET")

	// Posts endpoints
	posts := api.PathPrefix("/posts").Subrouter()
	posts.HandleFunc("", postController.Index).Methods("GET")
	posts.HandleFunc("", postController.Create).Methods("POST")
	posts.HandleFunc("/{id}", postController.Show).Methods("GET")
	posts.HandleFunc("/{id}", postController.Update).Methods("PUT")
	posts.HandleFunc("/{id}", postController.Patch).Methods("PATCH")
	posts.HandleFunc("/{id}", postController.Delete).Methods("DELETE")

	// Comments nested under their post
	posts.HandleFunc("/{postId}/comments", commentController.Index).Methods("GET")
	posts.HandleFunc("/{postId}/comments", commentController.Create).Methods("POST")

	// Comments addressed directly
	api.HandleFunc("/comments", commentController.List).Methods("GET")
	api.HandleFunc("/comments/{id}", commentController.Show).Methods("GET")
	api.HandleFunc("/comments/{id}", commentController.Update).Methods("PUT")
	api.HandleFunc("/comments/{id}", commentController.Patch).Methods("PATCH")
	api.HandleFunc("/comments/{id}", commentController.Delete).Methods("DELETE")

	return router
}

// StartServer starts the HTTP server on the specified address with the given router.
func StartServer(addr string, router http.Handler) error {
	return http.ListenAndServe(addr, router)
}
