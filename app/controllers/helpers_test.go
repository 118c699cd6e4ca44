package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"blognest/app/auth"
	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories/mock"
	"blognest/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
)

// testEnv wires mock-backed services and controllers onto a router that
// mirrors the production route table.
type testEnv struct {
	router         *mux.Router
	postService    *services.PostService
	commentService *services.CommentService
	userService    *services.UserService
}

func newTestEnv() *testEnv {
	postRepo := mock.NewPostRepository()
	commentRepo := mock.NewCommentRepository()
	userRepo := mock.NewUserRepository()
	pol := policy.New(true)

	postService := services.NewPostService(postRepo, commentRepo, pol)
	commentService := services.NewCommentService(commentRepo, postRepo, pol)
	userService := services.NewUserService(userRepo, pol)

	postController := NewPostController(postService)
	commentController := NewCommentController(commentService)
	userController := NewUserController(userService)

	router := mux.NewRouter()
	router.HandleFunc("/api/users", userController.Index).Methods("GET")
	router.HandleFunc("/api/users", userController.Create).Methods("POST")
	router.HandleFunc("/api/users/{id}", userController.Show).Methods("GET")
	router.HandleFunc("/api/posts", postController.Index).Methods("GET")
	router.HandleFunc("/api/posts", postController.Create).Methods("POST")
	router.HandleFunc("/api/posts/{id}", postController.Show).Methods("GET")
	router.HandleFunc("/api/posts/{id}", postController.Update).Methods("PUT")
	router.HandleFunc("/api/posts/{id}", postController.Patch).Methods("PATCH")
	router.HandleFunc("/api/posts/{id}", postController.Delete).Methods("DELETE")
	router.HandleFunc("/api/posts/{postId}/comments", commentController.Index).Methods("GET")
	router.HandleFunc("/api/posts/{postId}/comments", commentController.Create).Methods("POST")
	router.HandleFunc("/api/comments", commentController.List).Methods("GET")
	router.HandleFunc("/api/comments/{id}", commentController.Show).Methods("GET")
	router.HandleFunc("/api/comments/{id}", commentController.Update).Methods("PUT")
	router.HandleFunc("/api/comments/{id}", commentController.Patch).Methods("PATCH")
	router.HandleFunc("/api/comments/{id}", commentController.Delete).Methods("DELETE")

	return &testEnv{
		router:         router,
		postService:    postService,
		commentService: commentService,
		userService:    userService,
	}
}

// do performs a request as the given principal (nil for anonymous)
func (e *testEnv) do(method, path string, principal *models.User, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if principal != nil {
		req = auth.WithPrincipal(req, principal)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestSendErrorMapping(t *testing.T) {
	env := newTestEnv()
	alice := &models.User{ID: "u-alice", Username: "alice"}

	t.Run("not found", func(t *testing.T) {
		w := env.do(http.MethodGet, "/api/posts/missing", nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)

		var body map[string]string
		decodeJSON(t, w, &body)
		assert.Equal(t, "not found", body["error"])
	})

	t.Run("unauthorized carries a challenge header", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/posts", nil, `{"title":"Hi there","content":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Bearer", w.Header().Get("WWW-Authenticate"))
	})

	t.Run("validation detail", func(t *testing.T) {
		w := env.do(http.MethodPost, "/api/posts", alice, `{"title":"","content":""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		decodeJSON(t, w, &body)
		assert.Equal(t, "validation failed", body.Error)
		assert.Contains(t, body.Fields, "title")
		assert.Contains(t, body.Fields, "content")
	})
}
