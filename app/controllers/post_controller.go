package controllers

import (
	"encoding/json"
	"net/http"

	"blognest/app/auth"
	"blognest/app/models"
	"blognest/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// postRequest is the explicit request schema for creating or fully
// replacing a post. The author is never part of it.
type postRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Content       string `json:"content"`
	AllowComments *bool  `json:"allow_comments"`
}

// postPatchRequest is the partial-update schema; absent fields keep their
// current values.
type postPatchRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	Content       *string `json:"content"`
	AllowComments *bool   `json:"allow_comments"`
}

// Index handles listing all posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	posts, err := pc.postService.ListPosts(auth.Principal(r), page, perPage)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": newPostResponses(posts),
		"page":  page,
	})
}

// Show handles retrieving a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	post, err := pc.postService.GetPost(auth.Principal(r), id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newPostResponse(post))
}

// Create handles creating a new post. The requester becomes the author.
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	post := &models.Post{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		AllowComments: true,
	}
	if req.AllowComments != nil {
		post.AllowComments = *req.AllowComments
	}

	if err := pc.postService.CreatePost(auth.Principal(r), post); err != nil {
		sendError(w, err)
		return
	}

	w.Header().Set("Location", postURL(post.ID))
	sendJSON(w, http.StatusCreated, newPostResponse(post))
}

// Update handles a full update of an existing post
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req postRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	allowComments := true
	if req.AllowComments != nil {
		allowComments = *req.AllowComments
	}

	post, err := pc.postService.UpdatePost(auth.Principal(r), id, services.PostUpdate{
		Title:         &req.Title,
		Description:   &req.Description,
		Content:       &req.Content,
		AllowComments: &allowComments,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newPostResponse(post))
}

// Patch handles a partial update of an existing post
func (pc *PostController) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req postPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	post, err := pc.postService.UpdatePost(auth.Principal(r), id, services.PostUpdate{
		Title:         req.Title,
		Description:   req.Description,
		Content:       req.Content,
		AllowComments: req.AllowComments,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newPostResponse(post))
}

// Delete handles deleting a post and its comments
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := pc.postService.DeletePost(auth.Principal(r), id); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
