package controllers

import (
	"encoding/json"
	"net/http"

	"blognest/app/auth"
	"blognest/app/services"

	"github.com/gorilla/mux"
)

// CommentController handles HTTP requests for comments, both nested under a
// post and addressed directly by ID.
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// commentRequest is the explicit request schema for comments. Parent and
// author are server-assigned and have no place here.
type commentRequest struct {
	Content string `json:"content"`
}

// commentPatchRequest is the partial-update schema
type commentPatchRequest struct {
	Content *string `json:"content"`
}

// Index handles listing all comments of a post, in creation order
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	comments, err := cc.commentService.ListPostComments(auth.Principal(r), postID)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newCommentResponses(comments))
}

// Create handles creating a new comment under a post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["postId"]

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.CreateComment(auth.Principal(r), postID, req.Content)
	if err != nil {
		sendError(w, err)
		return
	}

	w.Header().Set("Location", commentURL(comment.ID))
	sendJSON(w, http.StatusCreated, newCommentResponse(comment))
}

// List handles the flat, unscoped comment listing
func (cc *CommentController) List(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	comments, err := cc.commentService.ListComments(auth.Principal(r), page, perPage)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"comments": newCommentResponses(comments),
		"page":     page,
	})
}

// Show handles retrieving a single comment by ID
func (cc *CommentController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	comment, err := cc.commentService.GetComment(auth.Principal(r), id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newCommentResponse(comment))
}

// Update handles a full update of an existing comment
func (cc *CommentController) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.UpdateComment(auth.Principal(r), id, services.CommentUpdate{
		Content: &req.Content,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newCommentResponse(comment))
}

// Patch handles a partial update of an existing comment
func (cc *CommentController) Patch(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req commentPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	comment, err := cc.commentService.UpdateComment(auth.Principal(r), id, services.CommentUpdate{
		Content: req.Content,
	})
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newCommentResponse(comment))
}

// Delete handles deleting a comment
func (cc *CommentController) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := cc.commentService.DeleteComment(auth.Principal(r), id); err != nil {
		sendError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
