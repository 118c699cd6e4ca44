package controllers

import (
	"encoding/json"
	"net/http"

	"blognest/app/auth"
	"blognest/app/services"

	"github.com/gorilla/mux"
)

// UserController handles registration and user lookups
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Create handles user registration
func (uc *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}

	user, err := uc.userService.Register(req.Username, req.Password)
	if err != nil {
		sendError(w, err)
		return
	}

	w.Header().Set("Location", userURL(user.ID))
	sendJSON(w, http.StatusCreated, newUserResponse(user))
}

// Index handles listing users
func (uc *UserController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := pageParams(r)

	users, err := uc.userService.ListUsers(auth.Principal(r), page, perPage)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"users": newUserResponses(users),
		"page":  page,
	})
}

// Show handles retrieving a single user
func (uc *UserController) Show(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	user, err := uc.userService.GetUser(auth.Principal(r), id)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, newUserResponse(user))
}
