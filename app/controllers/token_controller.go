package controllers

import (
	"errors"
	"net/http"

	"blognest/app/auth"
	"blognest/app/services"
)

// TokenController implements the password-grant token endpoint. Request and
// error shapes follow RFC 6749: form-encoded body, snake_case error codes.
type TokenController struct {
	userService *services.UserService
	tokens      *auth.TokenService
}

// NewTokenController creates a new TokenController
func NewTokenController(userService *services.UserService, tokens *auth.TokenService) *TokenController {
	return &TokenController{userService: userService, tokens: tokens}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Create exchanges a username/password pair for an access token
func (tc *TokenController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	if r.PostFormValue("grant_type") != "password" {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_request"})
		return
	}

	user, err := tc.userService.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			sendJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid_grant"})
			return
		}
		sendError(w, err)
		return
	}

	token, err := tc.tokens.Issue(user)
	if err != nil {
		sendError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tc.tokens.TTL().Seconds()),
	})
}
