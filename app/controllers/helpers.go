package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"blognest/app/models"
	"blognest/app/policy"
	"blognest/app/repositories"
)

// sendJSON writes a JSON response with the given status
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sendError maps service errors onto the API's error taxonomy:
// not-found 404, unauthorized 401, forbidden 403, validation 400 with
// per-field detail. Anything else is a 500.
func sendError(w http.ResponseWriter, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		sendJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, policy.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		sendJSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
	case errors.Is(err, policy.ErrForbidden):
		sendJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
	case errors.As(err, &verr):
		sendJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":  "validation failed",
			"fields": verr.Fields,
		})
	default:
		sendJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

// badRequest reports a malformed request body or parameter
func badRequest(w http.ResponseWriter, message string) {
	sendJSON(w, http.StatusBadRequest, map[string]string{"error": message})
}

// pageParams parses ?page= and ?per_page= with the usual defaults
func pageParams(r *http.Request) (page, perPage int) {
	page = 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage = 10
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}
	return page, perPage
}
