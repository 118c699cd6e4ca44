package controllers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"blognest/app/auth"
	"blognest/app/policy"
	"blognest/app/repositories/mock"
	"blognest/app/services"

	"github.com/stretchr/testify/assert"
)

func setupTokenTest(t *testing.T) (*TokenController, *auth.TokenService) {
	t.Helper()
	userService := services.NewUserService(mock.NewUserRepository(), policy.New(true))
	_, err := userService.Register("alice", "password123")
	assert.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	return NewTokenController(userService, tokens), tokens
}

func postForm(controller *TokenController, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/o/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	controller.Create(w, req)
	return w
}

func TestTokenControllerPasswordGrant(t *testing.T) {
	controller, tokens := setupTokenTest(t)

	t.Run("issues a verifiable token", func(t *testing.T) {
		w := postForm(controller, url.Values{
			"grant_type": {"password"},
			"username":   {"alice"},
			"password":   {"password123"},
		})
		assert.Equal(t, http.StatusOK, w.Code)

		var resp tokenResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, 3600, resp.ExpiresIn)

		claims, err := tokens.Verify(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, "alice", claims.Username)
	})

	t.Run("wrong password is invalid_grant", func(t *testing.T) {
		w := postForm(controller, url.Values{
			"grant_type": {"password"},
			"username":   {"alice"},
			"password":   {"wrong"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_grant")
	})

	t.Run("unsupported grant type", func(t *testing.T) {
		w := postForm(controller, url.Values{
			"grant_type": {"client_credentials"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "unsupported_grant_type")
	})

	t.Run("missing credentials", func(t *testing.T) {
		w := postForm(controller, url.Values{
			"grant_type": {"password"},
			"username":   {"alice"},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid_request")
	})
}
