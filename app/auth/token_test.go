package auth

import (
	"testing"
	"time"

	"blognest/app/models"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	user := &models.User{ID: "u-alice", Username: "alice"}

	token, err := tokens.Issue(user)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := tokens.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "u-alice", claims.Subject)
	assert.Equal(t, "alice", claims.Username)
}

func TestTokenVerifyFailures(t *testing.T) {
	tokens := NewTokenService("test-secret", time.Hour)
	user := &models.User{ID: "u-alice", Username: "alice"}

	t.Run("garbage token", func(t *testing.T) {
		_, err := tokens.Verify("not.a.token")
		assert.Error(t, err)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.Issue(user)
		assert.NoError(t, err)

		_, err = tokens.Verify(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		shortLived := NewTokenService("test-secret", -time.Minute)
		token, err := shortLived.Issue(user)
		assert.NoError(t, err)

		_, err = tokens.Verify(token)
		assert.Error(t, err)
	})
}
