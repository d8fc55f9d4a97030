package linkkeep_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkkeep/linkkeep"
)

var testSigningKey = []byte("test-signing-key")

func newTestTokenService(ttl time.Duration) *linkkeep.TokenServiceImpl {
	return linkkeep.NewTokenService(testSigningKey, ttl, "linkkeep-test", nil)
}

func TestTokenServiceGenerate(t *testing.T) {
	ts := newTestTokenService(0)

	user := &linkkeep.User{
		ID:    42,
		Email: "vladimir@example.com",
	}

	t.Run("round trips identity claims", func(t *testing.T) {
		token, err := ts.Generate(user)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := ts.Validate(token)
		require.NoError(t, err)

		assert.Equal(t, "42", claims.Subject())
		assert.Equal(t, "vladimir@example.com", claims.UserEmail())

		id, err := claims.UserID()
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("applies the default expiry", func(t *testing.T) {
		token, err := ts.Generate(user)
		require.NoError(t, err)

		claims, err := ts.Validate(token)
		require.NoError(t, err)

		remaining := time.Until(claims.Expires())
		assert.Greater(t, remaining, 29*time.Minute)
		assert.LessOrEqual(t, remaining, linkkeep.DefaultTokenTTL)
	})

	t.Run("rejects nil users", func(t *testing.T) {
		_, err := ts.Generate(nil)
		assert.Error(t, err)
	})
}

func TestTokenServiceValidate(t *testing.T) {
	ts := newTestTokenService(0)
	user := &linkkeep.User{ID: 7, Email: "estragon@example.com"}

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := newTestTokenService(-time.Minute)

		token, err := expired.Generate(user)
		require.NoError(t, err)

		_, err = ts.Validate(token)
		require.Error(t, err)
		assert.True(t, linkkeep.IsTokenExpiredError(err))
		assert.False(t, linkkeep.IsMalformedError(err))
	})

	t.Run("rejects tokens signed with a different key", func(t *testing.T) {
		other := linkkeep.NewTokenService([]byte("some-other-key"), 0, "linkkeep-test", nil)

		token, err := other.Generate(user)
		require.NoError(t, err)

		_, err = ts.Validate(token)
		require.Error(t, err)
		assert.True(t, linkkeep.IsMalformedError(err))
	})

	t.Run("rejects tampered tokens", func(t *testing.T) {
		token, err := ts.Generate(user)
		require.NoError(t, err)

		_, err = ts.Validate(token + "x")
		require.Error(t, err)
		assert.True(t, linkkeep.IsMalformedError(err))
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := ts.Validate("not.a.token")
		require.Error(t, err)
		assert.True(t, linkkeep.IsMalformedError(err))
	})

	t.Run("rejects tokens from a different issuer", func(t *testing.T) {
		other := linkkeep.NewTokenService(testSigningKey, 0, "someone-else", nil)

		token, err := other.Generate(user)
		require.NoError(t, err)

		_, err = ts.Validate(token)
		assert.Error(t, err)
	})
}
