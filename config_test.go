package linkkeep_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkkeep/linkkeep"
)

func TestLoadConfig(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")

		cfg, err := linkkeep.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":3000", cfg.HTTPAddr)
		assert.Equal(t, "file:linkkeep.db", cfg.DatabaseDSN)
		assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
		assert.Equal(t, "linkkeep", cfg.TokenIssuer)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "test-secret")
		t.Setenv("HTTP_ADDR", ":8080")
		t.Setenv("TOKEN_TTL", "15m")

		cfg, err := linkkeep.LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.HTTPAddr)
		assert.Equal(t, 15*time.Minute, cfg.TokenTTL)
	})

	t.Run("requires the signing secret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := linkkeep.LoadConfig()
		assert.Error(t, err)
	})

	t.Run("redacts the secret for logging", func(t *testing.T) {
		cfg := linkkeep.Config{JWTSecret: "super-secret"}
		assert.Equal(t, "[redacted]", cfg.Redacted().JWTSecret)
	})
}
