package linkkeep_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkkeep/linkkeep"
)

func TestHashPassword(t *testing.T) {
	t.Run("produces a self-contained argon2id hash", func(t *testing.T) {
		hash, err := linkkeep.HashPassword("s3cret-password")

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(hash, "$argon2id$"))
		assert.NotContains(t, hash, "s3cret-password")
	})

	t.Run("salts every hash", func(t *testing.T) {
		first, err := linkkeep.HashPassword("same-password")
		require.NoError(t, err)

		second, err := linkkeep.HashPassword("same-password")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("rejects empty passwords", func(t *testing.T) {
		_, err := linkkeep.HashPassword("")
		assert.Error(t, err)
	})
}

func TestComparePasswordAndHash(t *testing.T) {
	hash, err := linkkeep.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  bool
	}{
		{
			name:     "matching password verifies",
			password: "correct horse battery staple",
			hash:     hash,
			wantErr:  false,
		},
		{
			name:     "wrong password fails",
			password: "incorrect horse",
			hash:     hash,
			wantErr:  true,
		},
		{
			name:     "garbage hash fails",
			password: "correct horse battery staple",
			hash:     "not-a-hash",
			wantErr:  true,
		},
		{
			name:     "empty hash fails",
			password: "correct horse battery staple",
			hash:     "",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := linkkeep.ComparePasswordAndHash(tt.password, tt.hash)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
