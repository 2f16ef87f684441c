package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Parallel()

	h1, err := HashPassword("s3cret")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret")
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", h1)
	assert.NotEqual(t, h1, h2, "each hash gets its own salt")
	assert.NoError(t, VerifyPassword("s3cret", h1))
	assert.NoError(t, VerifyPassword("s3cret", h2))
	assert.Error(t, VerifyPassword("wrong", h1))
}
