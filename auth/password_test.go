package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hashed, err := HashPassword("s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hashed)

	assert.True(t, CheckPassword(hashed, "s3cret"))
	assert.False(t, CheckPassword(hashed, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestHashPasswordSalts(t *testing.T) {
	a, err := HashPassword("s3cret")
	require.NoError(t, err)
	b, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
