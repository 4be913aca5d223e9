package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotContains(t, h, "secret1")

	assert.True(t, CheckPassword(h, "secret1"))
	assert.False(t, CheckPassword(h, "secret2"))
	assert.False(t, CheckPassword(h, "Secret1"))
	assert.False(t, CheckPassword(h, ""))
}

func TestHashPassword_SaltedAndCost(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same-password")
	require.NoError(t, err)
	b, err := HashPassword("same-password")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	cost, err := bcrypt.Cost([]byte(a))
	require.NoError(t, err)
	assert.Equal(t, Cost, cost)
}

func TestCheckPassword_MalformedHash(t *testing.T) {
	t.Parallel()

	assert.False(t, CheckPassword("not-a-bcrypt-hash", "whatever"))
	assert.False(t, CheckPassword("", ""))
}

func TestHashPassword_TooLong(t *testing.T) {
	t.Parallel()

	_, err := HashPassword(strings.Repeat("x", 73))
	require.Error(t, err)
}
