package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func TestHashVerifyRoundTrip(t *testing.T) {
	cases := []string{
		"pw123",
		"correct horse battery staple",
		"pässwörd-ünïcode-日本語",
		strings.Repeat("x", 72), // bcrypt input ceiling
	}
	for _, password := range cases {
		hash, err := HashPassword(password)
		require.NoError(t, err, "password %q", password)
		assert.NotEqual(t, password, hash)
		assert.True(t, VerifyPassword(password, hash))
		assert.False(t, VerifyPassword(password+"x", hash))
		assert.False(t, VerifyPassword("", hash))
	}
}

func TestHashUsesExpectedCost(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestHashesAreSalted(t *testing.T) {
	a, err := HashPassword("pw123")
	require.NoError(t, err)
	b, err := HashPassword("pw123")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
