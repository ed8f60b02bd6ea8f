package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", 24)

	tokenString, err := m.Generate("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := m.Validate(tokenString)
	require.NoError(t, err)
	require.Equal(t, "user-123", claims.UserID)
	require.Equal(t, "user-123", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := NewManager("secret-a", 24)
	verifier := NewManager("secret-b", 24)

	tokenString, err := issuer.Generate("user-123")
	require.NoError(t, err)

	_, err = verifier.Validate(tokenString)
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("test-secret", 0)
	m.expiry = -time.Hour

	tokenString, err := m.Generate("user-123")
	require.NoError(t, err)

	_, err = m.Validate(tokenString)
	require.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	m := NewManager("test-secret", 24)

	_, err := m.Validate("not-a-token")
	require.Error(t, err)
}
