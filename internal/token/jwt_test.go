package token

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	tokenString, err := manager.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.ParseToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_ParseToken_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("secret-a").GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("secret-b").ParseToken(tokenString)
	require.Error(t, err)
}

func TestJWT_ParseToken_Garbage(t *testing.T) {
	_, err := NewJWT("test-secret").ParseToken("not.a.token")
	require.Error(t, err)
}
