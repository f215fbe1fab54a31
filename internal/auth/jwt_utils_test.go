package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "ADMIN")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	token, err := GenerateToken(7, "EMPLOYEE")
	require.NoError(t, err)

	// Flip a character in the signature
	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)

	_, err = ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestSetSecretInvalidatesOldTokens(t *testing.T) {
	original := jwtKey
	defer func() { jwtKey = original }()

	token, err := GenerateToken(1, "ADMIN")
	require.NoError(t, err)

	SetSecret("a-completely-different-secret")
	_, err = ValidateToken(token)
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "signature"), err.Error())

	// Empty string leaves the key alone
	SetSecret("")
	fresh, err := GenerateToken(1, "ADMIN")
	require.NoError(t, err)
	_, err = ValidateToken(fresh)
	assert.NoError(t, err)
}
