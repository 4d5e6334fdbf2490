package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpgquote/pkg/utils"
)

func testCredentials(t *testing.T) AdminCredentials {
	t.Helper()
	hash, err := utils.HashPassword("correct horse battery staple")
	require.NoError(t, err)
	return AdminCredentials{Email: "admin@vpg.be", PasswordHash: hash}
}

func TestLogin_Success(t *testing.T) {
	svc := NewAuthService(testCredentials(t))

	token, err := svc.Login("admin@vpg.be", "correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@vpg.be", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestLogin_EmailIsCaseInsensitive(t *testing.T) {
	svc := NewAuthService(testCredentials(t))

	_, err := svc.Login("Admin@VPG.be", "correct horse battery staple")
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := NewAuthService(testCredentials(t))

	_, err := svc.Login("admin@vpg.be", "wrong")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := NewAuthService(testCredentials(t))

	_, err := svc.Login("someone@else.be", "correct horse battery staple")
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}
