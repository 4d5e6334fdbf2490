package services

import (
	"strings"

	"vpgquote/pkg/utils"
)

// AdminCredentials is the single authoring account; the marketing sites
// have no end-user accounts, only the admin panel logs in.
type AdminCredentials struct {
	Email        string
	PasswordHash string // bcrypt
}

type AuthServiceInterface interface {
	Login(email string, password string) (string, error)
}

type AuthService struct {
	credentials AdminCredentials
}

func NewAuthService(credentials AdminCredentials) AuthServiceInterface {
	return &AuthService{credentials: credentials}
}

func (s *AuthService) Login(email string, password string) (string, error) {
	if !strings.EqualFold(email, s.credentials.Email) {
		return "", utils.ErrInvalidCredentials
	}
	if err := utils.ComparePasswords(s.credentials.PasswordHash, password); err != nil {
		return "", utils.ErrInvalidCredentials
	}
	return utils.CreateToken(s.credentials.Email, "admin")
}
