// internal/services/auth_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/config"
	"github.com/tienda/dispositivos-backend/internal/repository"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid login or password")

type AuthService struct {
	users *repository.UserRepository
	cfg   *config.Config
	log   *logrus.Entry
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{
		users: repository.NewUserRepository(db),
		cfg:   cfg,
		log:   logrus.WithField("service", "auth"),
	}
}

// Authenticate checks the credentials and mints a signed bearer token.
func (s *AuthService) Authenticate(login, password string) (string, error) {
	user, err := s.users.FindByLogin(login)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil || !user.Activated {
		return "", ErrInvalidCredentials
	}

	if err := user.CheckPassword(password); err != nil {
		s.log.WithField("login", login).Warn("Failed authentication attempt")
		return "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Login, user.Authorities, s.cfg.JWT.TokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}
