// internal/services/user_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/repository"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

var userSortFields = []string{"id", "login", "email"}

// UserService backs the administration surface. Accounts are seeded or
// provisioned out of band; this service only reads them.
type UserService struct {
	repo *repository.UserRepository
	log  *logrus.Entry
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{
		repo: repository.NewUserRepository(db),
		log:  logrus.WithField("service", "user"),
	}
}

func (s *UserService) FindAllPaginated(params utils.PaginationParams) ([]dto.AdminUserDTO, int64, error) {
	s.log.Debug("Request to get all Users")

	entities, total, err := s.repo.FindAllPaginated(params, userSortFields)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch users: %w", err)
	}

	dtos := make([]dto.AdminUserDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToAdminUserDTO(&entities[i]))
	}
	return dtos, total, nil
}

func (s *UserService) FindOneByLogin(login string) (*dto.AdminUserDTO, error) {
	s.log.WithField("login", login).Debug("Request to get User")

	entity, err := s.repo.FindByLogin(login)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return mapper.ToAdminUserDTO(entity), nil
}
