// internal/repository/user.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/models"
)

type UserRepository struct {
	*Repository[models.User]
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{Repository: New[models.User](db)}
}

func (r *UserRepository) FindByLogin(login string) (*models.User, error) {
	var user models.User
	if err := r.DB().Where("login = ?", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}
