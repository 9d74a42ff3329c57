// internal/mapper/user.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToAdminUserDTO(u *models.User) *dto.AdminUserDTO {
	if u == nil {
		return nil
	}

	d := &dto.AdminUserDTO{
		ID:          int64Ptr(u.ID),
		Login:       strPtr(u.Login),
		Email:       strPtr(u.Email),
		Activated:   u.Activated,
		Authorities: append([]string(nil), u.Authorities...),
	}
	if u.FirstName != "" {
		d.FirstName = strPtr(u.FirstName)
	}
	if u.LastName != "" {
		d.LastName = strPtr(u.LastName)
	}
	return d
}
