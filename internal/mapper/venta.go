// internal/mapper/venta.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToVentaDTO(e *models.Venta) *dto.VentaDTO {
	if e == nil {
		return nil
	}

	fecha := e.FechaVenta
	d := &dto.VentaDTO{
		ID:         int64Ptr(e.ID),
		FechaVenta: &fecha,
		Ganancia:   e.Ganancia,
	}
	if e.User != nil {
		d.User = ToUserIDDTO(e.User)
	} else if e.UserID != nil {
		d.User = &dto.UserDTO{ID: int64Ptr(*e.UserID)}
	}

	return d
}

func ToVentaEntity(d *dto.VentaDTO) *models.Venta {
	if d == nil {
		return nil
	}

	e := &models.Venta{
		Ganancia: d.Ganancia,
	}
	if d.ID != nil {
		e.ID = *d.ID
	}
	if d.FechaVenta != nil {
		e.FechaVenta = *d.FechaVenta
	}
	if d.User != nil && d.User.ID != nil {
		id := *d.User.ID
		e.UserID = &id
	}

	return e
}

// ToUserIDDTO keeps only the user's identity, avoiding over-fetching the
// account record when a Venta is serialized.
func ToUserIDDTO(u *models.User) *dto.UserDTO {
	if u == nil {
		return nil
	}
	d := &dto.UserDTO{ID: int64Ptr(u.ID)}
	if u.Login != "" {
		d.Login = strPtr(u.Login)
	}
	return d
}
