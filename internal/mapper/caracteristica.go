// internal/mapper/caracteristica.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToCaracteristicaDTO(e *models.Caracteristica) *dto.CaracteristicaDTO {
	if e == nil {
		return nil
	}

	d := &dto.CaracteristicaDTO{
		ID:     int64Ptr(e.ID),
		Nombre: strPtr(e.Nombre),
	}
	if e.Descripcion != "" {
		d.Descripcion = strPtr(e.Descripcion)
	}
	if e.Dispositivo != nil {
		d.Dispositivo = ToDispositivoIDDTO(e.Dispositivo)
	} else if e.DispositivoID != nil {
		d.Dispositivo = &dto.DispositivoDTO{ID: int64Ptr(*e.DispositivoID)}
	}

	return d
}

func ToCaracteristicaEntity(d *dto.CaracteristicaDTO) *models.Caracteristica {
	if d == nil {
		return nil
	}

	e := &models.Caracteristica{
		Nombre:      derefStr(d.Nombre),
		Descripcion: derefStr(d.Descripcion),
	}
	if d.ID != nil {
		e.ID = *d.ID
	}
	if d.Dispositivo != nil && d.Dispositivo.ID != nil {
		id := *d.Dispositivo.ID
		e.DispositivoID = &id
	}

	return e
}
