// internal/mapper/personalizacion.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToPersonalizacionDTO(e *models.Personalizacion) *dto.PersonalizacionDTO {
	if e == nil {
		return nil
	}

	d := &dto.PersonalizacionDTO{
		ID:          int64Ptr(e.ID),
		Nombre:      strPtr(e.Nombre),
		Descripcion: strPtr(e.Descripcion),
	}
	if e.Dispositivo != nil {
		d.Dispositivo = ToDispositivoIDDTO(e.Dispositivo)
	} else if e.DispositivoID != nil {
		d.Dispositivo = &dto.DispositivoDTO{ID: int64Ptr(*e.DispositivoID)}
	}

	return d
}

func ToPersonalizacionEntity(d *dto.PersonalizacionDTO) *models.Personalizacion {
	if d == nil {
		return nil
	}

	e := &models.Personalizacion{
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

func ToPersonalizacionIDDTO(e *models.Personalizacion) *dto.PersonalizacionDTO {
	if e == nil {
		return nil
	}
	return &dto.PersonalizacionDTO{ID: int64Ptr(e.ID)}
}
