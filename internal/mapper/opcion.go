// internal/mapper/opcion.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToOpcionDTO(e *models.Opcion) *dto.OpcionDTO {
	if e == nil {
		return nil
	}

	d := &dto.OpcionDTO{
		ID:              int64Ptr(e.ID),
		Codigo:          strPtr(e.Codigo),
		Nombre:          strPtr(e.Nombre),
		PrecioAdicional: decimalPtr(e.PrecioAdicional),
	}
	if e.Descripcion != "" {
		d.Descripcion = strPtr(e.Descripcion)
	}
	if e.Personalizacion != nil {
		d.Personalizacion = ToPersonalizacionIDDTO(e.Personalizacion)
	} else if e.PersonalizacionID != nil {
		d.Personalizacion = &dto.PersonalizacionDTO{ID: int64Ptr(*e.PersonalizacionID)}
	}

	return d
}

func ToOpcionEntity(d *dto.OpcionDTO) *models.Opcion {
	if d == nil {
		return nil
	}

	e := &models.Opcion{
		Codigo:          derefStr(d.Codigo),
		Nombre:          derefStr(d.Nombre),
		Descripcion:     derefStr(d.Descripcion),
		PrecioAdicional: derefDecimal(d.PrecioAdicional),
	}
	if d.ID != nil {
		e.ID = *d.ID
	}
	if d.Personalizacion != nil && d.Personalizacion.ID != nil {
		id := *d.Personalizacion.ID
		e.PersonalizacionID = &id
	}

	return e
}
