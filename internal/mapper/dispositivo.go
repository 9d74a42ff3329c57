// internal/mapper/dispositivo.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

// ToDispositivoDTO maps an entity to its transport shape. Linked add-ons are
// reduced to identity projections.
func ToDispositivoDTO(e *models.Dispositivo) *dto.DispositivoDTO {
	if e == nil {
		return nil
	}

	d := &dto.DispositivoDTO{
		ID:          int64Ptr(e.ID),
		Codigo:      strPtr(e.Codigo),
		Nombre:      strPtr(e.Nombre),
		Descripcion: strPtr(e.Descripcion),
		PrecioBase:  decimalPtr(e.PrecioBase),
		Moneda:      strPtr(e.Moneda),
	}

	for i := range e.Adicionales {
		d.Adicionales = append(d.Adicionales, *ToAdicionalIDDTO(&e.Adicionales[i]))
	}

	return d
}

func ToDispositivoEntity(d *dto.DispositivoDTO) *models.Dispositivo {
	if d == nil {
		return nil
	}

	e := &models.Dispositivo{
		Codigo:      derefStr(d.Codigo),
		Nombre:      derefStr(d.Nombre),
		Descripcion: derefStr(d.Descripcion),
		PrecioBase:  derefDecimal(d.PrecioBase),
		Moneda:      derefStr(d.Moneda),
	}
	if d.ID != nil {
		e.ID = *d.ID
	}

	for _, a := range d.Adicionales {
		if a.ID == nil {
			continue
		}
		e.Adicionales = append(e.Adicionales, models.Adicional{
			BaseModel: models.BaseModel{ID: *a.ID},
		})
	}

	return e
}

// ToDispositivoIDDTO projects a device down to its identity for nesting
// inside another DTO.
func ToDispositivoIDDTO(e *models.Dispositivo) *dto.DispositivoDTO {
	if e == nil {
		return nil
	}
	return &dto.DispositivoDTO{ID: int64Ptr(e.ID)}
}
