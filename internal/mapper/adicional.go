// internal/mapper/adicional.go
package mapper

import (
	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/models"
)

func ToAdicionalDTO(e *models.Adicional) *dto.AdicionalDTO {
	if e == nil {
		return nil
	}

	d := &dto.AdicionalDTO{
		ID:           int64Ptr(e.ID),
		Nombre:       strPtr(e.Nombre),
		Descripcion:  strPtr(e.Descripcion),
		Precio:       decimalPtr(e.Precio),
		PrecioGratis: e.PrecioGratis,
	}

	for i := range e.Dispositivos {
		d.Dispositivos = append(d.Dispositivos, *ToDispositivoIDDTO(&e.Dispositivos[i]))
	}

	return d
}

func ToAdicionalEntity(d *dto.AdicionalDTO) *models.Adicional {
	if d == nil {
		return nil
	}

	e := &models.Adicional{
		Nombre:       derefStr(d.Nombre),
		Descripcion:  derefStr(d.Descripcion),
		Precio:       derefDecimal(d.Precio),
		PrecioGratis: d.PrecioGratis,
	}
	if d.ID != nil {
		e.ID = *d.ID
	}

	return e
}

// ToAdicionalIDDTO projects an add-on down to its identity for nesting
// inside a DispositivoDTO.
func ToAdicionalIDDTO(e *models.Adicional) *dto.AdicionalDTO {
	if e == nil {
		return nil
	}
	return &dto.AdicionalDTO{ID: int64Ptr(e.ID)}
}
