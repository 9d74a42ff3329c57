// internal/dto/adicional.go
package dto

import (
	"github.com/shopspring/decimal"
)

type AdicionalDTO struct {
	ID           *int64           `json:"id,omitempty"`
	Nombre       *string          `json:"nombre" validate:"required"`
	Descripcion  *string          `json:"descripcion" validate:"required"`
	Precio       *decimal.Decimal `json:"precio" validate:"required"`
	PrecioGratis *decimal.Decimal `json:"precioGratis,omitempty"`
	Dispositivos []DispositivoDTO `json:"dispositivos,omitempty"`
}

func (d *AdicionalDTO) GetID() *int64 { return d.ID }
