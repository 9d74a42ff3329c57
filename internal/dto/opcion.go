// internal/dto/opcion.go
package dto

import (
	"github.com/shopspring/decimal"
)

type OpcionDTO struct {
	ID              *int64              `json:"id,omitempty"`
	Codigo          *string             `json:"codigo" validate:"required"`
	Nombre          *string             `json:"nombre" validate:"required"`
	Descripcion     *string             `json:"descripcion,omitempty"`
	PrecioAdicional *decimal.Decimal    `json:"precioAdicional" validate:"required"`
	Personalizacion *PersonalizacionDTO `json:"personalizacion,omitempty"`
}

func (d *OpcionDTO) GetID() *int64 { return d.ID }
