// internal/dto/dispositivo.go
package dto

import (
	"github.com/shopspring/decimal"
)

// DispositivoDTO is the transport shape of a Dispositivo. Fields are pointers
// so a merge-patch body can distinguish "absent" from a zero value.
type DispositivoDTO struct {
	ID          *int64           `json:"id,omitempty"`
	Codigo      *string          `json:"codigo" validate:"required"`
	Nombre      *string          `json:"nombre" validate:"required"`
	Descripcion *string          `json:"descripcion" validate:"required"`
	PrecioBase  *decimal.Decimal `json:"precioBase" validate:"required"`
	Moneda      *string          `json:"moneda" validate:"required"`
	Adicionales []AdicionalDTO   `json:"adicionales,omitempty"`
}

func (d *DispositivoDTO) GetID() *int64 { return d.ID }
