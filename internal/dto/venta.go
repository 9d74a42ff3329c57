// internal/dto/venta.go
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type VentaDTO struct {
	ID         *int64           `json:"id,omitempty"`
	FechaVenta *time.Time       `json:"fechaVenta" validate:"required"`
	Ganancia   *decimal.Decimal `json:"ganancia,omitempty"`
	User       *UserDTO         `json:"user,omitempty"`
}

func (d *VentaDTO) GetID() *int64 { return d.ID }
