// internal/models/adicional.go
package models

import (
	"github.com/shopspring/decimal"
)

type Adicional struct {
	BaseModel
	Nombre      string          `json:"nombre" gorm:"size:255;not null"`
	Descripcion string          `json:"descripcion" gorm:"type:text;not null"`
	Precio      decimal.Decimal `json:"precio" gorm:"type:decimal(21,2);not null"`
	// PrecioGratis is the order total above which the add-on is free; nil
	// when the add-on is never discounted.
	PrecioGratis *decimal.Decimal `json:"precio_gratis" gorm:"type:decimal(21,2)"`

	// Relationships
	Dispositivos []Dispositivo `json:"dispositivos,omitempty" gorm:"many2many:rel_dispositivo__adicionales"`
}
