// internal/models/dispositivo.go
package models

import (
	"github.com/shopspring/decimal"
)

type Dispositivo struct {
	BaseModel
	Codigo      string          `json:"codigo" gorm:"size:50;not null;index"`
	Nombre      string          `json:"nombre" gorm:"size:255;not null"`
	Descripcion string          `json:"descripcion" gorm:"type:text;not null"`
	PrecioBase  decimal.Decimal `json:"precio_base" gorm:"type:decimal(21,2);not null"`
	Moneda      string          `json:"moneda" gorm:"size:10;not null"`

	// Relationships
	Caracteristicas    []Caracteristica  `json:"caracteristicas,omitempty" gorm:"foreignKey:DispositivoID;constraint:OnDelete:CASCADE"`
	Personalizaciones  []Personalizacion `json:"personalizaciones,omitempty" gorm:"foreignKey:DispositivoID;constraint:OnDelete:CASCADE"`
	Adicionales        []Adicional       `json:"adicionales,omitempty" gorm:"many2many:rel_dispositivo__adicionales"`
}
