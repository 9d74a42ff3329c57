// internal/models/opcion.go
package models

import (
	"github.com/shopspring/decimal"
)

type Opcion struct {
	BaseModel
	Codigo            string          `json:"codigo" gorm:"size:50;not null"`
	Nombre            string          `json:"nombre" gorm:"size:255;not null"`
	Descripcion       string          `json:"descripcion" gorm:"type:text"`
	PrecioAdicional   decimal.Decimal `json:"precio_adicional" gorm:"type:decimal(21,2);not null"`
	PersonalizacionID *int64          `json:"personalizacion_id" gorm:"index"`

	// Relationships
	Personalizacion *Personalizacion `json:"personalizacion,omitempty" gorm:"foreignKey:PersonalizacionID"`
}
