// internal/models/venta.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Venta struct {
	BaseModel
	FechaVenta time.Time        `json:"fecha_venta" gorm:"not null;index"`
	Ganancia   *decimal.Decimal `json:"ganancia" gorm:"type:decimal(21,2)"`
	UserID     *int64           `json:"user_id" gorm:"index"`

	// Relationships
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName pins the plural form; the default pluralizer leaves "venta"
// singular and the index DDL targets "ventas".
func (Venta) TableName() string {
	return "ventas"
}
