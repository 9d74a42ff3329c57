// internal/models/caracteristica.go
package models

type Caracteristica struct {
	BaseModel
	Nombre        string `json:"nombre" gorm:"size:255;not null"`
	Descripcion   string `json:"descripcion" gorm:"type:text"`
	DispositivoID *int64 `json:"dispositivo_id" gorm:"index"`

	// Relationships
	Dispositivo *Dispositivo `json:"dispositivo,omitempty" gorm:"foreignKey:DispositivoID"`
}
