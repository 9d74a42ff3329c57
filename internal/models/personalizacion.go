// internal/models/personalizacion.go
package models

type Personalizacion struct {
	BaseModel
	Nombre        string `json:"nombre" gorm:"size:255;not null"`
	Descripcion   string `json:"descripcion" gorm:"type:text;not null"`
	DispositivoID *int64 `json:"dispositivo_id" gorm:"index"`

	// Relationships
	Opciones    []Opcion     `json:"opciones,omitempty" gorm:"foreignKey:PersonalizacionID;constraint:OnDelete:CASCADE"`
	Dispositivo *Dispositivo `json:"dispositivo,omitempty" gorm:"foreignKey:DispositivoID"`
}
