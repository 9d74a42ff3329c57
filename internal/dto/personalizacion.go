// internal/dto/personalizacion.go
package dto

type PersonalizacionDTO struct {
	ID          *int64          `json:"id,omitempty"`
	Nombre      *string         `json:"nombre" validate:"required"`
	Descripcion *string         `json:"descripcion" validate:"required"`
	Dispositivo *DispositivoDTO `json:"dispositivo,omitempty"`
}

func (d *PersonalizacionDTO) GetID() *int64 { return d.ID }
