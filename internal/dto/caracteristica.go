// internal/dto/caracteristica.go
package dto

type CaracteristicaDTO struct {
	ID          *int64          `json:"id,omitempty"`
	Nombre      *string         `json:"nombre" validate:"required"`
	Descripcion *string         `json:"descripcion,omitempty"`
	Dispositivo *DispositivoDTO `json:"dispositivo,omitempty"`
}

func (d *CaracteristicaDTO) GetID() *int64 { return d.ID }
