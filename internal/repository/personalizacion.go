// internal/repository/personalizacion.go
package repository

import (
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/models"
)

type PersonalizacionRepository struct {
	*Repository[models.Personalizacion]
}

func NewPersonalizacionRepository(db *gorm.DB) *PersonalizacionRepository {
	return &PersonalizacionRepository{Repository: New[models.Personalizacion](db)}
}

// DeleteByID removes the customization and its owned options.
func (r *PersonalizacionRepository) DeleteByID(id int64) error {
	return r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("personalizacion_id = ?", id).Delete(&models.Opcion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Personalizacion{}, id).Error
	})
}
