// internal/repository/adicional.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/models"
)

type AdicionalRepository struct {
	*Repository[models.Adicional]
}

func NewAdicionalRepository(db *gorm.DB) *AdicionalRepository {
	return &AdicionalRepository{Repository: New[models.Adicional](db)}
}

func (r *AdicionalRepository) FindByID(id int64) (*models.Adicional, error) {
	var entity models.Adicional
	if err := r.DB().Preload("Dispositivos").First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// DeleteByID removes the add-on and its device join rows; the devices
// themselves are untouched.
func (r *AdicionalRepository) DeleteByID(id int64) error {
	return r.DB().Transaction(func(tx *gorm.DB) error {
		entity := models.Adicional{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&entity).Association("Dispositivos").Clear(); err != nil {
			return err
		}
		return tx.Delete(&entity).Error
	})
}
