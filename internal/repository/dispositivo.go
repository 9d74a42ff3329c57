// internal/repository/dispositivo.go
package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

// DispositivoRepository adds eager loading of the add-on association and
// cascaded deletes over owned children to the generic contract.
type DispositivoRepository struct {
	*Repository[models.Dispositivo]
}

func NewDispositivoRepository(db *gorm.DB) *DispositivoRepository {
	return &DispositivoRepository{Repository: New[models.Dispositivo](db)}
}

func (r *DispositivoRepository) FindByID(id int64) (*models.Dispositivo, error) {
	var entity models.Dispositivo
	if err := r.DB().Preload("Adicionales").First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *DispositivoRepository) FindAllPaginated(params utils.PaginationParams, allowedSortFields []string) ([]models.Dispositivo, int64, error) {
	query := r.DB().Model(&models.Dispositivo{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var entities []models.Dispositivo
	if err := query.Preload("Adicionales").Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

// Create persists the device and its join rows. Linked add-ons arrive as
// id-only references and must already exist.
func (r *DispositivoRepository) Create(entity *models.Dispositivo) error {
	return r.DB().Omit("Adicionales.*").Create(entity).Error
}

// Save fully replaces the device, including its add-on membership. The join
// table is keyed on both ids, so replacement stays deduplicated.
func (r *DispositivoRepository) Save(entity *models.Dispositivo) error {
	return r.DB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations, "CreatedAt").Save(entity).Error; err != nil {
			return err
		}
		return tx.Model(entity).Association("Adicionales").Replace(entity.Adicionales)
	})
}

// DeleteByID removes the device together with its owned characteristics,
// customizations (and their options) and the add-on join rows. The add-ons
// themselves are independent records and survive.
func (r *DispositivoRepository) DeleteByID(id int64) error {
	return r.DB().Transaction(func(tx *gorm.DB) error {
		var personalizacionIDs []int64
		if err := tx.Model(&models.Personalizacion{}).
			Where("dispositivo_id = ?", id).
			Pluck("id", &personalizacionIDs).Error; err != nil {
			return err
		}

		if len(personalizacionIDs) > 0 {
			if err := tx.Where("personalizacion_id IN ?", personalizacionIDs).
				Delete(&models.Opcion{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("dispositivo_id = ?", id).Delete(&models.Personalizacion{}).Error; err != nil {
			return err
		}

		if err := tx.Where("dispositivo_id = ?", id).Delete(&models.Caracteristica{}).Error; err != nil {
			return err
		}

		entity := models.Dispositivo{BaseModel: models.BaseModel{ID: id}}
		if err := tx.Model(&entity).Association("Adicionales").Clear(); err != nil {
			return err
		}

		return tx.Delete(&entity).Error
	})
}
