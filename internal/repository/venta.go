// internal/repository/venta.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

type VentaRepository struct {
	*Repository[models.Venta]
}

func NewVentaRepository(db *gorm.DB) *VentaRepository {
	return &VentaRepository{Repository: New[models.Venta](db)}
}

func (r *VentaRepository) FindByID(id int64) (*models.Venta, error) {
	var entity models.Venta
	if err := r.DB().Preload("User").First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *VentaRepository) FindAllPaginated(params utils.PaginationParams, allowedSortFields []string) ([]models.Venta, int64, error) {
	query := r.DB().Model(&models.Venta{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var entities []models.Venta
	if err := query.Preload("User").Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}
