// internal/repository/repository.go
package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tienda/dispositivos-backend/internal/utils"
)

// Repository is the generic persistence contract shared by every entity:
// save, find, exists, delete, optionally paginated listing. Lookups for a
// missing record return nil rather than an error.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) Create(entity *T) error {
	return r.db.Create(entity).Error
}

// Save fully replaces an existing row. The creation timestamp is preserved
// since replacement entities are built from transport objects that never
// carry it. Loaded associations are never written back.
func (r *Repository[T]) Save(entity *T) error {
	return r.db.Omit(clause.Associations, "CreatedAt").Save(entity).Error
}

func (r *Repository[T]) FindByID(id int64) (*T, error) {
	var entity T
	if err := r.db.First(&entity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *Repository[T]) FindAll() ([]T, error) {
	var entities []T
	if err := r.db.Order("id asc").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *Repository[T]) FindAllPaginated(params utils.PaginationParams, allowedSortFields []string) ([]T, int64, error) {
	var entity T
	query := r.db.Model(&entity)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var entities []T
	if err := query.Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *Repository[T]) ExistsByID(id int64) (bool, error) {
	var entity T
	var count int64
	if err := r.db.Model(&entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository[T]) DeleteByID(id int64) error {
	var entity T
	return r.db.Delete(&entity, id).Error
}
