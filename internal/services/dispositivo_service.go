// internal/services/dispositivo_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/repository"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

var dispositivoSortFields = []string{"id", "codigo", "nombre", "precio_base", "moneda"}

type DispositivoService struct {
	repo *repository.DispositivoRepository
	log  *logrus.Entry
}

func NewDispositivoService(db *gorm.DB) *DispositivoService {
	return &DispositivoService{
		repo: repository.NewDispositivoRepository(db),
		log:  logrus.WithField("service", "dispositivo"),
	}
}

func (s *DispositivoService) Save(d *dto.DispositivoDTO) (*dto.DispositivoDTO, error) {
	s.log.Debug("Request to save Dispositivo")

	entity := mapper.ToDispositivoEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save dispositivo: %w", err)
	}

	saved, err := s.repo.FindByID(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload dispositivo: %w", err)
	}
	return mapper.ToDispositivoDTO(saved), nil
}

func (s *DispositivoService) Update(d *dto.DispositivoDTO) (*dto.DispositivoDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Dispositivo")

	entity := mapper.ToDispositivoEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update dispositivo: %w", err)
	}

	saved, err := s.repo.FindByID(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload dispositivo: %w", err)
	}
	return mapper.ToDispositivoDTO(saved), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *DispositivoService) PartialUpdate(d *dto.DispositivoDTO) (*dto.DispositivoDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Dispositivo")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load dispositivo: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if d.Codigo != nil {
		existing.Codigo = *d.Codigo
	}
	if d.Nombre != nil {
		existing.Nombre = *d.Nombre
	}
	if d.Descripcion != nil {
		existing.Descripcion = *d.Descripcion
	}
	if d.PrecioBase != nil {
		existing.PrecioBase = *d.PrecioBase
	}
	if d.Moneda != nil {
		existing.Moneda = *d.Moneda
	}
	if d.Adicionales != nil {
		existing.Adicionales = nil
		for _, a := range d.Adicionales {
			if a.ID == nil {
				continue
			}
			existing.Adicionales = append(existing.Adicionales, models.Adicional{
				BaseModel: models.BaseModel{ID: *a.ID},
			})
		}
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update dispositivo: %w", err)
	}

	saved, err := s.repo.FindByID(existing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload dispositivo: %w", err)
	}
	return mapper.ToDispositivoDTO(saved), nil
}

func (s *DispositivoService) FindAllPaginated(params utils.PaginationParams) ([]dto.DispositivoDTO, int64, error) {
	s.log.Debug("Request to get all Dispositivos")

	entities, total, err := s.repo.FindAllPaginated(params, dispositivoSortFields)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch dispositivos: %w", err)
	}

	dtos := make([]dto.DispositivoDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToDispositivoDTO(&entities[i]))
	}
	return dtos, total, nil
}

func (s *DispositivoService) FindOne(id int64) (*dto.DispositivoDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Dispositivo")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch dispositivo: %w", err)
	}
	return mapper.ToDispositivoDTO(entity), nil
}

func (s *DispositivoService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *DispositivoService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Dispositivo")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete dispositivo: %w", err)
	}
	return nil
}
