// internal/services/caracteristica_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/models"
	"github.com/tienda/dispositivos-backend/internal/repository"
)

type CaracteristicaService struct {
	repo *repository.Repository[models.Caracteristica]
	log  *logrus.Entry
}

func NewCaracteristicaService(db *gorm.DB) *CaracteristicaService {
	return &CaracteristicaService{
		repo: repository.New[models.Caracteristica](db),
		log:  logrus.WithField("service", "caracteristica"),
	}
}

func (s *CaracteristicaService) Save(d *dto.CaracteristicaDTO) (*dto.CaracteristicaDTO, error) {
	s.log.Debug("Request to save Caracteristica")

	entity := mapper.ToCaracteristicaEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save caracteristica: %w", err)
	}
	return mapper.ToCaracteristicaDTO(entity), nil
}

func (s *CaracteristicaService) Update(d *dto.CaracteristicaDTO) (*dto.CaracteristicaDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Caracteristica")

	entity := mapper.ToCaracteristicaEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update caracteristica: %w", err)
	}
	return mapper.ToCaracteristicaDTO(entity), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *CaracteristicaService) PartialUpdate(d *dto.CaracteristicaDTO) (*dto.CaracteristicaDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Caracteristica")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load caracteristica: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if d.Nombre != nil {
		existing.Nombre = *d.Nombre
	}
	if d.Descripcion != nil {
		existing.Descripcion = *d.Descripcion
	}
	if d.Dispositivo != nil && d.Dispositivo.ID != nil {
		id := *d.Dispositivo.ID
		existing.DispositivoID = &id
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update caracteristica: %w", err)
	}
	return mapper.ToCaracteristicaDTO(existing), nil
}

func (s *CaracteristicaService) FindAll() ([]dto.CaracteristicaDTO, error) {
	s.log.Debug("Request to get all Caracteristicas")

	entities, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caracteristicas: %w", err)
	}

	dtos := make([]dto.CaracteristicaDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToCaracteristicaDTO(&entities[i]))
	}
	return dtos, nil
}

func (s *CaracteristicaService) FindOne(id int64) (*dto.CaracteristicaDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Caracteristica")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caracteristica: %w", err)
	}
	return mapper.ToCaracteristicaDTO(entity), nil
}

func (s *CaracteristicaService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *CaracteristicaService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Caracteristica")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete caracteristica: %w", err)
	}
	return nil
}
