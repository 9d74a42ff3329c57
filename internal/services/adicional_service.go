// internal/services/adicional_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/repository"
)

type AdicionalService struct {
	repo *repository.AdicionalRepository
	log  *logrus.Entry
}

func NewAdicionalService(db *gorm.DB) *AdicionalService {
	return &AdicionalService{
		repo: repository.NewAdicionalRepository(db),
		log:  logrus.WithField("service", "adicional"),
	}
}

func (s *AdicionalService) Save(d *dto.AdicionalDTO) (*dto.AdicionalDTO, error) {
	s.log.Debug("Request to save Adicional")

	entity := mapper.ToAdicionalEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save adicional: %w", err)
	}
	return mapper.ToAdicionalDTO(entity), nil
}

func (s *AdicionalService) Update(d *dto.AdicionalDTO) (*dto.AdicionalDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Adicional")

	entity := mapper.ToAdicionalEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update adicional: %w", err)
	}
	return mapper.ToAdicionalDTO(entity), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *AdicionalService) PartialUpdate(d *dto.AdicionalDTO) (*dto.AdicionalDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Adicional")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load adicional: %w", err)
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
	if d.Precio != nil {
		existing.Precio = *d.Precio
	}
	if d.PrecioGratis != nil {
		existing.PrecioGratis = d.PrecioGratis
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update adicional: %w", err)
	}
	return mapper.ToAdicionalDTO(existing), nil
}

func (s *AdicionalService) FindAll() ([]dto.AdicionalDTO, error) {
	s.log.Debug("Request to get all Adicionales")

	entities, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adicionales: %w", err)
	}

	dtos := make([]dto.AdicionalDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToAdicionalDTO(&entities[i]))
	}
	return dtos, nil
}

func (s *AdicionalService) FindOne(id int64) (*dto.AdicionalDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Adicional")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch adicional: %w", err)
	}
	return mapper.ToAdicionalDTO(entity), nil
}

func (s *AdicionalService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *AdicionalService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Adicional")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete adicional: %w", err)
	}
	return nil
}
