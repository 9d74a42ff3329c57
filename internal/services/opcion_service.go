// internal/services/opcion_service.go
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

type OpcionService struct {
	repo *repository.Repository[models.Opcion]
	log  *logrus.Entry
}

func NewOpcionService(db *gorm.DB) *OpcionService {
	return &OpcionService{
		repo: repository.New[models.Opcion](db),
		log:  logrus.WithField("service", "opcion"),
	}
}

func (s *OpcionService) Save(d *dto.OpcionDTO) (*dto.OpcionDTO, error) {
	s.log.Debug("Request to save Opcion")

	entity := mapper.ToOpcionEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save opcion: %w", err)
	}
	return mapper.ToOpcionDTO(entity), nil
}

func (s *OpcionService) Update(d *dto.OpcionDTO) (*dto.OpcionDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Opcion")

	entity := mapper.ToOpcionEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update opcion: %w", err)
	}
	return mapper.ToOpcionDTO(entity), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *OpcionService) PartialUpdate(d *dto.OpcionDTO) (*dto.OpcionDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Opcion")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load opcion: %w", err)
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
	if d.PrecioAdicional != nil {
		existing.PrecioAdicional = *d.PrecioAdicional
	}
	if d.Personalizacion != nil && d.Personalizacion.ID != nil {
		id := *d.Personalizacion.ID
		existing.PersonalizacionID = &id
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update opcion: %w", err)
	}
	return mapper.ToOpcionDTO(existing), nil
}

func (s *OpcionService) FindAll() ([]dto.OpcionDTO, error) {
	s.log.Debug("Request to get all Opciones")

	entities, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opciones: %w", err)
	}

	dtos := make([]dto.OpcionDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToOpcionDTO(&entities[i]))
	}
	return dtos, nil
}

func (s *OpcionService) FindOne(id int64) (*dto.OpcionDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Opcion")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch opcion: %w", err)
	}
	return mapper.ToOpcionDTO(entity), nil
}

func (s *OpcionService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *OpcionService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Opcion")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete opcion: %w", err)
	}
	return nil
}
