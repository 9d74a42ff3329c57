// internal/services/personalizacion_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/repository"
)

type PersonalizacionService struct {
	repo *repository.PersonalizacionRepository
	log  *logrus.Entry
}

func NewPersonalizacionService(db *gorm.DB) *PersonalizacionService {
	return &PersonalizacionService{
		repo: repository.NewPersonalizacionRepository(db),
		log:  logrus.WithField("service", "personalizacion"),
	}
}

func (s *PersonalizacionService) Save(d *dto.PersonalizacionDTO) (*dto.PersonalizacionDTO, error) {
	s.log.Debug("Request to save Personalizacion")

	entity := mapper.ToPersonalizacionEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save personalizacion: %w", err)
	}
	return mapper.ToPersonalizacionDTO(entity), nil
}

func (s *PersonalizacionService) Update(d *dto.PersonalizacionDTO) (*dto.PersonalizacionDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Personalizacion")

	entity := mapper.ToPersonalizacionEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update personalizacion: %w", err)
	}
	return mapper.ToPersonalizacionDTO(entity), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *PersonalizacionService) PartialUpdate(d *dto.PersonalizacionDTO) (*dto.PersonalizacionDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Personalizacion")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load personalizacion: %w", err)
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
		return nil, fmt.Errorf("failed to update personalizacion: %w", err)
	}
	return mapper.ToPersonalizacionDTO(existing), nil
}

func (s *PersonalizacionService) FindAll() ([]dto.PersonalizacionDTO, error) {
	s.log.Debug("Request to get all Personalizaciones")

	entities, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personalizaciones: %w", err)
	}

	dtos := make([]dto.PersonalizacionDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToPersonalizacionDTO(&entities[i]))
	}
	return dtos, nil
}

func (s *PersonalizacionService) FindOne(id int64) (*dto.PersonalizacionDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Personalizacion")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch personalizacion: %w", err)
	}
	return mapper.ToPersonalizacionDTO(entity), nil
}

func (s *PersonalizacionService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *PersonalizacionService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Personalizacion")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete personalizacion: %w", err)
	}
	return nil
}
