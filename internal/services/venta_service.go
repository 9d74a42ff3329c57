// internal/services/venta_service.go
package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/tienda/dispositivos-backend/internal/dto"
	"github.com/tienda/dispositivos-backend/internal/mapper"
	"github.com/tienda/dispositivos-backend/internal/repository"
	"github.com/tienda/dispositivos-backend/internal/utils"
)

var ventaSortFields = []string{"id", "fecha_venta", "ganancia"}

type VentaService struct {
	repo *repository.VentaRepository
	log  *logrus.Entry
}

func NewVentaService(db *gorm.DB) *VentaService {
	return &VentaService{
		repo: repository.NewVentaRepository(db),
		log:  logrus.WithField("service", "venta"),
	}
}

func (s *VentaService) Save(d *dto.VentaDTO) (*dto.VentaDTO, error) {
	s.log.Debug("Request to save Venta")

	entity := mapper.ToVentaEntity(d)
	if err := s.repo.Create(entity); err != nil {
		return nil, fmt.Errorf("failed to save venta: %w", err)
	}

	saved, err := s.repo.FindByID(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venta: %w", err)
	}
	return mapper.ToVentaDTO(saved), nil
}

func (s *VentaService) Update(d *dto.VentaDTO) (*dto.VentaDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to update Venta")

	entity := mapper.ToVentaEntity(d)
	if err := s.repo.Save(entity); err != nil {
		return nil, fmt.Errorf("failed to update venta: %w", err)
	}

	saved, err := s.repo.FindByID(entity.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venta: %w", err)
	}
	return mapper.ToVentaDTO(saved), nil
}

// PartialUpdate applies only the fields present in the DTO onto the stored
// record. Returns nil when the record does not exist.
func (s *VentaService) PartialUpdate(d *dto.VentaDTO) (*dto.VentaDTO, error) {
	s.log.WithField("id", d.ID).Debug("Request to partially update Venta")

	existing, err := s.repo.FindByID(*d.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load venta: %w", err)
	}
	if existing == nil {
		return nil, nil
	}

	if d.FechaVenta != nil {
		existing.FechaVenta = *d.FechaVenta
	}
	if d.Ganancia != nil {
		existing.Ganancia = d.Ganancia
	}
	if d.User != nil && d.User.ID != nil {
		id := *d.User.ID
		existing.UserID = &id
	}

	if err := s.repo.Save(existing); err != nil {
		return nil, fmt.Errorf("failed to update venta: %w", err)
	}

	// Reload so a reassigned user is serialized from the stored row, not
	// from the association preloaded before the patch.
	saved, err := s.repo.FindByID(existing.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload venta: %w", err)
	}
	return mapper.ToVentaDTO(saved), nil
}

func (s *VentaService) FindAllPaginated(params utils.PaginationParams) ([]dto.VentaDTO, int64, error) {
	s.log.Debug("Request to get all Ventas")

	entities, total, err := s.repo.FindAllPaginated(params, ventaSortFields)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch ventas: %w", err)
	}

	dtos := make([]dto.VentaDTO, 0, len(entities))
	for i := range entities {
		dtos = append(dtos, *mapper.ToVentaDTO(&entities[i]))
	}
	return dtos, total, nil
}

func (s *VentaService) FindOne(id int64) (*dto.VentaDTO, error) {
	s.log.WithField("id", id).Debug("Request to get Venta")

	entity, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch venta: %w", err)
	}
	return mapper.ToVentaDTO(entity), nil
}

func (s *VentaService) Exists(id int64) (bool, error) {
	return s.repo.ExistsByID(id)
}

func (s *VentaService) Delete(id int64) error {
	s.log.WithField("id", id).Debug("Request to delete Venta")

	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete venta: %w", err)
	}
	return nil
}
