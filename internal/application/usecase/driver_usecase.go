package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// DriverUseCase gestión del catálogo de choferes de reparto.
type DriverUseCase struct {
	drivers repository.DriverRepository
	log     *logger.Logger
}

// NewDriverUseCase construye el caso de uso de choferes.
func NewDriverUseCase(drivers repository.DriverRepository, log *logger.Logger) *DriverUseCase {
	return &DriverUseCase{drivers: drivers, log: log}
}

// Create da de alta un chofer de reparto.
func (uc *DriverUseCase) Create(actor *entity.User, req dto.DriverRequest) (*dto.DriverResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	driver := &entity.Driver{
		ID:          uuid.NewString(),
		Name:        name,
		Phone:       strings.TrimSpace(req.Phone),
		License:     strings.TrimSpace(req.License),
		Active:      req.Active,
		CreatedAt:   now,
		CreatedByID: &actor.ID,
		UpdatedAt:   now,
		UpdatedByID: &actor.ID,
	}
	if err := uc.drivers.Create(driver); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("driver_id", driver.ID).
		Str("name", driver.Name).
		Str("created_by", actor.ID).
		Msg("chofer creado")
	return toDriverResponse(driver), nil
}

// GetByID consulta un chofer.
func (uc *DriverUseCase) GetByID(id string) (*dto.DriverResponse, error) {
	driver, err := uc.drivers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.Deleted {
		return nil, domain.ErrNotFound
	}
	return toDriverResponse(driver), nil
}

// List lista choferes activos con paginación.
func (uc *DriverUseCase) List(page dto.PageRequest) ([]dto.DriverResponse, error) {
	page.DefaultPage()
	drivers, err := uc.drivers.List(false, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, *toDriverResponse(d))
	}
	return out, nil
}

// Update actualiza los datos de un chofer.
func (uc *DriverUseCase) Update(actor *entity.User, id string, req dto.DriverRequest) (*dto.DriverResponse, error) {
	driver, err := uc.drivers.GetByID(id)
	if err != nil {
		return nil, err
	}
	if driver == nil || driver.Deleted {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	driver.Name = name
	driver.Phone = strings.TrimSpace(req.Phone)
	driver.License = strings.TrimSpace(req.License)
	driver.Active = req.Active
	driver.UpdatedAt = time.Now().UTC()
	driver.UpdatedByID = &actor.ID
	if err := uc.drivers.Update(driver); err != nil {
		return nil, err
	}
	return toDriverResponse(driver), nil
}

// Delete borra lógicamente un chofer.
func (uc *DriverUseCase) Delete(actor *entity.User, id string) error {
	driver, err := uc.drivers.GetByID(id)
	if err != nil {
		return err
	}
	if driver == nil || driver.Deleted {
		return domain.ErrNotFound
	}

	now := time.Now().UTC()
	driver.Deleted = true
	driver.Active = false
	driver.DeletedAt = &now
	driver.DeletedByID = &actor.ID
	driver.UpdatedAt = now
	driver.UpdatedByID = &actor.ID
	if err := uc.drivers.Update(driver); err != nil {
		return err
	}
	uc.log.Info().
		Str("driver_id", driver.ID).
		Str("deleted_by", actor.ID).
		Msg("chofer borrado lógicamente")
	return nil
}
