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

// BranchUseCase gestión de sucursales (catálogo con borrado lógico).
// La restricción de roles la aplica el router; aquí sólo validación y audit.
type BranchUseCase struct {
	branches repository.BranchRepository
	log      *logger.Logger
}

// NewBranchUseCase construye el caso de uso de sucursales.
func NewBranchUseCase(branches repository.BranchRepository, log *logger.Logger) *BranchUseCase {
	return &BranchUseCase{branches: branches, log: log}
}

// Create da de alta una sucursal. El nombre es único.
func (uc *BranchUseCase) Create(actor *entity.User, req dto.BranchRequest) (*dto.BranchResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	branch := &entity.Branch{
		ID:          uuid.NewString(),
		Name:        name,
		Address:     strings.TrimSpace(req.Address),
		Phone:       strings.TrimSpace(req.Phone),
		OrderPrefix: strings.ToUpper(strings.TrimSpace(req.OrderPrefix)),
		CreatedAt:   now,
		CreatedByID: &actor.ID,
		UpdatedAt:   now,
		UpdatedByID: &actor.ID,
	}
	if err := uc.branches.Create(branch); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("branch_id", branch.ID).
		Str("name", branch.Name).
		Str("created_by", actor.ID).
		Msg("sucursal creada")
	return toBranchResponse(branch), nil
}

// GetByID consulta una sucursal.
func (uc *BranchUseCase) GetByID(id string) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.Deleted {
		return nil, domain.ErrNotFound
	}
	return toBranchResponse(branch), nil
}

// List lista sucursales activas con paginación.
func (uc *BranchUseCase) List(page dto.PageRequest) ([]dto.BranchResponse, error) {
	page.DefaultPage()
	branches, err := uc.branches.List(false, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BranchResponse, 0, len(branches))
	for _, b := range branches {
		out = append(out, *toBranchResponse(b))
	}
	return out, nil
}

// Update actualiza los datos de una sucursal.
func (uc *BranchUseCase) Update(actor *entity.User, id string, req dto.BranchRequest) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil || branch.Deleted {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	branch.Name = name
	branch.Address = strings.TrimSpace(req.Address)
	branch.Phone = strings.TrimSpace(req.Phone)
	branch.OrderPrefix = strings.ToUpper(strings.TrimSpace(req.OrderPrefix))
	branch.UpdatedAt = time.Now().UTC()
	branch.UpdatedByID = &actor.ID
	if err := uc.branches.Update(branch); err != nil {
		return nil, err
	}
	return toBranchResponse(branch), nil
}

// Restore revierte el borrado lógico de una sucursal.
func (uc *BranchUseCase) Restore(actor *entity.User, id string) (*dto.BranchResponse, error) {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, domain.ErrNotFound
	}
	if !branch.Deleted {
		return nil, fmt.Errorf("%w: la sucursal no está borrada", domain.ErrConflict)
	}

	branch.Deleted = false
	branch.DeletedAt = nil
	branch.DeletedByID = nil
	branch.UpdatedAt = time.Now().UTC()
	branch.UpdatedByID = &actor.ID
	if err := uc.branches.Update(branch); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("branch_id", branch.ID).
		Str("restored_by", actor.ID).
		Msg("sucursal restaurada")
	return toBranchResponse(branch), nil
}

// Delete borra lógicamente una sucursal.
func (uc *BranchUseCase) Delete(actor *entity.User, id string) error {
	branch, err := uc.branches.GetByID(id)
	if err != nil {
		return err
	}
	if branch == nil || branch.Deleted {
		return domain.ErrNotFound
	}

	now := time.Now().UTC()
	branch.Deleted = true
	branch.DeletedAt = &now
	branch.DeletedByID = &actor.ID
	branch.UpdatedAt = now
	branch.UpdatedByID = &actor.ID
	if err := uc.branches.Update(branch); err != nil {
		return err
	}
	uc.log.Info().
		Str("branch_id", branch.ID).
		Str("deleted_by", actor.ID).
		Msg("sucursal borrada lógicamente")
	return nil
}
