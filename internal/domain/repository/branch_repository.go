package repository

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// BranchRepository puerto de persistencia para sucursales.
type BranchRepository interface {
	Create(branch *entity.Branch) error
	GetByID(id string) (*entity.Branch, error)
	GetByName(name string) (*entity.Branch, error)
	List(includeDeleted bool, limit, offset int) ([]*entity.Branch, error)
	Update(branch *entity.Branch) error
}
