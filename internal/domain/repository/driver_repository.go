package repository

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// DriverRepository puerto de persistencia para choferes.
type DriverRepository interface {
	Create(driver *entity.Driver) error
	GetByID(id string) (*entity.Driver, error)
	List(includeDeleted bool, limit, offset int) ([]*entity.Driver, error)
	Update(driver *entity.Driver) error
}
