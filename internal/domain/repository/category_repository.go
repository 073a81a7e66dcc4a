package repository

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	GetByName(name string) (*entity.Category, error)
	List(includeDeleted bool, limit, offset int) ([]*entity.Category, error)
	Update(category *entity.Category) error
}
