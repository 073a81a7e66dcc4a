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

// CategoryUseCase gestión del catálogo de categorías de muebles.
type CategoryUseCase struct {
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewCategoryUseCase construye el caso de uso de categorías.
func NewCategoryUseCase(categories repository.CategoryRepository, log *logger.Logger) *CategoryUseCase {
	return &CategoryUseCase{categories: categories, log: log}
}

// Create da de alta una categoría. El nombre es único.
func (uc *CategoryUseCase) Create(actor *entity.User, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}

	now := time.Now().UTC()
	category := &entity.Category{
		ID:          uuid.NewString(),
		Name:        name,
		CreatedAt:   now,
		CreatedByID: &actor.ID,
		UpdatedAt:   now,
		UpdatedByID: &actor.ID,
	}
	if err := uc.categories.Create(category); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("category_id", category.ID).
		Str("name", category.Name).
		Str("created_by", actor.ID).
		Msg("categoría creada")
	return toCategoryResponse(category), nil
}

// GetByID consulta una categoría.
func (uc *CategoryUseCase) GetByID(id string) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.Deleted {
		return nil, domain.ErrNotFound
	}
	return toCategoryResponse(category), nil
}

// List lista categorías activas con paginación.
func (uc *CategoryUseCase) List(page dto.PageRequest) ([]dto.CategoryResponse, error) {
	page.DefaultPage()
	categories, err := uc.categories.List(false, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update renombra una categoría.
func (uc *CategoryUseCase) Update(actor *entity.User, id string, req dto.CategoryRequest) (*dto.CategoryResponse, error) {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil || category.Deleted {
		return nil, domain.ErrNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: el nombre es obligatorio", domain.ErrInvalidInput)
	}
	category.Name = name
	category.UpdatedAt = time.Now().UTC()
	category.UpdatedByID = &actor.ID
	if err := uc.categories.Update(category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category), nil
}

// Delete borra lógicamente una categoría.
func (uc *CategoryUseCase) Delete(actor *entity.User, id string) error {
	category, err := uc.categories.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil || category.Deleted {
		return domain.ErrNotFound
	}

	now := time.Now().UTC()
	category.Deleted = true
	category.DeletedAt = &now
	category.DeletedByID = &actor.ID
	category.UpdatedAt = now
	category.UpdatedByID = &actor.ID
	if err := uc.categories.Update(category); err != nil {
		return err
	}
	uc.log.Info().
		Str("category_id", category.ID).
		Str("deleted_by", actor.ID).
		Msg("categoría borrada lógicamente")
	return nil
}
