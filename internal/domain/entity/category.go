package entity

import "time"

// Category categoría de muebles (catálogo plano con borrado lógico).
type Category struct {
	ID      string
	Name    string
	Deleted bool

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
	DeletedAt   *time.Time
	DeletedByID *string
}
