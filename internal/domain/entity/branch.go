package entity

import "time"

// Branch sucursal de la mueblería. OrderPrefix y LastOrderSequence se reservan
// para la numeración de pedidos de la sucursal.
type Branch struct {
	ID                string
	Name              string
	Address           string
	Phone             string
	OrderPrefix       string
	LastOrderSequence int
	Deleted           bool

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
	DeletedAt   *time.Time
	DeletedByID *string
}
