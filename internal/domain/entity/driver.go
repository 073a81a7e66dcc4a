package entity

import "time"

// Driver registro operativo de chofer para entregas (independiente de los
// usuarios con rol DRIVER, que además pueden autenticarse).
type Driver struct {
	ID      string
	Name    string
	Phone   string
	License string
	Active  bool
	Deleted bool

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
	DeletedAt   *time.Time
	DeletedByID *string
}
