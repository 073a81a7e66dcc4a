package entity

import "time"

// DriverDetail información adicional para usuarios con rol DRIVER (1:1 con User).
type DriverDetail struct {
	ID                    string
	UserID                string
	LicenseNumber         string
	LicenseExpirationDate *time.Time

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
}
