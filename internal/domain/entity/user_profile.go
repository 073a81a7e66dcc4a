package entity

import "time"

// UserProfile datos personales del usuario (relación 1:1 con User).
type UserProfile struct {
	ID              string
	UserID          string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Address         string
	EmployeeNumber  string
	HireDate        *time.Time
	TerminationDate *time.Time

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
}

// FullName nombre y apellido concatenados.
func (p *UserProfile) FullName() string {
	if p == nil {
		return ""
	}
	return p.FirstName + " " + p.LastName
}
