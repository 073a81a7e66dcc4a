package entity

import "time"

// User representa una cuenta autenticable del sistema.
//
// BypassAccessRules exime la cuenta de la evaluación de horarios; el invariante
// es que una cuenta con bypass no puede tener reglas asignadas (se limpia al
// activar el flag). PasswordChangedAt invalida tokens emitidos antes del último
// cambio de contraseña.
type User struct {
	ID                string
	Username          string
	PasswordHash      string // bcrypt hash, nunca plano en dominio después de persistir
	Role              Role
	Active            bool
	BypassAccessRules bool
	Deleted           bool
	PasswordChangedAt *time.Time
	ManagedBranchID   *string

	Profile      *UserProfile
	DriverDetail *DriverDetail
	AccessRules  []AccessRule

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
	DeletedAt   *time.Time
	DeletedByID *string
}

// UserStatus filtros de estado para listados de usuarios.
type UserStatus string

const (
	StatusActive   UserStatus = "ACTIVE"
	StatusInactive UserStatus = "INACTIVE"
	StatusDeleted  UserStatus = "DELETED"
	StatusAll      UserStatus = "ALL"
)
