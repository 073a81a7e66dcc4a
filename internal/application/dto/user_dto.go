package dto

import "time"

// ProfileInfo datos personales del usuario.
type ProfileInfo struct {
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Email           string     `json:"email,omitempty"`
	Phone           string     `json:"phone,omitempty"`
	Address         string     `json:"address,omitempty"`
	EmployeeNumber  string     `json:"employee_number,omitempty"`
	HireDate        *time.Time `json:"hire_date,omitempty"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
}

// DriverInfo detalle de chofer (sólo usuarios con rol DRIVER).
type DriverInfo struct {
	LicenseNumber         string     `json:"license_number"`
	LicenseExpirationDate *time.Time `json:"license_expiration_date,omitempty"`
}

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en el use case).
// El perfil es obligatorio; el detalle de chofer sólo para rol DRIVER; las reglas
// de horario son opcionales e incompatibles con bypass_access_rules.
type CreateUserRequest struct {
	Username          string              `json:"username" validate:"required,min=3,max=100"`
	Password          string              `json:"password" validate:"required,min=8"`
	Role              string              `json:"role" validate:"required"`
	Active            bool                `json:"active"`
	BypassAccessRules bool                `json:"bypass_access_rules"`
	ManagedBranchID   *string             `json:"managed_branch_id,omitempty"`
	Profile           *ProfileInfo        `json:"profile" validate:"required"`
	DriverDetails     *DriverInfo         `json:"driver_details,omitempty"`
	AccessRules       []AccessRuleRequest `json:"access_rules,omitempty"`
}

// UpdateUserRequest entrada para actualización parcial de un usuario
// (punteros nil = campo sin tocar). ManagedBranchID usa "" para desasignar.
type UpdateUserRequest struct {
	Active            *bool   `json:"active,omitempty"`
	BypassAccessRules *bool   `json:"bypass_access_rules,omitempty"`
	Role              *string `json:"role,omitempty"` // sólo DEVELOPER puede cambiar roles
	ManagedBranchID   *string `json:"managed_branch_id,omitempty"`
}

// ProfileUpdateRequest actualización parcial del perfil.
type ProfileUpdateRequest struct {
	FirstName       *string    `json:"first_name,omitempty"`
	LastName        *string    `json:"last_name,omitempty"`
	Email           *string    `json:"email,omitempty"`
	Phone           *string    `json:"phone,omitempty"`
	Address         *string    `json:"address,omitempty"`
	EmployeeNumber  *string    `json:"employee_number,omitempty"`
	HireDate        *time.Time `json:"hire_date,omitempty"`
	TerminationDate *time.Time `json:"termination_date,omitempty"`
}

// DriverDetailUpdateRequest actualización parcial del detalle de chofer.
type DriverDetailUpdateRequest struct {
	LicenseNumber         *string    `json:"license_number,omitempty"`
	LicenseExpirationDate *time.Time `json:"license_expiration_date,omitempty"`
}

// PasswordUpdateRequest cambio de contraseña propio (verifica la actual).
type PasswordUpdateRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

// AdminPasswordUpdateRequest cambio de contraseña de otro usuario por un gestor.
type AdminPasswordUpdateRequest struct {
	NewPassword string `json:"new_password" validate:"required,min=8"`
}

// UserListRequest filtros de listado de usuarios.
type UserListRequest struct {
	PageRequest
	Status   string `query:"status"` // ACTIVE (default), INACTIVE, DELETED, ALL
	Search   string `query:"search"`
	Role     string `query:"role"`
	BranchID string `query:"branch_id"`
}

// UserResponse salida completa de un usuario (sin password).
type UserResponse struct {
	ID                string               `json:"id"`
	Username          string               `json:"username"`
	Role              string               `json:"role"`
	Active            bool                 `json:"active"`
	BypassAccessRules bool                 `json:"bypass_access_rules"`
	Deleted           bool                 `json:"deleted,omitempty"`
	ManagedBranchID   *string              `json:"managed_branch_id,omitempty"`
	Profile           *ProfileInfo         `json:"profile,omitempty"`
	DriverDetails     *DriverInfo          `json:"driver_details,omitempty"`
	AccessRules       []AccessRuleResponse `json:"access_rules"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         time.Time            `json:"updated_at"`
	DeletedAt         *time.Time           `json:"deleted_at,omitempty"`
}

// UserSummaryResponse fila de listado de usuarios.
type UserSummaryResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
	Deleted  bool   `json:"deleted"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y datos básicos del usuario.
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}
