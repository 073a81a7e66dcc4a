package repository

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// UserFilter filtros para listados de usuarios. ExcludeRoles lo calcula el
// caso de uso a partir de la jerarquía del solicitante.
type UserFilter struct {
	Status       entity.UserStatus
	Search       string // username, nombre, apellido o email (parcial, sin mayúsculas)
	Role         entity.Role
	BranchID     string
	ExcludeID    string // el solicitante no se lista a sí mismo
	ExcludeRoles []entity.Role
}

// UserRepository define el puerto de persistencia para User (DIP).
//
// GetByID y GetByUsername cargan SIEMPRE el perfil, el detalle de chofer y las
// reglas de acceso: la ausencia de reglas es semánticamente significativa para
// el control de acceso, así que una carga parcial sería un bug de corrección.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByUsername(username string) (*entity.User, error)
	ExistsByUsername(username string) (bool, error)
	Update(user *entity.User) error
	UpdateProfile(profile *entity.UserProfile) error
	UpdateDriverDetail(detail *entity.DriverDetail) error
	List(filter UserFilter, limit, offset int) ([]*entity.User, error)
}
