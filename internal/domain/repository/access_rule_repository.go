package repository

import "github.com/muebleria/muebleria-api/internal/domain/entity"

// AccessRuleRepository puerto de persistencia para reglas de horario.
// La unicidad (usuario, día) la garantiza también la base de datos; Create y
// Update devuelven domain.ErrRuleDayExists ante la violación.
type AccessRuleRepository interface {
	Create(rule *entity.AccessRule) error
	GetByID(id string) (*entity.AccessRule, error)
	GetByUserAndDay(userID, dayOfWeek string) (*entity.AccessRule, error)
	ListByUser(userID string) ([]entity.AccessRule, error)
	Update(rule *entity.AccessRule) error
	Delete(id string) error
	DeleteByUser(userID string) error
}
