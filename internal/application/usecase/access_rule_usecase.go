package usecase

import (
	"fmt"
	"time"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/access"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// AccessRuleUseCase gestión de reglas de horario de un usuario. Todas las
// operaciones exigen que el actor pueda gestionar los horarios del usuario
// objetivo (jerarquía; nunca los propios).
type AccessRuleUseCase struct {
	rules repository.AccessRuleRepository
	users repository.UserRepository
	log   *logger.Logger
}

// NewAccessRuleUseCase construye el caso de uso de reglas de horario.
func NewAccessRuleUseCase(rules repository.AccessRuleRepository, users repository.UserRepository, log *logger.Logger) *AccessRuleUseCase {
	return &AccessRuleUseCase{rules: rules, users: users, log: log}
}

// ListByUser lista las reglas de horario del usuario objetivo.
func (uc *AccessRuleUseCase) ListByUser(actor *entity.User, userID string) ([]dto.AccessRuleResponse, error) {
	user, err := uc.loadSchedulable(actor, userID)
	if err != nil {
		return nil, err
	}
	rules, err := uc.rules.ListByUser(user.ID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AccessRuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, toAccessRuleResponse(r))
	}
	return out, nil
}

// Create añade una regla de horario. Rechaza usuarios con bypass activo y
// días que ya tienen regla (una por día y usuario).
func (uc *AccessRuleUseCase) Create(actor *entity.User, userID string, req dto.AccessRuleRequest) (*dto.AccessRuleResponse, error) {
	user, err := uc.loadSchedulable(actor, userID)
	if err != nil {
		return nil, err
	}
	if user.BypassAccessRules {
		return nil, domain.ErrBypassWithRules
	}

	rule, err := buildAccessRule(user.ID, req, actor.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	existing, err := uc.rules.GetByUserAndDay(user.ID, rule.DayOfWeek)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrRuleDayExists
	}
	if err := uc.rules.Create(rule); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("rule_id", rule.ID).
		Str("day", rule.DayOfWeek).
		Str("created_by", actor.ID).
		Msg("regla de horario creada")
	resp := toAccessRuleResponse(*rule)
	return &resp, nil
}

// Update modifica una regla existente. Si cambia el día, verifica que el
// nuevo día no tenga ya otra regla.
func (uc *AccessRuleUseCase) Update(actor *entity.User, userID, ruleID string, req dto.AccessRuleRequest) (*dto.AccessRuleResponse, error) {
	user, err := uc.loadSchedulable(actor, userID)
	if err != nil {
		return nil, err
	}
	current, err := uc.rules.GetByID(ruleID)
	if err != nil {
		return nil, err
	}
	if current == nil || current.UserID != user.ID {
		return nil, domain.ErrNotFound
	}

	updated, err := buildAccessRule(user.ID, req, actor.ID, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	if updated.DayOfWeek != current.DayOfWeek {
		other, err := uc.rules.GetByUserAndDay(user.ID, updated.DayOfWeek)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != current.ID {
			return nil, domain.ErrRuleDayExists
		}
	}

	current.DayOfWeek = updated.DayOfWeek
	current.StartTime = updated.StartTime
	current.EndTime = updated.EndTime
	current.Timezone = updated.Timezone
	current.Active = updated.Active
	current.UpdatedAt = time.Now().UTC()
	current.UpdatedByID = &actor.ID
	if err := uc.rules.Update(current); err != nil {
		return nil, err
	}
	resp := toAccessRuleResponse(*current)
	return &resp, nil
}

// Delete elimina una regla de horario del usuario objetivo.
func (uc *AccessRuleUseCase) Delete(actor *entity.User, userID, ruleID string) error {
	user, err := uc.loadSchedulable(actor, userID)
	if err != nil {
		return err
	}
	rule, err := uc.rules.GetByID(ruleID)
	if err != nil {
		return err
	}
	if rule == nil || rule.UserID != user.ID {
		return domain.ErrNotFound
	}
	if err := uc.rules.Delete(rule.ID); err != nil {
		return err
	}
	uc.log.Info().
		Str("user_id", user.ID).
		Str("rule_id", rule.ID).
		Str("deleted_by", actor.ID).
		Msg("regla de horario eliminada")
	return nil
}

// loadSchedulable carga el usuario objetivo y verifica que el actor pueda
// gestionar sus horarios.
func (uc *AccessRuleUseCase) loadSchedulable(actor *entity.User, userID string) (*entity.User, error) {
	user, err := uc.users.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted {
		return nil, domain.ErrUserNotFound
	}
	if !access.CanManageSchedules(actor, user) {
		if actor.ID == user.ID {
			return nil, fmt.Errorf("%w: no puedes gestionar tu propio horario", domain.ErrForbidden)
		}
		return nil, domain.ErrForbidden
	}
	return user, nil
}
