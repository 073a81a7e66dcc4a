package access

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
)

// Check evalúa si el usuario tiene acceso permitido en el instante `now`.
// Es el único predicado de horario del sistema: lo invocan tanto el login
// como el gate por petición.
//
// Devuelve nil si el acceso está permitido; si no, un error que distingue
// "sin horario asignado" de "fuera de horario":
//
//  1. bypass → permitido sin evaluar reglas.
//  2. cero reglas → ErrNoScheduleAssigned (fail-closed: una cuenta sin bypass
//     y sin reglas nunca puede operar).
//  3. alguna regla activa cuyo día y hora local, en la zona de la PROPIA
//     regla, contengan `now` (extremos inclusivos) → permitido.
//  4. ninguna admite → ErrOutsideSchedule.
func Check(u *entity.User, now time.Time) error {
	if u.BypassAccessRules {
		return nil
	}
	if len(u.AccessRules) == 0 {
		return domain.ErrNoScheduleAssigned
	}
	for _, rule := range u.AccessRules {
		if rule.Active && ruleAdmits(rule, now) {
			return nil
		}
	}
	return domain.ErrOutsideSchedule
}

// IsAllowed versión booleana de Check.
func IsAllowed(u *entity.User, now time.Time) bool {
	return Check(u, now) == nil
}

// ruleAdmits indica si la regla admite el instante `now` proyectado a su zona.
// Una zona horaria inválida hace que la regla no admita (se loguea, no aborta
// la evaluación del resto de reglas).
func ruleAdmits(rule entity.AccessRule, now time.Time) bool {
	loc, err := time.LoadLocation(rule.Timezone)
	if err != nil {
		log.Error().
			Str("rule_id", rule.ID).
			Str("timezone", rule.Timezone).
			Err(err).
			Msg("zona horaria inválida en regla de acceso")
		return false
	}
	wd, ok := rule.Weekday()
	if !ok {
		log.Error().
			Str("rule_id", rule.ID).
			Str("day_of_week", rule.DayOfWeek).
			Msg("día de la semana inválido en regla de acceso")
		return false
	}

	local := now.In(loc)
	if local.Weekday() != wd {
		return false
	}
	tod := entity.ClockTimeOf(local)
	return tod >= rule.StartTime && tod <= rule.EndTime
}
