package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrUsernameTaken = errors.New("el nombre de usuario ya existe")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("credenciales inválidas")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")

	// Control de acceso por horario. Distinguibles entre sí para que el
	// login pueda informar "sin horario" vs "fuera de horario".
	ErrNoScheduleAssigned = errors.New("no tienes un horario de trabajo asignado")
	ErrOutsideSchedule    = errors.New("estás fuera de tu horario de trabajo permitido")

	// ErrStaleToken: el token fue emitido antes del último cambio de contraseña.
	ErrStaleToken = errors.New("la sesión ya no es válida, inicia sesión de nuevo")

	// Reglas de horario.
	ErrRuleDayExists   = errors.New("el usuario ya tiene una regla para ese día")
	ErrBypassWithRules = errors.New("no se pueden asignar horarios a un usuario que omite las reglas de acceso")
	ErrBypassOffNoRule = errors.New("no se puede restringir por horario a un usuario sin reglas asignadas")
)
