package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
)

// CategoryAccessDenied categoría de error para denegaciones por horario.
// Es parte del contrato con los clientes: el frontend muestra una pantalla
// de cuenta bloqueada cuando recibe esta categoría.
const CategoryAccessDenied = "Acceso Denegado"

// writeError traduce errores de dominio a respuestas HTTP con el shape
// {error, message}. Los casos de uso envuelven los sentinels con %w, por eso
// se compara con errors.Is.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrStaleToken):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "STALE_TOKEN", Message: err.Error()})
	case errors.Is(err, domain.ErrNoScheduleAssigned), errors.Is(err, domain.ErrOutsideSchedule):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: CategoryAccessDenied, Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "FORBIDDEN", Message: err.Error()})
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "USERNAME_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrRuleDayExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "RULE_DAY_EXISTS", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrBypassWithRules),
		errors.Is(err, domain.ErrBypassOffNoRule),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "CONFLICT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
	}
}
