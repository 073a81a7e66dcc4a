package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/internal/application/auth"
	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/pkg/metrics"
)

// AuthHandler maneja el login.
type AuthHandler struct {
	uc      *auth.UseCase
	metrics *metrics.Metrics
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.UseCase, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, metrics: m}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "VALIDATION", Message: "username y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			h.metrics.RecordLogin(metrics.LoginBadCreds)
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "credenciales inválidas"})
		case errors.Is(err, domain.ErrForbidden):
			h.metrics.RecordLogin(metrics.LoginLocked)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "FORBIDDEN", Message: "cuenta inactiva"})
		case errors.Is(err, domain.ErrNoScheduleAssigned), errors.Is(err, domain.ErrOutsideSchedule):
			h.metrics.RecordLogin(metrics.LoginLocked)
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: CategoryAccessDenied, Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
		}
	}
	h.metrics.RecordLogin(metrics.LoginOK)
	return c.JSON(out)
}
