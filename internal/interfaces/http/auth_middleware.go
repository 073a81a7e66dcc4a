package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/internal/application/auth"
	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/pkg/metrics"
)

// Locals keys para el usuario autenticado en Fiber.
const (
	LocalUser     = "current_user"
	LocalUserID   = "user_id"
	LocalUsername = "username"
	LocalRole     = "role"
)

// AuthMiddleware valida el Bearer Token JWT y ejecuta el gate de acceso por
// petición: relee el usuario desde la DB, verifica frescura de credenciales
// contra PasswordChangedAt y evalúa la ventana de horario. Un token válido
// firmado no basta para pasar.
func AuthMiddleware(authUC *auth.UseCase, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_TOKEN", Message: "token vacío"})
		}

		user, err := authUC.Authenticate(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrStaleToken):
				m.RecordAccessDenied("stale_token")
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "STALE_TOKEN", Message: err.Error()})
			case errors.Is(err, domain.ErrNoScheduleAssigned), errors.Is(err, domain.ErrOutsideSchedule):
				m.RecordAccessDenied("schedule")
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: CategoryAccessDenied, Message: err.Error()})
			case errors.Is(err, domain.ErrUnauthorized):
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "INVALID_TOKEN", Message: "token inválido o expirado"})
			default:
				return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "INTERNAL", Message: err.Error()})
			}
		}

		c.Locals(LocalUser, user)
		c.Locals(LocalUserID, user.ID)
		c.Locals(LocalUsername, user.Username)
		c.Locals(LocalRole, string(user.Role))
		return c.Next()
	}
}

// RequireRole autoriza sólo a los roles indicados. Debe ir después de
// AuthMiddleware en la cadena.
func RequireRole(allowed ...entity.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "MISSING_ROLE", Message: "el token no incluye rol"})
		}
		for _, r := range allowed {
			if entity.Role(role) == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "FORBIDDEN", Message: "rol sin permiso para esta operación"})
	}
}

// GetCurrentUser devuelve el usuario cargado por AuthMiddleware (nil si no hay).
func GetCurrentUser(c *fiber.Ctx) *entity.User {
	v := c.Locals(LocalUser)
	if v == nil {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetUsername devuelve el username del contexto.
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
