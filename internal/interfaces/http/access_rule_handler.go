package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/application/usecase"
)

// AccessRuleHandler maneja las reglas de horario de un usuario (protegido).
type AccessRuleHandler struct {
	uc *usecase.AccessRuleUseCase
}

// NewAccessRuleHandler construye el handler de reglas de horario.
func NewAccessRuleHandler(uc *usecase.AccessRuleUseCase) *AccessRuleHandler {
	return &AccessRuleHandler{uc: uc}
}

// List godoc
// @Summary      Listar reglas de horario de un usuario
// @Tags         access-rules
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {array}   dto.AccessRuleResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/access-rules [get]
func (h *AccessRuleHandler) List(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	out, err := h.uc.ListByUser(actor, c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear regla de horario
// @Tags         access-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.AccessRuleRequest  true  "Regla de horario"
// @Success      201   {object}  dto.AccessRuleResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/access-rules [post]
func (h *AccessRuleHandler) Create(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	var in dto.AccessRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(actor, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar regla de horario
// @Tags         access-rules
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string  true  "ID del usuario"
// @Param        ruleId  path  string  true  "ID de la regla"
// @Param        body    body  dto.AccessRuleRequest  true  "Regla de horario"
// @Success      200     {object}  dto.AccessRuleResponse
// @Failure      409     {object}  dto.ErrorResponse
// @Router       /api/users/{id}/access-rules/{ruleId} [put]
func (h *AccessRuleHandler) Update(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	var in dto.AccessRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actor, c.Params("id"), c.Params("ruleId"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar regla de horario
// @Tags         access-rules
// @Security     Bearer
// @Param        id      path  string  true  "ID del usuario"
// @Param        ruleId  path  string  true  "ID de la regla"
// @Success      204
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/users/{id}/access-rules/{ruleId} [delete]
func (h *AccessRuleHandler) Delete(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	if err := h.uc.Delete(actor, c.Params("id"), c.Params("ruleId")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
