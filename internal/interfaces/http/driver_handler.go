package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/application/usecase"
)

// DriverHandler maneja las peticiones HTTP para choferes de reparto (protegido).
type DriverHandler struct {
	uc *usecase.DriverUseCase
}

// NewDriverHandler construye el handler de choferes.
func NewDriverHandler(uc *usecase.DriverUseCase) *DriverHandler {
	return &DriverHandler{uc: uc}
}

// Create godoc
// @Summary      Crear chofer
// @Tags         drivers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.DriverRequest  true  "Datos del chofer"
// @Success      201   {object}  dto.DriverResponse
// @Router       /api/drivers [post]
func (h *DriverHandler) Create(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	var in dto.DriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(actor, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar choferes
// @Tags         drivers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {array}  dto.DriverResponse
// @Router       /api/drivers [get]
func (h *DriverHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	out, err := h.uc.List(page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener chofer por ID
// @Tags         drivers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del chofer"
// @Success      200  {object}  dto.DriverResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drivers/{id} [get]
func (h *DriverHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar chofer
// @Tags         drivers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del chofer"
// @Param        body  body  dto.DriverRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.DriverResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/drivers/{id} [put]
func (h *DriverHandler) Update(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	var in dto.DriverRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actor, c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Borrar chofer (lógico)
// @Tags         drivers
// @Security     Bearer
// @Param        id  path  string  true  "ID del chofer"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/drivers/{id} [delete]
func (h *DriverHandler) Delete(c *fiber.Ctx) error {
	actor := GetCurrentUser(c)
	if actor == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "UNAUTHORIZED", Message: "sesión requerida"})
	}
	if err := h.uc.Delete(actor, c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
