package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/gastos"
	"github.com/viagrua/viagrua-api/internal/domain"
)

// GastoHandler maneja el libro de gastos de la empresa.
type GastoHandler struct {
	uc *gastos.GastoUseCase
}

// NewGastoHandler construye el handler de gastos.
func NewGastoHandler(uc *gastos.GastoUseCase) *GastoHandler {
	return &GastoHandler{uc: uc}
}

// Create godoc
// @Summary      Registrar un gasto
// @Tags         gastos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateGastoRequest  true  "tipo, importe, fecha opcional"
// @Success      201   {object}  dto.GastoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/gastos [post]
func (h *GastoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateGastoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(GetUserID(c), GetEmpresaID(c), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo es requerido, importe debe ser positivo y fecha con formato YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar gastos de la empresa
// @Tags         gastos
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "tamaño de página"
// @Param        offset  query  int  false  "desplazamiento"
// @Success      200   {object}  dto.GastoListResponse
// @Router       /api/gastos [get]
func (h *GastoHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetEmpresaID(c), page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar un gasto (autor o admin)
// @Tags         gastos
// @Security     BearerAuth
// @Param        id  path  string  true  "id del gasto"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/gastos/{id} [delete]
func (h *GastoHandler) Delete(c *fiber.Ctx) error {
	err := h.uc.Delete(GetUserID(c), GetEmpresaID(c), GetRol(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "gasto no encontrado"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo el autor o un admin pueden borrar el gasto"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
