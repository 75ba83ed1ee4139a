package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/equipo"
	"github.com/viagrua/viagrua-api/internal/domain"
)

// EquipoHandler maneja el equipo de choferes: listado, invitaciones y expulsión.
type EquipoHandler struct {
	uc *equipo.EquipoUseCase
}

// NewEquipoHandler construye el handler de equipo.
func NewEquipoHandler(uc *equipo.EquipoUseCase) *EquipoHandler {
	return &EquipoHandler{uc: uc}
}

// ListChoferes godoc
// @Summary      Listar los choferes de la empresa
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}  dto.ChoferResponse
// @Router       /api/equipo/choferes [get]
func (h *EquipoHandler) ListChoferes(c *fiber.Ctx) error {
	out, err := h.uc.ListChoferes(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// CrearInvitacion godoc
// @Summary      Generar un código de invitación (requiere plan pago)
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Success      201   {object}  dto.InvitacionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/equipo/invitaciones [post]
func (h *EquipoHandler) CrearInvitacion(c *fiber.Ctx) error {
	out, err := h.uc.CrearInvitacion(GetUserID(c), GetEmpresaID(c))
	if err != nil {
		switch err {
		case domain.ErrPlanSinChoferes:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "PLAN_SIN_CHOFERES", Message: "tu plan no habilita choferes, pasate a un plan pago"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ExpulsarChofer godoc
// @Summary      Expulsar un chofer (reasigna sus traslados activos al admin)
// @Tags         equipo
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del chofer"
// @Success      200   {object}  dto.ExpulsionResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/equipo/choferes/{id} [delete]
func (h *EquipoHandler) ExpulsarChofer(c *fiber.Ctx) error {
	out, err := h.uc.ExpulsarChofer(c.Context(), GetUserID(c), GetEmpresaID(c), c.Params("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "chofer no encontrado en tu empresa"})
		case domain.ErrForbidden:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo se pueden expulsar perfiles con rol chofer"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
