package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/application/traslados"
	"github.com/viagrua/viagrua-api/internal/domain"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

// TrasladoHandler maneja el ciclo de vida de traslados: alta, listado, estados,
// fotos y comprobante.
type TrasladoHandler struct {
	createUC *traslados.CreateTrasladoUseCase
	uc       *traslados.TrasladoUseCase
}

// NewTrasladoHandler construye el handler de traslados.
func NewTrasladoHandler(createUC *traslados.CreateTrasladoUseCase, uc *traslados.TrasladoUseCase) *TrasladoHandler {
	return &TrasladoHandler{createUC: createUC, uc: uc}
}

// Create godoc
// @Summary      Crear traslado (solo admin, descuenta cupo del plan)
// @Tags         traslados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateTrasladoRequest  true  "datos del traslado"
// @Success      201   {object}  dto.TrasladoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/traslados [post]
func (h *TrasladoHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTrasladoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.createUC.Create(c.Context(), GetUserID(c), GetEmpresaID(c), in)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "chofer_id y marca_modelo son requeridos"})
		case domain.ErrLimiteTraslados:
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "LIMITE_TRASLADOS", Message: "alcanzaste el límite de traslados de tu plan este mes"})
		case domain.ErrConflict:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "otra petición modificó el cupo, reintente"})
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar traslados (admin: toda la empresa; chofer: los propios)
// @Tags         traslados
// @Produce      json
// @Security     BearerAuth
// @Param        estado  query  string  false  "pendiente | en_curso | completado"
// @Param        limit   query  int     false  "tamaño de página"
// @Param        offset  query  int     false  "desplazamiento"
// @Success      200   {object}  dto.TrasladoListResponse
// @Router       /api/traslados [get]
func (h *TrasladoHandler) List(c *fiber.Ctx) error {
	estado := c.Query("estado")
	if estado != "" && !entity.EstadoValido(estado) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(GetUserID(c), GetEmpresaID(c), GetRol(c), estado, page.Limit, page.Offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Resumen godoc
// @Summary      Conteo de traslados por estado (tarjetas del tablero)
// @Tags         traslados
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.ResumenTrasladosResponse
// @Router       /api/traslados/resumen [get]
func (h *TrasladoHandler) Resumen(c *fiber.Ctx) error {
	out, err := h.uc.Resumen(GetEmpresaID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Detalle de un traslado
// @Tags         traslados
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "id del traslado"
// @Success      200   {object}  dto.TrasladoResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/traslados/{id} [get]
func (h *TrasladoHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(GetUserID(c), GetEmpresaID(c), GetRol(c), c.Params("id"))
	if err != nil {
		return h.trasladoError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstado godoc
// @Summary      Cambiar el estado operativo de un traslado
// @Tags         traslados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id del traslado"
// @Param        body  body  dto.CambiarEstadoRequest  true  "estado destino"
// @Success      200   {object}  dto.TrasladoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/traslados/{id}/estado [patch]
func (h *TrasladoHandler) CambiarEstado(c *fiber.Ctx) error {
	var in dto.CambiarEstadoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.EstadoValido(in.Estado) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado debe ser pendiente, en_curso o completado"})
	}
	out, err := h.uc.CambiarEstado(GetUserID(c), GetEmpresaID(c), GetRol(c), c.Params("id"), in.Estado)
	if err != nil {
		return h.trasladoError(c, err)
	}
	return c.JSON(out)
}

// CambiarEstadoPago godoc
// @Summary      Cambiar el estado de pago de un traslado
// @Tags         traslados
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string  true  "id del traslado"
// @Param        body  body  dto.CambiarEstadoPagoRequest  true  "estado de pago destino"
// @Success      200   {object}  dto.TrasladoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/traslados/{id}/pago [patch]
func (h *TrasladoHandler) CambiarEstadoPago(c *fiber.Ctx) error {
	var in dto.CambiarEstadoPagoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if !entity.EstadoPagoValido(in.EstadoPago) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado_pago debe ser pendiente, efectivo o transferencia"})
	}
	out, err := h.uc.CambiarEstadoPago(GetUserID(c), GetEmpresaID(c), GetRol(c), c.Params("id"), in.EstadoPago)
	if err != nil {
		return h.trasladoError(c, err)
	}
	return c.JSON(out)
}

// SubirFoto godoc
// @Summary      Subir una foto del vehículo (multipart, campo "foto")
// @Tags         traslados
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string  true  "id del traslado"
// @Param        tipo  path      string  true  "frontal | lateral | trasera | interior"
// @Param        foto  formData  file    true  "imagen"
// @Success      200   {object}  dto.FotoSubidaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/traslados/{id}/fotos/{tipo} [post]
func (h *TrasladoHandler) SubirFoto(c *fiber.Ctx) error {
	tipo := c.Params("tipo")
	if !entity.TipoFotoValido(tipo) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "tipo debe ser frontal, lateral, trasera o interior"})
	}
	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "falta el archivo en el campo 'foto'"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "no se pudo leer el archivo"})
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	out, err := h.uc.SubirFoto(c.Context(), GetUserID(c), GetEmpresaID(c), GetRol(c),
		c.Params("id"), tipo, contentType, file, fileHeader.Size)
	if err != nil {
		return h.trasladoError(c, err)
	}
	return c.JSON(out)
}

// Comprobante godoc
// @Summary      Descargar el comprobante del traslado en PDF
// @Tags         traslados
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id  path  string  true  "id del traslado"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/traslados/{id}/comprobante [get]
func (h *TrasladoHandler) Comprobante(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.Comprobante(c.Context(), GetUserID(c), GetEmpresaID(c), GetRol(c), c.Params("id"))
	if err != nil {
		return h.trasladoError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="comprobante-`+c.Params("id")+`.pdf"`)
	return c.Send(pdfBytes)
}

// Delete godoc
// @Summary      Eliminar un traslado (solo admin, borra también sus fotos)
// @Tags         traslados
// @Security     BearerAuth
// @Param        id  path  string  true  "id del traslado"
// @Success      204
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/traslados/{id} [delete]
func (h *TrasladoHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetEmpresaID(c), GetRol(c), c.Params("id")); err != nil {
		return h.trasladoError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// trasladoError mapea los errores de dominio comunes de traslados a HTTP.
func (h *TrasladoHandler) trasladoError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "traslado no encontrado"})
	case domain.ErrForbidden:
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "no tenés acceso a este traslado"})
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
