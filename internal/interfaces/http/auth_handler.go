package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/viagrua/viagrua-api/internal/application/auth"
	"github.com/viagrua/viagrua-api/internal/application/dto"
	"github.com/viagrua/viagrua-api/internal/domain"
)

// AuthHandler maneja registro, login, canje de invitaciones y perfil.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Registro godoc
// @Summary      Registrar empresa y admin
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistroRequest  true  "empresa_nombre, nombre, email, password"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/auth/registro [post]
func (h *AuthHandler) Registro(c *fiber.Ctx) error {
	var in dto.RegistroRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.EmpresaNombre == "" || in.Nombre == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "empresa_nombre, nombre, email y password son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Registro(in)
	if err != nil {
		if err == domain.ErrEmailAlreadyExists {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email y password son requeridos"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if err == domain.ErrUserNotFound || err == domain.ErrUnauthorized {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ValidarInvitacion godoc
// @Summary      Consultar invitación por código (público, pantalla de canje)
// @Tags         auth
// @Produce      json
// @Param        codigo  path  string  true  "código de invitación"
// @Success      200   {object}  dto.InvitacionResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/invitaciones/{codigo} [get]
func (h *AuthHandler) ValidarInvitacion(c *fiber.Ctx) error {
	codigo := c.Params("codigo")
	out, err := h.uc.ValidarInvitacion(codigo)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitación no encontrada"})
		case domain.ErrInvitacionUsada:
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVITACION_USADA", Message: "la invitación ya fue usada"})
		case domain.ErrInvitacionExpirada:
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVITACION_EXPIRADA", Message: "la invitación está vencida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Unirse godoc
// @Summary      Canjear invitación y registrarse como chofer
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.UnirseRequest  true  "codigo, nombre, email, password"
// @Success      201   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      410   {object}  dto.ErrorResponse
// @Router       /api/auth/unirse [post]
func (h *AuthHandler) Unirse(c *fiber.Ctx) error {
	var in dto.UnirseRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Codigo == "" || in.Nombre == "" || in.Email == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "codigo, nombre, email y password son requeridos"})
	}
	if len(in.Password) < 6 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 6 caracteres"})
	}
	out, err := h.uc.Unirse(c.Context(), in)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "invitación no encontrada"})
		case domain.ErrInvitacionUsada:
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVITACION_USADA", Message: "la invitación ya fue usada"})
		case domain.ErrInvitacionExpirada:
			return c.Status(fiber.StatusGone).JSON(dto.ErrorResponse{Code: "INVITACION_EXPIRADA", Message: "la invitación está vencida"})
		case domain.ErrEmailAlreadyExists:
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "EMAIL_EXISTS", Message: "el email ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Perfil godoc
// @Summary      Perfil autenticado con plan vigente y cupo restante
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  dto.PerfilResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /api/perfil [get]
func (h *AuthHandler) Perfil(c *fiber.Ctx) error {
	out, err := h.uc.Perfil(GetUserID(c))
	if err != nil {
		if err == domain.ErrUserNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "perfil no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
