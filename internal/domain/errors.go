package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// Cupo mensual de traslados.
	ErrLimiteTraslados = errors.New("límite de traslados alcanzado")

	// Invitaciones de choferes.
	ErrInvitacionUsada    = errors.New("el código de invitación ya fue utilizado")
	ErrInvitacionExpirada = errors.New("el código de invitación ha expirado")
	ErrPlanSinChoferes    = errors.New("el plan actual no permite invitar choferes")

	// Suscripciones / pagos.
	ErrPlanInvalido   = errors.New("plan inválido")
	ErrPagoYaAplicado = errors.New("el pago ya fue procesado")
	ErrPasarelaPago   = errors.New("fallo consultando la pasarela de pago")
)
