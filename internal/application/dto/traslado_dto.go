package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTrasladoRequest alta de un traslado por el admin.
// Matricula se descarta cuando Es0KM es true (un 0km todavía no tiene chapa).
type CreateTrasladoRequest struct {
	ChoferID      string           `json:"chofer_id" validate:"required,uuid"`
	MarcaModelo   string           `json:"marca_modelo" validate:"required,min=1,max=200"`
	Matricula     string           `json:"matricula" validate:"omitempty,max=20"`
	Es0KM         bool             `json:"es_0km"`
	ImporteTotal  *decimal.Decimal `json:"importe_total,omitempty"`
	Observaciones string           `json:"observaciones" validate:"omitempty,max=1000"`
	Desde         string           `json:"desde" validate:"omitempty,max=300"`
	Hasta         string           `json:"hasta" validate:"omitempty,max=300"`
}

// CambiarEstadoRequest transición del estado operativo.
type CambiarEstadoRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente en_curso completado"`
}

// CambiarEstadoPagoRequest transición del estado de pago.
type CambiarEstadoPagoRequest struct {
	EstadoPago string `json:"estado_pago" validate:"required,oneof=pendiente efectivo transferencia"`
}

// TrasladoResponse salida de un traslado.
type TrasladoResponse struct {
	ID            string           `json:"id"`
	EmpresaID     string           `json:"empresa_id"`
	ChoferID      string           `json:"chofer_id"`
	MarcaModelo   string           `json:"marca_modelo"`
	Matricula     *string          `json:"matricula,omitempty"`
	Es0KM         bool             `json:"es_0km"`
	ImporteTotal  *decimal.Decimal `json:"importe_total,omitempty"`
	Observaciones *string          `json:"observaciones,omitempty"`
	Desde         *string          `json:"desde,omitempty"`
	Hasta         *string          `json:"hasta,omitempty"`
	Estado        string           `json:"estado"`
	EstadoPago    string           `json:"estado_pago"`
	Fotos         FotosTraslado    `json:"fotos"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// FotosTraslado URLs públicas de las cuatro fotos (null = sin subir).
type FotosTraslado struct {
	Frontal  *string `json:"frontal"`
	Lateral  *string `json:"lateral"`
	Trasera  *string `json:"trasera"`
	Interior *string `json:"interior"`
}

// TrasladoListResponse listado paginado.
type TrasladoListResponse struct {
	Items  []TrasladoResponse `json:"items"`
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
}

// ResumenTrasladosResponse conteos para las tarjetas del tablero.
type ResumenTrasladosResponse struct {
	Pendientes  int `json:"pendientes"`
	EnCurso     int `json:"en_curso"`
	Completados int `json:"completados"`
}

// FotoSubidaResponse resultado de subir una foto.
type FotoSubidaResponse struct {
	Tipo string `json:"tipo"`
	URL  string `json:"url"`
}
