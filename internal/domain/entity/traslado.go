package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados operativos de un traslado.
const (
	EstadoPendiente  = "pendiente"
	EstadoEnCurso    = "en_curso"
	EstadoCompletado = "completado"
)

// Estados de pago de un traslado.
const (
	PagoPendiente     = "pendiente"
	PagoEfectivo      = "efectivo"
	PagoTransferencia = "transferencia"
)

// EstadoValido informa si s es un estado operativo reconocido.
func EstadoValido(s string) bool {
	return s == EstadoPendiente || s == EstadoEnCurso || s == EstadoCompletado
}

// EstadoPagoValido informa si s es un estado de pago reconocido.
func EstadoPagoValido(s string) bool {
	return s == PagoPendiente || s == PagoEfectivo || s == PagoTransferencia
}

// Tipos de foto admitidos para un traslado. Coinciden con las columnas foto_*.
const (
	FotoFrontal  = "frontal"
	FotoLateral  = "lateral"
	FotoTrasera  = "trasera"
	FotoInterior = "interior"
)

// TipoFotoValido informa si s es un tipo de foto reconocido.
func TipoFotoValido(s string) bool {
	return s == FotoFrontal || s == FotoLateral || s == FotoTrasera || s == FotoInterior
}

// Traslado representa un trabajo de transporte de vehículo asignado a un chofer.
// Matricula es nil para vehículos 0km. Las fotos son URLs públicas del storage.
type Traslado struct {
	ID            string
	EmpresaID     string
	ChoferID      string
	MarcaModelo   string
	Matricula     *string
	Es0KM         bool
	ImporteTotal  *decimal.Decimal
	Observaciones *string
	Desde         *string
	Hasta         *string
	Estado        string // pendiente, en_curso, completado
	EstadoPago    string // pendiente, efectivo, transferencia

	FotoFrontalURL  *string
	FotoLateralURL  *string
	FotoTraseraURL  *string
	FotoInteriorURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResumenTraslados conteos por estado para el tablero.
type ResumenTraslados struct {
	Pendientes  int
	EnCurso     int
	Completados int
}
