// Package pdf implementa la generación del comprobante de traslado en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa  │  COMPROBANTE DE TRASLADO + Fecha         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  VEHÍCULO: Marca/Modelo + Matrícula (o 0KM)                  │
//	│  RUTA: Origen → Destino                                      │
//	│  CHOFER: Nombre + Email                                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ESTADO: operativo + pago                                    │
//	│  IMPORTE TOTAL                                               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Observaciones + leyenda                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/viagrua/viagrua-api/internal/application/traslados"
	"github.com/viagrua/viagrua-api/internal/domain/entity"
)

var _ traslados.ComprobanteGenerator = (*MarotoComprobanteGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 194, Green: 65, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoComprobanteGenerator implementa traslados.ComprobanteGenerator usando Maroto v2.
type MarotoComprobanteGenerator struct{}

// NewMarotoComprobanteGenerator construye el generador.
func NewMarotoComprobanteGenerator() *MarotoComprobanteGenerator {
	return &MarotoComprobanteGenerator{}
}

// GenerarComprobante genera el PDF del comprobante y devuelve sus bytes.
func (g *MarotoComprobanteGenerator) GenerarComprobante(
	_ context.Context,
	traslado *entity.Traslado,
	empresa *entity.Empresa,
	chofer *entity.Perfil,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Traslado", true).
		WithAuthor(empresa.Nombre, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(traslado, empresa))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(vehiculoRow(traslado))
	m.AddRows(rutaRow(traslado))
	m.AddRows(choferRow(chofer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(estadoRow(traslado))
	m.AddRows(importeRow(traslado))
	if traslado.Observaciones != nil && *traslado.Observaciones != "" {
		m.AddRows(observacionesRow(*traslado.Observaciones))
	}
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(leyendaRow(traslado))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: empresa (izq) y número de comprobante + fecha (der).
func headerRow(traslado *entity.Traslado, empresa *entity.Empresa) core.Row {
	fecha := traslado.CreatedAt.Format("02/01/2006")
	return row.New(18).Add(
		col.New(7).Add(
			text.New(empresa.Nombre, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Traslado de vehículos", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("COMPROBANTE DE TRASLADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("N° "+corto(traslado.ID), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// vehiculoRow: marca/modelo y matrícula (o 0KM).
func vehiculoRow(traslado *entity.Traslado) core.Row {
	matricula := "0KM (sin matrícula)"
	if !traslado.Es0KM && traslado.Matricula != nil {
		matricula = *traslado.Matricula
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("VEHÍCULO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   Matrícula: %s", traslado.MarcaModelo, matricula),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// rutaRow: origen y destino del traslado.
func rutaRow(traslado *entity.Traslado) core.Row {
	desde := valorOGuion(traslado.Desde)
	hasta := valorOGuion(traslado.Hasta)
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RUTA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Desde: %s   |   Hasta: %s", desde, hasta),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// choferRow: datos del chofer asignado.
func choferRow(chofer *entity.Perfil) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CHOFER ASIGNADO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", chofer.NombreCompleto, chofer.Email),
				props.Text{Size: 9, Top: 7}),
		),
	)
}

// estadoRow: estado operativo y de pago.
func estadoRow(traslado *entity.Traslado) core.Row {
	return row.New(10).Add(
		col.New(6).Add(
			text.New("Estado: "+etiquetaEstado(traslado.Estado), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New("Pago: "+etiquetaPago(traslado.EstadoPago), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 2,
			}),
		),
	)
}

// importeRow: importe total destacado.
func importeRow(traslado *entity.Traslado) core.Row {
	importe := "—"
	if traslado.ImporteTotal != nil {
		importe = "$" + formatMoney(traslado.ImporteTotal.StringFixed(0))
	}
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(
			text.New("IMPORTE TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New(importe, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 2, Right: 1,
			}),
		),
	)
}

// observacionesRow: notas libres del traslado.
func observacionesRow(obs string) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("OBSERVACIONES", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(obs, props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// leyendaRow: referencia completa del traslado al pie.
func leyendaRow(traslado *entity.Traslado) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(
				"Comprobante generado por ViaGrúa. Referencia interna: "+traslado.ID,
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// corto devuelve el primer segmento del UUID, suficiente como número visible.
func corto(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return strings.ToUpper(id[:i])
	}
	return strings.ToUpper(id)
}

func valorOGuion(s *string) string {
	if s != nil && *s != "" {
		return *s
	}
	return "—"
}

func etiquetaEstado(estado string) string {
	switch estado {
	case entity.EstadoPendiente:
		return "Pendiente"
	case entity.EstadoEnCurso:
		return "En curso"
	case entity.EstadoCompletado:
		return "Completado"
	}
	return estado
}

func etiquetaPago(pago string) string {
	switch pago {
	case entity.PagoPendiente:
		return "Pendiente"
	case entity.PagoEfectivo:
		return "Efectivo"
	case entity.PagoTransferencia:
		return "Transferencia"
	}
	return pago
}

// formatMoney inserta puntos de miles en un string numérico sin decimales.
// Ej: "25000" → "25.000"
func formatMoney(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
