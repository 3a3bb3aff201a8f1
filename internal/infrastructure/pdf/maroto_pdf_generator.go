// Package pdf implementa el render de los documentos comerciales (facturas y
// cotizaciones) usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Empresa + NIT  │  Tipo de documento + N° + Fecha   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: contacto / email / teléfono                       │
//	│  EVENTO: lugar + ventana temporal                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Descripción | Categoría | Tarifa | Total     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: componentes / tarifa de servicio / TOTAL          │
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
	"github.com/shopspring/decimal"

	"github.com/mesharis-cell/platform-api/internal/application/commercial"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAccent  = &props.Color{Red: 170, Green: 60, Blue: 20}
)

// Asegura que MarotoRenderer implementa commercial.DocumentRenderer.
var _ commercial.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer renderiza DocumentPayload a PDF con Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el renderizador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

// Render genera el PDF del documento y devuelve sus bytes.
func (g *MarotoRenderer) Render(_ context.Context, p *commercial.DocumentPayload) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(documentTitle(p), true).
		WithAuthor(p.Company.Name, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clientRow(p))
	m.AddRows(eventRow(p))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(p.LineItems) {
		m.AddRows(r)
	}
	m.AddRows(subTotalRow(p.LineItemsSubTotal))

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsRows(p) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(p))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func documentTitle(p *commercial.DocumentPayload) string {
	if p.DocumentKind == commercial.DocumentInvoice {
		return "FACTURA"
	}
	if p.Audience == commercial.AudienceBuySide {
		return "ESTIMACIÓN DE COSTOS — USO INTERNO"
	}
	return "COTIZACIÓN"
}

// headerRow: empresa (izq) y tipo + número + fecha (der).
func headerRow(p *commercial.DocumentPayload) core.Row {
	titleColor := colorPrimary
	if p.Audience == commercial.AudienceBuySide {
		titleColor = colorAccent
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(p.Company.Name, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("NIT: "+p.Company.TaxID, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(documentTitle(p), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: titleColor, Top: 1,
			}),
			text.New(p.DocumentNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+p.IssuedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// clientRow: contacto del cliente.
func clientRow(p *commercial.DocumentPayload) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(p.Contact.Name, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s   |   Dirección: %s",
				p.Contact.Email, p.Contact.Phone, p.Company.Address,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// eventRow: lugar del evento y ventana temporal.
func eventRow(p *commercial.DocumentPayload) core.Row {
	venue := p.Venue.Name
	if p.Venue.City != "" && p.Venue.City != "N/A" {
		venue = fmt.Sprintf("%s, %s", p.Venue.Name, p.Venue.City)
	}
	window := fmt.Sprintf("%s — %s",
		p.Timeline.StartsAt.Format("02/01/2006 15:04"),
		p.Timeline.EndsAt.Format("02/01/2006 15:04"))
	return row.New(12).Add(
		col.New(12).Add(
			text.New("EVENTO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Lugar: %s   |   Referencia: %s   |   Ventana: %s",
				venue, p.ReferenceID, window,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Descripción", 5, align.Left),
		h("Categoría", 2, align.Center),
		h("Tarifa Unit.", 2, align.Right),
		h("Total", 2, align.Right),
	)
}

// tableLineRows: una fila por línea; las de cortesía se marcan.
func tableLineRows(items []commercial.PayloadLineItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		desc := it.Description
		if it.BillingMode == "COMPLIMENTARY" {
			desc += " (cortesía)"
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				it.Quantity.StringFixed(0),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(5).Add(text.New(
				desc,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				strings.ToLower(it.Category),
				props.Text{Size: 8, Align: align.Center, Top: 1, Color: colorGray},
			)),
			col.New(2).Add(text.New(
				formatAmount(it.UnitRate),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				formatAmount(it.Total),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// subTotalRow: subtotal de las líneas emitidas.
func subTotalRow(subTotal decimal.Decimal) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New("Subtotal líneas:", props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 2,
		})),
		col.New(4).Add(text.New(formatAmount(subTotal), props.Text{
			Size: 8, Align: align.Right, Top: 1, Right: 1,
		})),
	)
}

// totalsRows: bloque de totales. El total final de un documento lado-compra es
// el subtotal de costos, sin margen.
func totalsRows(p *commercial.DocumentPayload) []core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 2})
	}
	value := func(d decimal.Decimal) core.Component {
		return text.New(formatAmount(d), props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	pair := func(l string, d decimal.Decimal) core.Row {
		return row.New(6).Add(
			col.New(4),
			col.New(5).Add(label(l)),
			col.New(3).Add(value(d)),
		)
	}

	rows := []core.Row{
		pair("Operación base:", p.Pricing.BaseOpsTotal),
		pair("Transporte:", p.Pricing.TransportTotal),
		pair("Catálogo:", p.Pricing.CatalogTotal),
		pair("Servicios adicionales:", p.Pricing.CustomTotal),
		pair("Tarifa de servicio:", p.Pricing.ServiceFee),
		pair("Subtotal logístico:", p.Pricing.SubTotal),
	}

	grandLabel := "TOTAL:"
	if p.DocumentKind == commercial.DocumentCostEstimate {
		grandLabel = "TOTAL ESTIMADO:"
	}
	rows = append(rows, row.New(9).Add(
		col.New(4),
		col.New(5).Add(text.New(grandLabel, props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 1,
		})),
		col.New(3).Add(text.New(formatAmount(p.Pricing.FinalTotal), props.Text{
			Style: fontstyle.Bold, Size: 11, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 1,
		})),
	))
	return rows
}

// footerRow: leyenda según el tipo de documento.
func footerRow(p *commercial.DocumentPayload) core.Row {
	legend := "Esta cotización es válida por 15 días y no constituye reserva de inventario."
	if p.DocumentKind == commercial.DocumentInvoice {
		legend = "Conserve este documento como soporte de la operación comercial."
	}
	if p.Audience == commercial.AudienceBuySide {
		legend = "Documento de uso interno: montos lado-compra sin margen aplicado."
	}
	return row.New(8).Add(col.New(12).Add(
		text.New(legend, props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// formatAmount: "$1.234,56" (puntos de miles, coma decimal).
func formatAmount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i := 0; i < n; i++ {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, intPart[i])
	}
	out := "$" + string(buf) + "," + decPart
	if neg {
		return "-" + out
	}
	return out
}
