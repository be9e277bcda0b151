// Package pdf implementa el relatório de estoque en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título              │  Fecha + usuario             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: N produtos | N em alerta                           │
//	│  ALERTAS: Produto | Atual | Mínimo                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Produto | Unid. | Validade | Mínimo | Atual | Status │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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

	"github.com/jhoicas/sistema-estoque/internal/application/dto"
	"github.com/jhoicas/sistema-estoque/internal/application/reports"
	"github.com/jhoicas/sistema-estoque/pkg/format"
)

var _ reports.StockReportRenderer = (*StockReportRenderer)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 190, Green: 30, Blue: 45}
)

// StockReportRenderer implementa reports.StockReportRenderer usando Maroto v2.
type StockReportRenderer struct{}

// NewStockReportRenderer construye el generador.
func NewStockReportRenderer() *StockReportRenderer { return &StockReportRenderer{} }

func (g *StockReportRenderer) Format() string      { return "pdf" }
func (g *StockReportRenderer) ContentType() string { return "application/pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *StockReportRenderer) Render(_ context.Context, report *dto.StockReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(report.Title, true).
		WithAuthor(nonEmpty(report.GeneratedBy, "sistema-estoque"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))

	if len(report.Alerts) > 0 {
		m.AddRows(sectionTitleRow("ALERTAS DE ESTOQUE BAIXO", colorAlert))
		for _, p := range report.Alerts {
			m.AddRows(alertRow(p))
		}
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, p := range report.Products {
		m.AddRows(productRow(p))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha + usuario (der).
func headerRow(report *dto.StockReportDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New(report.Title, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(5).Add(
			text.New("Gerado em "+format.DateTime(report.GeneratedAt), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("por "+nonEmpty(report.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report *dto.StockReportDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("%s produtos cadastrados   |   %s em alerta",
			format.Quantity(int64(len(report.Products))),
			format.Quantity(int64(len(report.Alerts))),
		), props.Text{Size: 9, Top: 2}),
	))
}

func sectionTitleRow(title string, color *props.Color) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: color, Top: 2}),
	))
}

func alertRow(p dto.ProductResponse) core.Row {
	return row.New(5).Add(
		col.New(6).Add(text.New(p.Name, props.Text{Size: 8, Left: 2})),
		col.New(6).Add(text.New(
			fmt.Sprintf("atual %s %s / mínimo %s", format.Quantity(p.CurrentStock), p.Unit, format.Quantity(p.MinimumStock)),
			props.Text{Size: 8, Align: align.Right, Color: colorAlert},
		)),
	)
}

// tableHeaderRow: cabecera de la tabla de productos.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produto", 4, align.Left),
		h("Unid.", 1, align.Center),
		h("Validade", 2, align.Center),
		h("Mínimo", 2, align.Right),
		h("Atual", 2, align.Right),
		h("Status", 1, align.Center),
	)
}

// productRow: una fila por producto.
func productRow(p dto.ProductResponse) core.Row {
	status, color := "OK", colorGray
	if p.LowStock {
		status, color = "Baixo", colorAlert
	}
	return row.New(6).Add(
		col.New(4).Add(text.New(p.Name, props.Text{Size: 8, Top: 1, Left: 1})),
		col.New(1).Add(text.New(p.Unit, props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(format.Date(p.ExpirationDate), props.Text{Size: 8, Align: align.Center, Top: 1})),
		col.New(2).Add(text.New(format.Quantity(p.MinimumStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(2).Add(text.New(format.Quantity(p.CurrentStock), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		col.New(1).Add(text.New(status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: color})),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
