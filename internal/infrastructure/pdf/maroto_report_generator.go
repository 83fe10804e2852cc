// Package pdf genera el reporte mensual del ledger en PDF con Maroto v2:
// una sección de compras y una de ventas, cada una con fecha, producto,
// cantidad y contraparte, más el total de unidades movidas.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	appledger "github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ appledger.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReport genera el PDF del mes y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReport(
	_ context.Context,
	month string,
	purchases, sales []*entity.LedgerEntryView,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte mensual de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(row.New(10).Add(
		text.NewCol(12, fmt.Sprintf("Reporte de inventario — %s", month), props.Text{
			Size: 14, Style: fontstyle.Bold, Align: align.Center, Color: colorPrimary,
		}),
	))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	addSection(m, "Compras", purchases, "Proveedor")
	addSection(m, "Ventas", sales, "Cliente")

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate report pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func addSection(m core.Maroto, title string, entries []*entity.LedgerEntryView, counterpartyLabel string) {
	m.AddRows(row.New(8).Add(
		text.NewCol(12, title, props.Text{Size: 11, Style: fontstyle.Bold, Color: colorPrimary}),
	))
	m.AddRows(row.New(6).Add(
		text.NewCol(3, "Fecha", headerProps()),
		text.NewCol(4, "Producto", headerProps()),
		text.NewCol(2, "Cantidad", headerPropsRight()),
		text.NewCol(3, counterpartyLabel, headerProps()),
	))

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Quantity.Abs())
		m.AddRows(row.New(5).Add(
			text.NewCol(3, e.CreatedAt.Format("2006-01-02 15:04"), cellProps()),
			text.NewCol(4, e.ProductName, cellProps()),
			text.NewCol(2, e.Quantity.Abs().String(), cellPropsRight()),
			text.NewCol(3, e.Counterparty, cellProps()),
		))
	}
	if len(entries) == 0 {
		m.AddRows(row.New(5).Add(
			text.NewCol(12, "Sin movimientos", props.Text{Size: 8, Color: colorGray}),
		))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(6).Add(
		text.NewCol(9, "Total unidades", headerPropsRight()),
		text.NewCol(3, total.String(), cellPropsRight()),
	))
}

func headerProps() props.Text {
	return props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}
}

func headerPropsRight() props.Text {
	p := headerProps()
	p.Align = align.Right
	return p
}

func cellProps() props.Text {
	return props.Text{Size: 8}
}

func cellPropsRight() props.Text {
	p := cellProps()
	p.Align = align.Right
	return p
}
