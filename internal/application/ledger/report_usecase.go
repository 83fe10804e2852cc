package ledger

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

const (
	defaultReportLimit = 200
	reportPageSize     = 500
)

// ReportUseCase consultas de solo lectura: stock actual y reportes del
// ledger. Lee fuera de transacción; bajo escrituras concurrentes puede ver
// un snapshot levemente desfasado, solo la ruta de escritura exige atomicidad.
type ReportUseCase struct {
	stockRepo   repository.StockRepository
	ledgerRepo  repository.LedgerRepository
	productRepo repository.ProductRepository
	pdf         ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(
	stockRepo repository.StockRepository,
	ledgerRepo repository.LedgerRepository,
	productRepo repository.ProductRepository,
	pdf ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		stockRepo:   stockRepo,
		ledgerRepo:  ledgerRepo,
		productRepo: productRepo,
		pdf:         pdf,
	}
}

// QueryStock lista productos con cantidad actual (0 si nunca hubo mutación),
// ordenado por nombre. productID vacío = todos.
func (uc *ReportUseCase) QueryStock(ctx context.Context, productID string) ([]*entity.StockView, error) {
	return uc.stockRepo.ListView(ctx, productID)
}

// LedgerQuery filtros de consulta del ledger.
type LedgerQuery struct {
	Kind      string // purchase, sale o vacío (todos)
	ProductID string
	From      *time.Time // ventana semiabierta [From, To)
	To        *time.Time
	Limit     int
	Offset    int
}

// QueryLedger devuelve asientos del ledger según filtros, más reciente primero.
func (uc *ReportUseCase) QueryLedger(ctx context.Context, q LedgerQuery) ([]*entity.LedgerEntryView, error) {
	switch q.Kind {
	case "", entity.EntryKindPurchase, entity.EntryKindSale:
	default:
		return nil, domain.ErrInvalidInput
	}
	if q.Limit <= 0 || q.Limit > 1000 {
		q.Limit = defaultReportLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return uc.ledgerRepo.List(ctx, repository.LedgerFilter{
		Kind:      q.Kind,
		ProductID: q.ProductID,
		From:      q.From,
		To:        q.To,
		Limit:     q.Limit,
		Offset:    q.Offset,
	})
}

// DailyReport compras y ventas del día de hoy (hora local del servidor).
func (uc *ReportUseCase) DailyReport(ctx context.Context) (purchases, sales []*entity.LedgerEntryView, err error) {
	now := time.Now()
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 0, 1)
	return uc.splitReport(ctx, from, to)
}

// MonthlyReport compras y ventas del mes indicado ("YYYY-MM").
func (uc *ReportUseCase) MonthlyReport(ctx context.Context, month string) (purchases, sales []*entity.LedgerEntryView, err error) {
	from, to, err := MonthWindow(month, time.Local)
	if err != nil {
		return nil, nil, err
	}
	return uc.splitReport(ctx, from, to)
}

// MonthlyReportPDF genera el reporte mensual en PDF.
func (uc *ReportUseCase) MonthlyReportPDF(ctx context.Context, month string) ([]byte, error) {
	purchases, sales, err := uc.MonthlyReport(ctx, month)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateMonthlyReport(ctx, month, purchases, sales)
}

func (uc *ReportUseCase) splitReport(ctx context.Context, from, to time.Time) (purchases, sales []*entity.LedgerEntryView, err error) {
	purchases, err = uc.collectWindow(ctx, entity.EntryKindPurchase, from, to)
	if err != nil {
		return nil, nil, err
	}
	sales, err = uc.collectWindow(ctx, entity.EntryKindSale, from, to)
	if err != nil {
		return nil, nil, err
	}
	return purchases, sales, nil
}

// collectWindow trae la ventana completa paginando hasta una página corta.
// Los reportes de periodo no truncan; el tope configurable aplica solo a la
// consulta libre del ledger.
func (uc *ReportUseCase) collectWindow(ctx context.Context, kind string, from, to time.Time) ([]*entity.LedgerEntryView, error) {
	var all []*entity.LedgerEntryView
	for offset := 0; ; offset += reportPageSize {
		page, err := uc.ledgerRepo.List(ctx, repository.LedgerFilter{
			Kind:   kind,
			From:   &from,
			To:     &to,
			Limit:  reportPageSize,
			Offset: offset,
		})
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < reportPageSize {
			return all, nil
		}
	}
}

// MonthWindow convierte "YYYY-MM" en la ventana semiabierta
// [inicio de mes, inicio del mes siguiente).
func MonthWindow(month string, loc *time.Location) (from, to time.Time, err error) {
	t, err := time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return time.Time{}, time.Time{}, domain.ErrInvalidInput
	}
	return t, t.AddDate(0, 1, 0), nil
}
