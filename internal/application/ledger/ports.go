package ledger

import (
	"context"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la actualización del agregado
// y el asiento del ledger se confirmen juntos o ninguno (unidad de trabajo).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
	) error) error
}

// ReportPDFGenerator genera la representación PDF del reporte mensual.
type ReportPDFGenerator interface {
	GenerateMonthlyReport(ctx context.Context, month string, purchases, sales []*entity.LedgerEntryView) ([]byte, error)
}
