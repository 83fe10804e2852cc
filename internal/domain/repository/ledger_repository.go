package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// LedgerFilter acota la consulta del ledger. From/To es una ventana
// semiabierta [From, To); nil = sin cota. Kind vacío = todos los tipos.
type LedgerFilter struct {
	Kind      string
	ProductID string
	From      *time.Time
	To        *time.Time
	Limit     int
	Offset    int
}

// LedgerRepository define el puerto del ledger append-only.
// Los asientos se crean una vez y jamás se actualizan ni borran.
type LedgerRepository interface {
	Create(ctx context.Context, entry *entity.LedgerEntry) error

	// List devuelve asientos con nombre de producto, ordenados por
	// created_at descendente. Reconsultable: mismo filtro + offset ⇒
	// la secuencia se puede reiniciar donde se quedó.
	List(ctx context.Context, filter LedgerFilter) ([]*entity.LedgerEntryView, error)
}
