package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del ledger append-only sobre PostgreSQL
// (usable con pool o tx). Solo INSERT y SELECT: los asientos nunca se tocan.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento del ledger.
func (r *LedgerRepo) Create(ctx context.Context, entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ledger_entries (id, product_id, kind, quantity, counterparty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	counterparty := (*string)(nil)
	if entry.Counterparty != "" {
		counterparty = &entry.Counterparty
	}
	_, err := r.q.Exec(ctx, query,
		entry.ID, entry.ProductID, entry.Kind, entry.Quantity, counterparty, entry.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrUnknownProduct
		}
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// List devuelve asientos con nombre de producto según el filtro,
// ordenados por created_at descendente.
func (r *LedgerRepo) List(ctx context.Context, filter repository.LedgerFilter) ([]*entity.LedgerEntryView, error) {
	query := `
		SELECT e.id, e.product_id, p.name, e.kind, e.quantity, e.counterparty, e.created_at
		FROM ledger_entries e
		JOIN products p ON p.id = e.product_id
		WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Kind != "" {
		query += fmt.Sprintf(" AND e.kind = $%d", pos)
		args = append(args, filter.Kind)
		pos++
	}
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND e.product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND e.created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND e.created_at < $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY e.created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntryView
	for rows.Next() {
		var v entity.LedgerEntryView
		var counterparty *string
		if err := rows.Scan(&v.ID, &v.ProductID, &v.ProductName, &v.Kind, &v.Quantity, &counterparty, &v.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		if counterparty != nil {
			v.Counterparty = *counterparty
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
