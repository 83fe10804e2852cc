package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de stock. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get obtiene el stock actual de un producto; cantidad 0 si no existe fila.
func (r *StockRepo) Get(ctx context.Context, productID string) (*entity.StockLevel, error) {
	query := `
		SELECT product_id, quantity, updated_at
		FROM stock_levels WHERE product_id = $1`
	var s entity.StockLevel
	err := r.q.QueryRow(ctx, query, productID).Scan(&s.ProductID, &s.Quantity, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockLevel{ProductID: productID, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// Increment suma qty al stock con un upsert atómico (crea la fila si no
// existe) y devuelve la cantidad resultante. Una sola sentencia: no hay
// ventana read-then-write.
func (r *StockRepo) Increment(ctx context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, error) {
	query := `
		INSERT INTO stock_levels (product_id, quantity, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (product_id)
		DO UPDATE SET quantity = stock_levels.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING quantity`
	var newQty decimal.Decimal
	if err := r.q.QueryRow(ctx, query, productID, qty).Scan(&newQty); err != nil {
		return decimal.Zero, fmt.Errorf("increment stock: %w", err)
	}
	return newQty, nil
}

// DecrementIfAvailable resta qty solo si la cantidad actual alcanza.
// El WHERE quantity >= qty hace de la comprobación y la resta UNA sentencia
// atómica: cero filas afectadas significa stock insuficiente (o fila ausente)
// y nada se muta. Jamás leer-comparar-escribir en dos viajes.
func (r *StockRepo) DecrementIfAvailable(ctx context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, bool, error) {
	query := `
		UPDATE stock_levels
		SET quantity = quantity - $2, updated_at = now()
		WHERE product_id = $1 AND quantity >= $2
		RETURNING quantity`
	var newQty decimal.Decimal
	err := r.q.QueryRow(ctx, query, productID, qty).Scan(&newQty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, false, nil
		}
		return decimal.Zero, false, fmt.Errorf("decrement stock: %w", err)
	}
	return newQty, true, nil
}

// ListView lista productos con su cantidad actual (LEFT JOIN, ausente = 0),
// ordenado por nombre. productID vacío = todos.
func (r *StockRepo) ListView(ctx context.Context, productID string) ([]*entity.StockView, error) {
	query := `
		SELECT p.id, p.name, p.unit_measure, COALESCE(s.quantity, 0), s.updated_at
		FROM products p
		LEFT JOIN stock_levels s ON s.product_id = p.id`
	args := []any{}
	if productID != "" {
		query += " WHERE p.id = $1"
		args = append(args, productID)
	}
	query += " ORDER BY p.name"

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockView
	for rows.Next() {
		var v entity.StockView
		if err := rows.Scan(&v.ProductID, &v.Name, &v.UnitMeasure, &v.Quantity, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock row: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
