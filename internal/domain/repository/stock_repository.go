package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// StockRepository define el puerto para leer y mutar el stock agregado.
// Las mutaciones se usan dentro de transacciones para garantizar consistencia
// con el ledger.
type StockRepository interface {
	// Get obtiene el stock actual; cantidad 0 si no existe fila.
	Get(ctx context.Context, productID string) (*entity.StockLevel, error)

	// Increment suma qty al stock (crea la fila en 0 si no existe) y
	// devuelve la cantidad resultante. Upsert atómico, sin read-then-write.
	Increment(ctx context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, error)

	// DecrementIfAvailable resta qty solo si la cantidad actual alcanza.
	// La comparación y la resta son UNA sola sentencia atómica: dos ventas
	// concurrentes nunca pueden sobregirar el stock. Devuelve ok=false sin
	// tocar nada cuando no hay stock suficiente (o no existe la fila).
	DecrementIfAvailable(ctx context.Context, productID string, qty decimal.Decimal) (decimal.Decimal, bool, error)

	// ListView lista productos con su cantidad actual (LEFT JOIN, ausente = 0),
	// ordenado por nombre. productID vacío = todos.
	ListView(ctx context.Context, productID string) ([]*entity.StockView, error)
}
