package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa la cantidad agregada actual de un producto
// (vista materializada de la suma de deltas del ledger).
// Invariante: Quantity >= 0 siempre; lo garantiza el protocolo de mutación,
// el CHECK de la tabla es solo defensa en profundidad.
type StockLevel struct {
	ProductID string
	Quantity  decimal.Decimal
	UpdatedAt time.Time
}

// StockView es la fila de consulta de stock: producto + cantidad actual.
// Un producto sin fila de stock se lee como cantidad 0.
type StockView struct {
	ProductID   string
	Name        string
	UnitMeasure string
	Quantity    decimal.Decimal
	UpdatedAt   *time.Time
}
