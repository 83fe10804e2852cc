package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de asiento del ledger.
const (
	EntryKindPurchase = "purchase" // compra: delta positivo
	EntryKindSale     = "sale"     // venta: delta negativo
)

// LedgerEntry es el registro inmutable de un evento de inventario.
// Se inserta una sola vez por mutación aceptada y nunca se actualiza ni borra.
type LedgerEntry struct {
	ID           string
	ProductID    string
	Kind         string          // purchase | sale
	Quantity     decimal.Decimal // delta con signo: + compra, - venta
	Counterparty string          // nombre del proveedor o cliente (opcional)
	CreatedAt    time.Time
}

// LedgerEntryView es la fila de reporte: asiento + nombre del producto.
type LedgerEntryView struct {
	ID           string
	ProductID    string
	ProductName  string
	Kind         string
	Quantity     decimal.Decimal
	Counterparty string
	CreatedAt    time.Time
}
