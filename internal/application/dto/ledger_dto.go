package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RecordPurchaseRequest cuerpo de POST /api/purchases.
type RecordPurchaseRequest struct {
	ProductID  string          `json:"product_id"`
	Quantity   decimal.Decimal `json:"quantity"`
	DealerName string          `json:"dealer_name"`
}

// RecordSaleRequest cuerpo de POST /api/sales.
type RecordSaleRequest struct {
	ProductID    string          `json:"product_id"`
	Quantity     decimal.Decimal `json:"quantity"`
	CustomerName string          `json:"customer_name"`
}

// MutationResponse respuesta de una compra o venta aceptada.
type MutationResponse struct {
	Message   string          `json:"message"`
	ProductID string          `json:"product_id"`
	Quantity  decimal.Decimal `json:"quantity"` // cantidad resultante
}

// StockRowResponse fila de GET /api/stock y GET /api/products.
type StockRowResponse struct {
	ProductID   string          `json:"product_id"`
	Name        string          `json:"display_name"`
	UnitMeasure string          `json:"unit"`
	Quantity    decimal.Decimal `json:"stock"`
	UpdatedAt   *time.Time      `json:"updated_at,omitempty"`
}

// LedgerEntryResponse fila de los reportes del ledger.
type LedgerEntryResponse struct {
	ID           string          `json:"id"`
	ProductName  string          `json:"display_name"`
	Kind         string          `json:"kind"`
	Quantity     decimal.Decimal `json:"quantity"`
	Counterparty string          `json:"counterparty,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// ReportResponse respuesta de GET /api/reports/daily y /api/reports/monthly.
type ReportResponse struct {
	Purchases []LedgerEntryResponse `json:"purchases"`
	Sales     []LedgerEntryResponse `json:"sales"`
}
