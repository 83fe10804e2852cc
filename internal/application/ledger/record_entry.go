package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

// RecordEntryUseCase implementa el protocolo de mutación de stock:
// actualización del agregado + asiento inmutable del ledger, en UNA
// transacción (ambos efectos o ninguno).
type RecordEntryUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	tracer      trace.Tracer
}

// NewRecordEntryUseCase construye el caso de uso.
func NewRecordEntryUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *RecordEntryUseCase {
	return &RecordEntryUseCase{
		txRunner:    txRunner,
		productRepo: productRepo,
		tracer:      otel.Tracer("ledger"),
	}
}

// PurchaseInput entrada para registrar una compra.
type PurchaseInput struct {
	ProductID  string
	Quantity   decimal.Decimal
	DealerName string
}

// SaleInput entrada para registrar una venta.
type SaleInput struct {
	ProductID    string
	Quantity     decimal.Decimal
	CustomerName string
}

// RecordPurchase incrementa el stock (creando la fila en 0 si no existe) y
// agrega el asiento de compra dentro de la misma transacción. El incremento
// no tiene riesgo de carrera (suma conmutativa), pero igual va emparejado con
// el asiento para que un fallo a mitad de camino no desincronice agregado y
// ledger. Devuelve la cantidad resultante.
func (uc *RecordEntryUseCase) RecordPurchase(ctx context.Context, input PurchaseInput) (decimal.Decimal, error) {
	ctx, span := uc.tracer.Start(ctx, "ledger.record_purchase",
		trace.WithAttributes(attribute.String("product.id", input.ProductID)))
	defer span.End()

	if err := validateMutation(input.ProductID, input.Quantity); err != nil {
		return decimal.Zero, err
	}
	if err := uc.ensureProduct(ctx, input.ProductID); err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	var newQty decimal.Decimal
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		qty, err := stockRepo.Increment(ctx, input.ProductID, input.Quantity)
		if err != nil {
			return err
		}
		newQty = qty
		return ledgerRepo.Create(ctx, &entity.LedgerEntry{
			ID:           uuid.New().String(),
			ProductID:    input.ProductID,
			Kind:         entity.EntryKindPurchase,
			Quantity:     input.Quantity,
			Counterparty: input.DealerName,
			CreatedAt:    now,
		})
	})
	if err != nil {
		span.RecordError(err)
		return decimal.Zero, err
	}
	return newQty, nil
}

// RecordSale resta stock solo si alcanza y agrega el asiento de venta dentro
// de la misma transacción. La comprobación y la resta son UNA sentencia
// condicional atómica en el repositorio: dos ventas concurrentes que juntas
// sobregirarían el stock no pueden tener éxito ambas. El asiento se escribe
// únicamente después de confirmar que la resta condicional afectó una fila.
func (uc *RecordEntryUseCase) RecordSale(ctx context.Context, input SaleInput) (decimal.Decimal, error) {
	ctx, span := uc.tracer.Start(ctx, "ledger.record_sale",
		trace.WithAttributes(attribute.String("product.id", input.ProductID)))
	defer span.End()

	if err := validateMutation(input.ProductID, input.Quantity); err != nil {
		return decimal.Zero, err
	}
	if err := uc.ensureProduct(ctx, input.ProductID); err != nil {
		return decimal.Zero, err
	}

	now := time.Now()
	var newQty decimal.Decimal
	err := uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		ledgerRepo repository.LedgerRepository,
	) error {
		qty, ok, err := stockRepo.DecrementIfAvailable(ctx, input.ProductID, input.Quantity)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrInsufficientStock
		}
		newQty = qty
		return ledgerRepo.Create(ctx, &entity.LedgerEntry{
			ID:           uuid.New().String(),
			ProductID:    input.ProductID,
			Kind:         entity.EntryKindSale,
			Quantity:     input.Quantity.Neg(),
			Counterparty: input.CustomerName,
			CreatedAt:    now,
		})
	})
	if err != nil {
		if err != domain.ErrInsufficientStock {
			span.RecordError(err)
		}
		return decimal.Zero, err
	}
	return newQty, nil
}

// validateMutation: producto requerido, cantidad entera positiva.
func validateMutation(productID string, qty decimal.Decimal) error {
	if productID == "" {
		return domain.ErrInvalidInput
	}
	if !qty.IsPositive() || !qty.IsInteger() {
		return domain.ErrInvalidInput
	}
	return nil
}

// ensureProduct valida integridad referencial antes de abrir la transacción.
func (uc *RecordEntryUseCase) ensureProduct(ctx context.Context, productID string) error {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrUnknownProduct
	}
	return nil
}
