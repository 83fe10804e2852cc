package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/pkg/i18n"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// LedgerHandler maneja las peticiones HTTP de compras y ventas.
type LedgerHandler struct {
	uc *ledger.RecordEntryUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *ledger.RecordEntryUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// RecordPurchase godoc
// @Summary      Registrar compra
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordPurchaseRequest  true  "product_id, quantity, dealer_name"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchases [post]
func (h *LedgerHandler) RecordPurchase(c *fiber.Ctx) error {
	p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
	var in dto.RecordPurchaseRequest
	if err := c.BodyParser(&in); err != nil {
		metrics.MutationsTotal.WithLabelValues("purchase", metrics.ResultInvalidInput).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: p.Sprintf(i18n.MsgFieldsRequired)})
	}
	newQty, err := h.uc.RecordPurchase(c.Context(), ledger.PurchaseInput{
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		DealerName: in.DealerName,
	})
	if err != nil {
		return mutationError(c, p, "purchase", err)
	}
	metrics.MutationsTotal.WithLabelValues("purchase", metrics.ResultAccepted).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Message:   p.Sprintf(i18n.MsgPurchaseRecorded),
		ProductID: in.ProductID,
		Quantity:  newQty,
	})
}

// RecordSale godoc
// @Summary      Registrar venta
// @Tags         ledger
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordSaleRequest  true  "product_id, quantity, customer_name"
// @Success      201   {object}  dto.MutationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales [post]
func (h *LedgerHandler) RecordSale(c *fiber.Ctx) error {
	p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
	var in dto.RecordSaleRequest
	if err := c.BodyParser(&in); err != nil {
		metrics.MutationsTotal.WithLabelValues("sale", metrics.ResultInvalidInput).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: p.Sprintf(i18n.MsgFieldsRequired)})
	}
	newQty, err := h.uc.RecordSale(c.Context(), ledger.SaleInput{
		ProductID:    in.ProductID,
		Quantity:     in.Quantity,
		CustomerName: in.CustomerName,
	})
	if err != nil {
		return mutationError(c, p, "sale", err)
	}
	metrics.MutationsTotal.WithLabelValues("sale", metrics.ResultAccepted).Inc()
	return c.Status(fiber.StatusCreated).JSON(dto.MutationResponse{
		Message:   p.Sprintf(i18n.MsgSaleRecorded),
		ProductID: in.ProductID,
		Quantity:  newQty,
	})
}

// mutationError mapea errores del protocolo a HTTP. Errores de negocio llevan
// mensaje específico localizado; fallos de infraestructura devuelven un
// genérico sin filtrar detalle interno.
func mutationError(c *fiber.Ctx, p *message.Printer, kind string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.MutationsTotal.WithLabelValues(kind, metrics.ResultInvalidInput).Inc()
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: p.Sprintf(i18n.MsgFieldsRequired)})
	case errors.Is(err, domain.ErrUnknownProduct):
		metrics.MutationsTotal.WithLabelValues(kind, metrics.ResultUnknownProduct).Inc()
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "UNKNOWN_PRODUCT", Message: p.Sprintf(i18n.MsgUnknownProduct)})
	case errors.Is(err, domain.ErrInsufficientStock):
		metrics.MutationsTotal.WithLabelValues(kind, metrics.ResultInsufficientStock).Inc()
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: p.Sprintf(i18n.MsgInsufficientStock)})
	default:
		metrics.MutationsTotal.WithLabelValues(kind, metrics.ResultError).Inc()
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: p.Sprintf(i18n.MsgInternal)})
	}
}
