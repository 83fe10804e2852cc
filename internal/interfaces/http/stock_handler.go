package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/pkg/i18n"
)

// StockHandler maneja las consultas de catálogo y stock (solo lectura).
type StockHandler struct {
	uc *ledger.ReportUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *ledger.ReportUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListProducts godoc
// @Summary      Listar productos con stock actual
// @Tags         stock
// @Produce      json
// @Success      200  {array}   dto.StockRowResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *StockHandler) ListProducts(c *fiber.Ctx) error {
	return h.stock(c, "")
}

// GetStock godoc
// @Summary      Consultar stock (opcionalmente de un producto)
// @Tags         stock
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {array}   dto.StockRowResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) GetStock(c *fiber.Ctx) error {
	return h.stock(c, c.Query("product_id"))
}

func (h *StockHandler) stock(c *fiber.Ctx, productID string) error {
	views, err := h.uc.QueryStock(c.Context(), productID)
	if err != nil {
		p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: p.Sprintf(i18n.MsgInternal)})
	}
	return c.JSON(toStockRows(views))
}

func toStockRows(views []*entity.StockView) []dto.StockRowResponse {
	rows := make([]dto.StockRowResponse, 0, len(views))
	for _, v := range views {
		rows = append(rows, dto.StockRowResponse{
			ProductID:   v.ProductID,
			Name:        v.Name,
			UnitMeasure: v.UnitMeasure,
			Quantity:    v.Quantity,
			UpdatedAt:   v.UpdatedAt,
		})
	}
	return rows
}
