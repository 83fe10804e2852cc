package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/pkg/i18n"
)

// ReportHandler maneja los reportes del ledger (diario, mensual, PDF, consulta libre).
type ReportHandler struct {
	uc *ledger.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *ledger.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily godoc
// @Summary      Reporte del día: compras y ventas de hoy
// @Tags         reports
// @Produce      json
// @Success      200  {object}  dto.ReportResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/reports/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	purchases, sales, err := h.uc.DailyReport(c.Context())
	if err != nil {
		return reportError(c, err, i18n.MsgInternal)
	}
	return c.JSON(dto.ReportResponse{
		Purchases: toEntryRows(purchases),
		Sales:     toEntryRows(sales),
	})
}

// Monthly godoc
// @Summary      Reporte mensual: compras y ventas del mes YYYY-MM
// @Tags         reports
// @Produce      json
// @Param        month  query  string  true  "Mes en formato YYYY-MM"
// @Success      200  {object}  dto.ReportResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly [get]
func (h *ReportHandler) Monthly(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_MONTH", Message: p.Sprintf(i18n.MsgMonthRequired)})
	}
	purchases, sales, err := h.uc.MonthlyReport(c.Context(), month)
	if err != nil {
		return reportError(c, err, i18n.MsgMonthRequired)
	}
	return c.JSON(dto.ReportResponse{
		Purchases: toEntryRows(purchases),
		Sales:     toEntryRows(sales),
	})
}

// MonthlyPDF godoc
// @Summary      Reporte mensual en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        month  query  string  true  "Mes en formato YYYY-MM"
// @Success      200  {file}    byte
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/monthly/pdf [get]
func (h *ReportHandler) MonthlyPDF(c *fiber.Ctx) error {
	month := c.Query("month")
	if month == "" {
		p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_MONTH", Message: p.Sprintf(i18n.MsgMonthRequired)})
	}
	pdfBytes, err := h.uc.MonthlyReportPDF(c.Context(), month)
	if err != nil {
		return reportError(c, err, i18n.MsgMonthRequired)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="ledger-`+month+`.pdf"`)
	return c.Send(pdfBytes)
}

// Ledger godoc
// @Summary      Consulta libre del ledger
// @Tags         reports
// @Produce      json
// @Param        kind        query  string  false  "purchase | sale"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        month       query  string  false  "Mes YYYY-MM"
// @Param        limit       query  int     false  "Límite"  default(200)
// @Param        offset      query  int     false  "Offset"  default(0)
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/ledger [get]
func (h *ReportHandler) Ledger(c *fiber.Ctx) error {
	q := ledger.LedgerQuery{
		Kind:      c.Query("kind"),
		ProductID: c.Query("product_id"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}
	if month := c.Query("month"); month != "" {
		from, to, err := ledger.MonthWindow(month, time.Local)
		if err != nil {
			return reportError(c, err, i18n.MsgMonthRequired)
		}
		q.From, q.To = &from, &to
	}
	entries, err := h.uc.QueryLedger(c.Context(), q)
	if err != nil {
		return reportError(c, err, i18n.MsgInvalidKind)
	}
	return c.JSON(toEntryRows(entries))
}

// reportError mapea el error a estatus; invalidMsg es el mensaje localizado
// para el campo que falló la validación.
func reportError(c *fiber.Ctx, err error, invalidMsg string) error {
	p := i18n.Printer(c.Get(fiber.HeaderAcceptLanguage))
	if errors.Is(err, domain.ErrInvalidInput) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: p.Sprintf(invalidMsg)})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: p.Sprintf(i18n.MsgInternal)})
}

func toEntryRows(entries []*entity.LedgerEntryView) []dto.LedgerEntryResponse {
	rows := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, dto.LedgerEntryResponse{
			ID:           e.ID,
			ProductName:  e.ProductName,
			Kind:         e.Kind,
			Quantity:     e.Quantity,
			Counterparty: e.Counterparty,
			CreatedAt:    e.CreatedAt,
		})
	}
	return rows
}
