package http

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jhoicas/stock-ledger-api/internal/application/ledger"
	"github.com/jhoicas/stock-ledger-api/pkg/metrics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RecordEntry *ledger.RecordEntryUseCase
	Reports     *ledger.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(metricsMiddleware())

	// Prometheus
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	stockHandler := NewStockHandler(deps.Reports)
	api.Get("/products", stockHandler.ListProducts)
	api.Get("/stock", stockHandler.GetStock)

	ledgerHandler := NewLedgerHandler(deps.RecordEntry)
	api.Post("/purchases", ledgerHandler.RecordPurchase)
	api.Post("/sales", ledgerHandler.RecordSale)

	reportHandler := NewReportHandler(deps.Reports)
	api.Get("/ledger", reportHandler.Ledger)
	reports := api.Group("/reports")
	reports.Get("/daily", reportHandler.Daily)
	reports.Get("/monthly", reportHandler.Monthly)
	reports.Get("/monthly/pdf", reportHandler.MonthlyPDF)
}

// metricsMiddleware observa la duración de cada petición con la plantilla de
// ruta (no el path crudo, para no explotar la cardinalidad).
func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		path := c.Route().Path
		if path == "/metrics" {
			return err
		}
		status := c.Response().StatusCode()
		metrics.RequestDuration.
			WithLabelValues(c.Method(), path, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())
		return err
	}
}
