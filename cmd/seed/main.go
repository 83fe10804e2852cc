// Seed del catálogo de productos. Los productos se crean fuera del servicio:
// este comando es la única vía para darlos de alta o renombrarlos.
//
// Uso: go run ./cmd/seed [archivo.json]
//
// El archivo es un arreglo [{"id": "...", "name": "...", "unit": "..."}];
// sin argumento se cargan los productos de ejemplo.
package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/postgres"
	"github.com/jhoicas/stock-ledger-api/pkg/config"
	"github.com/jhoicas/stock-ledger-api/pkg/logger"
)

type seedProduct struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Unit string `json:"unit"`
}

var defaultProducts = []seedProduct{
	{ID: "P-001", Name: "गहू (Trigo)", Unit: "quintal"},
	{ID: "P-002", Name: "तांदूळ (Arroz)", Unit: "quintal"},
	{ID: "P-003", Name: "साखर (Azúcar)", Unit: "kg"},
	{ID: "P-004", Name: "तूर डाळ (Lenteja)", Unit: "kg"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	products := defaultProducts
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatal().Err(err).Str("file", os.Args[1]).Msg("leer archivo de seed")
		}
		products = nil
		if err := json.Unmarshal(data, &products); err != nil {
			log.Fatal().Err(err).Msg("parsear archivo de seed")
		}
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	repo := postgres.NewProductRepository(pool)
	for _, p := range products {
		if p.ID == "" || p.Name == "" {
			log.Warn().Str("id", p.ID).Msg("producto sin id o nombre, omitido")
			continue
		}
		err := repo.Upsert(ctx, &entity.Product{ID: p.ID, Name: p.Name, UnitMeasure: p.Unit})
		if err != nil {
			log.Fatal().Err(err).Str("id", p.ID).Msg("upsert producto")
		}
		log.Info().Str("id", p.ID).Str("name", p.Name).Msg("producto sembrado")
	}
	log.Info().Int("count", len(products)).Msg("seed completado")
}
