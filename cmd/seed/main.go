// seed puebla el directorio de datos con catálogos e inventario de
// demostración para levantar el tablero en local sin capturar todo a mano.
//
// Uso: go run ./cmd/seed [data-dir]
// Por defecto escribe en ./data.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	appinventory "github.com/zogen/backoffice-api/internal/application/inventory"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	"github.com/zogen/backoffice-api/internal/infrastructure/kvstore"
	"github.com/zogen/backoffice-api/pkg/idgen"
	"github.com/zogen/backoffice-api/pkg/logger"
)

func main() {
	dataDir := "./data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}

	log := logger.New(logger.Config{Env: "development", Level: "info"})

	store, err := kvstore.New(dataDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir almacenamiento: %v\n", err)
		os.Exit(1)
	}

	productRepo := kvstore.NewProductRepository(store)
	warehouseRepo := kvstore.NewWarehouseRepository(store)
	clientRepo := kvstore.NewClientRepository(store)
	itemRepo := kvstore.NewInventoryItemRepository(store)
	movementRepo := kvstore.NewMovementRepository(store)

	now := time.Now()

	warehouses := []*entity.Warehouse{
		{ID: "alm-cdmx", Name: "Almacén CDMX", Location: "Ciudad de México", CreatedAt: now},
		{ID: "alm-gdl", Name: "Almacén Guadalajara", Location: "Guadalajara, Jalisco", CreatedAt: now},
	}
	for _, w := range warehouses {
		if err := warehouseRepo.Create(w); err != nil {
			log.Warn().Err(err).Str("id", w.ID).Msg("almacén ya existe, se omite")
		}
	}

	products := []*entity.Product{
		{ID: "prod-pcr-kit", Name: "Kit PCR COVID-19", Price: decimal.NewFromInt(850), Type: entity.ProductTypeReactivo, Description: "Kit de 96 reacciones", CreatedAt: now},
		{ID: "prod-glucosa", Name: "Reactivo de glucosa", Price: decimal.NewFromInt(320), Type: entity.ProductTypeReactivo, CreatedAt: now},
		{ID: "prod-centrifuga", Name: "Centrífuga de mesa", Price: decimal.NewFromInt(18500), Type: entity.ProductTypeEquipo, CreatedAt: now},
	}
	for _, p := range products {
		if err := productRepo.Create(p); err != nil {
			log.Warn().Err(err).Str("id", p.ID).Msg("producto ya existe, se omite")
		}
	}

	clients := []*entity.Client{
		{ID: "cli-hospital-abc", Name: "Hospital ABC", Email: "compras@hospitalabc.mx", CreatedAt: now},
		{ID: "cli-lab-norte", Name: "Laboratorios del Norte", Phone: "+52 81 1234 5678", CreatedAt: now},
	}
	for _, c := range clients {
		if err := clientRepo.Create(c); err != nil {
			log.Warn().Err(err).Str("id", c.ID).Msg("cliente ya existe, se omite")
		}
	}

	// Entradas iniciales vía el caso de uso para que log y existencias
	// queden consistentes desde el arranque.
	registerUC := appinventory.NewRegisterMovementUseCase(
		movementRepo, itemRepo, productRepo, warehouseRepo,
		idgen.NewEpochMillis("mv-"), idgen.NewEpochMillis(""), log,
	)
	ctx := context.Background()
	entries := []appinventory.MovementInput{
		{Type: entity.MovementTypeEntrada, WarehouseID: "alm-cdmx", ProductID: "prod-pcr-kit", Quantity: 40, Reference: "OC-2024-001"},
		{Type: entity.MovementTypeEntrada, WarehouseID: "alm-cdmx", ProductID: "prod-glucosa", Quantity: 120, Reference: "OC-2024-001"},
		{Type: entity.MovementTypeEntrada, WarehouseID: "alm-gdl", ProductID: "prod-pcr-kit", Quantity: 15, Reference: "OC-2024-002"},
		{Type: entity.MovementTypeEntrada, WarehouseID: "alm-gdl", ProductID: "prod-centrifuga", Quantity: 2, Reference: "OC-2024-002"},
	}
	for _, in := range entries {
		if _, err := registerUC.Register(ctx, in); err != nil {
			log.Warn().Err(err).Str("producto", in.ProductID).Msg("no se pudo registrar la entrada")
		}
	}

	// Stock mínimo de arranque para que el reorder-list tenga sentido.
	invUC := appinventory.NewUseCase(movementRepo, itemRepo, productRepo, idgen.NewEpochMillis("mv-"), idgen.NewEpochMillis(""))
	minimums := []struct {
		warehouseID, productID string
		min                    int
	}{
		{"alm-cdmx", "prod-pcr-kit", 20},
		{"alm-cdmx", "prod-glucosa", 50},
		{"alm-gdl", "prod-pcr-kit", 10},
	}
	for _, m := range minimums {
		if _, err := invUC.UpdateMinimumStock(m.warehouseID, m.productID, m.min); err != nil {
			log.Warn().Err(err).Str("producto", m.productID).Msg("no se pudo fijar el stock mínimo")
		}
	}

	log.Info().Str("data_dir", dataDir).Msg("datos de demostración escritos")
}
