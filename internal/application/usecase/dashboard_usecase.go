package usecase

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/zogen/backoffice-api/internal/application/dto"
	"github.com/zogen/backoffice-api/internal/domain/entity"
	domaininv "github.com/zogen/backoffice-api/internal/domain/inventory"
	"github.com/zogen/backoffice-api/internal/domain/repository"
)

// DashboardUseCase agrega los KPIs del tablero principal a partir de las
// colecciones locales. Todo se calcula en memoria; no hay precomputados.
type DashboardUseCase struct {
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	itemRepo      repository.InventoryItemRepository
	movRepo       repository.MovementRepository
	saleRepo      repository.SaleRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	itemRepo repository.InventoryItemRepository,
	movRepo repository.MovementRepository,
	saleRepo repository.SaleRepository,
) *DashboardUseCase {
	return &DashboardUseCase{
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		itemRepo:      itemRepo,
		movRepo:       movRepo,
		saleRepo:      saleRepo,
	}
}

// Summary calcula los KPIs: conteos de catálogo, valuación del inventario
// (Σ cantidad × precio de lista), movimientos del día, pares en reorden y
// total de ventas.
func (uc *DashboardUseCase) Summary() (*dto.DashboardSummaryResponse, error) {
	products, err := uc.productRepo.List(0, 0)
	if err != nil {
		return nil, err
	}
	priceByID := make(map[string]decimal.Decimal, len(products))
	for _, p := range products {
		priceByID[p.ID] = p.Price
	}

	warehouses, err := uc.warehouseRepo.List(0, 0)
	if err != nil {
		return nil, err
	}

	items, err := uc.itemRepo.ListAll()
	if err != nil {
		return nil, err
	}
	valuation := decimal.Zero
	lowStock := 0
	for _, it := range items {
		if price, ok := priceByID[it.ProductID]; ok {
			valuation = valuation.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
		if domaininv.StockStatus(it.Quantity, it.MinimumStock) == entity.StockStatusReorden {
			lowStock++
		}
	}

	movs, err := uc.movRepo.ListAll()
	if err != nil {
		return nil, err
	}
	startOfDay := time.Now().Truncate(24 * time.Hour)
	movsToday := 0
	for _, m := range movs {
		if !m.Fecha.Before(startOfDay) {
			movsToday++
		}
	}

	sales, err := uc.saleRepo.ListAll()
	if err != nil {
		return nil, err
	}
	salesTotal := decimal.Zero
	for _, s := range sales {
		salesTotal = salesTotal.Add(s.Total)
	}

	return &dto.DashboardSummaryResponse{
		TotalProducts:      len(products),
		TotalWarehouses:    len(warehouses),
		InventoryValuation: valuation,
		MovementsToday:     movsToday,
		LowStockItems:      lowStock,
		SalesTotal:         salesTotal,
	}, nil
}
