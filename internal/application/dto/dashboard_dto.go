package dto

import "github.com/shopspring/decimal"

// DashboardSummaryResponse KPIs del tablero principal.
type DashboardSummaryResponse struct {
	TotalProducts      int             `json:"total_products"`
	TotalWarehouses    int             `json:"total_warehouses"`
	InventoryValuation decimal.Decimal `json:"inventory_valuation"` // Σ cantidad × precio, MXN
	MovementsToday     int             `json:"movements_today"`
	LowStockItems      int             `json:"low_stock_items"`
	SalesTotal         decimal.Decimal `json:"sales_total"`
}
