package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryReportRow fila del reporte de inventario (saldo + catálogo).
type InventoryReportRow struct {
	ProductID    string          `json:"product_id"`
	ProductSKU   string          `json:"product_sku"`
	ProductName  string          `json:"product_name"`
	LocationID   string          `json:"location_id"`
	LocationName string          `json:"location_name"`
	CurrentQty   int64           `json:"current_qty"`
	LastUpdated  time.Time       `json:"last_updated"`
	TotalValue   decimal.Decimal `json:"total_value"` // current_qty × unit_price
}

// InventorySummaryDTO resumen agregado del inventario.
type InventorySummaryDTO struct {
	TotalProducts   int                  `json:"total_products"`  // productos distintos con saldo
	TotalLocations  int                  `json:"total_locations"` // ubicaciones distintas con saldo
	TotalUnits      int64                `json:"total_units"`     // unidades totales en mano
	TotalStockValue decimal.Decimal      `json:"total_stock_value"`
	LowStockItems   int                  `json:"low_stock_items"`
	OutOfStockItems int                  `json:"out_of_stock_items"`
	ReportData      []InventoryReportRow `json:"report_data"`
}
