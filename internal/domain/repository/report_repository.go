package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRow fila del reporte de inventario: saldo + metadatos de catálogo.
// SKU/nombres pueden llegar vacíos si el catálogo aún no conoce el id
// (LEFT JOIN); el reporte los tolera sin fallar.
type InventoryRow struct {
	ProductID    string
	ProductSKU   string
	ProductName  string
	LocationID   string
	LocationName string
	CurrentQty   int64
	LastUpdated  time.Time
	UnitPrice    decimal.Decimal
}

// ReportRepository consultas de solo lectura sobre saldos + catálogo.
// Nunca escribe; el kardex y los saldos son de otros componentes.
type ReportRepository interface {
	// Inventory lista todos los saldos con su metadato de producto/ubicación.
	Inventory(ctx context.Context) ([]InventoryRow, error)
	// LowStock lista saldos con CurrentQty <= threshold, ascendente por cantidad.
	LowStock(ctx context.Context, threshold int64, limit, offset int) ([]InventoryRow, error)
	// OutOfStockCount cuenta saldos con CurrentQty exactamente cero.
	OutOfStockCount(ctx context.Context) (int64, error)
}
