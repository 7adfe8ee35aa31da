// Package report contiene la fachada de reportes de inventario: consultas de
// solo lectura que combinan saldos con metadatos de catálogo para consumo de
// capas de presentación externas.
package report

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ReportUseCase genera el resumen de inventario, el listado de stock bajo y
// el conteo de agotados. No posee ni valida el catálogo: solo lo consume
// para presentación, tolerando metadatos aún no sincronizados.
type ReportUseCase struct {
	reportRepo        repository.ReportRepository
	lowStockThreshold int64 // umbral por defecto para el widget de stock bajo
}

// NewReportUseCase construye la fachada.
func NewReportUseCase(reportRepo repository.ReportRepository, lowStockThreshold int64) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo, lowStockThreshold: lowStockThreshold}
}

// InventorySummary agrega todos los saldos: productos y ubicaciones distintas
// representadas, unidades totales en mano, valorización (qty × precio
// unitario) y conteos de stock bajo/agotado.
func (uc *ReportUseCase) InventorySummary(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	rows, err := uc.reportRepo.Inventory(ctx)
	if err != nil {
		return nil, err
	}

	products := make(map[string]struct{})
	locations := make(map[string]struct{})
	var totalUnits int64
	totalValue := decimal.Zero
	lowStock, outOfStock := 0, 0

	data := make([]dto.InventoryReportRow, 0, len(rows))
	for _, row := range rows {
		products[row.ProductID] = struct{}{}
		locations[row.LocationID] = struct{}{}
		totalUnits += row.CurrentQty

		value := decimal.NewFromInt(row.CurrentQty).Mul(row.UnitPrice)
		totalValue = totalValue.Add(value)

		if row.CurrentQty <= uc.lowStockThreshold {
			lowStock++
		}
		if row.CurrentQty == 0 {
			outOfStock++
		}
		data = append(data, toReportRow(row, value))
	}

	return &dto.InventorySummaryDTO{
		TotalProducts:   len(products),
		TotalLocations:  len(locations),
		TotalUnits:      totalUnits,
		TotalStockValue: totalValue,
		LowStockItems:   lowStock,
		OutOfStockItems: outOfStock,
		ReportData:      data,
	}, nil
}

// LowStock lista los saldos en o por debajo del umbral, ascendente por cantidad.
// threshold < 0 usa el umbral configurado por defecto.
func (uc *ReportUseCase) LowStock(ctx context.Context, threshold int64, page dto.PageRequest) ([]dto.InventoryReportRow, error) {
	if threshold < 0 {
		threshold = uc.lowStockThreshold
	}
	page.DefaultPage()
	rows, err := uc.reportRepo.LowStock(ctx, threshold, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryReportRow, 0, len(rows))
	for _, row := range rows {
		value := decimal.NewFromInt(row.CurrentQty).Mul(row.UnitPrice)
		out = append(out, toReportRow(row, value))
	}
	return out, nil
}

// OutOfStockCount cuenta los pares con saldo exactamente cero.
func (uc *ReportUseCase) OutOfStockCount(ctx context.Context) (int64, error) {
	return uc.reportRepo.OutOfStockCount(ctx)
}

func toReportRow(row repository.InventoryRow, value decimal.Decimal) dto.InventoryReportRow {
	return dto.InventoryReportRow{
		ProductID:    row.ProductID,
		ProductSKU:   row.ProductSKU,
		ProductName:  row.ProductName,
		LocationID:   row.LocationID,
		LocationName: row.LocationName,
		CurrentQty:   row.CurrentQty,
		LastUpdated:  row.LastUpdated,
		TotalValue:   value,
	}
}
