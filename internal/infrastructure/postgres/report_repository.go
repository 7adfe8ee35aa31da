package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para los reportes de inventario.
// LEFT JOIN contra catálogo: un saldo cuyo producto/ubicación aún no está
// sincronizado en catálogo sale con sku/nombre vacíos y precio cero, nunca
// desaparece del reporte.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

const inventoryRowColumns = `
	    b.product_id,
	    COALESCE(p.sku,  '')  AS product_sku,
	    COALESCE(p.name, '')  AS product_name,
	    b.location_id,
	    COALESCE(l.name, '')  AS location_name,
	    b.current_qty,
	    b.last_updated,
	    COALESCE(p.unit_price, 0) AS unit_price`

// Inventory lista todos los saldos con su metadato de catálogo.
func (r *ReportRepo) Inventory(ctx context.Context) ([]repository.InventoryRow, error) {
	query := `
	SELECT` + inventoryRowColumns + `
	FROM stock_balances b
	LEFT JOIN products  p ON p.id = b.product_id
	LEFT JOIN locations l ON l.id = b.location_id
	ORDER BY b.product_id, b.location_id`

	return r.queryRows(ctx, query)
}

// LowStock lista saldos con current_qty <= threshold, ascendente por cantidad.
func (r *ReportRepo) LowStock(ctx context.Context, threshold int64, limit, offset int) ([]repository.InventoryRow, error) {
	query := `
	SELECT` + inventoryRowColumns + `
	FROM stock_balances b
	LEFT JOIN products  p ON p.id = b.product_id
	LEFT JOIN locations l ON l.id = b.location_id
	WHERE b.current_qty <= $1
	ORDER BY b.current_qty ASC, b.product_id, b.location_id
	LIMIT $2 OFFSET $3`

	return r.queryRows(ctx, query, threshold, limit, offset)
}

// OutOfStockCount cuenta saldos con current_qty exactamente cero.
func (r *ReportRepo) OutOfStockCount(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM stock_balances WHERE current_qty = 0`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("report.OutOfStockCount: %w", err)
	}
	return count, nil
}

func (r *ReportRepo) queryRows(ctx context.Context, query string, args ...any) ([]repository.InventoryRow, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()
	var list []repository.InventoryRow
	for rows.Next() {
		var row repository.InventoryRow
		if err := rows.Scan(
			&row.ProductID,
			&row.ProductSKU,
			&row.ProductName,
			&row.LocationID,
			&row.LocationName,
			&row.CurrentQty,
			&row.LastUpdated,
			&row.UnitPrice,
		); err != nil {
			return nil, fmt.Errorf("report scan: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
