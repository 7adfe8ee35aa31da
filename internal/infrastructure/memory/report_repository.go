package memory

import (
	"context"
	"sort"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ReportRepository lecturas de reporte sobre el Store. Replica la semántica
// LEFT JOIN de la implementación pgx: los saldos sin metadato de catálogo
// salen con sku/nombre vacíos en vez de desaparecer del reporte.
type ReportRepository struct {
	s *Store
}

var _ repository.ReportRepository = (*ReportRepository)(nil)

// NewReportRepository construye el repositorio sobre el Store dado.
func NewReportRepository(s *Store) *ReportRepository {
	return &ReportRepository{s: s}
}

func (r *ReportRepository) rows() []repository.InventoryRow {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]repository.InventoryRow, 0, len(r.s.balances))
	for _, b := range r.s.balances {
		row := repository.InventoryRow{
			ProductID:   b.ProductID,
			LocationID:  b.LocationID,
			CurrentQty:  b.CurrentQty,
			LastUpdated: b.LastUpdated,
		}
		if p, ok := r.s.products[b.ProductID]; ok {
			row.ProductSKU = p.SKU
			row.ProductName = p.Name
			row.UnitPrice = p.UnitPrice
		}
		if l, ok := r.s.locations[b.LocationID]; ok {
			row.LocationName = l.Name
		}
		out = append(out, row)
	}
	return out
}

// Inventory lista todos los saldos con su metadato de producto/ubicación.
func (r *ReportRepository) Inventory(_ context.Context) ([]repository.InventoryRow, error) {
	rows := r.rows()
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].ProductID != rows[j].ProductID {
			return rows[i].ProductID < rows[j].ProductID
		}
		return rows[i].LocationID < rows[j].LocationID
	})
	return rows, nil
}

// LowStock lista saldos con CurrentQty <= threshold, ascendente por cantidad.
func (r *ReportRepository) LowStock(_ context.Context, threshold int64, limit, offset int) ([]repository.InventoryRow, error) {
	all := r.rows()
	out := make([]repository.InventoryRow, 0, len(all))
	for _, row := range all {
		if row.CurrentQty <= threshold {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CurrentQty != out[j].CurrentQty {
			return out[i].CurrentQty < out[j].CurrentQty
		}
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
	return paginate(out, limit, offset), nil
}

// OutOfStockCount cuenta saldos con CurrentQty exactamente cero.
func (r *ReportRepository) OutOfStockCount(_ context.Context) (int64, error) {
	var count int64
	for _, row := range r.rows() {
		if row.CurrentQty == 0 {
			count++
		}
	}
	return count, nil
}
