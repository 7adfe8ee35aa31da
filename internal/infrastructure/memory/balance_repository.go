package memory

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// BalanceRepository saldos por par (producto, ubicación) en memoria.
type BalanceRepository struct {
	s *Store
}

var _ repository.BalanceRepository = (*BalanceRepository)(nil)

// NewBalanceRepository construye el repositorio sobre el Store dado.
func NewBalanceRepository(s *Store) *BalanceRepository {
	return &BalanceRepository{s: s}
}

// Get devuelve nil si el par no tiene fila de saldo.
func (r *BalanceRepository) Get(productID, locationID string) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.balances[pairKey{ProductID: productID, LocationID: locationID}]
	if !ok {
		return nil, nil
	}
	return copyBalance(b), nil
}

// ApplyDelta incrementa el saldo del par bajo el mutex del Store, creando
// la fila en cero si no existe. Atómico por fila, igual que el upsert
// incremental de la implementación pgx.
func (r *BalanceRepository) ApplyDelta(productID, locationID string, delta int64, updatedAt time.Time) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	k := pairKey{ProductID: productID, LocationID: locationID}
	b, ok := r.s.balances[k]
	if !ok {
		b = &entity.StockBalance{ProductID: productID, LocationID: locationID}
		r.s.balances[k] = b
	}
	b.CurrentQty += delta
	b.LastUpdated = updatedAt
	return copyBalance(b), nil
}

// GetForUpdate devuelve saldo cero si el par aún no tiene fila. El bloqueo
// real lo aporta la serialización de transacciones del TxRunner en memoria.
func (r *BalanceRepository) GetForUpdate(productID, locationID string) (*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	b, ok := r.s.balances[pairKey{ProductID: productID, LocationID: locationID}]
	if !ok {
		return &entity.StockBalance{ProductID: productID, LocationID: locationID}, nil
	}
	return copyBalance(b), nil
}

// Upsert inserta o sobrescribe el saldo del par.
func (r *BalanceRepository) Upsert(balance *entity.StockBalance) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.balances[pairKey{ProductID: balance.ProductID, LocationID: balance.LocationID}] = copyBalance(balance)
	return nil
}

// List filtra y ordena por (product_id, location_id).
func (r *BalanceRepository) List(filter repository.BalanceFilter, limit, offset int) ([]*entity.StockBalance, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.StockBalance, 0, len(r.s.balances))
	for _, b := range r.s.balances {
		if filter.ProductID != "" && b.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && b.LocationID != filter.LocationID {
			continue
		}
		out = append(out, copyBalance(b))
	}
	sortBalances(out)
	return paginate(out, limit, offset), nil
}
