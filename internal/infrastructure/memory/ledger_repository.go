package memory

import (
	"sort"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// LedgerRepository kardex append-only en memoria.
type LedgerRepository struct {
	s *Store
}

var _ repository.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository construye el repositorio sobre el Store dado.
func NewLedgerRepository(s *Store) *LedgerRepository {
	return &LedgerRepository{s: s}
}

// Create asigna seq y añade el asiento. Nunca modifica asientos previos.
func (r *LedgerRepository) Create(entry *entity.LedgerEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.FailCreate != nil {
		if err := r.s.FailCreate(entry); err != nil {
			return err
		}
	}
	entry.Seq = r.s.nextSeq
	r.s.nextSeq++
	copied := *entry
	r.s.entries = append(r.s.entries, &copied)
	return nil
}

// GetByID devuelve nil si el asiento no existe.
func (r *LedgerRepository) GetByID(id string) (*entity.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, e := range r.s.entries {
		if e.ID == id {
			copied := *e
			return &copied, nil
		}
	}
	return nil, nil
}

// List filtra y ordena por (created_at, seq).
func (r *LedgerRepository) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.LedgerEntry, 0, len(r.s.entries))
	for _, e := range r.s.entries {
		if filter.ProductID != "" && e.ProductID != filter.ProductID {
			continue
		}
		if filter.LocationID != "" && e.LocationID != filter.LocationID {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		if filter.From != nil && e.CreatedAt.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.CreatedAt.After(*filter.To) {
			continue
		}
		copied := *e
		out = append(out, &copied)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if filter.Desc {
			a, b = b, a
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.Seq < b.Seq
	})
	return paginate(out, limit, offset), nil
}

// SumByPair agrega SUM(qty) por par (producto, ubicación) dentro del alcance.
func (r *LedgerRepository) SumByPair(productID, locationID string) ([]repository.PairSum, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	totals := make(map[pairKey]int64)
	for _, e := range r.s.entries {
		if productID != "" && e.ProductID != productID {
			continue
		}
		if locationID != "" && e.LocationID != locationID {
			continue
		}
		totals[pairKey{ProductID: e.ProductID, LocationID: e.LocationID}] += e.Qty
	}

	out := make([]repository.PairSum, 0, len(totals))
	for k, total := range totals {
		out = append(out, repository.PairSum{ProductID: k.ProductID, LocationID: k.LocationID, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
	return out, nil
}
