package memory

import (
	"sort"

	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ProductRepository catálogo de productos en memoria.
type ProductRepository struct {
	s *Store
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository construye el repositorio sobre el Store dado.
func NewProductRepository(s *Store) *ProductRepository {
	return &ProductRepository{s: s}
}

func (r *ProductRepository) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	copied := *product
	r.s.products[product.ID] = &copied
	return nil
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	copied := *p
	return &copied, nil
}

func (r *ProductRepository) GetBySKU(sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, p := range r.s.products {
		if p.SKU == sku {
			copied := *p
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *ProductRepository) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.products[product.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *product
	r.s.products[product.ID] = &copied
	return nil
}

func (r *ProductRepository) List(filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.IsActive != nil && p.IsActive != *filter.IsActive {
			continue
		}
		copied := *p
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return paginate(out, limit, offset), nil
}

// LocationRepository catálogo de ubicaciones en memoria.
type LocationRepository struct {
	s *Store
}

var _ repository.LocationRepository = (*LocationRepository)(nil)

// NewLocationRepository construye el repositorio sobre el Store dado.
func NewLocationRepository(s *Store) *LocationRepository {
	return &LocationRepository{s: s}
}

func (r *LocationRepository) Create(location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, l := range r.s.locations {
		if l.Code == location.Code {
			return domain.ErrDuplicate
		}
	}
	copied := *location
	r.s.locations[location.ID] = &copied
	return nil
}

func (r *LocationRepository) GetByID(id string) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	l, ok := r.s.locations[id]
	if !ok {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (r *LocationRepository) Update(location *entity.Location) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.locations[location.ID]; !ok {
		return domain.ErrNotFound
	}
	copied := *location
	r.s.locations[location.ID] = &copied
	return nil
}

func (r *LocationRepository) List(filter repository.LocationFilter, limit, offset int) ([]*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	out := make([]*entity.Location, 0, len(r.s.locations))
	for _, l := range r.s.locations {
		if filter.Type != "" && l.Type != filter.Type {
			continue
		}
		if filter.ParentID != "" && l.ParentID != filter.ParentID {
			continue
		}
		if filter.IsActive != nil && l.IsActive != *filter.IsActive {
			continue
		}
		copied := *l
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return paginate(out, limit, offset), nil
}
