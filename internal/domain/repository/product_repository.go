package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// ProductFilter filtros opcionales para listar productos.
type ProductFilter struct {
	Category string
	IsActive *bool
}

// ProductRepository define el puerto de persistencia para productos.
// GetByID devuelve nil (sin error) si el producto no existe; el motor de
// kardex usa esa semántica como chequeo de existencia.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	Update(product *entity.Product) error
	List(filter ProductFilter, limit, offset int) ([]*entity.Product, error)
}
