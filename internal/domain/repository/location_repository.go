package repository

import "github.com/jhoicas/Kardex-api/internal/domain/entity"

// LocationFilter filtros opcionales para listar ubicaciones.
type LocationFilter struct {
	Type     string
	ParentID string
	IsActive *bool
}

// LocationRepository define el puerto de persistencia para ubicaciones.
// GetByID devuelve nil (sin error) si la ubicación no existe.
type LocationRepository interface {
	Create(location *entity.Location) error
	GetByID(id string) (*entity.Location, error)
	Update(location *entity.Location) error
	List(filter LocationFilter, limit, offset int) ([]*entity.Location, error)
}
