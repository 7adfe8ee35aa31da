// Package catalog contiene los casos de uso CRUD de productos y ubicaciones.
// Para el motor de kardex el catálogo es un colaborador: provee existencia
// de referencias y metadatos de presentación.
package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// ProductUseCase CRUD de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// Create valida y persiste un producto nuevo. SKU único.
func (uc *ProductUseCase) Create(_ context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.SKU == "" || in.Name == "" || in.UOM == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.UnitPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.productRepo.GetBySKU(in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		ID:        uuid.New().String(),
		SKU:       in.SKU,
		Name:      in.Name,
		Category:  in.Category,
		UOM:       in.UOM,
		UnitPrice: in.UnitPrice,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID obtiene un producto o ErrNotFound.
func (uc *ProductUseCase) GetByID(_ context.Context, id string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	return product, nil
}

// Update aplica cambios parciales a un producto existente.
func (uc *ProductUseCase) Update(_ context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Category != nil {
		product.Category = *in.Category
	}
	if in.UOM != nil {
		product.UOM = *in.UOM
	}
	if in.UnitPrice != nil {
		if in.UnitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		product.UnitPrice = *in.UnitPrice
	}
	if in.IsActive != nil {
		product.IsActive = *in.IsActive
	}
	product.UpdatedAt = time.Now()
	if err := uc.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// List lista productos con filtros y paginación.
func (uc *ProductUseCase) List(_ context.Context, filter repository.ProductFilter, page dto.PageRequest) ([]*entity.Product, error) {
	page.DefaultPage()
	return uc.productRepo.List(filter, page.Limit, page.Offset)
}

// LocationUseCase CRUD de ubicaciones.
type LocationUseCase struct {
	locationRepo repository.LocationRepository
}

// NewLocationUseCase construye el caso de uso.
func NewLocationUseCase(locationRepo repository.LocationRepository) *LocationUseCase {
	return &LocationUseCase{locationRepo: locationRepo}
}

func validLocationType(t string) bool {
	switch t {
	case entity.LocationTypeWarehouse, entity.LocationTypeProductionFloor,
		entity.LocationTypeSubcontract, entity.LocationTypeTransit:
		return true
	}
	return false
}

// Create valida y persiste una ubicación nueva. El padre, si viene, debe existir.
func (uc *LocationUseCase) Create(_ context.Context, in dto.CreateLocationRequest) (*entity.Location, error) {
	if in.Code == "" || in.Name == "" || !validLocationType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ParentID != "" {
		parent, err := uc.locationRepo.GetByID(in.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return nil, domain.ErrNotFound
		}
	}
	location := &entity.Location{
		ID:       uuid.New().String(),
		Code:     in.Code,
		Name:     in.Name,
		Type:     in.Type,
		ParentID: in.ParentID,
		IsActive: true,
	}
	if err := uc.locationRepo.Create(location); err != nil {
		return nil, err
	}
	return location, nil
}

// GetByID obtiene una ubicación o ErrNotFound.
func (uc *LocationUseCase) GetByID(_ context.Context, id string) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	return location, nil
}

// Update aplica cambios parciales a una ubicación existente.
func (uc *LocationUseCase) Update(_ context.Context, id string, in dto.UpdateLocationRequest) (*entity.Location, error) {
	location, err := uc.locationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if location == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		location.Name = *in.Name
	}
	if in.Type != nil {
		if !validLocationType(*in.Type) {
			return nil, domain.ErrInvalidInput
		}
		location.Type = *in.Type
	}
	if in.ParentID != nil {
		location.ParentID = *in.ParentID
	}
	if in.IsActive != nil {
		location.IsActive = *in.IsActive
	}
	if err := uc.locationRepo.Update(location); err != nil {
		return nil, err
	}
	return location, nil
}

// List lista ubicaciones con filtros y paginación.
func (uc *LocationUseCase) List(_ context.Context, filter repository.LocationFilter, page dto.PageRequest) ([]*entity.Location, error) {
	page.DefaultPage()
	return uc.locationRepo.List(filter, page.Limit, page.Offset)
}
