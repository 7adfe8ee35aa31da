package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Kardex-api/internal/application/catalog"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
	"github.com/jhoicas/Kardex-api/internal/infrastructure/memory"
)

func newCatalog(t *testing.T) (*catalog.ProductUseCase, *catalog.LocationUseCase) {
	t.Helper()
	store := memory.NewStore()
	return catalog.NewProductUseCase(memory.NewProductRepository(store)),
		catalog.NewLocationUseCase(memory.NewLocationRepository(store))
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_CicloDeVida(t *testing.T) {
	products, _ := newCatalog(t)
	ctx := context.Background()

	created, err := products.Create(ctx, dto.CreateProductRequest{
		SKU:       "MAT-001",
		Name:      "Lámina de acero",
		Category:  entity.ProductCategoryMaterial,
		UOM:       "unidad",
		UnitPrice: decimal.RequireFromString("12.50"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive, "un producto nuevo nace activo")

	got, err := products.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "MAT-001", got.SKU)

	newName := "Lámina de acero inoxidable"
	inactive := false
	updated, err := products.Update(ctx, created.ID, dto.UpdateProductRequest{
		Name:     &newName,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, newName, updated.Name)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "MAT-001", updated.SKU, "el SKU no cambia en updates parciales")
}

func TestProduct_SKUDuplicado(t *testing.T) {
	products, _ := newCatalog(t)
	ctx := context.Background()

	req := dto.CreateProductRequest{
		SKU: "MAT-001", Name: "Lámina", Category: entity.ProductCategoryMaterial,
		UOM: "unidad", UnitPrice: decimal.NewFromInt(10),
	}
	_, err := products.Create(ctx, req)
	require.NoError(t, err)

	_, err = products.Create(ctx, req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProduct_Validacion(t *testing.T) {
	products, _ := newCatalog(t)
	ctx := context.Background()

	_, err := products.Create(ctx, dto.CreateProductRequest{Name: "sin sku", UOM: "unidad"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "SKU obligatorio")

	_, err = products.Create(ctx, dto.CreateProductRequest{
		SKU: "MAT-002", Name: "precio negativo", UOM: "unidad",
		UnitPrice: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = products.GetByID(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_ListConFiltro(t *testing.T) {
	products, _ := newCatalog(t)
	ctx := context.Background()

	for _, p := range []dto.CreateProductRequest{
		{SKU: "MAT-001", Name: "Acero", Category: entity.ProductCategoryMaterial, UOM: "unidad", UnitPrice: decimal.NewFromInt(1)},
		{SKU: "FG-001", Name: "Motor", Category: entity.ProductCategoryFinishedGood, UOM: "unidad", UnitPrice: decimal.NewFromInt(1)},
	} {
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}

	materials, err := products.List(ctx, repository.ProductFilter{Category: entity.ProductCategoryMaterial}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, materials, 1)
	assert.Equal(t, "MAT-001", materials[0].SKU)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ubicaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestLocation_JerarquiaConPadre(t *testing.T) {
	_, locations := newCatalog(t)
	ctx := context.Background()

	root, err := locations.Create(ctx, dto.CreateLocationRequest{
		Code: "BOD-01", Name: "Bodega principal", Type: entity.LocationTypeWarehouse,
	})
	require.NoError(t, err)

	child, err := locations.Create(ctx, dto.CreateLocationRequest{
		Code: "BOD-01-A", Name: "Pasillo A", Type: entity.LocationTypeWarehouse,
		ParentID: root.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, root.ID, child.ParentID)

	_, err = locations.Create(ctx, dto.CreateLocationRequest{
		Code: "BOD-02", Name: "Huérfana", Type: entity.LocationTypeWarehouse,
		ParentID: "no-existe",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "el padre debe existir")
}

func TestLocation_TipoInvalido(t *testing.T) {
	_, locations := newCatalog(t)

	_, err := locations.Create(context.Background(), dto.CreateLocationRequest{
		Code: "X-01", Name: "Tipo raro", Type: "spaceship",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLocation_UpdateYFiltro(t *testing.T) {
	_, locations := newCatalog(t)
	ctx := context.Background()

	created, err := locations.Create(ctx, dto.CreateLocationRequest{
		Code: "TR-01", Name: "Tránsito", Type: entity.LocationTypeTransit,
	})
	require.NoError(t, err)

	inactive := false
	updated, err := locations.Update(ctx, created.ID, dto.UpdateLocationRequest{IsActive: &inactive})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	active := true
	list, err := locations.List(ctx, repository.LocationFilter{IsActive: &active}, dto.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, list, "la única ubicación quedó inactiva")
}
