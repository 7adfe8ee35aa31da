package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de producto.
const (
	ProductCategoryMaterial     = "material"
	ProductCategoryParts        = "parts"
	ProductCategoryWIP          = "wip"
	ProductCategoryFinishedGood = "finished_good"
)

// Product representa un producto o SKU del catálogo. Para el motor de kardex
// es solo una referencia: existencia para validar asientos y datos de
// presentación (sku, nombre, precio) para reportes.
type Product struct {
	ID        string
	SKU       string // código único
	Name      string
	Category  string
	UOM       string          // unidad de medida
	UnitPrice decimal.Decimal // precio unitario para valorización
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
