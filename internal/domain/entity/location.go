package entity

// Tipos de ubicación.
const (
	LocationTypeWarehouse       = "warehouse"
	LocationTypeProductionFloor = "production_floor"
	LocationTypeSubcontract     = "subcontract"
	LocationTypeTransit         = "transit"
)

// Location representa una ubicación física o lógica donde se almacena stock
// (bodega, piso de producción, subcontrato, tránsito). Jerárquica vía ParentID.
type Location struct {
	ID       string
	Code     string // código único
	Name     string
	Type     string
	ParentID string // vacío = raíz
	IsActive bool
}
