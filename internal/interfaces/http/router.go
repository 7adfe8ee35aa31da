package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Kardex-api/internal/application/catalog"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/application/report"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Movements  *inventory.MovementUseCase
	Queries    *inventory.QueryUseCase
	Audit      *inventory.AuditUseCase
	Reports    *report.ReportUseCase
	ProductUC  *catalog.ProductUseCase
	LocationUC *catalog.LocationUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token del colaborador de auth)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Locations (protegido)
	locations := protected.Group("/locations")
	locationHandler := NewLocationHandler(deps.LocationUC)
	locations.Post("/", locationHandler.Create)
	locations.Get("/", locationHandler.List)
	locations.Get("/:id", locationHandler.GetByID)
	locations.Put("/:id", locationHandler.Update)

	// Kardex: asientos, movimientos y saldos (protegido)
	invGroup := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.Movements, deps.Queries)
	invGroup.Post("/ledger", inventoryHandler.AppendEntry)
	invGroup.Get("/ledger", inventoryHandler.ListLedger)
	invGroup.Get("/balances", inventoryHandler.ListBalances)
	invGroup.Post("/movements", inventoryHandler.RegisterMovement)

	// Auditor de consistencia (protegido; invocado por scheduler/ops)
	auditHandler := NewAuditHandler(deps.Audit)
	invGroup.Post("/audit/recompute", auditHandler.Recompute)
	invGroup.Post("/audit/repair", auditHandler.Repair)

	// Reportes (protegido, solo lectura)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.Reports)
	reports.Get("/inventory", reportHandler.InventorySummary)
	reports.Get("/low-stock", reportHandler.LowStock)
	reports.Get("/out-of-stock", reportHandler.OutOfStock)
}
