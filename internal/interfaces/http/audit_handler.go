package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
)

// AuditHandler expone el auditor de consistencia (protegido; lo invoca el
// scheduler de operaciones o un admin).
type AuditHandler struct {
	audit *inventory.AuditUseCase
}

// NewAuditHandler construye el handler.
func NewAuditHandler(audit *inventory.AuditUseCase) *AuditHandler {
	return &AuditHandler{audit: audit}
}

// Recompute godoc
// @Summary      Recalcular saldos desde el kardex y reportar desviaciones
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Limitar a un producto"
// @Param        location_id  query  string  false  "Limitar a una ubicación"
// @Success      200  {object}  dto.AuditReportDTO
// @Router       /api/inventory/audit/recompute [post]
func (h *AuditHandler) Recompute(c *fiber.Ctx) error {
	scope := dto.AuditScope{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
	}
	report, err := h.audit.Recompute(c.Context(), scope)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}

// Repair godoc
// @Summary      Corregir saldos desviados con la suma derivada del kardex
// @Tags         audit
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Limitar a un producto"
// @Param        location_id  query  string  false  "Limitar a una ubicación"
// @Success      200  {object}  dto.RepairReportDTO
// @Router       /api/inventory/audit/repair [post]
func (h *AuditHandler) Repair(c *fiber.Ctx) error {
	scope := dto.AuditScope{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
	}
	report, err := h.audit.Repair(c.Context(), scope)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(report)
}
