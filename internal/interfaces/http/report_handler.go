package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Kardex-api/internal/application/report"
)

// ReportHandler expone los reportes de inventario (solo lectura, protegido).
type ReportHandler struct {
	reports *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// InventorySummary godoc
// @Summary      Reporte completo de inventario
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	summary, err := h.reports.InventorySummary(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(summary)
}

// LowStock godoc
// @Summary      Listado de stock bajo
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        threshold  query  int  false  "Umbral (default: configurado)"
// @Success      200  {array}  dto.InventoryReportRow
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	threshold := int64(c.QueryInt("threshold", -1))
	page := pageFromQuery(c)
	rows, err := h.reports.LowStock(c.Context(), threshold, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(rows), "items": rows})
}

// OutOfStock godoc
// @Summary      Conteo de saldos agotados (cantidad exactamente cero)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]int64
// @Router       /api/reports/out-of-stock [get]
func (h *ReportHandler) OutOfStock(c *fiber.Ctx) error {
	count, err := h.reports.OutOfStockCount(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"out_of_stock": count})
}
