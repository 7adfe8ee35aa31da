package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/application/inventory"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// InventoryHandler maneja las peticiones HTTP del kardex: asientos directos,
// movimientos coordinados y lecturas de kardex/saldos (protegido).
type InventoryHandler struct {
	movements *inventory.MovementUseCase
	queries   *inventory.QueryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(movements *inventory.MovementUseCase, queries *inventory.QueryUseCase) *InventoryHandler {
	return &InventoryHandler{movements: movements, queries: queries}
}

// AppendEntry godoc
// @Summary      Registrar asiento directo en el kardex
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AppendEntryRequest  true  "product_id, location_id, qty firmado, transaction_type, ref opcional"
// @Success      201   {object}  dto.LedgerEntryDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/ledger [post]
func (h *InventoryHandler) AppendEntry(c *fiber.Ctx) error {
	var in dto.AppendEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	entry, balance, err := h.movements.AppendEntry(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"entry": dto.LedgerEntryDTO{
			ID:         entry.ID,
			ProductID:  entry.ProductID,
			LocationID: entry.LocationID,
			Qty:        entry.Qty,
			Type:       entry.Type,
			RefType:    entry.RefType,
			RefID:      entry.RefID,
			CreatedAt:  entry.CreatedAt,
			CreatedBy:  entry.CreatedBy,
		},
		"balance": dto.BalanceDTO{
			ProductID:   balance.ProductID,
			LocationID:  balance.LocationID,
			CurrentQty:  balance.CurrentQty,
			LastUpdated: balance.LastUpdated,
		},
	})
}

// RegisterMovement godoc
// @Summary      Ejecutar movimiento de stock (simple o traslado)
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MovementRequest  true  "movimiento simple (location_id + direction) o traslado (from/to)"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/inventory/movements [post]
func (h *InventoryHandler) RegisterMovement(c *fiber.Ctx) error {
	var in dto.MovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	result, err := h.movements.Execute(c.Context(), GetUserID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// ListLedger godoc
// @Summary      Listar asientos del kardex
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id        query  string  false  "Filtrar por producto"
// @Param        location_id       query  string  false  "Filtrar por ubicación"
// @Param        transaction_type  query  string  false  "Filtrar por tipo"
// @Param        order             query  string  false  "asc (default) | desc"
// @Success      200  {array}  dto.LedgerEntryDTO
// @Router       /api/inventory/ledger [get]
func (h *InventoryHandler) ListLedger(c *fiber.Ctx) error {
	filter := repository.LedgerFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
		Type:       c.Query("transaction_type"),
		Desc:       c.Query("order") == "desc",
	}
	if from := c.Query("from"); from != "" {
		t, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from: fecha RFC3339 inválida"})
		}
		filter.From = &t
	}
	if to := c.Query("to"); to != "" {
		t, err := time.Parse(time.RFC3339, to)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to: fecha RFC3339 inválida"})
		}
		filter.To = &t
	}
	page := pageFromQuery(c)
	entries, err := h.queries.ListLedger(c.Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(entries), "entries": entries})
}

// ListBalances godoc
// @Summary      Listar saldos actuales
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        location_id  query  string  false  "Filtrar por ubicación"
// @Success      200  {array}  dto.BalanceDTO
// @Router       /api/inventory/balances [get]
func (h *InventoryHandler) ListBalances(c *fiber.Ctx) error {
	filter := repository.BalanceFilter{
		ProductID:  c.Query("product_id"),
		LocationID: c.Query("location_id"),
	}
	page := pageFromQuery(c)
	balances, err := h.queries.ListBalances(c.Context(), filter, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"total": len(balances), "balances": balances})
}

func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit"),
		Offset: c.QueryInt("offset"),
	}
	page.DefaultPage()
	return page
}
