package repository

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// BalanceFilter filtros opcionales para listar saldos.
type BalanceFilter struct {
	ProductID  string
	LocationID string
}

// BalanceRepository define el puerto para consultar/actualizar el saldo por
// producto+ubicación. Las escrituras solo ocurren dentro de transacciones del
// proyector de saldos (vía ApplyDelta) o del auditor (vía repair); ningún
// otro componente muta CurrentQty.
type BalanceRepository interface {
	// Get devuelve nil si el par no tiene fila de saldo.
	Get(productID, locationID string) (*entity.StockBalance, error)
	// ApplyDelta incrementa el saldo del par de forma atómica a nivel de fila
	// (creándola en cero si no existe) y devuelve el saldo resultante. Es el
	// único camino del proyector: dos primeras escrituras concurrentes sobre
	// un par sin fila deben serializarse en el propio incremento, no en un
	// bloqueo previo que una fila inexistente no puede sostener.
	ApplyDelta(productID, locationID string, delta int64, updatedAt time.Time) (*entity.StockBalance, error)
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE) y devuelve
	// saldo cero si el par aún no tiene fila. Lo usa el auditor para comparar
	// y sobrescribir sin que un movimiento concurrente se cuele en medio.
	GetForUpdate(productID, locationID string) (*entity.StockBalance, error)
	// Upsert sobrescribe el saldo con un valor absoluto (camino de repair).
	Upsert(balance *entity.StockBalance) error
	List(filter BalanceFilter, limit, offset int) ([]*entity.StockBalance, error)
}
