package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo implementación de BalanceRepository sobre PostgreSQL (usable
// con pool o tx). Las escrituras siempre llegan desde una tx del proyector
// o del auditor.
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get obtiene el saldo del par; nil si no hay fila.
func (r *BalanceRepo) Get(productID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, current_qty, last_updated
		FROM stock_balances WHERE product_id = $1 AND location_id = $2`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&b.ProductID, &b.LocationID, &b.CurrentQty, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate obtiene el saldo y bloquea la fila (SELECT FOR UPDATE).
// Devuelve saldo cero si el par aún no tiene fila — en ese caso no hay fila
// que bloquear, por eso el proyector de movimientos no pasa por aquí sino
// por ApplyDelta; este camino es del auditor (comparar y sobrescribir).
func (r *BalanceRepo) GetForUpdate(productID, locationID string) (*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, current_qty, last_updated
		FROM stock_balances WHERE product_id = $1 AND location_id = $2
		FOR UPDATE`
	var b entity.StockBalance
	err := r.q.QueryRow(context.Background(), query, productID, locationID).Scan(
		&b.ProductID, &b.LocationID, &b.CurrentQty, &b.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.StockBalance{ProductID: productID, LocationID: locationID}, nil
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// ApplyDelta incrementa el saldo del par en SQL, creando la fila en cero si
// no existe. El ON CONFLICT suma sobre el valor ya almacenado, así que dos
// primeras escrituras concurrentes sobre un par sin fila se serializan en el
// propio upsert y ninguna pisa a la otra; el RETURNING devuelve el saldo
// resultante para el chequeo de política dentro de la misma transacción.
func (r *BalanceRepo) ApplyDelta(productID, locationID string, delta int64, updatedAt time.Time) (*entity.StockBalance, error) {
	query := `
		INSERT INTO stock_balances (product_id, location_id, current_qty, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET current_qty = stock_balances.current_qty + EXCLUDED.current_qty,
		              last_updated = EXCLUDED.last_updated
		RETURNING current_qty, last_updated`
	b := entity.StockBalance{ProductID: productID, LocationID: locationID}
	err := r.q.QueryRow(context.Background(), query, productID, locationID, delta, updatedAt).Scan(
		&b.CurrentQty, &b.LastUpdated,
	)
	if err != nil {
		return nil, fmt.Errorf("apply balance delta: %w", err)
	}
	return &b, nil
}

// Upsert sobrescribe el saldo con un valor absoluto. Solo lo usa repair,
// con la fila ya bloqueada vía GetForUpdate.
func (r *BalanceRepo) Upsert(balance *entity.StockBalance) error {
	query := `
		INSERT INTO stock_balances (product_id, location_id, current_qty, last_updated)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (product_id, location_id)
		DO UPDATE SET current_qty = EXCLUDED.current_qty, last_updated = EXCLUDED.last_updated`
	_, err := r.q.Exec(context.Background(), query,
		balance.ProductID, balance.LocationID, balance.CurrentQty, balance.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("upsert balance: %w", err)
	}
	return nil
}

// List lista saldos con filtros y paginación.
func (r *BalanceRepo) List(filter repository.BalanceFilter, limit, offset int) ([]*entity.StockBalance, error) {
	query := `
		SELECT product_id, location_id, current_qty, last_updated
		FROM stock_balances WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.ProductID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, filter.ProductID)
		pos++
	}
	if filter.LocationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, filter.LocationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY product_id, location_id LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockBalance
	for rows.Next() {
		var b entity.StockBalance
		if err := rows.Scan(&b.ProductID, &b.LocationID, &b.CurrentQty, &b.LastUpdated); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}
