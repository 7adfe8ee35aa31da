package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo implementación del kardex sobre PostgreSQL (usable con pool o tx).
// La tabla stock_ledgers es append-only: este adaptador no expone UPDATE ni
// DELETE y el esquema tampoco los permite a nivel de permisos.
type LedgerRepo struct {
	q Querier
}

// NewLedgerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewLedgerRepository(q Querier) *LedgerRepo {
	return &LedgerRepo{q: q}
}

// Create persiste un asiento. seq lo asigna la secuencia de la tabla y se
// devuelve al entity para el desempate de orden.
func (r *LedgerRepo) Create(entry *entity.LedgerEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_ledgers (id, product_id, location_id, qty, transaction_type, ref_type, ref_id, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING seq`
	refType := (*string)(nil)
	if entry.RefType != "" {
		refType = &entry.RefType
	}
	refID := (*string)(nil)
	if entry.RefID != "" {
		refID = &entry.RefID
	}
	createdBy := (*string)(nil)
	if entry.CreatedBy != "" {
		createdBy = &entry.CreatedBy
	}
	err := r.q.QueryRow(context.Background(), query,
		entry.ID, entry.ProductID, entry.LocationID, entry.Qty, entry.Type,
		refType, refID, entry.CreatedAt, createdBy,
	).Scan(&entry.Seq)
	if err != nil {
		return fmt.Errorf("create ledger entry: %w", err)
	}
	return nil
}

// GetByID obtiene un asiento por ID; nil si no existe.
func (r *LedgerRepo) GetByID(id string) (*entity.LedgerEntry, error) {
	query := `
		SELECT id, seq, product_id, location_id, qty, transaction_type, ref_type, ref_id, created_at, created_by
		FROM stock_ledgers WHERE id = $1`
	entry, err := scanEntry(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ledger entry: %w", err)
	}
	return entry, nil
}

// List lista asientos con filtros, ordenados por (created_at, seq).
func (r *LedgerRepo) List(filter repository.LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error) {
	query := `
		SELECT id, seq, product_id, location_id, qty, transaction_type, ref_type, ref_id, created_at, created_by
		FROM stock_ledgers WHERE 1=1`
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
	if filter.Type != "" {
		query += fmt.Sprintf(" AND transaction_type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *filter.From)
		pos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *filter.To)
		pos++
	}
	if filter.Desc {
		query += " ORDER BY created_at DESC, seq DESC"
	} else {
		query += " ORDER BY created_at ASC, seq ASC"
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()
	var list []*entity.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		list = append(list, entry)
	}
	return list, rows.Err()
}

// SumByPair agrega SUM(qty) por par (producto, ubicación) dentro del alcance.
func (r *LedgerRepo) SumByPair(productID, locationID string) ([]repository.PairSum, error) {
	query := `
		SELECT product_id, location_id, COALESCE(SUM(qty), 0)
		FROM stock_ledgers WHERE 1=1`
	args := []any{}
	pos := 1
	if productID != "" {
		query += fmt.Sprintf(" AND product_id = $%d", pos)
		args = append(args, productID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += " GROUP BY product_id, location_id ORDER BY product_id, location_id"

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("sum ledger by pair: %w", err)
	}
	defer rows.Close()
	var sums []repository.PairSum
	for rows.Next() {
		var s repository.PairSum
		if err := rows.Scan(&s.ProductID, &s.LocationID, &s.Total); err != nil {
			return nil, fmt.Errorf("scan pair sum: %w", err)
		}
		sums = append(sums, s)
	}
	return sums, rows.Err()
}

func scanEntry(row pgx.Row) (*entity.LedgerEntry, error) {
	var e entity.LedgerEntry
	var refType, refID, createdBy *string
	if err := row.Scan(&e.ID, &e.Seq, &e.ProductID, &e.LocationID, &e.Qty, &e.Type,
		&refType, &refID, &e.CreatedAt, &createdBy); err != nil {
		return nil, err
	}
	if refType != nil {
		e.RefType = *refType
	}
	if refID != nil {
		e.RefID = *refID
	}
	if createdBy != nil {
		e.CreatedBy = *createdBy
	}
	return &e, nil
}
