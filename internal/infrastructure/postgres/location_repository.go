package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de persistencia para ubicaciones.
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persiste una ubicación nueva. Código duplicado -> domain.ErrDuplicate.
func (r *LocationRepo) Create(location *entity.Location) error {
	query := `
		INSERT INTO locations (id, code, name, type, parent_id, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`
	parentID := (*string)(nil)
	if location.ParentID != "" {
		parentID = &location.ParentID
	}
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Code, location.Name, location.Type, parentID, location.IsActive,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID obtiene una ubicación por ID; nil si no existe.
func (r *LocationRepo) GetByID(id string) (*entity.Location, error) {
	query := `
		SELECT id, code, name, type, parent_id, is_active
		FROM locations WHERE id = $1`
	var l entity.Location
	var parentID *string
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&l.ID, &l.Code, &l.Name, &l.Type, &parentID, &l.IsActive,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	if parentID != nil {
		l.ParentID = *parentID
	}
	return &l, nil
}

// Update actualiza una ubicación existente.
func (r *LocationRepo) Update(location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, type = $3, parent_id = $4, is_active = $5
		WHERE id = $1`
	parentID := (*string)(nil)
	if location.ParentID != "" {
		parentID = &location.ParentID
	}
	_, err := r.q.Exec(context.Background(), query,
		location.ID, location.Name, location.Type, parentID, location.IsActive,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", err)
	}
	return nil
}

// List lista ubicaciones con filtros y paginación.
func (r *LocationRepo) List(filter repository.LocationFilter, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, code, name, type, parent_id, is_active
		FROM locations WHERE 1=1`
	args := []any{}
	pos := 1
	if filter.Type != "" {
		query += fmt.Sprintf(" AND type = $%d", pos)
		args = append(args, filter.Type)
		pos++
	}
	if filter.ParentID != "" {
		query += fmt.Sprintf(" AND parent_id = $%d", pos)
		args = append(args, filter.ParentID)
		pos++
	}
	if filter.IsActive != nil {
		query += fmt.Sprintf(" AND is_active = $%d", pos)
		args = append(args, *filter.IsActive)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY code LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		var parentID *string
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.Type, &parentID, &l.IsActive); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		if parentID != nil {
			l.ParentID = *parentID
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
