package repository

import (
	"time"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

// LedgerFilter filtros opcionales para listar asientos del kardex.
type LedgerFilter struct {
	ProductID  string
	LocationID string
	Type       string
	From       *time.Time
	To         *time.Time
	Desc       bool // true = más recientes primero
}

// PairSum suma de cantidades del kardex para un par (producto, ubicación).
type PairSum struct {
	ProductID  string
	LocationID string
	Total      int64
}

// LedgerRepository define el puerto de persistencia del kardex (append-only).
// No existe Update ni Delete: un asiento persistido jamás se modifica.
type LedgerRepository interface {
	Create(entry *entity.LedgerEntry) error
	GetByID(id string) (*entity.LedgerEntry, error)
	// List ordena por (created_at, seq); el desempate por seq hace el orden
	// estable cuando varios asientos comparten timestamp.
	List(filter LedgerFilter, limit, offset int) ([]*entity.LedgerEntry, error)
	// SumByPair agrega SUM(qty) por par dentro del alcance dado.
	// productID/locationID vacíos = sin restricción.
	SumByPair(productID, locationID string) ([]PairSum, error)
}
