// Package memory implementa los puertos de persistencia sobre estructuras en
// memoria, para tests y entornos de desarrollo sin Postgres. Replica la
// semántica de la implementación pgx: orden estable (created_at, seq),
// saldo cero implícito cuando falta la fila y transacciones todo-o-nada.
package memory

import (
	"sort"
	"sync"

	"github.com/jhoicas/Kardex-api/internal/domain/entity"
)

type pairKey struct {
	ProductID  string
	LocationID string
}

// Store contiene el estado compartido por todos los repositorios en memoria.
type Store struct {
	mu sync.Mutex
	// txMu serializa transacciones completas; mu protege accesos puntuales.
	txMu sync.Mutex

	entries   []*entity.LedgerEntry
	nextSeq   int64
	balances  map[pairKey]*entity.StockBalance
	products  map[string]*entity.Product
	locations map[string]*entity.Location

	// FailCreate permite inyectar un fallo en la creación de asientos para
	// ejercitar el rollback de transacciones en tests. nil = sin fallo.
	FailCreate func(entry *entity.LedgerEntry) error
}

// NewStore crea un Store vacío.
func NewStore() *Store {
	return &Store{
		nextSeq:   1,
		balances:  make(map[pairKey]*entity.StockBalance),
		products:  make(map[string]*entity.Product),
		locations: make(map[string]*entity.Location),
	}
}

// snapshot captura el estado mutable por una transacción (asientos y saldos).
type snapshot struct {
	entriesLen int
	nextSeq    int64
	balances   map[pairKey]*entity.StockBalance
}

func (s *Store) takeSnapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	balances := make(map[pairKey]*entity.StockBalance, len(s.balances))
	for k, b := range s.balances {
		copied := *b
		balances[k] = &copied
	}
	return snapshot{entriesLen: len(s.entries), nextSeq: s.nextSeq, balances: balances}
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// El kardex es append-only: revertir es truncar lo añadido.
	s.entries = s.entries[:snap.entriesLen]
	s.nextSeq = snap.nextSeq
	s.balances = snap.balances
}

func copyBalance(b *entity.StockBalance) *entity.StockBalance {
	copied := *b
	return &copied
}

func sortBalances(out []*entity.StockBalance) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].ProductID != out[j].ProductID {
			return out[i].ProductID < out[j].ProductID
		}
		return out[i].LocationID < out[j].LocationID
	})
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
