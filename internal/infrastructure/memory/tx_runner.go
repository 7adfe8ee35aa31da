package memory

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// TxRunner transacciones todo-o-nada sobre el Store: toma un snapshot del
// estado mutable antes de ejecutar fn y lo restaura si fn falla. Las
// transacciones se serializan entre sí, que es el equivalente en memoria del
// SELECT FOR UPDATE de la implementación pgx.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner sobre el Store dado.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run ejecuta fn con repositorios atados al Store. Si fn devuelve error,
// ningún asiento ni saldo escrito por fn queda visible.
func (r *TxRunner) Run(_ context.Context, fn func(
	ledgerRepo repository.LedgerRepository,
	balanceRepo repository.BalanceRepository,
) error) error {
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()

	snap := r.s.takeSnapshot()
	if err := fn(NewLedgerRepository(r.s), NewBalanceRepository(r.s)); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
