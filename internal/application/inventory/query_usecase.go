package inventory

import (
	"context"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// QueryUseCase lecturas del kardex y de saldos (sin efectos).
type QueryUseCase struct {
	ledgerRepo  repository.LedgerRepository
	balanceRepo repository.BalanceRepository
}

// NewQueryUseCase construye el caso de uso con repositorios atados al pool.
func NewQueryUseCase(ledgerRepo repository.LedgerRepository, balanceRepo repository.BalanceRepository) *QueryUseCase {
	return &QueryUseCase{ledgerRepo: ledgerRepo, balanceRepo: balanceRepo}
}

// ListLedger lista asientos con filtros y paginación, orden estable por
// (created_at, seq). La lectura es finita y reiniciable, no un stream.
func (uc *QueryUseCase) ListLedger(_ context.Context, filter repository.LedgerFilter, page dto.PageRequest) ([]dto.LedgerEntryDTO, error) {
	page.DefaultPage()
	entries, err := uc.ledgerRepo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LedgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toEntryDTO(e))
	}
	return out, nil
}

// ListBalances lista saldos con filtros y paginación.
func (uc *QueryUseCase) ListBalances(_ context.Context, filter repository.BalanceFilter, page dto.PageRequest) ([]dto.BalanceDTO, error) {
	page.DefaultPage()
	balances, err := uc.balanceRepo.List(filter, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BalanceDTO, 0, len(balances))
	for _, b := range balances {
		out = append(out, toBalanceDTO(b))
	}
	return out, nil
}

// GetBalance devuelve el saldo del par o nil si no hay fila (cero implícito).
func (uc *QueryUseCase) GetBalance(_ context.Context, productID, locationID string) (*entity.StockBalance, error) {
	return uc.balanceRepo.Get(productID, locationID)
}
