package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// AuditUseCase auditor de consistencia: recalcula los saldos desde el kardex
// y detecta o corrige desviaciones. Nunca muta el kardex; solo lee asientos
// y escribe saldos vía repair, que es el único camino sancionado para
// corregir un saldo fuera de la proyección normal.
type AuditUseCase struct {
	txRunner    TxRunner
	ledgerRepo  repository.LedgerRepository
	balanceRepo repository.BalanceRepository
}

// NewAuditUseCase construye el auditor con repositorios atados al pool.
func NewAuditUseCase(txRunner TxRunner, ledgerRepo repository.LedgerRepository, balanceRepo repository.BalanceRepository) *AuditUseCase {
	return &AuditUseCase{txRunner: txRunner, ledgerRepo: ledgerRepo, balanceRepo: balanceRepo}
}

// Recompute suma los deltas del kardex por par (producto, ubicación) dentro
// del alcance y los compara con el saldo almacenado. Clasifica:
// coinciden (sin acción), desviados (expected vs actual) y pares con
// historia en el kardex pero sin fila de saldo (missing_row).
//
// La foto NO es transaccional: suma y saldos se leen en consultas separadas
// sobre el pool, así que un movimiento que confirme en medio del barrido
// puede aparecer como desviación transitoria de un solo reporte. Es un
// informe; la corrección real (Repair) sí corre en una sola transacción.
func (uc *AuditUseCase) Recompute(_ context.Context, scope dto.AuditScope) (*dto.AuditReportDTO, error) {
	sums, err := uc.ledgerRepo.SumByPair(scope.ProductID, scope.LocationID)
	if err != nil {
		return nil, err
	}

	report := &dto.AuditReportDTO{CheckedPairs: len(sums), Drifted: []dto.AuditPairDTO{}}
	for _, pair := range sums {
		balance, err := uc.balanceRepo.Get(pair.ProductID, pair.LocationID)
		if err != nil {
			return nil, err
		}
		var actual int64
		missing := balance == nil
		if !missing {
			actual = balance.CurrentQty
		}
		if missing || actual != pair.Total {
			report.Drifted = append(report.Drifted, dto.AuditPairDTO{
				ProductID:   pair.ProductID,
				LocationID:  pair.LocationID,
				ExpectedQty: pair.Total,
				ActualQty:   actual,
				Diff:        actual - pair.Total,
				MissingRow:  missing,
			})
		}
	}
	report.OKPairs = report.CheckedPairs - len(report.Drifted)
	return report, nil
}

// Repair sobrescribe los saldos desviados (o faltantes) con la suma derivada
// del kardex, en una sola transacción para que el recálculo y la corrección
// vean la misma foto. Idempotente: una segunda ejecución sin escrituras
// intermedias no repara nada y un Recompute posterior reporta cero desviación.
func (uc *AuditUseCase) Repair(ctx context.Context, scope dto.AuditScope) (*dto.RepairReportDTO, error) {
	report := &dto.RepairReportDTO{Repaired: []dto.AuditPairDTO{}}
	now := time.Now()

	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		sums, err := ledgerRepo.SumByPair(scope.ProductID, scope.LocationID)
		if err != nil {
			return err
		}
		report.CheckedPairs = len(sums)
		for _, pair := range sums {
			// Bloquea la fila para que ningún movimiento concurrente se cuele
			// entre la comparación y la sobrescritura.
			balance, err := balanceRepo.GetForUpdate(pair.ProductID, pair.LocationID)
			if err != nil {
				return err
			}
			if balance.CurrentQty == pair.Total && !balance.LastUpdated.IsZero() {
				continue
			}
			repaired := dto.AuditPairDTO{
				ProductID:   pair.ProductID,
				LocationID:  pair.LocationID,
				ExpectedQty: pair.Total,
				ActualQty:   balance.CurrentQty,
				Diff:        balance.CurrentQty - pair.Total,
				MissingRow:  balance.LastUpdated.IsZero(),
			}
			balance.CurrentQty = pair.Total
			balance.LastUpdated = now
			if err := balanceRepo.Upsert(balance); err != nil {
				return err
			}
			report.Repaired = append(report.Repaired, repaired)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
