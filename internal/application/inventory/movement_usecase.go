package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Kardex-api/internal/application/dto"
	"github.com/jhoicas/Kardex-api/internal/domain"
	"github.com/jhoicas/Kardex-api/internal/domain/entity"
	"github.com/jhoicas/Kardex-api/internal/domain/repository"
)

// Direcciones de un movimiento simple.
const (
	DirectionIn  = "in"
	DirectionOut = "out"
)

// Policy política de saldos del coordinador de movimientos.
// AllowNegative=false rechaza cualquier movimiento que deje CurrentQty por
// debajo de cero, salvo los de tipo adjustment (flujos de conciliación
// pueden pasar por negativo de forma transitoria). Decisión explícita,
// configurable vía INVENTORY_ALLOW_NEGATIVE.
type Policy struct {
	AllowNegative bool
}

// MovementUseCase coordina movimientos de stock de forma transaccional:
// valida la petición, secuencia uno o dos asientos del kardex y proyecta los
// saldos afectados, todo dentro de una sola transacción (TxRunner) con
// incremento atómico por fila del saldo (ApplyDelta).
type MovementUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	locationRepo repository.LocationRepository
	policy       Policy
}

// NewMovementUseCase construye el caso de uso.
func NewMovementUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	locationRepo repository.LocationRepository,
	policy Policy,
) *MovementUseCase {
	return &MovementUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		locationRepo: locationRepo,
		policy:       policy,
	}
}

// Execute valida y ejecuta un movimiento.
//   - Movimiento simple: un asiento + una proyección de saldo.
//   - Traslado: dos asientos (salida en origen, entrada en destino) con un
//     ref_id compartido + dos proyecciones.
//
// Todo o nada: si cualquier efecto falla, la transacción se revierte y nada
// queda visible.
func (uc *MovementUseCase) Execute(ctx context.Context, actorID string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if in.Type == entity.TransactionTypeTransfer {
		return uc.executeTransfer(ctx, actorID, in)
	}
	return uc.executeSingle(ctx, actorID, in)
}

// executeSingle registra un movimiento de una sola ubicación.
// Para adjustment la cantidad puede venir firmada; para el resto de tipos
// se exige qty > 0 más una dirección (in|out).
func (uc *MovementUseCase) executeSingle(ctx context.Context, actorID string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if !entity.ValidTransactionType(in.Type) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.LocationID == "" || in.Qty == 0 {
		return nil, domain.ErrInvalidInput
	}

	var delta int64
	switch in.Direction {
	case DirectionIn:
		if in.Qty < 0 {
			return nil, domain.ErrInvalidInput
		}
		delta = in.Qty
	case DirectionOut:
		if in.Qty < 0 {
			return nil, domain.ErrInvalidInput
		}
		delta = -in.Qty
	case "":
		// Sin dirección solo se acepta un delta pre-firmado en ajustes.
		if in.Type != entity.TransactionTypeAdjustment {
			return nil, domain.ErrInvalidInput
		}
		delta = in.Qty
	default:
		return nil, domain.ErrInvalidInput
	}

	if err := uc.checkRefs(in.ProductID, in.LocationID); err != nil {
		return nil, err
	}

	now := time.Now()
	refType, refID := in.RefType, in.RefID
	if refID == "" {
		refType = entity.RefTypeStockMovement
		refID = uuid.New().String()
	}

	entry := &entity.LedgerEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Qty:        delta,
		Type:       in.Type,
		RefType:    refType,
		RefID:      refID,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}

	var balance *entity.StockBalance
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		var err error
		balance, err = uc.applyEntry(ledgerRepo, balanceRepo, entry, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ReferenceID: refID,
		Entries:     []dto.LedgerEntryDTO{toEntryDTO(entry)},
		Balances:    []dto.BalanceDTO{toBalanceDTO(balance)},
	}, nil
}

// executeTransfer registra un traslado: salida en origen y entrada en destino,
// ambos asientos con el mismo ref_id, en una sola transacción. La aplicación
// parcial (salida confirmada sin su entrada) es una violación de invariante
// que el rollback de la transacción hace imposible.
func (uc *MovementUseCase) executeTransfer(ctx context.Context, actorID string, in dto.MovementRequest) (*dto.MovementResponse, error) {
	if in.ProductID == "" || in.FromLocationID == "" || in.ToLocationID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.FromLocationID == in.ToLocationID || in.Qty <= 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	fromLoc, err := uc.locationRepo.GetByID(in.FromLocationID)
	if err != nil {
		return nil, err
	}
	toLoc, err := uc.locationRepo.GetByID(in.ToLocationID)
	if err != nil {
		return nil, err
	}
	if fromLoc == nil || toLoc == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	refID := uuid.New().String()

	outEntry := &entity.LedgerEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		LocationID: in.FromLocationID,
		Qty:        -in.Qty,
		Type:       entity.TransactionTypeTransfer,
		RefType:    entity.RefTypeStockMovement,
		RefID:      refID,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}
	inEntry := &entity.LedgerEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		LocationID: in.ToLocationID,
		Qty:        in.Qty,
		Type:       entity.TransactionTypeTransfer,
		RefType:    entity.RefTypeStockMovement,
		RefID:      refID,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}

	var fromBal, toBal *entity.StockBalance
	err = uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		// Origen primero, destino después: orden de bloqueo fijo.
		var err error
		fromBal, err = uc.applyEntry(ledgerRepo, balanceRepo, outEntry, now)
		if err != nil {
			return err
		}
		toBal, err = uc.applyEntry(ledgerRepo, balanceRepo, inEntry, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &dto.MovementResponse{
		ReferenceID: refID,
		Entries:     []dto.LedgerEntryDTO{toEntryDTO(outEntry), toEntryDTO(inEntry)},
		Balances:    []dto.BalanceDTO{toBalanceDTO(fromBal), toBalanceDTO(toBal)},
	}, nil
}

// AppendEntry registra un asiento directo en el kardex (POST /api/inventory/ledger)
// con su proyección de saldo en la misma transacción. Es la operación `append`
// de bajo nivel que usan los colaboradores de compras/ventas/producción;
// el delta llega ya firmado.
func (uc *MovementUseCase) AppendEntry(ctx context.Context, actorID string, in dto.AppendEntryRequest) (*entity.LedgerEntry, *entity.StockBalance, error) {
	if in.Qty == 0 || !entity.ValidTransactionType(in.Type) {
		return nil, nil, domain.ErrInvalidInput
	}
	if in.ProductID == "" || in.LocationID == "" {
		return nil, nil, domain.ErrInvalidInput
	}
	if err := uc.checkRefs(in.ProductID, in.LocationID); err != nil {
		return nil, nil, err
	}

	now := time.Now()
	entry := &entity.LedgerEntry{
		ID:         uuid.New().String(),
		ProductID:  in.ProductID,
		LocationID: in.LocationID,
		Qty:        in.Qty,
		Type:       in.Type,
		RefType:    in.RefType,
		RefID:      in.RefID,
		CreatedAt:  now,
		CreatedBy:  actorID,
	}

	var balance *entity.StockBalance
	err := uc.txRunner.Run(ctx, func(
		ledgerRepo repository.LedgerRepository,
		balanceRepo repository.BalanceRepository,
	) error {
		var err error
		balance, err = uc.applyEntry(ledgerRepo, balanceRepo, entry, now)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return entry, balance, nil
}

// applyEntry proyecta un asiento sobre su saldo y lo persiste, dentro de la
// transacción del caller. El incremento del saldo es atómico a nivel de fila
// (ApplyDelta): un SELECT FOR UPDATE previo no serviría aquí porque sobre un
// par sin fila no hay nada que bloquear y dos primeras escrituras
// concurrentes se pisarían. La política de negativos se verifica sobre el
// saldo resultante; si falla, el rollback de la transacción deshace el
// incremento.
func (uc *MovementUseCase) applyEntry(
	ledgerRepo repository.LedgerRepository,
	balanceRepo repository.BalanceRepository,
	entry *entity.LedgerEntry,
	now time.Time,
) (*entity.StockBalance, error) {
	balance, err := balanceRepo.ApplyDelta(entry.ProductID, entry.LocationID, entry.Qty, now)
	if err != nil {
		return nil, err
	}
	if balance.CurrentQty < 0 && !uc.policy.AllowNegative && entry.Type != entity.TransactionTypeAdjustment {
		return nil, domain.ErrInsufficientStock
	}
	if err := ledgerRepo.Create(entry); err != nil {
		return nil, err
	}
	return balance, nil
}

// checkRefs valida que producto y ubicación existan (chequeo delegado al catálogo).
func (uc *MovementUseCase) checkRefs(productID, locationID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	location, err := uc.locationRepo.GetByID(locationID)
	if err != nil {
		return err
	}
	if location == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toEntryDTO(e *entity.LedgerEntry) dto.LedgerEntryDTO {
	return dto.LedgerEntryDTO{
		ID:         e.ID,
		ProductID:  e.ProductID,
		LocationID: e.LocationID,
		Qty:        e.Qty,
		Type:       e.Type,
		RefType:    e.RefType,
		RefID:      e.RefID,
		CreatedAt:  e.CreatedAt,
		CreatedBy:  e.CreatedBy,
	}
}

func toBalanceDTO(b *entity.StockBalance) dto.BalanceDTO {
	return dto.BalanceDTO{
		ProductID:   b.ProductID,
		LocationID:  b.LocationID,
		CurrentQty:  b.CurrentQty,
		LastUpdated: b.LastUpdated,
	}
}
