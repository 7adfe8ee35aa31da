package dto

import "time"

// AppendEntryRequest body para POST /api/inventory/ledger (asiento directo).
type AppendEntryRequest struct {
	ProductID  string `json:"product_id"`
	LocationID string `json:"location_id"`
	Qty        int64  `json:"qty"` // firmado; positivo entrada, negativo salida
	Type       string `json:"transaction_type"`
	RefType    string `json:"ref_type,omitempty"`
	RefID      string `json:"ref_id,omitempty"`
}

// LedgerEntryDTO asiento del kardex en respuestas.
type LedgerEntryDTO struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	LocationID string    `json:"location_id"`
	Qty        int64     `json:"qty"`
	Type       string    `json:"transaction_type"`
	RefType    string    `json:"ref_type,omitempty"`
	RefID      string    `json:"ref_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	CreatedBy  string    `json:"created_by,omitempty"`
}

// MovementRequest body para POST /api/inventory/movements.
// Movimiento simple: product_id, location_id, direction (in|out) o type
// adjustment con qty firmado. Traslado: from_location_id + to_location_id.
type MovementRequest struct {
	ProductID      string `json:"product_id"`
	LocationID     string `json:"location_id,omitempty"`
	FromLocationID string `json:"from_location_id,omitempty"`
	ToLocationID   string `json:"to_location_id,omitempty"`
	Type           string `json:"transaction_type"`
	Direction      string `json:"direction,omitempty"` // in | out (movimiento simple)
	Qty            int64  `json:"qty"`
	RefType        string `json:"ref_type,omitempty"`
	RefID          string `json:"ref_id,omitempty"`
}

// MovementResponse resultado de un movimiento confirmado.
type MovementResponse struct {
	ReferenceID string           `json:"reference_id"`
	Entries     []LedgerEntryDTO `json:"entries"`
	Balances    []BalanceDTO     `json:"balances"`
}

// BalanceDTO saldo actual en respuestas.
type BalanceDTO struct {
	ProductID   string    `json:"product_id"`
	LocationID  string    `json:"location_id"`
	CurrentQty  int64     `json:"current_qty"`
	LastUpdated time.Time `json:"last_updated"`
}

// AuditScope alcance opcional para recompute/repair.
type AuditScope struct {
	ProductID  string `json:"product_id,omitempty" query:"product_id"`
	LocationID string `json:"location_id,omitempty" query:"location_id"`
}

// AuditPairDTO resultado de auditoría para un par (producto, ubicación).
type AuditPairDTO struct {
	ProductID   string `json:"product_id"`
	LocationID  string `json:"location_id"`
	ExpectedQty int64  `json:"expected_qty"` // suma derivada del kardex
	ActualQty   int64  `json:"actual_qty"`   // saldo almacenado (0 si falta fila)
	Diff        int64  `json:"diff"`         // actual - expected
	MissingRow  bool   `json:"missing_row"`  // kardex con historia pero sin fila de saldo
}

// AuditReportDTO respuesta de recompute.
type AuditReportDTO struct {
	CheckedPairs int            `json:"checked_pairs"`
	OKPairs      int            `json:"ok_pairs"`
	Drifted      []AuditPairDTO `json:"drifted"`
}

// RepairReportDTO respuesta de repair.
type RepairReportDTO struct {
	CheckedPairs int            `json:"checked_pairs"`
	Repaired     []AuditPairDTO `json:"repaired"`
}
