package entity

import "time"

// Tipos de transacción del kardex (enum cerrado).
const (
	TransactionTypePurchase   = "purchase"   // recepción de compra
	TransactionTypeSale       = "sale"       // despacho de venta
	TransactionTypeTransfer   = "transfer"   // traslado entre ubicaciones
	TransactionTypeAdjustment = "adjustment" // ajuste manual
	TransactionTypeProduction = "production" // consumo/producción
	TransactionTypeReturn     = "return"     // devolución
)

// Tipos de documento de referencia de un asiento.
const (
	RefTypePurchaseOrderItem = "purchase_order_item"
	RefTypeSalesOrderItem    = "sales_order_item"
	RefTypeProductionOrder   = "production_order"
	RefTypeAdjustment        = "adjustment"
	RefTypeStockMovement     = "stock_movement"
)

// LedgerEntry es un asiento del kardex: un cambio de cantidad firmado para un
// producto en una ubicación. Inmutable una vez persistido; las correcciones
// son siempre asientos compensatorios nuevos, nunca ediciones.
type LedgerEntry struct {
	ID         string
	Seq        int64  // orden de inserción (desempate para created_at iguales)
	ProductID  string
	LocationID string
	Qty        int64  // positivo = entrada, negativo = salida; nunca cero
	Type       string // purchase, sale, transfer, adjustment, production, return
	RefType    string // documento origen (informativo, sin FK hacia este core)
	RefID      string
	CreatedAt  time.Time
	CreatedBy  string // UserID del actor, opcional
}

// ValidTransactionType verifica que el tipo pertenezca al enum cerrado.
func ValidTransactionType(t string) bool {
	switch t {
	case TransactionTypePurchase, TransactionTypeSale, TransactionTypeTransfer,
		TransactionTypeAdjustment, TransactionTypeProduction, TransactionTypeReturn:
		return true
	}
	return false
}
